package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"catalogapi/internal/entity"
	"catalogapi/internal/testutil"
	"catalogapi/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNineteenEightyFour() entity.Book {
	author := testOrwell()
	return entity.Book{
		ID:            7,
		Title:         "1984",
		AuthorID:      author.ID,
		Author:        &author,
		PublishedDate: entity.NewDate(1949, time.June, 8),
		ISBN:          "9780451524935",
	}
}

func TestBookHandler_List_PassesSearch(t *testing.T) {
	var captured usecase.ListParams
	repo := &fakeBookRepo{
		listFn: func(ctx context.Context, p usecase.ListParams) ([]entity.Book, int, error) {
			captured = p
			return []entity.Book{testNineteenEightyFour()}, 1, nil
		},
	}
	handler := NewBookHandler(repo)

	w := httptest.NewRecorder()
	handler.List(w, testutil.NewRequest(http.MethodGet, "/api/books/?search=Orwell", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Orwell", captured.Search)

	body := testutil.DecodeBody(t, w)
	assert.EqualValues(t, 1, body["count"])
	results := body["results"].([]any)
	require.Len(t, results, 1)
	book := results[0].(map[string]any)
	assert.Equal(t, "1984", book["title"])
	// reads embed the full author projection
	author := book["author"].(map[string]any)
	assert.Equal(t, "George Orwell", author["name"])
}

func TestBookHandler_Get_NotFound(t *testing.T) {
	repo := &fakeBookRepo{
		getFn: func(ctx context.Context, id int64) (entity.Book, error) {
			return entity.Book{}, usecase.ErrNotFound
		},
	}
	handler := NewBookHandler(repo)

	r := testutil.NewRequest(http.MethodGet, "/api/books/99/", nil)
	r.SetPathValue("id", "99")
	w := httptest.NewRecorder()
	handler.Get(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookHandler_Create(t *testing.T) {
	repo := &fakeBookRepo{
		createFn: func(ctx context.Context, b *entity.Book) error {
			b.ID = 7
			author := testOrwell()
			b.Author = &author
			return nil
		},
	}
	handler := NewBookHandler(repo)

	w := httptest.NewRecorder()
	handler.Create(w, testutil.NewRequest(http.MethodPost, "/api/books/", map[string]any{
		"title":          "1984",
		"author_id":      1,
		"published_date": "1949-06-08",
		"isbn":           "9780451524935",
	}))

	require.Equal(t, http.StatusCreated, w.Code)
	body := testutil.DecodeBody(t, w)
	assert.EqualValues(t, 7, body["id"])
	assert.Equal(t, "1949-06-08", body["published_date"])
}

func TestBookHandler_Create_MissingFields(t *testing.T) {
	repo := &fakeBookRepo{
		createFn: func(ctx context.Context, b *entity.Book) error {
			t.Fatal("create must not run on invalid input")
			return nil
		},
	}
	handler := NewBookHandler(repo)

	w := httptest.NewRecorder()
	handler.Create(w, testutil.NewRequest(http.MethodPost, "/api/books/", map[string]any{}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := testutil.DecodeBody(t, w)
	for _, field := range []string{"title", "author_id", "published_date", "isbn"} {
		assert.Contains(t, body, field)
	}
}

func TestBookHandler_Create_DuplicateISBN(t *testing.T) {
	repo := &fakeBookRepo{
		createFn: func(ctx context.Context, b *entity.Book) error {
			return usecase.ErrDuplicateISBN
		},
	}
	handler := NewBookHandler(repo)

	w := httptest.NewRecorder()
	handler.Create(w, testutil.NewRequest(http.MethodPost, "/api/books/", map[string]any{
		"title":          "Another 1984",
		"author_id":      1,
		"published_date": "1950-01-01",
		"isbn":           "9780451524935",
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := testutil.DecodeBody(t, w)
	require.Contains(t, body, "isbn")
	assert.Contains(t, body["isbn"], "book with this isbn already exists.")
}

func TestBookHandler_Create_UnknownAuthor(t *testing.T) {
	repo := &fakeBookRepo{
		createFn: func(ctx context.Context, b *entity.Book) error {
			return usecase.ErrAuthorNotFound
		},
	}
	handler := NewBookHandler(repo)

	w := httptest.NewRecorder()
	handler.Create(w, testutil.NewRequest(http.MethodPost, "/api/books/", map[string]any{
		"title":          "Ghost Book",
		"author_id":      424242,
		"published_date": "2000-01-01",
		"isbn":           "9780000000001",
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := testutil.DecodeBody(t, w)
	require.Contains(t, body, "author_id")
	assert.Contains(t, body["author_id"], `Invalid pk "424242" - object does not exist.`)
}

func TestBookHandler_Patch_TitleOnly(t *testing.T) {
	var updated entity.Book
	repo := &fakeBookRepo{
		getFn: func(ctx context.Context, id int64) (entity.Book, error) {
			return testNineteenEightyFour(), nil
		},
		updateFn: func(ctx context.Context, b *entity.Book) error {
			updated = *b
			return nil
		},
	}
	handler := NewBookHandler(repo)

	r := testutil.NewRequest(http.MethodPatch, "/api/books/7/", map[string]any{
		"title": "Nineteen Eighty-Four",
	})
	r.SetPathValue("id", "7")
	w := httptest.NewRecorder()
	handler.Update(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Nineteen Eighty-Four", updated.Title)
	assert.Equal(t, "9780451524935", updated.ISBN, "isbn unchanged")
	assert.EqualValues(t, 1, updated.AuthorID, "author unchanged")
	assert.Equal(t, "1949-06-08", updated.PublishedDate.String(), "published_date unchanged")
}

func TestBookHandler_Patch_RevalidatesUniqueness(t *testing.T) {
	repo := &fakeBookRepo{
		getFn: func(ctx context.Context, id int64) (entity.Book, error) {
			return testNineteenEightyFour(), nil
		},
		updateFn: func(ctx context.Context, b *entity.Book) error {
			return usecase.ErrDuplicateISBN
		},
	}
	handler := NewBookHandler(repo)

	r := testutil.NewRequest(http.MethodPatch, "/api/books/7/", map[string]any{
		"isbn": "9780452284241",
	})
	r.SetPathValue("id", "7")
	w := httptest.NewRecorder()
	handler.Update(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := testutil.DecodeBody(t, w)
	assert.Contains(t, body, "isbn")
}

func TestBookHandler_Delete(t *testing.T) {
	repo := &fakeBookRepo{
		deleteFn: func(ctx context.Context, id int64) error {
			return usecase.ErrNotFound
		},
	}
	handler := NewBookHandler(repo)

	r := testutil.NewRequest(http.MethodDelete, "/api/books/99/", nil)
	r.SetPathValue("id", "99")
	w := httptest.NewRecorder()
	handler.Delete(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
