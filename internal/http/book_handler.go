package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"catalogapi/internal/entity"
	"catalogapi/internal/usecase"
)

type BookHandler struct {
	repo usecase.BookRepository
}

func NewBookHandler(repo usecase.BookRepository) *BookHandler {
	return &BookHandler{repo: repo}
}

type bookCreateRequest struct {
	Title         string       `json:"title" validate:"required,max=255"`
	AuthorID      int64        `json:"author_id" validate:"required"`
	PublishedDate *entity.Date `json:"published_date" validate:"required"`
	ISBN          string       `json:"isbn" validate:"required,max=13"`
}

type bookPatchRequest struct {
	Title         *string      `json:"title" validate:"omitempty,min=1,max=255"`
	AuthorID      *int64       `json:"author_id" validate:"omitempty,gt=0"`
	PublishedDate *entity.Date `json:"published_date"`
	ISBN          *string      `json:"isbn" validate:"omitempty,min=1,max=13"`
}

func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, ok := parsePage(q.Get("page"))
	if !ok {
		writeInvalidPage(w)
		return
	}

	params := usecase.ListParams{
		Search:   q.Get("search"),
		Ordering: q.Get("ordering"),
		Limit:    PageSize,
		Offset:   (page - 1) * PageSize,
	}

	books, total, err := h.repo.List(r.Context(), params)
	if err != nil {
		writeServerError(w, r, err)
		return
	}
	if page > maxPage(total) {
		writeInvalidPage(w)
		return
	}
	if books == nil {
		books = []entity.Book{}
	}
	writeJSON(w, http.StatusOK, paginate(r, total, page, books))
}

func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r.PathValue("id"))
	if !ok {
		writeNotFound(w)
		return
	}

	book, err := h.repo.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			writeNotFound(w)
		default:
			writeServerError(w, r, err)
		}
		return
	}
	writeJSON(w, http.StatusOK, book)
}

func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req bookCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONParseError(w)
		return
	}
	if errs := ValidateStruct(req); errs != nil {
		writeFieldErrors(w, errs)
		return
	}

	book := entity.Book{
		Title:         req.Title,
		AuthorID:      req.AuthorID,
		PublishedDate: *req.PublishedDate,
		ISBN:          req.ISBN,
	}
	if err := h.repo.Create(r.Context(), &book); err != nil {
		if errs := bookWriteFieldErrors(err, book.AuthorID); errs != nil {
			writeFieldErrors(w, errs)
			return
		}
		writeServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, book)
}

// Update handles both PUT (full, create-level validation) and PATCH
// (partial, untouched fields keep their values). Uniqueness and
// author resolution are re-checked on every update.
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r.PathValue("id"))
	if !ok {
		writeNotFound(w)
		return
	}

	book, err := h.repo.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			writeNotFound(w)
		default:
			writeServerError(w, r, err)
		}
		return
	}

	if r.Method == http.MethodPut {
		var req bookCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONParseError(w)
			return
		}
		if errs := ValidateStruct(req); errs != nil {
			writeFieldErrors(w, errs)
			return
		}
		book.Title = req.Title
		book.AuthorID = req.AuthorID
		book.PublishedDate = *req.PublishedDate
		book.ISBN = req.ISBN
	} else {
		var req bookPatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONParseError(w)
			return
		}
		if errs := ValidateStruct(req); errs != nil {
			writeFieldErrors(w, errs)
			return
		}
		if req.Title != nil {
			book.Title = *req.Title
		}
		if req.AuthorID != nil {
			book.AuthorID = *req.AuthorID
		}
		if req.PublishedDate != nil {
			book.PublishedDate = *req.PublishedDate
		}
		if req.ISBN != nil {
			book.ISBN = *req.ISBN
		}
	}

	if err := h.repo.Update(r.Context(), &book); err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			writeNotFound(w)
		default:
			if errs := bookWriteFieldErrors(err, book.AuthorID); errs != nil {
				writeFieldErrors(w, errs)
				return
			}
			writeServerError(w, r, err)
		}
		return
	}
	writeJSON(w, http.StatusOK, book)
}

func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r.PathValue("id"))
	if !ok {
		writeNotFound(w)
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			writeNotFound(w)
		default:
			writeServerError(w, r, err)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func bookWriteFieldErrors(err error, authorID int64) FieldErrors {
	switch {
	case errors.Is(err, usecase.ErrDuplicateISBN):
		return FieldErrors{"isbn": {"book with this isbn already exists."}}
	case errors.Is(err, usecase.ErrAuthorNotFound):
		return FieldErrors{"author_id": {fmt.Sprintf(`Invalid pk "%d" - object does not exist.`, authorID)}}
	}
	return nil
}
