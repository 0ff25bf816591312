package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		raw    string
		want   int
		wantOK bool
	}{
		{"", 1, true},
		{"1", 1, true},
		{"3", 3, true},
		{"0", 0, false},
		{"-1", 0, false},
		{"bogus", 0, false},
		{"1.5", 0, false},
	}
	for _, tt := range tests {
		got, ok := parsePage(tt.raw)
		assert.Equal(t, tt.wantOK, ok, "parsePage(%q)", tt.raw)
		if ok {
			assert.Equal(t, tt.want, got, "parsePage(%q)", tt.raw)
		}
	}
}

func TestMaxPage(t *testing.T) {
	assert.Equal(t, 1, maxPage(0), "empty set still has page 1")
	assert.Equal(t, 1, maxPage(10))
	assert.Equal(t, 2, maxPage(11))
	assert.Equal(t, 3, maxPage(25))
}

func TestPaginate_Links(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/books/?search=orwell&page=2", nil)

	p := paginate(r, 25, 2, []string{})
	assert.Equal(t, 25, p.Count)

	require.NotNil(t, p.Next)
	assert.Contains(t, *p.Next, "page=3")
	assert.Contains(t, *p.Next, "search=orwell", "other query params survive")

	// previous of page 2 is page 1, which omits the page param
	require.NotNil(t, p.Previous)
	assert.NotContains(t, *p.Previous, "page=")
	assert.Contains(t, *p.Previous, "search=orwell")
}

func TestPaginate_FirstAndLastPages(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/authors/", nil)

	first := paginate(r, 25, 1, nil)
	assert.Nil(t, first.Previous)
	require.NotNil(t, first.Next)
	assert.Contains(t, *first.Next, "page=2")

	r = httptest.NewRequest(http.MethodGet, "/api/authors/?page=3", nil)
	last := paginate(r, 25, 3, nil)
	assert.Nil(t, last.Next)
	require.NotNil(t, last.Previous)
	assert.Contains(t, *last.Previous, "page=2")

	single := paginate(httptest.NewRequest(http.MethodGet, "/api/authors/", nil), 5, 1, nil)
	assert.Nil(t, single.Next)
	assert.Nil(t, single.Previous)
}
