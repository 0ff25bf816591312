package http

import (
	"net/http"
	"strconv"
)

// PageSize is the fixed number of items per list page.
const PageSize = 10

// Page is the list-response envelope.
type Page struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  any     `json:"results"`
}

// parsePage interprets the 1-based page query parameter. An absent
// parameter means page 1; anything non-numeric or below 1 is invalid.
func parsePage(raw string) (int, bool) {
	if raw == "" {
		return 1, true
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, false
	}
	return page, true
}

// maxPage is the highest valid page for a result set. An empty set
// still has page 1.
func maxPage(count int) int {
	if count <= PageSize {
		return 1
	}
	return (count + PageSize - 1) / PageSize
}

// paginate builds the envelope, deriving next/previous links from the
// request URL. Page 1 links omit the page parameter, so the previous
// link of page 2 is the bare list URL.
func paginate(r *http.Request, count, page int, results any) Page {
	p := Page{Count: count, Results: results}
	if page < maxPage(count) {
		p.Next = pageLink(r, page+1)
	}
	if page > 1 {
		p.Previous = pageLink(r, page-1)
	}
	return p
}

func pageLink(r *http.Request, page int) *string {
	u := *r.URL
	q := u.Query()
	if page <= 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(page))
	}
	u.RawQuery = q.Encode()
	s := u.String()
	return &s
}
