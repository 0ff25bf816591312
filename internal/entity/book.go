package entity

// Book is a catalog book. Reads embed the full author projection; writes
// carry only AuthorID, so a nested author object is never accepted as input.
type Book struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	AuthorID      int64   `json:"-"`
	Author        *Author `json:"author"`
	PublishedDate Date    `json:"published_date"`
	ISBN          string  `json:"isbn"`
}

// BookSummary is the reduced book projection embedded in author
// responses: no nested author.
type BookSummary struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	PublishedDate Date   `json:"published_date"`
	ISBN          string `json:"isbn"`
}

// Summary reduces a book to its embedded projection.
func (b Book) Summary() BookSummary {
	return BookSummary{
		ID:            b.ID,
		Title:         b.Title,
		PublishedDate: b.PublishedDate,
		ISBN:          b.ISBN,
	}
}
