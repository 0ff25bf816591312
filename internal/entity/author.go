package entity

// Author is a catalog author. Books holds the reduced projection of the
// author's books, ordered by title, so that an embedded author never
// recurses back into full book representations.
type Author struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	BirthDate *Date         `json:"birth_date"`
	Country   string        `json:"country"`
	Books     []BookSummary `json:"books"`
}
