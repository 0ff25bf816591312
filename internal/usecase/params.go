package usecase

// ListParams carries the uniform list-query contract: a case-insensitive
// substring search, an ordering key (optionally prefixed with "-" to
// reverse direction), and a LIMIT/OFFSET window. The searchable and
// orderable field sets are fixed per repository; an unrecognized
// ordering key falls back to the repository's default order.
type ListParams struct {
	Search   string
	Ordering string
	Limit    int
	Offset   int
}
