package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"catalogapi/internal/config"
	"catalogapi/internal/platform/openlibrary"

	"github.com/jackc/pgx/v5/pgxpool"
)

type seedAuthor struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	BirthDate *string `json:"birth_date"`
	Country   string  `json:"country"`
}

type seedBook struct {
	Title         string `json:"title"`
	AuthorID      int64  `json:"author_id"`
	PublishedDate string `json:"published_date"`
	ISBN          string `json:"isbn"`
}

type seedData struct {
	Authors []seedAuthor `json:"authors"`
	Books   []seedBook   `json:"books"`
}

func main() {
	var (
		source  = flag.String("source", "file", "Seed source: file or openlibrary")
		file    = flag.String("file", "data/sample_data.json", "Sample data file for -source=file")
		subject = flag.String("subject", "classic literature", "Subject for -source=openlibrary")
		limit   = flag.Int("limit", 25, "Book limit for -source=openlibrary")
	)
	flag.Parse()

	cfg := config.Load()

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	switch *source {
	case "file":
		seedFromFile(ctx, pool, *file)
	case "openlibrary":
		seedFromOpenLibrary(ctx, pool, *subject, *limit)
	default:
		log.Fatalf("Unknown source: %s. Use: file, openlibrary", *source)
	}

	var authors, books int
	_ = pool.QueryRow(ctx, "SELECT COUNT(*) FROM authors").Scan(&authors)
	_ = pool.QueryRow(ctx, "SELECT COUNT(*) FROM books").Scan(&books)
	log.Printf("Done: %d authors and %d books in database", authors, books)
}

func seedFromFile(ctx context.Context, pool *pgxpool.Pool, path string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", path, err)
	}
	var data seedData
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Fatalf("Failed to parse %s: %v", path, err)
	}

	clearExisting(ctx, pool)

	log.Println("Creating authors...")
	for _, a := range data.Authors {
		// Keep the ids from the file so book references stay stable.
		const query = `
		INSERT INTO authors (id, name, birth_date, country)
		OVERRIDING SYSTEM VALUE
		VALUES ($1, $2, $3, $4)
		`
		if _, err := pool.Exec(ctx, query, a.ID, a.Name, a.BirthDate, a.Country); err != nil {
			log.Fatalf("Failed to insert author %q: %v", a.Name, err)
		}
		log.Printf("  Created: %s", a.Name)
	}
	if _, err := pool.Exec(ctx, "SELECT setval(pg_get_serial_sequence('authors', 'id'), (SELECT MAX(id) FROM authors))"); err != nil {
		log.Fatalf("Failed to advance authors id sequence: %v", err)
	}

	log.Println("Creating books...")
	for _, b := range data.Books {
		const query = `
		INSERT INTO books (title, author_id, published_date, isbn)
		VALUES ($1, $2, $3, $4)
		`
		if _, err := pool.Exec(ctx, query, b.Title, b.AuthorID, b.PublishedDate, b.ISBN); err != nil {
			log.Fatalf("Failed to insert book %q: %v", b.Title, err)
		}
		log.Printf("  Created: %s", b.Title)
	}
}

func seedFromOpenLibrary(ctx context.Context, pool *pgxpool.Pool, subject string, limit int) {
	client := openlibrary.NewClient("catalogapi-seed/1.0", 2, 3)

	log.Printf("Searching Open Library for subject %q...", subject)
	res, err := client.SearchBooks(ctx, subject, limit)
	if err != nil {
		log.Fatalf("Open Library search failed: %v", err)
	}

	clearExisting(ctx, pool)

	authorIDs := map[string]int64{} // Open Library author key -> authors.id
	seenISBN := map[string]bool{}

	for _, doc := range res.Docs {
		if len(doc.AuthorKeys) == 0 || len(doc.ISBN) == 0 || doc.FirstPublishYear == 0 {
			continue
		}
		isbn := pickISBN13(doc.ISBN)
		if isbn == "" || seenISBN[isbn] {
			continue
		}

		key := doc.AuthorKeys[0]
		authorID, ok := authorIDs[key]
		if !ok {
			details, err := client.GetAuthor(ctx, key)
			if err != nil {
				log.Printf("  Skipping author %s: %v", key, err)
				continue
			}
			const query = `
			INSERT INTO authors (name, birth_date, country)
			VALUES ($1, $2, '')
			RETURNING id
			`
			if err := pool.QueryRow(ctx, query, details.Name, parseBirthDate(details.BirthDate)).Scan(&authorID); err != nil {
				log.Fatalf("Failed to insert author %q: %v", details.Name, err)
			}
			authorIDs[key] = authorID
			log.Printf("  Created author: %s", details.Name)
		}

		published := time.Date(doc.FirstPublishYear, time.January, 1, 0, 0, 0, 0, time.UTC)
		const query = `
		INSERT INTO books (title, author_id, published_date, isbn)
		VALUES ($1, $2, $3, $4)
		`
		if _, err := pool.Exec(ctx, query, doc.Title, authorID, published, isbn); err != nil {
			log.Fatalf("Failed to insert book %q: %v", doc.Title, err)
		}
		seenISBN[isbn] = true
		log.Printf("  Created book: %s", doc.Title)
	}
}

func clearExisting(ctx context.Context, pool *pgxpool.Pool) {
	log.Println("Clearing existing data...")
	// books go first only for clarity; the FK cascade would handle it.
	if _, err := pool.Exec(ctx, "DELETE FROM books"); err != nil {
		log.Fatalf("Failed to clear books: %v", err)
	}
	if _, err := pool.Exec(ctx, "DELETE FROM authors"); err != nil {
		log.Fatalf("Failed to clear authors: %v", err)
	}
}

func pickISBN13(isbns []string) string {
	for _, s := range isbns {
		if len(s) == 13 {
			return s
		}
	}
	return ""
}

// parseBirthDate copes with the loose formats Open Library uses
// ("25 June 1903", "1903"); anything unparseable becomes null.
func parseBirthDate(raw string) *time.Time {
	for _, layout := range []string{"2 January 2006", "January 2, 2006", "2006-01-02", "2006"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}
