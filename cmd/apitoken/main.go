// Command apitoken provisions the opaque API tokens that authorize
// mutating requests. Token issuance is an operator concern, not an API
// endpoint.
package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"log"

	"catalogapi/internal/config"
	"catalogapi/internal/entity"
	"catalogapi/internal/store"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	var (
		command = flag.String("command", "list", "Token command: create, list, revoke")
		name    = flag.String("name", "", "Holder name for 'create'")
		key     = flag.String("key", "", "Token key for 'revoke'")
	)
	flag.Parse()

	cfg := config.Load()

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	repo := store.NewTokenPG(pool)

	switch *command {
	case "create":
		if *name == "" {
			log.Fatal("Name is required for 'create' command")
		}
		token := entity.APIToken{Key: newKey(), Name: *name}
		if err := repo.Create(ctx, &token); err != nil {
			log.Fatalf("Failed to create token: %v", err)
		}
		fmt.Printf("Token created for %s:\n%s\n", token.Name, token.Key)
	case "list":
		tokens, err := repo.List(ctx)
		if err != nil {
			log.Fatalf("Failed to list tokens: %v", err)
		}
		for _, t := range tokens {
			fmt.Printf("%s  %s  %s\n", t.Key, t.CreatedAt.Format("2006-01-02"), t.Name)
		}
	case "revoke":
		if *key == "" {
			log.Fatal("Key is required for 'revoke' command")
		}
		if err := repo.DeleteByKey(ctx, *key); err != nil {
			log.Fatalf("Failed to revoke token: %v", err)
		}
		fmt.Println("Token revoked")
	default:
		log.Fatalf("Unknown command: %s. Use: create, list, revoke", *command)
	}
}

// newKey returns a 40-char hex key.
func newKey() string {
	b := make([]byte, 20)
	if _, err := rand.Read(b); err != nil {
		log.Fatalf("Failed to generate key: %v", err)
	}
	return hex.EncodeToString(b)
}
