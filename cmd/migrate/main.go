package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"catalogapi/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: migrate <up|down|status|create NAME>")
	os.Exit(2)
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
	}
	command := flag.Arg(0)

	cfg := config.Load()
	dir := migrationsDir()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("set goose dialect: %v", err)
	}

	// create needs no database connection
	if command == "create" {
		if flag.NArg() < 2 {
			log.Fatal("migrate create: missing migration name")
		}
		if err := goose.Create(nil, dir, flag.Arg(1), "sql"); err != nil {
			log.Fatalf("create migration: %v", err)
		}
		return
	}

	pool, err := pgxpool.New(context.Background(), cfg.DSN)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	switch command {
	case "up":
		if err := goose.Up(db, dir); err != nil {
			log.Fatalf("apply migrations: %v", err)
		}
	case "down":
		if err := goose.Down(db, dir); err != nil {
			log.Fatalf("roll back migration: %v", err)
		}
	case "status":
		if err := goose.Status(db, dir); err != nil {
			log.Fatalf("migration status: %v", err)
		}
	default:
		usage()
	}
}

func migrationsDir() string {
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return v
	}
	return "db/migrations"
}
