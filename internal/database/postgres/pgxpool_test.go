package postgres

import (
	"context"
	"errors"
	"testing"

	"portal-api/internal/config"
	"portal-api/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestDSN(t *testing.T) {
	got := DSN(config.DatabaseConfig{
		DBHost:     " db ",
		DBPort:     "5432",
		DBUser:     "portal",
		DBPassword: "s3cret",
		DBName:     "portal",
		DBSSLMode:  "disable",
	})
	want := "host=db port=5432 user=portal password=s3cret dbname=portal sslmode=disable"
	if got != want {
		t.Fatalf("unexpected dsn: %q", got)
	}
}

func TestNilPool(t *testing.T) {
	var p *Pool
	if err := p.Ping(context.Background()); !errors.Is(err, ErrNilDB) {
		t.Fatalf("expected ErrNilDB, got %v", err)
	}
	var n int
	if err := p.QueryRow(context.Background(), "SELECT 1").Scan(&n); !errors.Is(err, ErrNilDB) {
		t.Fatalf("expected ErrNilDB, got %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("unexpected close err: %v", err)
	}
}

func TestStatementLabel(t *testing.T) {
	cases := []struct {
		query string
		want  string
	}{
		{"SELECT id::text, job_title FROM lca_postings WHERE id = $1", "select lca_postings"},
		{"SELECT COUNT(1) FROM lca_postings WHERE status = $1", "select lca_postings"},
		{"INSERT INTO lca_postings (\n\tid, job_title) VALUES ($1, $2)", "insert lca_postings"},
		{"UPDATE lca_postings SET status = $2 WHERE id = $1 RETURNING id", "update lca_postings"},
		{"  ", "query"},
		{"BEGIN", "begin"},
	}
	for _, tc := range cases {
		if got := statementLabel(tc.query); got != tc.want {
			t.Errorf("statementLabel(%q) = %q, want %q", tc.query, got, tc.want)
		}
	}
}

func TestWrapErr(t *testing.T) {
	if wrapErr("select lca_postings", nil) != nil {
		t.Fatal("nil error must stay nil")
	}

	err := wrapErr("select lca_postings", pgx.ErrNoRows)
	if !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("ErrNoRows lost: %v", err)
	}
	if err.Error() != "postgres select lca_postings: no rows in result set" {
		t.Fatalf("unexpected message: %q", err.Error())
	}

	err = wrapErr("insert lca_postings", &pgconn.PgError{Code: uniqueViolation, ConstraintName: "lca_postings_blockchain_hash_key"})
	if !errors.Is(err, database.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.ConstraintName != "lca_postings_blockchain_hash_key" {
		t.Fatalf("pg error lost: %v", err)
	}

	err = wrapErr("insert lca_postings", &pgconn.PgError{Code: "23502"})
	if errors.Is(err, database.ErrDuplicate) {
		t.Fatal("not-null violation tagged as duplicate")
	}
}
