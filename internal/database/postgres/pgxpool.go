package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"portal-api/internal/config"
	"portal-api/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

var ErrNilDB = errors.New("nil db")

// SQLSTATE unique_violation.
const uniqueViolation = "23505"

type Pool struct {
	pool  *pgxpool.Pool
	sqlDB *sql.DB
}

func DSN(cfg config.DatabaseConfig) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		strings.TrimSpace(cfg.DBHost),
		strings.TrimSpace(cfg.DBPort),
		strings.TrimSpace(cfg.DBUser),
		cfg.DBPassword,
		strings.TrimSpace(cfg.DBName),
		strings.TrimSpace(cfg.DBSSLMode),
	)
}

func Connect(ctx context.Context, cfg config.DatabaseConfig) (database.DB, error) {
	pcfg, err := pgxpool.ParseConfig(DSN(cfg))
	if err != nil {
		return nil, err
	}

	if cfg.ConnectTimeout > 0 {
		pcfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	}
	if cfg.PoolMaxConns > 0 {
		pcfg.MaxConns = cfg.PoolMaxConns
	}
	if cfg.PoolMinConns > 0 {
		pcfg.MinConns = cfg.PoolMinConns
	}
	if cfg.PoolMaxConnLifetime > 0 {
		pcfg.MaxConnLifetime = cfg.PoolMaxConnLifetime
	}
	if cfg.PoolMaxConnIdleTime > 0 {
		pcfg.MaxConnIdleTime = cfg.PoolMaxConnIdleTime
	}
	if cfg.PoolHealthCheckPeriod > 0 {
		pcfg.HealthCheckPeriod = cfg.PoolHealthCheckPeriod
	}

	p, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, err
	}

	pingCtx := ctx
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
	}
	if err := p.Ping(pingCtx); err != nil {
		p.Close()
		return nil, err
	}

	return &Pool{pool: p, sqlDB: stdlib.OpenDBFromPool(p)}, nil
}

func (p *Pool) ok() bool {
	return p != nil && p.pool != nil
}

func (p *Pool) Ping(ctx context.Context) error {
	if !p.ok() {
		return ErrNilDB
	}
	return p.pool.Ping(ctx)
}

func (p *Pool) Close() error {
	if p == nil {
		return nil
	}
	if p.sqlDB != nil {
		_ = p.sqlDB.Close()
	}
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}

func (p *Pool) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	if !p.ok() {
		return 0, ErrNilDB
	}
	return execOn(ctx, p.pool, query, args)
}

func (p *Pool) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	if !p.ok() {
		return nil, ErrNilDB
	}
	return queryOn(ctx, p.pool, query, args)
}

func (p *Pool) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	if !p.ok() {
		return errRow{err: ErrNilDB}
	}
	return labelledRow{row: p.pool.QueryRow(ctx, query, args...), label: statementLabel(query)}
}

func (p *Pool) Begin(ctx context.Context) (database.Tx, error) {
	if !p.ok() {
		return nil, ErrNilDB
	}
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("postgres begin: %w", err)
	}
	return pgxTx{tx: tx}, nil
}

func (p *Pool) SQLDB() *sql.DB {
	if p == nil {
		return nil
	}
	return p.sqlDB
}

// querier is the part of pgxpool.Pool and pgx.Tx the adapters share.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func execOn(ctx context.Context, q querier, query string, args []any) (int64, error) {
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, wrapErr(statementLabel(query), err)
	}
	return tag.RowsAffected(), nil
}

func queryOn(ctx context.Context, q querier, query string, args []any) (database.Rows, error) {
	r, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(statementLabel(query), err)
	}
	return pgxRows{rows: r, label: statementLabel(query)}, nil
}

type pgxTx struct {
	tx pgx.Tx
}

func (t pgxTx) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	return execOn(ctx, t.tx, query, args)
}

func (t pgxTx) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	return queryOn(ctx, t.tx, query, args)
}

func (t pgxTx) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return labelledRow{row: t.tx.QueryRow(ctx, query, args...), label: statementLabel(query)}
}

func (t pgxTx) Commit(ctx context.Context) error {
	return wrapErr("commit", t.tx.Commit(ctx))
}

// Rollback after a successful Commit is a no-op, so callers can defer it.
func (t pgxTx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if errors.Is(err, pgx.ErrTxClosed) {
		return nil
	}
	return wrapErr("rollback", err)
}

type pgxRows struct {
	rows  pgx.Rows
	label string
}

func (r pgxRows) Close()     { r.rows.Close() }
func (r pgxRows) Next() bool { return r.rows.Next() }
func (r pgxRows) Scan(dest ...any) error {
	return wrapErr(r.label, r.rows.Scan(dest...))
}
func (r pgxRows) Err() error { return wrapErr(r.label, r.rows.Err()) }

type labelledRow struct {
	row   pgx.Row
	label string
}

// Scan keeps pgx.ErrNoRows reachable through errors.Is.
func (r labelledRow) Scan(dest ...any) error {
	return wrapErr(r.label, r.row.Scan(dest...))
}

type errRow struct {
	err error
}

func (r errRow) Scan(_ ...any) error {
	return r.err
}

// wrapErr prefixes err with the statement label and tags unique violations
// with database.ErrDuplicate.
func wrapErr(label string, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("postgres %s: %w: %w", label, database.ErrDuplicate, err)
	}
	return fmt.Errorf("postgres %s: %w", label, err)
}

// statementLabel names a statement by its verb and first table, for example
// "insert lca_postings".
func statementLabel(query string) string {
	fields := strings.Fields(strings.ToLower(query))
	if len(fields) == 0 {
		return "query"
	}
	verb := fields[0]
	after := map[string]string{"select": "from", "insert": "into", "delete": "from", "update": "update"}[verb]
	if after == "" {
		return verb
	}
	for i, f := range fields {
		if f == after && i+1 < len(fields) {
			return verb + " " + strings.Trim(fields[i+1], "(),;")
		}
	}
	return verb
}
