package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"portal-api/internal/database"
	"portal-api/internal/domain/lca"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrPostingNotFound = errors.New("lca posting not found")
	ErrDuplicateHash   = errors.New("lca posting with this blockchain hash already exists")
)

type LCAPostingRepository interface {
	ListPostings(ctx context.Context, f lca.Filter, limit, offset int) ([]lca.Posting, int, error)
	GetPosting(ctx context.Context, id string) (lca.Posting, error)
	InsertPosting(ctx context.Context, p lca.Posting) error
	UpdatePostingStatus(ctx context.Context, id string, status lca.Status) (lca.Posting, error)
}

const postingColumns = `id::text, job_title, lca_number, visa_type, employer_name,
	wage_rate_from, wage_rate_to, wage_unit, prevailing_wage,
	worksite_address, worksite_city, worksite_state, worksite_postal_code,
	full_time, begin_date, end_date, posting_start_date, posting_end_date,
	status, blockchain_hash, created_at`

type PostgresLCAPostingRepository struct {
	db database.DB
}

func NewPostgresLCAPostingRepository(db database.DB) *PostgresLCAPostingRepository {
	return &PostgresLCAPostingRepository{db: db}
}

// buildPostingWhere renders lca.Filter as SQL. It must agree with
// lca.Filter.Matches, which the fallback path uses.
func buildPostingWhere(f lca.Filter) (string, []any) {
	f = f.Normalized()

	var conds []string
	var args []any
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.CertifiedOnly {
		add("status = $%d", string(lca.StatusCertified))
	}
	if f.Status != "" {
		add("status = $%d", string(f.Status))
	}
	if f.VisaType != "" {
		add("visa_type = $%d", string(f.VisaType))
	}
	if f.Search != "" {
		args = append(args, "%"+escapeLike(f.Search)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(job_title ILIKE $%[1]d OR employer_name ILIKE $%[1]d OR lca_number ILIKE $%[1]d OR worksite_city ILIKE $%[1]d)",
			n,
		))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func (r *PostgresLCAPostingRepository) ListPostings(ctx context.Context, f lca.Filter, limit, offset int) ([]lca.Posting, int, error) {
	if limit <= 0 {
		limit = lca.DefaultLimit
	}
	if limit > lca.MaxLimit {
		limit = lca.MaxLimit
	}
	if offset < 0 {
		offset = 0
	}

	where, args := buildPostingWhere(f)

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM lca_postings`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	n := len(args)
	args = append(args, limit, offset)
	rows, err := r.db.Query(ctx,
		`SELECT `+postingColumns+` FROM lca_postings`+where+
			fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, n+1, n+2),
		args...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]lca.Posting, 0, limit)
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresLCAPostingRepository) GetPosting(ctx context.Context, id string) (lca.Posting, error) {
	pid, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return lca.Posting{}, ErrPostingNotFound
	}

	row := r.db.QueryRow(ctx, `SELECT `+postingColumns+` FROM lca_postings WHERE id = $1`, pid)
	p, err := scanPosting(row)
	if err != nil {
		if isNoRows(err) {
			return lca.Posting{}, ErrPostingNotFound
		}
		return lca.Posting{}, err
	}
	return p, nil
}

func (r *PostgresLCAPostingRepository) InsertPosting(ctx context.Context, p lca.Posting) error {
	pid, err := uuid.Parse(p.ID)
	if err != nil {
		return fmt.Errorf("invalid posting id: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO lca_postings (
			id, job_title, lca_number, visa_type, employer_name,
			wage_rate_from, wage_rate_to, wage_unit, prevailing_wage,
			worksite_address, worksite_city, worksite_state, worksite_postal_code,
			full_time, begin_date, end_date, posting_start_date, posting_end_date,
			status, blockchain_hash, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`,
		pid, p.JobTitle, p.LCANumber, string(p.VisaType), p.EmployerName,
		p.WageRateFrom, p.WageRateTo, p.WageUnit, p.PrevailingWage,
		p.WorksiteAddress, p.WorksiteCity, p.WorksiteState, p.WorksitePostalCode,
		p.FullTime, p.BeginDate, p.EndDate, p.PostingStartDate, p.PostingEndDate,
		string(p.Status), p.BlockchainHash, p.CreatedAt,
	)
	if errors.Is(err, database.ErrDuplicate) {
		return fmt.Errorf("%w: %w", ErrDuplicateHash, err)
	}
	return err
}

func (r *PostgresLCAPostingRepository) UpdatePostingStatus(ctx context.Context, id string, status lca.Status) (lca.Posting, error) {
	pid, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return lca.Posting{}, ErrPostingNotFound
	}

	row := r.db.QueryRow(ctx,
		`UPDATE lca_postings SET status = $2 WHERE id = $1 RETURNING `+postingColumns,
		pid, string(status),
	)
	p, err := scanPosting(row)
	if err != nil {
		if isNoRows(err) {
			return lca.Posting{}, ErrPostingNotFound
		}
		return lca.Posting{}, err
	}
	return p, nil
}

func scanPosting(row database.Row) (lca.Posting, error) {
	var (
		p        lca.Posting
		visaType string
		status   string
	)
	err := row.Scan(
		&p.ID, &p.JobTitle, &p.LCANumber, &visaType, &p.EmployerName,
		&p.WageRateFrom, &p.WageRateTo, &p.WageUnit, &p.PrevailingWage,
		&p.WorksiteAddress, &p.WorksiteCity, &p.WorksiteState, &p.WorksitePostalCode,
		&p.FullTime, &p.BeginDate, &p.EndDate, &p.PostingStartDate, &p.PostingEndDate,
		&status, &p.BlockchainHash, &p.CreatedAt,
	)
	if err != nil {
		return lca.Posting{}, err
	}
	p.VisaType = lca.VisaType(visaType)
	p.Status = lca.Status(status)
	p.CreatedAt = p.CreatedAt.UTC()
	return p, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}
