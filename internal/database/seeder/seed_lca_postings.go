package seeder

import (
	"context"
	"fmt"

	"portal-api/internal/database"
	"portal-api/internal/domain/lca"
)

// LCAPostingsSeeder loads the built-in fallback postings into lca_postings so a
// fresh database serves the same listing as demo mode.
type LCAPostingsSeeder struct{}

func (LCAPostingsSeeder) Name() string { return "lca_postings" }

func (LCAPostingsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "lca_postings",
		"id", "job_title", "lca_number", "visa_type", "employer_name", "status", "blockchain_hash", "created_at",
	); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, p := range lca.FallbackPostings() {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO lca_postings (
				id, job_title, lca_number, visa_type, employer_name,
				wage_rate_from, wage_rate_to, wage_unit, prevailing_wage,
				worksite_address, worksite_city, worksite_state, worksite_postal_code,
				full_time, begin_date, end_date, posting_start_date, posting_end_date,
				status, blockchain_hash, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
			ON CONFLICT (blockchain_hash) DO NOTHING`,
			p.ID, p.JobTitle, p.LCANumber, string(p.VisaType), p.EmployerName,
			p.WageRateFrom, p.WageRateTo, p.WageUnit, p.PrevailingWage,
			p.WorksiteAddress, p.WorksiteCity, p.WorksiteState, p.WorksitePostalCode,
			p.FullTime, p.BeginDate, p.EndDate, p.PostingStartDate, p.PostingEndDate,
			string(p.Status), p.BlockchainHash, p.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert %s: %w", p.LCANumber, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
