package seeder

import (
	"context"
	"fmt"
	"time"

	"portal-api/internal/database"
	applog "portal-api/internal/logger"

	"go.uber.org/zap"
)

type Runner struct {
	Seeders []Seeder
	Logger  *zap.Logger
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	log := r.Logger
	log = applog.OrNop(log)
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		start := time.Now()
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		log.Info("[Seeder] done", zap.String("seeder", s.Name()), zap.Duration("took", time.Since(start)))
	}
	return nil
}
