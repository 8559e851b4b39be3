package usecase

import (
	"context"
	"errors"
	"strings"

	"portal-api/internal/domain/lca"
	applog "portal-api/internal/logger"
	"portal-api/internal/repository"
	"portal-api/internal/telemetry"

	"go.uber.org/zap"
)

type LCAListParams struct {
	Status   string
	VisaType string
	Search   string
	Page     int
	Limit    int
	Admin    bool
}

type LCAListResult struct {
	Postings   []lca.Posting  `json:"postings"`
	Pagination lca.Pagination `json:"pagination"`
}

type LCAQueryUsecase interface {
	ListPostings(ctx context.Context, params LCAListParams) LCAListResult
	GetPosting(ctx context.Context, id string, admin bool) (lca.Posting, error)
}

// LCAQuery reads postings from the repository. Any live-read failure is
// logged and answered from the static fallback set instead; callers never see
// it. A nil repository means demo mode and always serves the fallback set.
type LCAQuery struct {
	repo     repository.LCAPostingRepository
	cache    ListCache
	logger   *zap.Logger
	fallback func() []lca.Posting
}

func NewLCAQueryUsecase(repo repository.LCAPostingRepository, cache ListCache, logger *zap.Logger) *LCAQuery {
	logger = applog.OrNop(logger)
	return &LCAQuery{repo: repo, cache: cache, logger: logger, fallback: lca.FallbackPostings}
}

func (u *LCAQuery) ListPostings(ctx context.Context, params LCAListParams) LCAListResult {
	page, limit := lca.NormalizePage(params.Page, params.Limit)
	f := lca.Filter{
		Status:        lca.Status(params.Status),
		VisaType:      lca.VisaType(params.VisaType),
		Search:        params.Search,
		CertifiedOnly: !params.Admin,
	}.Normalized()

	ctx, span := telemetry.GetTracer(telemetry.ServiceName).Start(ctx, "lca.ListPostings")
	defer span.End()
	span.SetAttributes(
		telemetry.Int("page", page),
		telemetry.Int("limit", limit),
		telemetry.Bool("admin", params.Admin),
	)

	if u.repo != nil {
		cacheKey := LCAListCacheKey(f, page, limit)
		if u.cache != nil {
			var cached LCAListResult
			hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
			if err == nil && hit {
				u.logger.Debug("[LCA] Cache HIT", zap.String("key", cacheKey))
				span.SetAttributes(telemetry.String("source", "cache"))
				return cached
			}
			if isCorruptCacheEntry(err) {
				u.logger.Warn("[LCA] dropping unreadable cache entry", zap.String("key", cacheKey), zap.Error(err))
				_ = u.cache.Delete(ctx, cacheKey)
			}
		}

		items, total, err := u.repo.ListPostings(ctx, f, limit, lca.Offset(page, limit))
		if err == nil {
			out := LCAListResult{Postings: items, Pagination: lca.NewPagination(page, limit, total)}
			if out.Postings == nil {
				out.Postings = []lca.Posting{}
			}
			if u.cache != nil {
				if err := u.cache.SetJSON(ctx, cacheKey, out, 0); err == nil {
					u.logger.Debug("[LCA] Cache SET", zap.String("key", cacheKey))
				}
			}
			span.SetAttributes(telemetry.String("source", "database"))
			return out
		}
		u.logger.Warn("[LCA] live read failed, serving fallback postings", zap.Error(err))
		span.RecordError(err)
	}

	span.SetAttributes(telemetry.String("source", "fallback"))
	items, pg := lca.Paginate(lca.Apply(u.fallback(), f), page, limit)
	return LCAListResult{Postings: items, Pagination: pg}
}

func (u *LCAQuery) GetPosting(ctx context.Context, id string, admin bool) (lca.Posting, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return lca.Posting{}, ErrNotFound
	}

	ctx, span := telemetry.GetTracer(telemetry.ServiceName).Start(ctx, "lca.GetPosting")
	defer span.End()

	var (
		p     lca.Posting
		found bool
	)
	if u.repo != nil {
		got, err := u.repo.GetPosting(ctx, id)
		switch {
		case err == nil:
			p, found = got, true
		case errors.Is(err, repository.ErrPostingNotFound):
			return lca.Posting{}, ErrNotFound
		default:
			u.logger.Warn("[LCA] live read failed, serving fallback posting",
				zap.String("id", id), zap.Error(err))
			span.RecordError(err)
		}
	}
	if !found {
		p, found = u.findFallback(id)
	}
	if !found {
		return lca.Posting{}, ErrNotFound
	}
	if !admin && p.Status != lca.StatusCertified {
		return lca.Posting{}, ErrNotFound
	}
	return p, nil
}

func (u *LCAQuery) findFallback(id string) (lca.Posting, bool) {
	for _, p := range u.fallback() {
		if p.ID == id {
			return p, true
		}
	}
	return lca.Posting{}, false
}
