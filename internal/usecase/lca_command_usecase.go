package usecase

import (
	"context"
	"errors"
	"time"

	"portal-api/internal/domain/lca"
	"portal-api/internal/events"
	"portal-api/internal/infrastructure/storage"
	applog "portal-api/internal/logger"
	"portal-api/internal/repository"
	"portal-api/internal/telemetry"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type LCASubmission struct {
	Record   lca.Record
	Document *storage.Document
}

type LCASubmitResult struct {
	Success        bool        `json:"success"`
	Posting        lca.Posting `json:"posting"`
	BlockchainHash string      `json:"blockchainHash"`
}

type LCACommandUsecase interface {
	Submit(ctx context.Context, in LCASubmission) (LCASubmitResult, error)
	UpdateStatus(ctx context.Context, id, status string) (lca.Posting, error)
}

type PostingArchiver interface {
	ArchivePosting(ctx context.Context, p lca.Posting) error
	ArchiveDocument(ctx context.Context, postingID string, doc storage.Document) (string, error)
}

type LCACommand struct {
	repo    repository.LCAPostingRepository
	cache   ListCache
	events  events.Sink
	archive PostingArchiver
	logger  *zap.Logger

	now   func() time.Time
	newID func() string
}

func NewLCACommandUsecase(repo repository.LCAPostingRepository, cache ListCache, sink events.Sink, archive PostingArchiver, logger *zap.Logger) *LCACommand {
	logger = applog.OrNop(logger)
	return &LCACommand{
		repo:    repo,
		cache:   cache,
		events:  sink,
		archive: archive,
		logger:  logger,
		now:     time.Now,
		newID:   func() string { return uuid.NewString() },
	}
}

// Submit always answers with success. A failed insert is logged and the
// caller still receives the posting that would have been stored, carrying the
// same hash.
func (u *LCACommand) Submit(ctx context.Context, in LCASubmission) (LCASubmitResult, error) {
	ctx, span := telemetry.GetTracer(telemetry.ServiceName).Start(ctx, "lca.Submit")
	defer span.End()

	rec := in.Record
	rec.Status = lca.StatusPending

	now := u.now().UTC()
	hash, err := lca.ContentHash(rec, now)
	if err != nil {
		return LCASubmitResult{}, ErrInternal
	}

	p := lca.Posting{
		ID:             u.newID(),
		Record:         rec,
		BlockchainHash: hash,
		CreatedAt:      now,
	}

	persisted := false
	if u.repo != nil {
		if err := u.repo.InsertPosting(ctx, p); err != nil {
			u.logger.Warn("[LCA] insert failed, returning unsaved posting",
				zap.String("id", p.ID), zap.String("hash", hash),
				zap.Bool("duplicate_hash", errors.Is(err, repository.ErrDuplicateHash)), zap.Error(err))
			span.RecordError(err)
		} else {
			persisted = true
		}
	}
	span.SetAttributes(telemetry.Bool("persisted", persisted))

	if u.archive != nil {
		if err := u.archive.ArchivePosting(ctx, p); err != nil {
			u.logger.Warn("[LCA] archive failed", zap.String("id", p.ID), zap.Error(err))
		}
		if in.Document != nil {
			if _, err := u.archive.ArchiveDocument(ctx, p.ID, *in.Document); err != nil {
				u.logger.Warn("[LCA] document archive failed", zap.String("id", p.ID), zap.Error(err))
			}
		}
	}

	if persisted {
		u.invalidateLists(ctx)
		u.publish(ctx, lca.NewEvent(lca.EventPostingCreated, p, now))
	}

	return LCASubmitResult{Success: true, Posting: p, BlockchainHash: hash}, nil
}

func (u *LCACommand) UpdateStatus(ctx context.Context, id, status string) (lca.Posting, error) {
	st, ok := lca.ParseStatus(status)
	if !ok {
		return lca.Posting{}, ErrInvalidInput
	}
	if u.repo == nil {
		return lca.Posting{}, ErrUnavailable
	}

	p, err := u.repo.UpdatePostingStatus(ctx, id, st)
	if err != nil {
		if errors.Is(err, repository.ErrPostingNotFound) {
			return lca.Posting{}, ErrNotFound
		}
		u.logger.Error("[LCA] status update failed", zap.String("id", id), zap.Error(err))
		return lca.Posting{}, ErrInternal
	}

	u.invalidateLists(ctx)
	u.publish(ctx, lca.NewEvent(lca.EventPostingStatusChanged, p, u.now()))
	return p, nil
}

func (u *LCACommand) invalidateLists(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.DeleteByPattern(ctx, LCAListCachePattern); err != nil {
		u.logger.Warn("[LCA] cache invalidation failed", zap.Error(err))
	}
}

func (u *LCACommand) publish(ctx context.Context, evt lca.Event) {
	if u.events == nil {
		return
	}
	if err := u.events.PublishPostingEvent(ctx, evt); err != nil {
		u.logger.Warn("[LCA] event publish failed",
			zap.String("type", string(evt.Type)), zap.String("id", evt.PostingID), zap.Error(err))
	}
}
