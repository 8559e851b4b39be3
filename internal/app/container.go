package app

import (
	"context"
	"time"

	"portal-api/internal/config"
	"portal-api/internal/copilot"
	"portal-api/internal/database"
	"portal-api/internal/database/migration"
	dbpostgres "portal-api/internal/database/postgres"
	"portal-api/internal/events"
	"portal-api/internal/infrastructure/cache"
	"portal-api/internal/infrastructure/storage"
	applog "portal-api/internal/logger"
	"portal-api/internal/pkg/jwt"
	"portal-api/internal/repository"
	"portal-api/internal/usecase"
	"portal-api/internal/ws"

	"go.uber.org/zap"
)

// Container owns every long-lived dependency. Optional backends that are not
// configured, or not reachable at startup, are left nil and the service keeps
// running without them.
type Container struct {
	Config config.Config
	Logger *zap.Logger

	DB      database.DB
	DBErr   error
	Cache   *cache.Redis
	NATS    *events.NATSPublisher
	Hub     *ws.Hub
	Archive *storage.S3Archive
	JWT     *jwt.HMACService

	LCAQuery   *usecase.LCAQuery
	LCACommand *usecase.LCACommand
	Copilot    *usecase.Copilot
	AdminAuth  *usecase.AdminAuth
}

func NewContainer(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Container, error) {
	logger = applog.OrNop(logger)
	c := &Container{Config: cfg, Logger: logger}

	if cfg.Database.Enabled() {
		connCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		db, err := dbpostgres.Connect(connCtx, cfg.Database)
		cancel()
		if err != nil {
			logger.Error("[App] database unreachable, serving fallback postings", zap.Error(err))
			c.DBErr = err
		} else {
			c.DB = db
			if cfg.Database.AutoMigrate {
				if err := (migration.Runner{}).Run(ctx, db.SQLDB()); err != nil {
					_ = db.Close()
					return nil, err
				}
				logger.Info("[App] migrations applied")
			}
		}
	} else {
		logger.Info("[App] database not configured, serving fallback postings")
	}

	c.Cache = cache.NewRedis(cfg.Redis, logger)

	if cfg.NATS.URL != "" {
		pub, err := events.NewNATSPublisher(cfg.NATS, logger)
		if err != nil {
			logger.Warn("[App] NATS unavailable, events disabled", zap.Error(err))
		} else {
			c.NATS = pub
		}
	}

	if cfg.S3.Enabled() {
		arch, err := storage.NewS3Archive(ctx, cfg.S3, logger)
		if err != nil {
			logger.Warn("[App] S3 archive disabled", zap.Error(err))
		} else {
			c.Archive = arch
		}
	}

	c.Hub = ws.NewHub(logger)
	c.JWT = jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiresIn)

	lib, err := copilot.Load()
	if err != nil {
		_ = c.Close()
		return nil, err
	}

	var repo repository.LCAPostingRepository
	if c.DB != nil {
		repo = repository.NewPostgresLCAPostingRepository(c.DB)
	}

	sink := events.Fanout{c.Hub}
	if c.NATS != nil {
		sink = append(sink, c.NATS)
	}

	var archive usecase.PostingArchiver
	if c.Archive != nil {
		archive = c.Archive
	}

	c.LCAQuery = usecase.NewLCAQueryUsecase(repo, c.Cache, logger)
	c.LCACommand = usecase.NewLCACommandUsecase(repo, c.Cache, sink, archive, logger)
	c.Copilot = usecase.NewCopilotUsecase(lib, logger)
	c.AdminAuth = usecase.NewAdminAuthUsecase(cfg.Admin.Username, cfg.Admin.PasswordHash, c.JWT)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	c.NATS.Close()
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
