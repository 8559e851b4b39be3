package app

import (
	"context"
	"fmt"
	"strings"

	"portal-api/internal/config"
	"portal-api/internal/delivery/http/handler"
	"portal-api/internal/delivery/http/middleware"
	"portal-api/internal/delivery/http/routes"
	"portal-api/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// failedPinger reports the startup connection error on every health check.
type failedPinger struct{ err error }

func (p failedPinger) Ping(context.Context) error { return p.err }

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName:   c.Config.App.AppName,
		BodyLimit: 10 * 1024 * 1024,
	})

	registerGlobalMiddleware(f, c.Logger)
	registry(c).Register(f)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
}

func registry(c *Container) *routes.Registry {
	var db interface {
		Ping(ctx context.Context) error
	}
	switch {
	case c.DB != nil:
		db = c.DB
	case c.DBErr != nil:
		db = failedPinger{err: c.DBErr}
	}

	auth := middleware.NewAuthMiddleware(c.JWT)
	limiter := middleware.NewRateLimitMiddleware(c.Config.Copilot.RatePerSecond, c.Config.Copilot.RateBurst)

	return &routes.Registry{
		Health:         handler.NewHealthHandler(db),
		LCA:            handler.NewLCAHandler(c.LCAQuery, c.LCACommand, auth),
		Copilot:        handler.NewCopilotHandler(c.Copilot),
		Admin:          handler.NewAdminHandler(c.AdminAuth),
		WS:             ws.NewHandler(c.Hub, c.Logger),
		CopilotLimiter: limiter.Middleware(),
	}
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
