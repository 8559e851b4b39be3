package handler

import (
	"context"
	"time"

	"portal-api/internal/delivery/http/dto"
	"portal-api/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db pinger
}

// NewHealthHandler reports database reachability. A nil db reports
// "disabled".
func NewHealthHandler(db pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	out := dto.HealthResponse{Status: "ok", Database: dto.DatabaseDisabled}
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		out.Database = dto.DatabaseUp
		if err := h.db.Ping(ctx); err != nil {
			out.Database = dto.DatabaseDown
		}
	}
	return response.JSON(c, fiber.StatusOK, out)
}
