package handler

import (
	"errors"
	"strings"

	"portal-api/internal/delivery/http/dto"
	"portal-api/internal/delivery/http/middleware"
	"portal-api/internal/pkg/response"
	"portal-api/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CopilotHandler struct {
	uc usecase.CopilotUsecase
}

func NewCopilotHandler(uc usecase.CopilotUsecase) *CopilotHandler {
	return &CopilotHandler{uc: uc}
}

func (h *CopilotHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/ai-query", h.AIQuery)
	r.Post("/cloud-query", h.CloudQuery)
	r.Post("/industry-query", h.IndustryQuery)
}

func (h *CopilotHandler) AIQuery(c fiber.Ctx) error {
	req, err := bindCopilotRequest(c)
	if err != nil {
		return err
	}
	ans, err := h.uc.AskAI(c.Context(), req.Query)
	if err != nil {
		return mapCopilotUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, ans)
}

func (h *CopilotHandler) CloudQuery(c fiber.Ctx) error {
	req, err := bindCopilotRequest(c)
	if err != nil {
		return err
	}
	ans, err := h.uc.AskCloud(c.Context(), req.Query)
	if err != nil {
		return mapCopilotUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, ans)
}

func (h *CopilotHandler) IndustryQuery(c fiber.Ctx) error {
	req, err := bindCopilotRequest(c)
	if err != nil {
		return err
	}
	ans, err := h.uc.AskIndustry(c.Context(), req.Query, req.Industry)
	if err != nil {
		return mapCopilotUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, ans)
}

// bindCopilotRequest always decodes the body as JSON, whatever the
// Content-Type says. An unreadable body is a server failure (500); only a
// missing query is the caller's fault.
func bindCopilotRequest(c fiber.Ctx) (dto.CopilotQueryRequest, error) {
	var req dto.CopilotQueryRequest
	if err := c.App().Config().JSONDecoder(c.Body(), &req); err != nil {
		return req, middleware.NewAppError(fiber.StatusInternalServerError, "Failed to process query", err)
	}
	if strings.TrimSpace(req.Query) == "" {
		return req, middleware.NewAppError(fiber.StatusBadRequest, "Query is required", nil)
	}
	return req, nil
}

func mapCopilotUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrQueryRequired):
		return middleware.NewAppError(fiber.StatusBadRequest, "Query is required", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
