package handler

import (
	"errors"

	"portal-api/internal/delivery/http/dto"
	"portal-api/internal/delivery/http/middleware"
	"portal-api/internal/pkg/response"
	"portal-api/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AdminHandler struct {
	uc usecase.AdminAuthUsecase
}

func NewAdminHandler(uc usecase.AdminAuthUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

func (h *AdminHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/token", h.Token)
}

func (h *AdminHandler) Token(c fiber.Ctx) error {
	var req dto.AdminTokenRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	tok, err := h.uc.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "Username and password are required", err)
		case errors.Is(err, usecase.ErrUnauthorized):
			return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid credentials", err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
		}
	}
	return response.JSON(c, fiber.StatusOK, tok)
}
