package handler

import (
	"errors"
	"math"
	"mime/multipart"
	"strconv"
	"strings"

	"portal-api/internal/delivery/http/dto"
	"portal-api/internal/delivery/http/middleware"
	"portal-api/internal/domain/lca"
	"portal-api/internal/infrastructure/storage"
	"portal-api/internal/pkg/response"
	"portal-api/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type LCAHandler struct {
	query   usecase.LCAQueryUsecase
	command usecase.LCACommandUsecase
	auth    *middleware.AuthMiddleware
}

func NewLCAHandler(query usecase.LCAQueryUsecase, command usecase.LCACommandUsecase, auth *middleware.AuthMiddleware) *LCAHandler {
	return &LCAHandler{query: query, command: command, auth: auth}
}

func (h *LCAHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/lca", h.auth.ResolveAdmin(), h.List)
	r.Post("/lca", h.Create)
	r.Get("/lca/:id", h.auth.ResolveAdmin(), h.Get)
	r.Patch("/lca/:id/status", h.auth.RequireAdmin(), h.UpdateStatus)
}

func (h *LCAHandler) List(c fiber.Ctx) error {
	page, err := parseQueryIntStrict(c, "page", lca.DefaultPage)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid page", err)
	}
	limit, err := parseQueryIntStrict(c, "limit", lca.DefaultLimit)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", err)
	}

	res := h.query.ListPostings(c.Context(), usecase.LCAListParams{
		Status:   c.Query("status"),
		VisaType: c.Query("visaType"),
		Search:   c.Query("search"),
		Page:     page,
		Limit:    limit,
		Admin:    middleware.IsAdmin(c),
	})
	return response.JSON(c, fiber.StatusOK, res)
}

func (h *LCAHandler) Get(c fiber.Ctx) error {
	p, err := h.query.GetPosting(c.Context(), c.Params("id"), middleware.IsAdmin(c))
	if err != nil {
		return mapLCAUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, p)
}

func (h *LCAHandler) Create(c fiber.Ctx) error {
	ct := strings.ToLower(c.Get(fiber.HeaderContentType))
	if !strings.HasPrefix(ct, fiber.MIMEMultipartForm) && !strings.HasPrefix(ct, fiber.MIMEApplicationForm) {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to create LCA posting",
			errors.New("unsupported content type "+ct))
	}

	in := usecase.LCASubmission{Record: recordFromForm(c)}

	if fh, err := c.FormFile("document"); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to read document", err)
		}
		defer f.Close()
		in.Document = documentFromHeader(fh, f)
	}

	res, err := h.command.Submit(c.Context(), in)
	if err != nil {
		return mapLCAUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, res)
}

func (h *LCAHandler) UpdateStatus(c fiber.Ctx) error {
	var req dto.LCAStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	p, err := h.command.UpdateStatus(c.Context(), c.Params("id"), req.Status)
	if err != nil {
		return mapLCAUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, p)
}

func recordFromForm(c fiber.Ctx) lca.Record {
	form := func(key string) string { return strings.TrimSpace(c.FormValue(key)) }

	return lca.Record{
		JobTitle:           form("jobTitle"),
		LCANumber:          form("lcaNumber"),
		VisaType:           lca.VisaType(form("visaType")),
		EmployerName:       form("employerName"),
		WageRateFrom:       parseFloatLoose(form("wageRateFrom")),
		WageRateTo:         parseOptionalFloat(form("wageRateTo")),
		WageUnit:           form("wageUnit"),
		PrevailingWage:     parseFloatLoose(form("prevailingWage")),
		WorksiteAddress:    form("worksiteAddress"),
		WorksiteCity:       form("worksiteCity"),
		WorksiteState:      form("worksiteState"),
		WorksitePostalCode: form("worksitePostalCode"),
		FullTime:           parseBoolLoose(form("fullTime")),
		BeginDate:          form("beginDate"),
		EndDate:            form("endDate"),
		PostingStartDate:   form("postingStartDate"),
		PostingEndDate:     form("postingEndDate"),
	}
}

func documentFromHeader(fh *multipart.FileHeader, f multipart.File) *storage.Document {
	return &storage.Document{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Size:        fh.Size,
		Body:        f,
	}
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(s)
}

// parseFloatLoose coerces unparsable input to zero.
func parseFloatLoose(s string) float64 {
	v, ok := parseFiniteFloat(s)
	if !ok {
		return 0
	}
	return v
}

func parseOptionalFloat(s string) *float64 {
	v, ok := parseFiniteFloat(s)
	if !ok {
		return nil
	}
	return &v
}

// parseFiniteFloat rejects NaN and the infinities, which JSON cannot carry.
func parseFiniteFloat(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func parseBoolLoose(s string) bool {
	switch strings.ToLower(s) {
	case "true", "on", "1", "yes":
		return true
	default:
		return false
	}
}

func mapLCAUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid status", err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "LCA posting not found", err)
	case errors.Is(err, usecase.ErrUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
