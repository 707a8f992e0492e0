package codegap

import (
	"codegap/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler exposes gap checks over HTTP.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the codes routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/codes")
	group.Get("/reference", h.HandleReference)
	group.Get("/missing", h.HandleMissing)
	group.Post("/refresh", h.HandleRefresh)
}

// HandleReference returns the Reference Code Set and its size.
func (h *Handler) HandleReference(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	codes, err := h.service.Reference(c.UserContext())
	if err != nil {
		l.Error("Reference load failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"codes": codes,
		"count": codes.Len(),
	})
}

// HandleMissing runs a full check and returns the report.
func (h *Handler) HandleMissing(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting code gap check")

	report, err := h.service.Check(c.UserContext())
	if err != nil {
		l.Error("Code gap check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Code gap check completed",
		zap.Int("rows", report.Rows),
		zap.Int("missing", report.Missing.Len()))

	return c.JSON(report)
}

// HandleRefresh drops the cached reference set.
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	if !h.service.Invalidate() {
		return c.JSON(fiber.Map{"status": "uncached"})
	}
	logger.WithRayID(h.service.logger, c).Info("Reference cache invalidated")
	return c.JSON(fiber.Map{"status": "invalidated"})
}
