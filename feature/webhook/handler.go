package webhook

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"multivende-sync/core/logger"
)

// Loader loads one sale by marketplace id into the local mirror.
type Loader interface {
	LoadCheckout(ctx context.Context, id string) error
}

// Handler handles marketplace webhook notifications.
type Handler struct {
	loader Loader
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(loader Loader, logger *zap.Logger) *Handler {
	return &Handler{loader: loader, logger: logger}
}

// RegisterRoutes registers the webhook routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/load-checkout", h.HandleLoadCheckout)
	app.Get("/health", h.HandleHealth)
}

// HandleLoadCheckout loads the notified sale synchronously. The caller
// always gets a 200 "received" reply; the marketplace retries on anything
// else and a failed load is cheaper to replay from the next batch sweep.
func (h *Handler) HandleLoadCheckout(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var body struct {
		ID string `json:"ID"`
	}
	if err := c.BodyParser(&body); err != nil || body.ID == "" {
		l.Warn("Discarding unreadable webhook payload", zap.Error(err))
		return c.JSON(fiber.Map{"status": "received"})
	}

	l.Info("Webhook notification", zap.String("checkout_id", body.ID))
	if err := h.loader.LoadCheckout(c.Context(), body.ID); err != nil {
		l.Error("Failed to load checkout", zap.String("checkout_id", body.ID), zap.Error(err))
	}
	return c.JSON(fiber.Map{"status": "received"})
}

// HandleHealth reports liveness.
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.SendString("OK")
}
