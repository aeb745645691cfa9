package health

import (
	"context"

	healthsvc "essenteil-backend/internal/application/health"

	"github.com/gofiber/fiber/v2"
)

// Handlers holds dependencies for health endpoints.
type Handlers struct {
	Rdb healthsvc.RedisPinger
	DB  healthsvc.DBPinger
}

// JSON returns health data as JSON (service, status, runtime, dependencies).
func (h *Handlers) JSON(c *fiber.Ctx) error {
	result := healthsvc.CollectHealth(context.Background(), h.Rdb, h.DB)
	return c.JSON(fiber.Map{
		"service":      "essenteil-api",
		"status":       result.Status,
		"runtime":      result.Runtime,
		"dependencies": result.Dependencies,
	})
}
