package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hemant-mistri/portfolio/internal/dto"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/health", h.Health)
}

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthDTO{Status: "ok", Message: "Server is running"})
}
