package controller

import (
	"github.com/gofiber/fiber/v2"

	"cosmic-chat-be/internal/pkg/serverutils"
	"cosmic-chat-be/pkg/llm"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Models(ctx *fiber.Ctx) error
}

type healthController struct {
	provider llm.Provider
}

func NewHealthController(provider llm.Provider) IHealthController {
	return &healthController{
		provider: provider,
	}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/health/v1")
	h.Get("", c.Show)
	h.Get("models", c.Models)
}

func (c *healthController) Show(ctx *fiber.Ctx) error {
	healthy := c.provider.CheckHealth(ctx.Context())
	status := "ok"
	if !healthy {
		status = "degraded"
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show health", fiber.Map{
		"status":     status,
		"ai_backend": healthy,
	}))
}

func (c *healthController) Models(ctx *fiber.Ctx) error {
	models, err := c.provider.ListModels(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list models", models))
}
