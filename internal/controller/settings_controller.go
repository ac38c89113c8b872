package controller

import (
	"github.com/gofiber/fiber/v2"

	"cosmic-chat-be/internal/dto"
	"cosmic-chat-be/internal/pkg/serverutils"
	"cosmic-chat-be/internal/service"
)

type ISettingsController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
}

type settingsController struct {
	settingsService service.ISettingsService
}

func NewSettingsController(settingsService service.ISettingsService) ISettingsController {
	return &settingsController{
		settingsService: settingsService,
	}
}

func (c *settingsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/settings/v1")
	h.Get("", c.Show)
	h.Put("", c.Update)
	h.Post("reset", c.Reset)
}

func (c *settingsController) Show(ctx *fiber.Ctx) error {
	settings := c.settingsService.Get(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success show settings", service.ToSettingsResponse(settings)))
}

func (c *settingsController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateSettingsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	settings, err := c.settingsService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update settings", service.ToSettingsResponse(settings)))
}

func (c *settingsController) Reset(ctx *fiber.Ctx) error {
	settings, err := c.settingsService.Reset(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success reset settings", service.ToSettingsResponse(settings)))
}
