package controller

import (
	"github.com/gofiber/fiber/v2"

	"cosmic-chat-be/internal/pkg/serverutils"
	"cosmic-chat-be/internal/service"
)

type ICharacterController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Select(ctx *fiber.Ctx) error
	Current(ctx *fiber.Ctx) error
}

type characterController struct {
	characterService service.ICharacterService
}

func NewCharacterController(characterService service.ICharacterService) ICharacterController {
	return &characterController{
		characterService: characterService,
	}
}

func (c *characterController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/character/v1")
	h.Get("", c.List)
	h.Get("current", c.Current)
	h.Get(":id", c.Show)
	h.Put(":id/select", c.Select)
}

func (c *characterController) List(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success list characters", c.characterService.List()))
}

func (c *characterController) Show(ctx *fiber.Ctx) error {
	char, err := c.characterService.Get(ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show character", char))
}

func (c *characterController) Select(ctx *fiber.Ctx) error {
	char, err := c.characterService.Select(ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success select character", char))
}

func (c *characterController) Current(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success show current character", c.characterService.Current()))
}
