package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"cosmic-chat-be/internal/pkg/serverutils"
	"cosmic-chat-be/internal/service"
)

type IMemoryController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	ClearCharacter(ctx *fiber.Ctx) error
	ClearAll(ctx *fiber.Ctx) error
}

type memoryController struct {
	memoryService service.IMemoryService
}

func NewMemoryController(memoryService service.IMemoryService) IMemoryController {
	return &memoryController{
		memoryService: memoryService,
	}
}

func (c *memoryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/memory/v1")
	h.Get(":characterId/:sessionId", c.Show)
	h.Delete(":characterId", c.ClearCharacter)
	h.Delete("", c.ClearAll)
}

func (c *memoryController) Show(ctx *fiber.Ctx) error {
	sessionId, err := uuid.Parse(ctx.Params("sessionId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	memory := c.memoryService.GetMemory(ctx.Context(), ctx.Params("characterId"), sessionId)
	return ctx.JSON(serverutils.SuccessResponse("Success show memory", service.ToMemoryResponse(memory)))
}

func (c *memoryController) ClearCharacter(ctx *fiber.Ctx) error {
	if err := c.memoryService.ClearCharacterMemories(ctx.Context(), ctx.Params("characterId")); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success clear character memories", nil))
}

func (c *memoryController) ClearAll(ctx *fiber.Ctx) error {
	if err := c.memoryService.ClearAllMemories(ctx.Context()); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success clear all memories", nil))
}
