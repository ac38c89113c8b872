package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"cosmic-chat-be/internal/dto"
	"cosmic-chat-be/internal/pkg/serverutils"
	"cosmic-chat-be/internal/service"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	SendMessage(ctx *fiber.Ctx) error
	StopGeneration(ctx *fiber.Ctx) error
	State(ctx *fiber.Ctx) error
	CreateSession(ctx *fiber.Ctx) error
	ListSessions(ctx *fiber.Ctx) error
	SessionMessages(ctx *fiber.Ctx) error
	SelectSession(ctx *fiber.Ctx) error
	ClearSession(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
	DeleteMessage(ctx *fiber.Ctx) error
}

type chatbotController struct {
	chatService service.IChatService
}

func NewChatbotController(chatService service.IChatService) IChatbotController {
	return &chatbotController{
		chatService: chatService,
	}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Post("message", c.SendMessage)
	h.Post("stop", c.StopGeneration)
	h.Get("state", c.State)
	h.Post("session", c.CreateSession)
	h.Get("sessions", c.ListSessions)
	h.Get("session/:id/messages", c.SessionMessages)
	h.Put("session/:id/select", c.SelectSession)
	h.Post("session/:id/clear", c.ClearSession)
	h.Delete("session/:id", c.DeleteSession)
	h.Delete("session/:id/message/:messageId", c.DeleteMessage)
}

func (c *chatbotController) SendMessage(ctx *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.SendMessage(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send message", res))
}

func (c *chatbotController) StopGeneration(ctx *fiber.Ctx) error {
	c.chatService.StopGeneration()
	return ctx.JSON(serverutils.SuccessResponse("Success stop generation", nil))
}

func (c *chatbotController) State(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success show chat state", c.chatService.State()))
}

func (c *chatbotController) CreateSession(ctx *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	session, err := c.chatService.CreateSession(ctx.Context(), req.CharacterId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create session", service.ToSessionResponse(session)))
}

func (c *chatbotController) ListSessions(ctx *fiber.Ctx) error {
	sessions := c.chatService.Sessions()
	res := make([]*dto.SessionResponse, len(sessions))
	for i, s := range sessions {
		res[i] = service.ToSessionResponse(s)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list sessions", res))
}

func (c *chatbotController) SessionMessages(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	messages, err := c.chatService.SessionMessages(id)
	if err != nil {
		return err
	}

	res := make([]*dto.MessageResponse, len(messages))
	for i := range messages {
		res[i] = service.ToMessageResponse(&messages[i])
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list messages", res))
}

func (c *chatbotController) SelectSession(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	if err := c.chatService.SelectSession(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success select session", nil))
}

func (c *chatbotController) ClearSession(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	if err := c.chatService.ClearSession(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success clear session", nil))
}

func (c *chatbotController) DeleteSession(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	if err := c.chatService.DeleteSession(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete session", nil))
}

func (c *chatbotController) DeleteMessage(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}
	messageId, err := uuid.Parse(ctx.Params("messageId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid message id")
	}

	if err := c.chatService.DeleteMessage(ctx.Context(), id, messageId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete message", nil))
}
