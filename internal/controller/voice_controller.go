package controller

import (
	"github.com/gofiber/fiber/v2"

	"cosmic-chat-be/internal/dto"
	"cosmic-chat-be/internal/pkg/serverutils"
	"cosmic-chat-be/internal/service"
)

type IVoiceController interface {
	RegisterRoutes(r fiber.Router)
	Synthesize(ctx *fiber.Ctx) error
	Transcribe(ctx *fiber.Ctx) error
}

type voiceController struct {
	voiceService service.IVoiceService
}

func NewVoiceController(voiceService service.IVoiceService) IVoiceController {
	return &voiceController{
		voiceService: voiceService,
	}
}

func (c *voiceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/voice/v1")
	h.Post("tts", c.Synthesize)
	h.Post("stt", c.Transcribe)
}

func (c *voiceController) Synthesize(ctx *fiber.Ctx) error {
	var req dto.SynthesizeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	audio, mimeType, err := c.voiceService.Synthesize(ctx.Context(), &req)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, mimeType)
	return ctx.Send(audio)
}

func (c *voiceController) Transcribe(ctx *fiber.Ctx) error {
	var req dto.TranscribeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.voiceService.Transcribe(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success transcribe audio", res))
}
