package serverutils

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"cosmic-chat-be/internal/service"
	"cosmic-chat-be/pkg/llm"
	"cosmic-chat-be/pkg/voice"
)

// statusClientClosedRequest mirrors the nginx convention for aborted calls.
const statusClientClosedRequest = 499

// ErrorHandlerMiddleware converts domain errors into HTTP responses so the
// controllers can just return them.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := fiber.StatusInternalServerError

		var validationErrs validator.ValidationErrors
		var fiberErr *fiber.Error

		switch {
		case errors.As(err, &validationErrs):
			status = fiber.StatusBadRequest
		case errors.As(err, &fiberErr):
			status = fiberErr.Code
		case errors.Is(err, service.ErrNoCharacterSelected),
			errors.Is(err, service.ErrEmptyMessage),
			errors.Is(err, service.ErrMessageTooLong):
			status = fiber.StatusBadRequest
		case errors.Is(err, service.ErrCharacterNotFound),
			errors.Is(err, service.ErrSessionNotFound):
			status = fiber.StatusNotFound
		case errors.Is(err, voice.ErrNotConfigured):
			status = fiber.StatusNotImplemented
		default:
			switch llm.KindOf(err) {
			case llm.KindNotConfigured:
				status = fiber.StatusNotImplemented
			case llm.KindGenerationFailed, llm.KindStreamingFailed:
				status = fiber.StatusBadGateway
			case llm.KindCancelled:
				status = statusClientClosedRequest
			}
		}

		return ctx.Status(status).JSON(fiber.Map{
			"message": err.Error(),
		})
	}
}
