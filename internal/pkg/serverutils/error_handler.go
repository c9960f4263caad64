package serverutils

import (
	"errors"

	"ayat-reflection-be/internal/constant"
	"ayat-reflection-be/internal/dto"
	"ayat-reflection-be/pkg/reflection"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// ErrorEnvelope is the only error shape clients ever see.
type ErrorEnvelope struct {
	Error string `json:"error"`
}

// ErrorHandlerMiddleware maps service errors onto the flat error
// envelope. Anything unclassified becomes a 500 with generic copy so
// provider and database detail stays in the logs.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorEnvelope{Error: validationErr.Message})
		}

		var rateLimitedErr *dto.RateLimitedError
		if errors.As(err, &rateLimitedErr) {
			return ctx.Status(fiber.StatusTooManyRequests).JSON(ErrorEnvelope{Error: rateLimitedErr.Error()})
		}

		if errors.Is(err, reflection.ErrEmptyResult) {
			log.Errorf("[ERROR] %s %s: %v", ctx.Method(), ctx.Path(), err)
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorEnvelope{Error: constant.MsgNoVersesFound})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) && fiberErr.Code < fiber.StatusInternalServerError {
			return ctx.Status(fiberErr.Code).JSON(ErrorEnvelope{Error: constant.MsgValidationInvalid})
		}

		log.Errorf("[ERROR] %s %s: %v", ctx.Method(), ctx.Path(), err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorEnvelope{Error: constant.MsgGenericError})
	}
}
