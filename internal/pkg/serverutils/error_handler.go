package serverutils

import (
	"errors"

	"faq-knowledge-be/pkg/review"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts errors bubbling out of handlers into the
// standard error envelope. Domain sentinels get stable status codes so the
// dashboard can branch on them.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		message := err.Error()

		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
			message = fiberErr.Message
		case errors.Is(err, review.ErrInvalidTransition):
			code = fiber.StatusConflict
		case errors.Is(err, review.ErrUnknownStatus), errors.Is(err, review.ErrUnknownKind):
			code = fiber.StatusBadRequest
		}

		return ctx.Status(code).JSON(ErrorResponse(code, message))
	}
}
