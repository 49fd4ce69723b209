package serverutils

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts service errors to JSON error bodies.
// Controllers just bubble errors up; status mapping lives here.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		// Guard against double-responding once a body was written.
		if ctx.Response().StatusCode() != fiber.StatusOK || len(ctx.Response().Body()) > 0 {
			log.Printf("[WARN] Error after response committed: %v", err)
			return nil
		}

		if appErr, ok := AsAppError(err); ok {
			if appErr.Status >= 500 {
				log.Printf("[ERROR] %s: %v", appErr.Code, err)
			}
			return ctx.Status(appErr.Status).JSON(ErrorResponse(appErr.Code, appErr.Message))
		}

		if fiberErr, ok := err.(*fiber.Error); ok {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(CodeInternal, fiberErr.Message))
		}

		log.Printf("[ERROR] Unhandled: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(CodeInternal, "internal server error"))
	}
}
