package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-checker/internal/middleware"
)

const MsgUnexpectedError = "An unexpected error occurred: "

// ErrorHandler keeps the status of *fiber.Error values (413, 404, 405...)
// and turns anything else, recovered panics included, into a 500.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{
				"error": fiberErr.Message,
				"code":  fiberErr.Code,
			})
		}

		log.Printf("❌ [%s] %s %s: %v", middleware.RequestIDFromCtx(c), c.Method(), c.Path(), err)

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": MsgUnexpectedError + err.Error(),
			"code":  fiber.StatusInternalServerError,
		})
	}
}
