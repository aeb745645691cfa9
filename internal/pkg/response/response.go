package response

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorBody is the standardized error JSON shape. Callers only ever see a
// stable message and status code, never a raw internal error.
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody is the standardized success-with-message JSON shape.
type MessageBody struct {
	Message string `json:"message"`
}

// Error sends a response with the standard error format.
func Error(c *fiber.Ctx, message string, statusCode int) error {
	return c.Status(statusCode).JSON(ErrorBody{Error: message})
}

// Message sends a 200 OK response with the standard message format.
func Message(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(MessageBody{Message: message})
}
