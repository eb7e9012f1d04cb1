package presenters

import (
	"RecipeSite/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type Response struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, code int, message string) error {
	return c.Status(code).JSON(Response{
		Message: message,
		Data:    data,
	})
}

// ErrorResponse writes {"error": message}. Client errors also carry the
// underlying error as details; server errors are logged and never exposed.
func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	body := fiber.Map{"error": message}
	if code >= fiber.StatusInternalServerError {
		log.Errorf("%s %s -> %d %s: %v", c.Method(), c.Path(), code, message, err)
	} else if err != nil {
		body["details"] = utils.ValidationMessage(err)
	}
	return c.Status(code).JSON(body)
}
