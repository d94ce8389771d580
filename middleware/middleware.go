package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// JsonResponse writes the flat wire shape the kids-bank frontend expects:
// {"status": "...", "message": "...", ...extra}. Extra fields are merged at
// the top level, not nested under a data key.
func JsonResponse(c *fiber.Ctx, statusCode int, status string, message string, extra fiber.Map) error {
	body := fiber.Map{
		"status":  status,
		"message": message,
	}
	for k, v := range extra {
		body[k] = v
	}
	return c.Status(statusCode).JSON(body)
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return JsonResponse(c, statusCode, "error", message, nil)
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusBadRequest, "error", "Validation failed!", fiber.Map{
		"errors": errors,
	})
}
