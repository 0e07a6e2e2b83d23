package presenter

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the fixed error envelope: success is always false and the
// message is a static human-readable string, never the underlying store error.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

// OK wraps a payload in the { success: true, ... } convention.
func OK(c *fiber.Ctx, status int, payload fiber.Map) error {
	body := fiber.Map{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	return JSON(c, status, body)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Success: false, Message: message})
}
