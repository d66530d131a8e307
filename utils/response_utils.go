package utils

import "github.com/gofiber/fiber/v2"

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Success writes a success envelope with a bilingual message. data is
// omitted when nil.
func Success(c *fiber.Ctx, code int, message, messageHindi string, data interface{}) error {
	body := fiber.Map{
		"status":        StatusSuccess,
		"message":       message,
		"message_hindi": messageHindi,
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(code).JSON(body)
}

// Error writes an error envelope with a bilingual message.
func Error(c *fiber.Ctx, code int, message, messageHindi string) error {
	return c.Status(code).JSON(fiber.Map{
		"status":        StatusError,
		"message":       message,
		"message_hindi": messageHindi,
	})
}
