package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
)

// SecurityHeaders sets the common hardening response headers.
func SecurityHeaders() fiber.Handler {
	return helmet.New()
}

// CORS allows requests from any origin.
func CORS() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
	})
}
