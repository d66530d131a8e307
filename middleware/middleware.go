package middleware

import (
	"munshiji/logger"
	"munshiji/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrorHandler turns errors returned by handlers into bilingual JSON. Client
// errors keep their status; anything else is logged and reported as a
// generic 500 without detail.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		switch fe.Code {
		case fiber.StatusNotFound:
			return NotFound(c)
		case fiber.StatusRequestEntityTooLarge:
			return utils.Error(c, fe.Code, "Request body too large", "अनुरोध बहुत बड़ा है")
		default:
			return utils.Error(c, fe.Code, fe.Message, "अनुरोध अमान्य है")
		}
	}

	logger.FromFiber(c).Error("Unhandled error",
		zap.Error(err),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
	)
	return utils.Error(c, fiber.StatusInternalServerError, "Internal server error", "सर्वर में समस्या")
}

// NotFound is the fallback for unmatched routes.
func NotFound(c *fiber.Ctx) error {
	return utils.Error(c, fiber.StatusNotFound, "Endpoint not found", "यह endpoint नहीं मिला")
}
