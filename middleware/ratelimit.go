package middleware

import (
	"strings"
	"time"

	"munshiji/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimiter allows max requests per client IP in each fixed window across
// every path at or below prefix. Other paths pass through uncounted. The
// counters are kept in memory.
func RateLimiter(prefix string, max int, window time.Duration) fiber.Handler {
	return limiter.New(limiter.Config{
		Next: func(c *fiber.Ctx) bool {
			return !underPrefix(c.Path(), prefix)
		},
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return utils.Error(c, fiber.StatusTooManyRequests,
				"Too many requests, please try again later.",
				"बहुत ज्यादा अनुरोध, कृपया थोड़ी देर बाद प्रयास करें")
		},
	})
}

// underPrefix reports whether path is prefix itself or one of its segments.
// "/apix" is not under "/api".
func underPrefix(path, prefix string) bool {
	prefix = strings.TrimSuffix(prefix, "/")
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
