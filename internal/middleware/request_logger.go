package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs every request as a JSON line and flags the slow
// ones.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		duration := time.Since(start)

		fields := logrus.Fields{
			"method":    c.Method(),
			"path":      c.Path(),
			"status":    c.Response().StatusCode(),
			"duration":  duration.String(),
			"remote_ip": c.IP(),
		}
		// Set by JWTUidOnly when the caller presented a valid token.
		if uid, ok := c.Locals("user_id").(string); ok && uid != "" {
			fields["user_id"] = uid
		}
		if duration > 2*time.Second {
			logrus.WithFields(fields).Warn("Slow request detected")
		} else {
			logrus.WithFields(fields).Info("Request completed")
		}
		return err
	}
}
