package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const userIDKey = "user_id"

// Middleware resolves the session cookie once per request and stashes the
// caller's user id in Fiber locals.
func Middleware(authority *Authority) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := authority.Resolve(c.Cookies(CookieName))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

// CallerID reads the user id set by Middleware.
func CallerID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(userIDKey).(uuid.UUID)
	return id, ok
}
