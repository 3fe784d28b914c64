package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CacheControl sets public cache headers on successful GET responses
func CacheControl(maxAge time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		if c.Method() == "GET" && c.Response().StatusCode() == 200 {
			seconds := int(maxAge.Seconds())
			c.Set("Cache-Control", "public, max-age="+strconv.Itoa(seconds))
		}

		return err
	}
}

// PublicContentCache returns cache middleware for the public site content
// (sections, menu, settings, fee table): 10 minutes
func PublicContentCache() fiber.Handler {
	return CacheControl(10 * time.Minute)
}

// NoCacheHeaders sets no-cache headers for claim and account endpoints
func NoCacheHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Cache-Control", "no-store, no-cache, must-revalidate")
		c.Set("Pragma", "no-cache")
		c.Set("Expires", "0")
		return c.Next()
	}
}
