package handlers

import (
	applog "kevina/internal/log"
	"kevina/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireAdmin guards the admin panel. The session is the persisted flag in
// the store (single operator, single browser), not a per-request cookie.
func RequireAdmin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !auth.IsAuthenticated() {
			applog.Security(c, "access.denied.admin", nil)
			return c.Redirect("/admin/login")
		}
		c.Locals("userType", auth.UserType())
		return c.Next()
	}
}
