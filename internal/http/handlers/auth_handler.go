package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "kevina/internal/log"
	"kevina/internal/services"
	"kevina/internal/validate"
)

type AuthHandler struct {
	Auth *services.AuthService
}

// GET /admin/login
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	if h.Auth.IsAuthenticated() {
		return c.Redirect("/admin")
	}
	return render(c, "login", fiber.Map{"Err": ""})
}

// POST /admin/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email := c.FormValue("email")
	pass := c.FormValue("password")
	if _, ok := validate.Email(email); !ok {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "bad_format"})
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": c.Cookies("csrf_")})
	}

	userType, err := h.Auth.Login(email, pass)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email})
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": c.Cookies("csrf_")})
	}

	applog.Audit(c, "auth.login.success", map[string]any{"email": email, "user_type": userType})
	return c.Redirect("/admin")
}

// POST /admin/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.Auth.Logout(); err != nil {
		applog.Error(c, "auth.logout.fail", err, nil)
	}
	applog.Audit(c, "auth.logout", nil)
	return c.Redirect("/")
}
