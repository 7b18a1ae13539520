package handlers

import "github.com/gofiber/fiber/v2"

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	// Flag set by RequireAdmin / the session middleware, used by nav bars.
	if t := c.Locals("userType"); t != nil {
		data["UserType"] = t
	}
	// Pick up the token the CSRF middleware put into Locals
	tok, _ := c.Locals("CSRFToken").(string)
	if tok == "" {
		// Fallback to the cookie so hidden form fields are never empty.
		tok = c.Cookies("csrf_")
	}
	if tok != "" {
		data["CSRFToken"] = tok
	}
	return c.Render(tmpl, data)
}
