package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"kevina/internal/bus"
	"kevina/internal/config"
	"kevina/internal/domain"
	"kevina/internal/http/handlers"
	"kevina/internal/store"
	"kevina/internal/whatsapp"
)

func newTestApp(t *testing.T) (*fiber.App, *handlers.Deps) {
	t.Helper()
	db, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	cfg := config.Config{DBDSN: ":memory:", WhatsAppNumber: "94702886067"}
	deps := handlers.NewDeps(db, cfg, nil, bus.New())

	engine := html.New("../../web/templates", ".html")
	engine.AddFunc("rupees", whatsapp.Rupees)
	engine.AddFunc("lineTotal", func(it domain.CartItem) float64 {
		return it.Price * float64(it.Quantity)
	})
	engine.AddFunc("orderLineTotal", func(it domain.OrderItem) float64 {
		return it.Price * float64(it.Quantity)
	})
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(requestid.New())
	return app, deps
}

// /admin requires the persisted session flag
func TestAdminGuardRequiresLogin(t *testing.T) {
	app, deps := newTestApp(t)

	admin := app.Group("/admin", handlers.RequireAdmin(deps.Auth))
	admin.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	// Anonymous -> redirect to login
	resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/admin/login" {
		t.Fatalf("expected redirect to /admin/login, got %q", loc)
	}

	// Logged in -> 200
	if _, err := deps.Auth.Login(store.DefaultAdminEmail, "admin123"); err != nil {
		t.Fatalf("login: %v", err)
	}
	resp, err = app.Test(httptest.NewRequest("GET", "/admin", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 after login, got %d", resp.StatusCode)
	}

	// Logout ends the session for every subsequent request
	if err := deps.Auth.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	resp, err = app.Test(httptest.NewRequest("GET", "/admin", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect after logout, got %d", resp.StatusCode)
	}
}
