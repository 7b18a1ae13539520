package main

import (
	"context"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"kevina/internal/bus"
	"kevina/internal/config"
	"kevina/internal/domain"
	"kevina/internal/feed"
	"kevina/internal/http/handlers"
	applog "kevina/internal/log"
	"kevina/internal/migrate"
	"kevina/internal/store"
	"kevina/internal/whatsapp"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := store.Open(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	eventBus := bus.New()

	// Live product feed is optional; without REDIS_URL the catalog is
	// served from the local store only.
	var productFeed *feed.Feed
	if cfg.RedisURL != "" {
		productFeed, err = feed.New(cfg.RedisURL, eventBus)
		if err != nil {
			log.Fatalf("[feed] %v", err)
		}
		log.Printf("[feed] live catalog enabled")
	} else {
		log.Printf("[feed] REDIS_URL not set, serving catalog from local store")
	}

	deps := handlers.NewDeps(db, cfg, productFeed, eventBus)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stopMirror := deps.Catalog.Start(ctx)
	defer stopMirror()

	// One-time catalog seeding; a no-op once the migration flag is set.
	if _, err := migrate.Run(ctx, db, deps.Catalog); err != nil {
		applog.Error(nil, "migrate.fail", err, nil)
	}

	// Templates & app
	engine := html.New("./web/templates", ".html")
	engine.Reload(true)
	engine.AddFunc("rupees", whatsapp.Rupees)
	engine.AddFunc("lineTotal", func(it domain.CartItem) float64 {
		return it.Price * float64(it.Quantity)
	})
	engine.AddFunc("orderLineTotal", func(it domain.OrderItem) float64 {
		return it.Price * float64(it.Quantity)
	})

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Log and show a friendly message
			applog.Error(c, "server.error", err, nil)
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(string(c.Request().URI().Path()), "/static/")
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", map[string]any{"form": c.FormValue("csrf")})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	// ---------- Static assets ----------
	app.Static("/static", "./web/static")

	// ---------- Storefront ----------
	app.Get("/", deps.ShopHandler.Home)
	app.Get("/shop", deps.ShopHandler.Shop)
	app.Get("/product/:id", deps.ShopHandler.Detail)
	app.Get("/about", deps.ShopHandler.About)
	app.Get("/contact", deps.ShopHandler.Contact)
	app.Post("/contact", deps.ShopHandler.ContactSubmit)

	// Cart & checkout
	app.Get("/cart", deps.CartHandler.View)
	app.Post("/cart", deps.CartHandler.Add)
	app.Post("/cart/qty", deps.CartHandler.SetQuantity)
	app.Post("/cart/remove", deps.CartHandler.Remove)
	app.Get("/checkout", deps.OrderHandler.Checkout)
	app.Post("/orders", deps.OrderHandler.Place)
	app.Get("/order/:id", deps.OrderHandler.View)

	// Auth (login throttled)
	app.Get("/admin/login", deps.AuthHandler.LoginForm)
	app.Post("/admin/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("login", fiber.Map{"Err": "Too many attempts. Please try again later."})
		},
	}), deps.AuthHandler.Login)
	app.Post("/admin/logout", deps.AuthHandler.Logout)

	// Admin panel
	admin := app.Group("/admin", handlers.RequireAdmin(deps.Auth))
	admin.Get("/", deps.AdminHandler.Dashboard)
	admin.Get("/products", deps.AdminHandler.Products)
	admin.Post("/products", deps.AdminHandler.CreateProduct)
	admin.Post("/products/:id", deps.AdminHandler.UpdateProduct)
	admin.Post("/products/:id/delete", deps.AdminHandler.DeleteProduct)
	admin.Get("/orders", deps.AdminHandler.Orders)
	admin.Post("/orders/:id/status", deps.AdminHandler.UpdateOrderStatus)
	admin.Get("/content", deps.AdminHandler.ContentForm)
	admin.Post("/content", deps.AdminHandler.SaveContent)
	admin.Get("/settings", deps.AdminHandler.Settings)
	admin.Post("/settings/fee", deps.AdminHandler.SaveDeliveryFee)
	admin.Post("/settings/theme", deps.AdminHandler.SaveTheme)
	admin.Post("/settings/credentials", deps.AdminHandler.SaveCredentials)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
