package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"kevina/internal/cart"
	applog "kevina/internal/log"
	"kevina/internal/services"
	"kevina/internal/store"
	"kevina/internal/validate"
)

// ShopHandler renders the public storefront pages. All copy comes from the
// stored site content so the admin panel edits show up immediately.
type ShopHandler struct {
	Catalog *services.CatalogService
	Store   *store.Store
	Cart    *cart.Manager
}

func (h *ShopHandler) cartCount(c *fiber.Ctx) int {
	items, err := h.Cart.Items()
	if err != nil {
		applog.Error(c, "cart.count", err, nil)
		return 0
	}
	return cart.TotalUnits(items)
}

func (h *ShopHandler) theme() string {
	t, _ := h.Store.Theme()
	if t == "" {
		t = "light"
	}
	return t
}

// GET /
func (h *ShopHandler) Home(c *fiber.Ctx) error {
	content, err := h.Store.Content()
	if err != nil {
		return err
	}
	products, err := h.Catalog.List(c.Context())
	if err != nil {
		applog.Error(c, "home.products", err, nil)
		products = nil
	}
	// Featured section shows the four newest products.
	if len(products) > 4 {
		products = products[:4]
	}
	return render(c, "home", fiber.Map{
		"Content":   content,
		"Featured":  products,
		"CartCount": h.cartCount(c),
		"Theme":     h.theme(),
	})
}

// GET /shop
func (h *ShopHandler) Shop(c *fiber.Ctx) error {
	content, err := h.Store.Content()
	if err != nil {
		return err
	}
	products, err := h.Catalog.List(c.Context())
	if err != nil {
		// Degrade to an empty grid; the shop stays browsable.
		applog.Error(c, "shop.products", err, nil)
		products = nil
	}
	q := strings.TrimSpace(c.Query("q"))
	if q != "" {
		needle := strings.ToLower(q)
		kept := products[:0]
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Name), needle) {
				kept = append(kept, p)
			}
		}
		products = kept
	}
	return render(c, "shop", fiber.Map{
		"Content":   content,
		"Products":  products,
		"Query":     q,
		"CartCount": h.cartCount(c),
		"Theme":     h.theme(),
	})
}

// GET /product/:id
func (h *ShopHandler) Detail(c *fiber.Ctx) error {
	p, err := h.Catalog.Get(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This product is no longer available"})
	}
	return render(c, "product", fiber.Map{"Product": p, "CartCount": h.cartCount(c)})
}

// GET /about
func (h *ShopHandler) About(c *fiber.Ctx) error {
	content, err := h.Store.Content()
	if err != nil {
		return err
	}
	return render(c, "about", fiber.Map{"Content": content, "CartCount": h.cartCount(c)})
}

// GET /contact
func (h *ShopHandler) Contact(c *fiber.Ctx) error {
	content, err := h.Store.Content()
	if err != nil {
		return err
	}
	return render(c, "contact", fiber.Map{
		"Content":   content,
		"CartCount": h.cartCount(c),
		"Sent":      c.Query("sent") == "1",
	})
}

// POST /contact records the message in the action log; there is no mail
// backend, the shop owner reads these from the log sink.
func (h *ShopHandler) ContactSubmit(c *fiber.Ctx) error {
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("invalid name")
	}
	email, ok := validate.Email(c.FormValue("email"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("invalid email")
	}
	message := strings.TrimSpace(c.FormValue("message"))
	if message == "" || len(message) > 2000 {
		return c.Status(fiber.StatusBadRequest).SendString("invalid message")
	}
	applog.Audit(c, "contact.message", map[string]any{"name": name, "email": email, "message": message})
	return c.Redirect("/contact?sent=1")
}
