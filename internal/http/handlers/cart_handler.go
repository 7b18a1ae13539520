package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"kevina/internal/cart"
	applog "kevina/internal/log"
	"kevina/internal/services"
	"kevina/internal/store"
	"kevina/internal/validate"
)

type CartHandler struct {
	Cart    *cart.Manager
	Catalog *services.CatalogService
	Store   *store.Store
}

// GET /cart
func (h *CartHandler) View(c *fiber.Ctx) error {
	items, err := h.Cart.Items()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load your cart"})
	}
	fee, err := h.Store.DeliveryFee()
	if err != nil {
		applog.Error(c, "cart.fee", err, nil)
		fee = 0
	}
	subtotal := cart.Subtotal(items)
	return render(c, "cart", fiber.Map{
		"Items":       items,
		"Subtotal":    subtotal,
		"DeliveryFee": fee,
		"Total":       subtotal + fee,
		"CartCount":   cart.TotalUnits(items),
	})
}

// POST /cart
func (h *CartHandler) Add(c *fiber.Ctx) error {
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	qty := validate.Qty(c.FormValue("qty"))

	p, err := h.Catalog.Get(c.Context(), productID)
	if err != nil {
		applog.Error(c, "cart.add.lookup", err, map[string]any{"product_id": productID})
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This product is no longer available"})
	}
	if _, err := h.Cart.Add(p, qty); err != nil {
		return c.Status(500).SendString("could not update cart")
	}
	applog.Info(c, "cart.add", map[string]any{"product_id": productID, "qty": qty})
	return c.Redirect("/cart")
}

// POST /cart/qty
func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	cartID, ok := validate.ID(c.FormValue("cartId"))
	if !ok {
		return c.Status(400).SendString("missing cartId")
	}
	// Zero and negative values pass through: the manager removes the line.
	qty, err := strconv.Atoi(strings.TrimSpace(c.FormValue("qty")))
	if err != nil {
		return c.Status(400).SendString("invalid qty")
	}
	if qty > 50 {
		qty = 50
	}
	if _, err := h.Cart.SetQuantity(cartID, qty); err != nil {
		return c.Status(500).SendString("could not update cart")
	}
	return c.Redirect("/cart")
}

// POST /cart/remove
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	cartID, ok := validate.ID(c.FormValue("cartId"))
	if !ok {
		return c.Status(400).SendString("missing cartId")
	}
	if _, err := h.Cart.Remove(cartID); err != nil {
		return c.Status(500).SendString("could not update cart")
	}
	return c.Redirect("/cart")
}
