package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"kevina/internal/cart"
	applog "kevina/internal/log"
	"kevina/internal/services"
	"kevina/internal/store"
	"kevina/internal/validate"
	"kevina/internal/whatsapp"
)

type OrderHandler struct {
	Cart           *cart.Manager
	Order          *services.OrderService
	Store          *store.Store
	WhatsAppNumber string
}

// GET /checkout
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	items, err := h.Cart.Items()
	if err != nil {
		applog.Error(c, "checkout.load", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load your cart"})
	}
	if len(items) == 0 {
		return c.Redirect("/cart")
	}
	fee, err := h.Store.DeliveryFee()
	if err != nil {
		applog.Error(c, "checkout.fee", err, nil)
		fee = 0
	}
	subtotal := cart.Subtotal(items)
	return render(c, "checkout", fiber.Map{
		"Items":       items,
		"Subtotal":    subtotal,
		"DeliveryFee": fee,
		"Total":       subtotal + fee,
		"CartCount":   cart.TotalUnits(items),
	})
}

// POST /orders
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "name"})
		return c.Status(fiber.StatusBadRequest).SendString("invalid name")
	}
	phone, ok := validate.Phone(c.FormValue("phone"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "phone"})
		return c.Status(fiber.StatusBadRequest).SendString("invalid phone number")
	}
	address := c.FormValue("address") // optional, shown as N/A when empty

	order, err := h.Order.Place(name, phone, address)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			return c.Redirect("/cart")
		}
		applog.Error(c, "order.place.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not place your order. Please try again."})
	}
	applog.Audit(c, "order.place", map[string]any{
		"order_id": order.ID,
		"subtotal": order.Subtotal,
		"fee":      order.DeliveryFee,
		"total":    order.Total,
	})
	return c.Redirect("/order/" + order.ID)
}

// GET /order/:id shows the confirmation page with the WhatsApp handoff
// button. The link text carries the full order so the store owner receives
// it even though nothing is sent server-side.
func (h *OrderHandler) View(c *fiber.Ctx) error {
	order, err := h.Order.Get(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Order not found"})
	}
	return render(c, "order", fiber.Map{
		"Order":        order,
		"WhatsAppLink": whatsapp.DeepLink(h.WhatsAppNumber, order),
	})
}
