package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"kevina/internal/bus"
	"kevina/internal/domain"
	applog "kevina/internal/log"
	"kevina/internal/services"
	"kevina/internal/store"
	"kevina/internal/validate"
	"kevina/internal/whatsapp"
)

type AdminHandler struct {
	Catalog        *services.CatalogService
	Order          *services.OrderService
	Auth           *services.AuthService
	Store          *store.Store
	Bus            *bus.Bus
	WhatsAppNumber string
}

// GET /admin
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.Order.Stats()
	if err != nil {
		applog.Error(c, "admin.stats.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load dashboard"})
	}
	products, err := h.Catalog.List(c.Context())
	if err != nil {
		applog.Error(c, "admin.products.count.fail", err, nil)
	}
	return render(c, "admin_dashboard", fiber.Map{
		"Stats":        stats,
		"ProductCount": len(products),
	})
}

// GET /admin/products
func (h *AdminHandler) Products(c *fiber.Ctx) error {
	products, err := h.Catalog.List(c.Context())
	if err != nil {
		applog.Error(c, "admin.products.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load products"})
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
	filter := c.Query("filter")
	if filter == "skincare" || filter == "haircare" {
		kept := products[:0]
		for _, p := range products {
			if productCategory(p.Name) == filter {
				kept = append(kept, p)
			}
		}
		products = kept
	}
	return render(c, "admin_products", fiber.Map{"Products": products, "Query": q, "Filter": filter})
}

// productCategory buckets products for the admin filter. There is no
// category field on the product documents, so this keys on the name.
func productCategory(name string) string {
	n := strings.ToLower(name)
	for _, kw := range []string{"shampoo", "conditioner", "hair", "scalp"} {
		if strings.Contains(n, kw) {
			return "haircare"
		}
	}
	return "skincare"
}

// POST /admin/products
func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		return c.Status(400).SendString("invalid name")
	}
	price, ok := validate.Price(c.FormValue("price"))
	if !ok {
		return c.Status(400).SendString("invalid price")
	}
	image, ok := validate.ImageURL(c.FormValue("image"))
	if !ok {
		return c.Status(400).SendString("invalid image url")
	}
	p := domain.Product{
		Name:        name,
		Price:       price,
		Image:       image,
		Description: strings.TrimSpace(c.FormValue("description")),
	}
	id, err := h.Catalog.Add(c.Context(), p)
	if err != nil {
		applog.Error(c, "admin.products.create.fail", err, nil)
		return c.Status(500).SendString("could not save product")
	}
	applog.Audit(c, "admin.products.create", map[string]any{"product_id": id, "name": name})
	return c.Redirect("/admin/products")
}

// POST /admin/products/:id
func (h *AdminHandler) UpdateProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		return c.Status(400).SendString("invalid name")
	}
	price, ok := validate.Price(c.FormValue("price"))
	if !ok {
		return c.Status(400).SendString("invalid price")
	}
	image, ok := validate.ImageURL(c.FormValue("image"))
	if !ok {
		return c.Status(400).SendString("invalid image url")
	}
	p := domain.Product{
		Name:        name,
		Price:       price,
		Image:       image,
		Description: strings.TrimSpace(c.FormValue("description")),
	}
	if err := h.Catalog.Update(c.Context(), id, p); err != nil {
		applog.Error(c, "admin.products.update.fail", err, map[string]any{"product_id": id})
		return c.Status(400).SendString("could not update product")
	}
	applog.Audit(c, "admin.products.update", map[string]any{"product_id": id})
	return c.Redirect("/admin/products")
}

// POST /admin/products/:id/delete
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	if err := h.Catalog.Remove(c.Context(), id); err != nil {
		applog.Error(c, "admin.products.delete.fail", err, map[string]any{"product_id": id})
		return c.Status(400).SendString("could not delete product")
	}
	applog.Audit(c, "admin.products.delete", map[string]any{"product_id": id})
	return c.Redirect("/admin/products")
}

// GET /admin/orders
func (h *AdminHandler) Orders(c *fiber.Ctx) error {
	orders, err := h.Order.List()
	if err != nil {
		applog.Error(c, "admin.orders.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load orders"})
	}
	// Each row carries a resend link so a lost WhatsApp message can be
	// re-opened from the panel.
	links := make(map[string]string, len(orders))
	for _, o := range orders {
		links[o.ID] = whatsapp.DeepLink(h.WhatsAppNumber, o)
	}
	return render(c, "admin_orders", fiber.Map{"Orders": orders, "WhatsAppLinks": links})
}

// POST /admin/orders/:id/status
func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	status := c.FormValue("status")
	if id == "" || status == "" {
		return c.Status(400).SendString("missing id or status")
	}
	if err := h.Order.UpdateStatus(id, status); err != nil {
		applog.Error(c, "admin.orders.update.fail", err, map[string]any{"order_id": id})
		return c.Status(400).SendString("could not update status")
	}
	applog.Audit(c, "admin.orders.update", map[string]any{"order_id": id, "status": status})
	return c.Redirect("/admin/orders")
}

// GET /admin/content
func (h *AdminHandler) ContentForm(c *fiber.Ctx) error {
	content, err := h.Store.Content()
	if err != nil {
		applog.Error(c, "admin.content.load.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load site content"})
	}
	return render(c, "admin_content", fiber.Map{"Content": content})
}

// POST /admin/content overwrites the editable copy. The save is always the
// whole object; fields left blank in the form keep their stored value.
func (h *AdminHandler) SaveContent(c *fiber.Ctx) error {
	content, err := h.Store.Content()
	if err != nil {
		return c.Status(500).SendString("could not load site content")
	}

	set := func(dst *string, field string) {
		if v := strings.TrimSpace(c.FormValue(field)); v != "" {
			*dst = v
		}
	}

	set(&content.Hero.Title, "hero_title")
	set(&content.Hero.Subtitle, "hero_subtitle")
	set(&content.Hero.Button1, "hero_button1")
	set(&content.Hero.Button2, "hero_button2")

	set(&content.Home.FeaturedTitle, "home_featured_title")
	set(&content.Home.FeaturedSubtitle, "home_featured_subtitle")
	set(&content.Home.ViewAllButton, "home_view_all_button")
	set(&content.Home.WhyChooseTitle, "home_why_choose_title")
	set(&content.Home.WhyChooseText1, "home_why_choose_text1")
	set(&content.Home.WhyChooseText2, "home_why_choose_text2")
	set(&content.Home.LearnMoreButton, "home_learn_more_button")

	set(&content.About.HeroTitle, "about_hero_title")
	set(&content.About.HeroSubtitle, "about_hero_subtitle")
	set(&content.About.WelcomeTitle, "about_welcome_title")
	set(&content.About.WelcomeText1, "about_welcome_text1")
	set(&content.About.WelcomeText2, "about_welcome_text2")
	set(&content.About.WelcomeText3, "about_welcome_text3")
	set(&content.About.MissionTitle, "about_mission_title")
	set(&content.About.MissionText, "about_mission_text")

	set(&content.Contact.HeroTitle, "contact_hero_title")
	set(&content.Contact.HeroSubtitle, "contact_hero_subtitle")
	set(&content.Contact.InfoTitle, "contact_info_title")
	set(&content.Contact.InfoDescription, "contact_info_description")
	set(&content.Contact.MapNote, "contact_map_note")
	set(&content.Contact.FormTitle, "contact_form_title")
	set(&content.Contact.SubmitButton, "contact_submit_button")

	set(&content.Footer.Tagline, "footer_tagline")
	set(&content.Footer.NewsletterTitle, "footer_newsletter_title")
	set(&content.Footer.NewsletterText, "footer_newsletter_text")
	set(&content.Footer.NewsletterButton, "footer_newsletter_button")
	set(&content.Footer.Location, "footer_location")
	set(&content.Footer.Copyright, "footer_copyright")

	set(&content.Shop.HeroTitle, "shop_hero_title")
	set(&content.Shop.HeroSubtitle, "shop_hero_subtitle")

	if err := h.Store.SaveContent(content); err != nil {
		applog.Error(c, "admin.content.save.fail", err, nil)
		return c.Status(500).SendString("could not save site content")
	}
	h.Bus.Publish(bus.Event{Kind: bus.ContentChanged, Content: &content})
	applog.Audit(c, "admin.content.save", nil)
	return c.Redirect("/admin/content")
}

// GET /admin/settings
func (h *AdminHandler) Settings(c *fiber.Ctx) error {
	fee, err := h.Store.DeliveryFee()
	if err != nil {
		applog.Error(c, "admin.settings.fee.fail", err, nil)
		fee = 0
	}
	creds, err := h.Store.AdminCredentials()
	if err != nil {
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load settings"})
	}
	theme, err := h.Store.Theme()
	if err != nil {
		applog.Error(c, "admin.settings.theme.fail", err, nil)
	}
	return render(c, "admin_settings", fiber.Map{
		"DeliveryFee": fee,
		"AdminEmail":  creds.Email,
		"Theme":       theme,
		"Err":         c.Query("err"),
		"Saved":       c.Query("saved") == "1",
	})
}

// POST /admin/settings/theme
func (h *AdminHandler) SaveTheme(c *fiber.Ctx) error {
	theme := c.FormValue("theme")
	if theme != "light" && theme != "dark" {
		return c.Status(400).SendString("invalid theme")
	}
	if err := h.Store.SaveTheme(theme); err != nil {
		applog.Error(c, "admin.settings.theme.save.fail", err, nil)
		return c.Status(500).SendString("could not save theme")
	}
	applog.Audit(c, "admin.settings.theme.save", map[string]any{"theme": theme})
	return c.Redirect("/admin/settings?saved=1")
}

// POST /admin/settings/fee
func (h *AdminHandler) SaveDeliveryFee(c *fiber.Ctx) error {
	fee, ok := validate.Price(c.FormValue("fee"))
	if !ok {
		return c.Status(400).SendString("invalid fee")
	}
	if err := h.Store.SaveDeliveryFee(fee); err != nil {
		applog.Error(c, "admin.settings.fee.save.fail", err, nil)
		return c.Status(500).SendString("could not save delivery fee")
	}
	applog.Audit(c, "admin.settings.fee.save", map[string]any{"fee": fee})
	return c.Redirect("/admin/settings?saved=1")
}

// POST /admin/settings/credentials changes the mutable admin account. The
// current password is always required; email and password are each optional
// but at least one must be supplied.
func (h *AdminHandler) SaveCredentials(c *fiber.Ctx) error {
	current := c.FormValue("current_password")
	newEmail := strings.TrimSpace(c.FormValue("new_email"))
	newPassword := c.FormValue("new_password")

	if newEmail == "" && newPassword == "" {
		return c.Redirect("/admin/settings?err=nothing+to+change")
	}
	if newEmail != "" {
		if _, ok := validate.Email(newEmail); !ok {
			return c.Redirect("/admin/settings?err=invalid+email")
		}
	}
	if newPassword != "" && !validate.Password(newPassword) {
		return c.Redirect("/admin/settings?err=password+must+be+6-64+characters")
	}

	var err error
	switch {
	case newEmail != "" && newPassword != "":
		err = h.Auth.ChangeEmailAndPassword(current, newEmail, newPassword)
	case newEmail != "":
		err = h.Auth.ChangeEmail(current, newEmail)
	default:
		err = h.Auth.ChangePassword(current, newPassword)
	}
	if err != nil {
		applog.Security(c, "admin.settings.credentials.fail", map[string]any{"error": err.Error()})
		return c.Redirect("/admin/settings?err=current+password+is+incorrect")
	}
	applog.Audit(c, "admin.settings.credentials.save", map[string]any{"email_changed": newEmail != "", "password_changed": newPassword != ""})
	return c.Redirect("/admin/settings?saved=1")
}
