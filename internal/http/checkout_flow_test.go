package handlers_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"kevina/internal/domain"
)

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// End-to-end storefront flow: add to cart, place the order, land on the
// confirmation page with a wa.me handoff link.
func TestCheckoutFlow(t *testing.T) {
	app, deps := newTestApp(t)

	app.Post("/cart", deps.CartHandler.Add)
	app.Post("/orders", deps.OrderHandler.Place)
	app.Get("/order/:id", deps.OrderHandler.View)

	pid, err := deps.Catalog.Add(context.Background(), domain.Product{
		Name: "Vitamin C Serum", Price: 2500, Image: "https://example.com/serum.png",
	})
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}

	resp, err := app.Test(postForm("/cart", url.Values{"productId": {pid}, "qty": {"2"}}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("cart add: expected redirect, got %d", resp.StatusCode)
	}

	resp, err = app.Test(postForm("/orders", url.Values{
		"name":    {"Nimali Perera"},
		"phone":   {"+94771234567"},
		"address": {"Boralesgamuwa"},
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("place order: expected redirect, got %d", resp.StatusCode)
	}
	loc := resp.Header.Get("Location")
	if !strings.HasPrefix(loc, "/order/") {
		t.Fatalf("expected redirect to confirmation, got %q", loc)
	}

	resp, err = app.Test(httptest.NewRequest("GET", loc, nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("confirmation page: expected 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	s := string(body)
	if !strings.Contains(s, "https://wa.me/94702886067?text=") {
		t.Fatalf("confirmation page missing WhatsApp link; body=%s", s)
	}
	if !strings.Contains(s, "Nimali Perera") {
		t.Fatalf("confirmation page missing customer name")
	}

	// The cart is empty once the order is placed.
	items, err := deps.CartHandler.Cart.Items()
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty cart after checkout, got %d items", len(items))
	}
}

func TestPlaceOrderRejectsBadInput(t *testing.T) {
	app, deps := newTestApp(t)
	app.Post("/orders", deps.OrderHandler.Place)

	resp, err := app.Test(postForm("/orders", url.Values{"name": {"Nimali"}, "phone": {"not-a-phone"}}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad phone, got %d", resp.StatusCode)
	}

	resp, err = app.Test(postForm("/orders", url.Values{"name": {""}, "phone": {"+94771234567"}}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing name, got %d", resp.StatusCode)
	}
}

// Zero and negative quantities posted to the qty endpoint remove the line.
func TestCartSetQuantityNonPositiveRemoves(t *testing.T) {
	app, deps := newTestApp(t)
	app.Post("/cart", deps.CartHandler.Add)
	app.Post("/cart/qty", deps.CartHandler.SetQuantity)

	pid, err := deps.Catalog.Add(context.Background(), domain.Product{
		Name: "Clay Mask", Price: 1800, Image: "https://example.com/mask.png",
	})
	if err != nil {
		t.Fatal(err)
	}

	for _, qty := range []string{"0", "-2"} {
		resp, err := app.Test(postForm("/cart", url.Values{"productId": {pid}, "qty": {"3"}}))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusFound {
			t.Fatalf("cart add: expected redirect, got %d", resp.StatusCode)
		}
		items, err := deps.CartHandler.Cart.Items()
		if err != nil {
			t.Fatal(err)
		}
		if len(items) != 1 {
			t.Fatalf("expected one line before update, got %d", len(items))
		}

		resp, err = app.Test(postForm("/cart/qty", url.Values{"cartId": {items[0].CartID}, "qty": {qty}}))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusFound {
			t.Fatalf("qty %s: expected redirect, got %d", qty, resp.StatusCode)
		}
		items, err = deps.CartHandler.Cart.Items()
		if err != nil {
			t.Fatal(err)
		}
		if len(items) != 0 {
			t.Fatalf("qty %s: expected line removed, got %d items", qty, len(items))
		}
	}

	resp, err := app.Test(postForm("/cart/qty", url.Values{"cartId": {"c1"}, "qty": {"abc"}}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric qty, got %d", resp.StatusCode)
	}
}

// Adding the same product twice merges into one line.
func TestCartAddMergesAcrossRequests(t *testing.T) {
	app, deps := newTestApp(t)
	app.Post("/cart", deps.CartHandler.Add)

	pid, err := deps.Catalog.Add(context.Background(), domain.Product{
		Name: "Rose Water Toner", Price: 1200, Image: "https://example.com/toner.png",
	})
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		resp, err := app.Test(postForm("/cart", url.Values{"productId": {pid}, "qty": {"1"}}))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusFound {
			t.Fatalf("cart add: expected redirect, got %d", resp.StatusCode)
		}
	}

	items, err := deps.CartHandler.Cart.Items()
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one merged line, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", items[0].Quantity)
	}
}
