package whatsapp_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kevina/internal/domain"
	"kevina/internal/whatsapp"
)

func sampleOrder() domain.Order {
	return domain.Order{
		ID:           "ord-42",
		Date:         time.Date(2026, 8, 28, 14, 5, 9, 0, time.UTC),
		CustomerName: "Nimali Perera",
		Phone:        "+94771234567",
		Items: []domain.OrderItem{
			{Name: "The Ordinary Alpha Arbutin", Price: 5800, Quantity: 2},
			{Name: "OGX Biotin and Collagen Shampoo 385ml", Price: 5000, Quantity: 1},
		},
		Subtotal:    16600,
		DeliveryFee: 300,
		Total:       16900,
		Status:      domain.OrderPending,
	}
}

func TestMessageFormat(t *testing.T) {
	msg := whatsapp.Message(sampleOrder())

	assert.True(t, strings.HasPrefix(msg, "📦 *NEW ORDER - KEVINA COSMETICS*\n\n"))
	assert.Contains(t, msg, "*Order ID:* #ord-42\n")
	assert.Contains(t, msg, "*Date:* 8/28/2026, 2:05:09 PM\n")
	assert.Contains(t, msg, "*Status:* PENDING\n")
	assert.Contains(t, msg, "Name: Nimali Perera\n")
	// No address entered -> N/A placeholder.
	assert.Contains(t, msg, "Address: N/A\n")
	assert.Contains(t, msg, "1. The Ordinary Alpha Arbutin\n   Qty: 2 × Rs. 5,800 = Rs. 11,600\n")
	assert.Contains(t, msg, "2. OGX Biotin and Collagen Shampoo 385ml\n   Qty: 1 × Rs. 5,000 = Rs. 5,000\n")
	assert.Contains(t, msg, "Subtotal: Rs. 16,600\n")
	assert.Contains(t, msg, "Delivery Fee: Rs. 300\n")
	assert.Contains(t, msg, "💰 *TOTAL: Rs. 16,900*\n")
	assert.True(t, strings.HasSuffix(msg, "Thank you for your order! 🙏"))
}

func TestMessageOmitsZeroDeliveryFee(t *testing.T) {
	o := sampleOrder()
	o.DeliveryFee = 0
	o.Total = o.Subtotal

	msg := whatsapp.Message(o)
	assert.NotContains(t, msg, "Delivery Fee")
	assert.Contains(t, msg, "Subtotal: Rs. 16,600\n")
}

func TestDeepLinkShape(t *testing.T) {
	link := whatsapp.DeepLink("94702886067", sampleOrder())

	require.True(t, strings.HasPrefix(link, "https://wa.me/94702886067?text="))
	encoded := strings.TrimPrefix(link, "https://wa.me/94702886067?text=")
	// encodeURIComponent style: spaces are %20, never '+'.
	assert.NotContains(t, encoded, "+")
	assert.NotContains(t, encoded, " ")
	assert.Contains(t, encoded, "ord-42")
	assert.Contains(t, encoded, "%20")
	// Newlines must be percent-encoded.
	assert.Contains(t, encoded, "%0A")
}

func TestRupees(t *testing.T) {
	assert.Equal(t, "0", whatsapp.Rupees(0))
	assert.Equal(t, "300", whatsapp.Rupees(300))
	assert.Equal(t, "5,800", whatsapp.Rupees(5800))
	assert.Equal(t, "16,900", whatsapp.Rupees(16900))
	assert.Equal(t, "1,234,567", whatsapp.Rupees(1234567))
	assert.Equal(t, "1,234.50", whatsapp.Rupees(1234.5))
}
