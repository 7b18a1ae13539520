// Package whatsapp composes the checkout handoff: a wa.me deep link whose
// text is a formatted order summary. The message layout is a de facto
// contract with the storefront operator's workflow; change it only
// deliberately.
package whatsapp

import (
	"fmt"
	"math"
	"strings"

	"kevina/internal/domain"
)

// dateLayout mirrors the locale string the operator is used to seeing,
// e.g. "1/2/2026, 3:04:05 PM".
const dateLayout = "1/2/2006, 3:04:05 PM"

// Message renders the multi-line order summary sent to the operator.
func Message(o domain.Order) string {
	var b strings.Builder
	b.WriteString("📦 *NEW ORDER - KEVINA COSMETICS*\n\n")
	fmt.Fprintf(&b, "*Order ID:* #%s\n", o.ID)
	fmt.Fprintf(&b, "*Date:* %s\n", o.Date.Format(dateLayout))
	fmt.Fprintf(&b, "*Status:* %s\n\n", strings.ToUpper(o.Status))
	b.WriteString("👤 *CUSTOMER DETAILS*\n")
	fmt.Fprintf(&b, "Name: %s\n", o.CustomerName)
	fmt.Fprintf(&b, "Phone: %s\n", o.Phone)
	address := o.Address
	if address == "" {
		address = "N/A"
	}
	fmt.Fprintf(&b, "Address: %s\n\n", address)
	b.WriteString("🛍️ *ORDER ITEMS*\n")
	for i, it := range o.Items {
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		itemTotal := it.Price * float64(qty)
		fmt.Fprintf(&b, "%d. %s\n", i+1, it.Name)
		fmt.Fprintf(&b, "   Qty: %d × Rs. %s = Rs. %s\n", qty, Rupees(it.Price), Rupees(itemTotal))
	}
	b.WriteString("\n📊 *ORDER SUMMARY*\n")
	fmt.Fprintf(&b, "Subtotal: Rs. %s\n", Rupees(o.Subtotal))
	if o.DeliveryFee > 0 {
		fmt.Fprintf(&b, "Delivery Fee: Rs. %s\n", Rupees(o.DeliveryFee))
	}
	fmt.Fprintf(&b, "\n💰 *TOTAL: Rs. %s*\n", Rupees(o.Total))
	b.WriteString("\n━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	b.WriteString("Thank you for your order! 🙏")
	return b.String()
}

// DeepLink builds the wa.me URL for number (country code + digits, no "+"
// or leading zero) carrying the order summary.
func DeepLink(number string, o domain.Order) string {
	return "https://wa.me/" + number + "?text=" + encodeComponent(Message(o))
}

// Rupees formats an amount with thousands separators, dropping the decimal
// part when the amount is whole: 5800 -> "5,800", 1234.5 -> "1,234.50".
func Rupees(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	whole := int64(amount)
	frac := amount - float64(whole)

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if cents := int(math.Round(frac * 100)); cents > 0 {
		fmt.Fprintf(&b, ".%02d", cents)
	}
	return b.String()
}

// encodeComponent percent-encodes like JavaScript's encodeURIComponent:
// everything except alphanumerics and - _ . ! ~ * ' ( ).
func encodeComponent(s string) string {
	const hexdigits = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreservedComponent(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hexdigits[c>>4])
		b.WriteByte(hexdigits[c&0x0F])
	}
	return b.String()
}

func unreservedComponent(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
