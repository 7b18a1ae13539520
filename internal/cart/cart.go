// Package cart owns all mutations of the cart entity.
package cart

import (
	"github.com/google/uuid"

	"kevina/internal/bus"
	"kevina/internal/domain"
	"kevina/internal/store"
)

type Manager struct {
	Store *store.Store
	Bus   *bus.Bus
}

func NewManager(s *store.Store, b *bus.Bus) *Manager {
	return &Manager{Store: s, Bus: b}
}

func (m *Manager) Items() ([]domain.CartItem, error) {
	return m.Store.Cart()
}

// Add puts qty units of p into the cart. If the cart already holds an item
// for the same product id, its quantity is incremented; otherwise a new
// item with a fresh cartId is appended.
func (m *Manager) Add(p domain.Product, qty int) ([]domain.CartItem, error) {
	if qty < 1 {
		qty = 1
	}
	items, err := m.Store.Cart()
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range items {
		if items[i].ProductID == p.ID {
			items[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, domain.CartItem{
			CartID:    uuid.NewString(),
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Image:     p.Image,
			Quantity:  qty,
		})
	}
	return items, m.persist(items)
}

// SetQuantity sets the quantity of the item with cartID directly (no merge).
// A quantity of zero or less removes the item. Unknown cartIDs are a no-op.
func (m *Manager) SetQuantity(cartID string, qty int) ([]domain.CartItem, error) {
	items, err := m.Store.Cart()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].CartID != cartID {
			continue
		}
		if qty <= 0 {
			items = append(items[:i], items[i+1:]...)
		} else {
			items[i].Quantity = qty
		}
		return items, m.persist(items)
	}
	return items, nil
}

// Remove drops the item with cartID from the cart.
func (m *Manager) Remove(cartID string) ([]domain.CartItem, error) {
	items, err := m.Store.Cart()
	if err != nil {
		return nil, err
	}
	kept := items[:0]
	for _, it := range items {
		if it.CartID != cartID {
			kept = append(kept, it)
		}
	}
	return kept, m.persist(kept)
}

// Clear empties the cart; used after checkout completes.
func (m *Manager) Clear() error {
	return m.persist([]domain.CartItem{})
}

func (m *Manager) persist(items []domain.CartItem) error {
	if err := m.Store.SaveCart(items); err != nil {
		return err
	}
	m.Bus.Publish(bus.Event{Kind: bus.CartChanged, Cart: items})
	return nil
}

// Subtotal is the sum of price x quantity over items.
func Subtotal(items []domain.CartItem) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// TotalUnits is the number of units across all items.
func TotalUnits(items []domain.CartItem) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}
