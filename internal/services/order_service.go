package services

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"kevina/internal/cart"
	"kevina/internal/domain"
	"kevina/internal/store"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrOrderNotFound = errors.New("order not found")
	ErrBadStatus     = errors.New("invalid order status")
)

type OrderService struct {
	Store *store.Store
	Cart  *cart.Manager
}

func NewOrderService(s *store.Store, c *cart.Manager) *OrderService {
	return &OrderService{Store: s, Cart: c}
}

// Place creates an order from the current cart and clears the cart. The
// totals are computed once, here: Total = Subtotal + the delivery fee
// configured at this moment. Stored orders are never recomputed.
func (s *OrderService) Place(name, phone, address string) (domain.Order, error) {
	items, err := s.Cart.Items()
	if err != nil {
		return domain.Order{}, err
	}
	if len(items) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	fee, err := s.Store.DeliveryFee()
	if err != nil {
		return domain.Order{}, err
	}
	subtotal := cart.Subtotal(items)

	order := domain.Order{
		ID:           uuid.NewString(),
		Date:         time.Now().UTC(),
		CustomerName: name,
		Phone:        phone,
		Address:      address,
		Items:        make([]domain.OrderItem, 0, len(items)),
		Subtotal:     subtotal,
		DeliveryFee:  fee,
		Total:        subtotal + fee,
		Status:       domain.OrderPending,
	}
	for _, it := range items {
		order.Items = append(order.Items, domain.OrderItem{
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
			Image:    it.Image,
		})
	}

	orders, err := s.Store.Orders()
	if err != nil {
		return domain.Order{}, err
	}
	orders = append(orders, order)
	if err := s.Store.SaveOrders(orders); err != nil {
		return domain.Order{}, err
	}
	if err := s.Cart.Clear(); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

// List returns all orders, newest first. Orders are never deleted.
func (s *OrderService) List() ([]domain.Order, error) {
	orders, err := s.Store.Orders()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Date.After(orders[j].Date)
	})
	return orders, nil
}

func (s *OrderService) Get(id string) (domain.Order, error) {
	orders, err := s.Store.Orders()
	if err != nil {
		return domain.Order{}, err
	}
	for _, o := range orders {
		if o.ID == id {
			return o, nil
		}
	}
	return domain.Order{}, ErrOrderNotFound
}

// UpdateStatus sets the order's status. Only the two known statuses are
// accepted; totals are left untouched.
func (s *OrderService) UpdateStatus(id, status string) error {
	if status != domain.OrderPending && status != domain.OrderCompleted {
		return ErrBadStatus
	}
	orders, err := s.Store.Orders()
	if err != nil {
		return err
	}
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			return s.Store.SaveOrders(orders)
		}
	}
	return ErrOrderNotFound
}

type OrderStats struct {
	Pending   int
	Completed int
	Revenue   float64 // from completed orders only
}

func (s *OrderService) Stats() (OrderStats, error) {
	orders, err := s.Store.Orders()
	if err != nil {
		return OrderStats{}, err
	}
	var st OrderStats
	for _, o := range orders {
		switch o.Status {
		case domain.OrderCompleted:
			st.Completed++
			st.Revenue += o.Total
		default:
			st.Pending++
		}
	}
	return st, nil
}
