package store

import (
	"strconv"

	"golang.org/x/crypto/bcrypt"

	"kevina/internal/domain"
)

// Default mutable admin account, written through on first read. A second,
// fixed bypass pair lives in the auth service.
const (
	DefaultAdminEmail    = "admin@kevina.com"
	defaultAdminPassword = "admin123"
)

func (s *Store) Products() ([]domain.Product, error) {
	var products []domain.Product
	ok, err := s.Get(KeyProducts, &products)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.Product{}, nil
	}
	return products, nil
}

func (s *Store) SaveProducts(products []domain.Product) error {
	return s.Set(KeyProducts, products)
}

// Cart returns the stored cart, normalizing legacy items without a quantity
// to 1 (backward compatibility with earlier saved carts).
func (s *Store) Cart() ([]domain.CartItem, error) {
	var cart []domain.CartItem
	ok, err := s.Get(KeyCart, &cart)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.CartItem{}, nil
	}
	for i := range cart {
		if cart[i].Quantity < 1 {
			cart[i].Quantity = 1
		}
	}
	return cart, nil
}

func (s *Store) SaveCart(cart []domain.CartItem) error {
	return s.Set(KeyCart, cart)
}

func (s *Store) Orders() ([]domain.Order, error) {
	var orders []domain.Order
	ok, err := s.Get(KeyOrders, &orders)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.Order{}, nil
	}
	return orders, nil
}

func (s *Store) SaveOrders(orders []domain.Order) error {
	return s.Set(KeyOrders, orders)
}

// Content returns the site copy, initializing the key with the built-in
// defaults on first read (write-through).
func (s *Store) Content() (domain.SiteContent, error) {
	var content domain.SiteContent
	ok, err := s.Get(KeySiteContent, &content)
	if err != nil {
		return domain.SiteContent{}, err
	}
	if !ok {
		content = domain.DefaultContent()
		if err := s.Set(KeySiteContent, content); err != nil {
			return domain.SiteContent{}, err
		}
	}
	return content, nil
}

func (s *Store) SaveContent(content domain.SiteContent) error {
	return s.Set(KeySiteContent, content)
}

// DeliveryFee returns the configured fee, initializing to 0 on first read.
func (s *Store) DeliveryFee() (float64, error) {
	raw, ok, err := s.GetRaw(KeyDeliveryFee)
	if err != nil {
		return 0, err
	}
	if !ok {
		if err := s.SaveDeliveryFee(0); err != nil {
			return 0, err
		}
		return 0, nil
	}
	fee, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		// Corrupt value reads as 0 rather than failing the page.
		return 0, nil
	}
	return fee, nil
}

func (s *Store) SaveDeliveryFee(fee float64) error {
	return s.SetRaw(KeyDeliveryFee, strconv.FormatFloat(fee, 'f', -1, 64))
}

// AdminCredentials returns the mutable admin record, creating the default
// account (with a bcrypt hash, never plaintext) on first read.
func (s *Store) AdminCredentials() (domain.AdminCredentials, error) {
	var creds domain.AdminCredentials
	ok, err := s.Get(KeyAdmin, &creds)
	if err != nil {
		return domain.AdminCredentials{}, err
	}
	if !ok {
		hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return domain.AdminCredentials{}, err
		}
		creds = domain.AdminCredentials{Email: DefaultAdminEmail, PasswordHash: string(hash)}
		if err := s.Set(KeyAdmin, creds); err != nil {
			return domain.AdminCredentials{}, err
		}
	}
	return creds, nil
}

func (s *Store) SaveAdminCredentials(creds domain.AdminCredentials) error {
	return s.Set(KeyAdmin, creds)
}

func (s *Store) UserType() (string, error) {
	raw, _, err := s.GetRaw(KeyUserType)
	return raw, err
}

func (s *Store) SetUserType(t string) error {
	if t == "" {
		return s.Delete(KeyUserType)
	}
	return s.SetRaw(KeyUserType, t)
}

func (s *Store) Theme() (string, error) {
	raw, _, err := s.GetRaw(KeyTheme)
	return raw, err
}

func (s *Store) SaveTheme(theme string) error { return s.SetRaw(KeyTheme, theme) }
