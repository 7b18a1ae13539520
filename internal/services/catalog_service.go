package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"kevina/internal/bus"
	"kevina/internal/domain"
	"kevina/internal/feed"
	applog "kevina/internal/log"
	"kevina/internal/store"
)

var ErrProductNotFound = errors.New("product not found")

// CatalogService serves the product catalog from the remote feed when one
// is configured, falling back to the local store otherwise. Every mutation
// ends in a ProductsChanged event on the bus.
type CatalogService struct {
	Store *store.Store
	Feed  *feed.Feed // nil when REDIS_URL is not set
	Bus   *bus.Bus
}

func NewCatalogService(s *store.Store, f *feed.Feed, b *bus.Bus) *CatalogService {
	return &CatalogService{Store: s, Feed: f, Bus: b}
}

// Start opens the live feed subscription and mirrors every snapshot into
// the local store, so the stable local key tracks the shared catalog.
// Returns an unsubscribe func; a no-op when no feed is configured.
func (s *CatalogService) Start(ctx context.Context) func() {
	if s.Feed == nil {
		return func() {}
	}
	return s.Feed.Subscribe(ctx, func(products []domain.Product) {
		if err := s.Store.SaveProducts(products); err != nil {
			applog.Error(nil, "catalog.mirror", err, nil)
		}
	})
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Product, error) {
	if s.Feed != nil {
		return s.Feed.FetchAll(ctx)
	}
	return s.Store.Products()
}

func (s *CatalogService) Get(ctx context.Context, id string) (domain.Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return domain.Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrProductNotFound
}

func (s *CatalogService) Add(ctx context.Context, p domain.Product) (string, error) {
	if s.Feed != nil {
		return s.Feed.Add(ctx, p)
	}
	products, err := s.Store.Products()
	if err != nil {
		return "", err
	}
	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.Name = strings.TrimSpace(p.Name)
	p.Image = strings.TrimSpace(p.Image)
	p.CreatedAt = now
	p.UpdatedAt = now
	products = append([]domain.Product{p}, products...)
	if err := s.saveLocal(products); err != nil {
		return "", err
	}
	return p.ID, nil
}

func (s *CatalogService) Update(ctx context.Context, id string, p domain.Product) error {
	if s.Feed != nil {
		return s.Feed.Update(ctx, id, p)
	}
	products, err := s.Store.Products()
	if err != nil {
		return err
	}
	for i := range products {
		if products[i].ID != id {
			continue
		}
		products[i].Name = strings.TrimSpace(p.Name)
		products[i].Price = p.Price
		products[i].Image = strings.TrimSpace(p.Image)
		products[i].Description = p.Description
		products[i].UpdatedAt = time.Now().UTC()
		return s.saveLocal(products)
	}
	return ErrProductNotFound
}

func (s *CatalogService) Remove(ctx context.Context, id string) error {
	if s.Feed != nil {
		return s.Feed.Remove(ctx, id)
	}
	products, err := s.Store.Products()
	if err != nil {
		return err
	}
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return s.saveLocal(kept)
}

func (s *CatalogService) saveLocal(products []domain.Product) error {
	if err := s.Store.SaveProducts(products); err != nil {
		return err
	}
	s.Bus.Publish(bus.Event{Kind: bus.ProductsChanged, Products: products})
	return nil
}
