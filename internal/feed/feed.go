// Package feed is the shared, real-time product catalog: a Redis hash of
// product documents plus a pub/sub channel that signals every change. All
// clients of the same Redis see the same catalog, unlike the local store
// which is scoped to one installation.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"kevina/internal/bus"
	"kevina/internal/domain"
	applog "kevina/internal/log"
)

const (
	productsKey   = "kevina:products"
	changeChannel = "kevina:products:changed"
)

type Feed struct {
	client *redis.Client
	bus    *bus.Bus
}

// New connects to Redis at redisURL and verifies the connection before
// returning.
func New(redisURL string, b *bus.Bus) (*Feed, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url %s: %w", redisURL, err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis at %s: %w", redisURL, err)
	}
	return &Feed{client: client, bus: b}, nil
}

func (f *Feed) Close() error { return f.client.Close() }

// FetchAll returns every product in the feed, newest first. Documents that
// fail to decode are skipped, not fatal.
func (f *Feed) FetchAll(ctx context.Context) ([]domain.Product, error) {
	raw, err := f.client.HGetAll(ctx, productsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	products := make([]domain.Product, 0, len(raw))
	for id, doc := range raw {
		var p domain.Product
		if err := json.Unmarshal([]byte(doc), &p); err != nil {
			applog.Error(nil, "feed.decode", err, map[string]any{"id": id})
			continue
		}
		p.ID = id
		products = append(products, p)
	}
	SortByNewest(products)
	return products, nil
}

// SortByNewest orders by creation time descending. Entries without a
// timestamp keep their relative order.
func SortByNewest(products []domain.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i].CreatedAt, products[j].CreatedAt
		if a.IsZero() || b.IsZero() {
			return false
		}
		return a.After(b)
	})
}

// Add stores a new product document and returns its generated id.
func (f *Feed) Add(ctx context.Context, p domain.Product) (string, error) {
	id := uuid.NewString()
	now := time.Now().UTC()
	p.ID = id
	p.Name = strings.TrimSpace(p.Name)
	p.Image = strings.TrimSpace(p.Image)
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := f.put(ctx, id, p); err != nil {
		return "", err
	}
	f.notify(ctx)
	return id, nil
}

// Update overwrites the document's mutable fields, keeping its creation
// timestamp.
func (f *Feed) Update(ctx context.Context, id string, p domain.Product) error {
	existing, err := f.client.HGet(ctx, productsKey, id).Result()
	if err == nil {
		var prev domain.Product
		if jsonErr := json.Unmarshal([]byte(existing), &prev); jsonErr == nil {
			p.CreatedAt = prev.CreatedAt
		}
	} else if err != redis.Nil {
		return fmt.Errorf("read product %s: %w", id, err)
	}
	p.ID = id
	p.Name = strings.TrimSpace(p.Name)
	p.Image = strings.TrimSpace(p.Image)
	p.UpdatedAt = time.Now().UTC()
	if err := f.put(ctx, id, p); err != nil {
		return err
	}
	f.notify(ctx)
	return nil
}

// Remove deletes the document.
func (f *Feed) Remove(ctx context.Context, id string) error {
	if err := f.client.HDel(ctx, productsKey, id).Err(); err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	f.notify(ctx)
	return nil
}

func (f *Feed) put(ctx context.Context, id string, p domain.Product) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode product: %w", err)
	}
	if err := f.client.HSet(ctx, productsKey, id, doc).Err(); err != nil {
		return fmt.Errorf("store product %s: %w", id, err)
	}
	return nil
}

// notify signals subscribers and also republishes the full list on the
// event bus directly, so local listeners don't wait on pub/sub latency.
func (f *Feed) notify(ctx context.Context) {
	if err := f.client.Publish(ctx, changeChannel, "changed").Err(); err != nil {
		applog.Error(nil, "feed.publish", err, nil)
	}
	products, err := f.FetchAll(ctx)
	if err != nil {
		applog.Error(nil, "feed.republish", err, nil)
		return
	}
	f.bus.Publish(bus.Event{Kind: bus.ProductsChanged, Products: products})
}

// Subscribe opens a live subscription: onChange receives the full current
// product list immediately and again after every remote change, and each
// snapshot is republished on the event bus. If the subscription cannot be
// established it degrades to a single one-shot fetch (empty list on total
// failure) and returns a no-op unsubscribe.
func (f *Feed) Subscribe(ctx context.Context, onChange func([]domain.Product)) func() {
	deliver := func(products []domain.Product) {
		onChange(products)
		f.bus.Publish(bus.Event{Kind: bus.ProductsChanged, Products: products})
	}
	fallback := func() {
		products, err := f.FetchAll(ctx)
		if err != nil {
			applog.Error(nil, "feed.fallback.fetch", err, nil)
			products = []domain.Product{}
		}
		deliver(products)
	}

	subCtx, cancel := context.WithCancel(ctx)
	pubsub := f.client.Subscribe(subCtx, changeChannel)
	if _, err := pubsub.Receive(subCtx); err != nil {
		applog.Error(nil, "feed.subscribe", err, nil)
		cancel()
		_ = pubsub.Close()
		fallback()
		return func() {}
	}

	// Initial snapshot, like a fresh listener on any live query.
	fallback()

	go func() {
		defer func() { _ = pubsub.Close() }()
		ch := pubsub.Channel()
		for {
			select {
			case <-subCtx.Done():
				return
			case _, ok := <-ch:
				if !ok {
					return
				}
				products, err := f.FetchAll(subCtx)
				if err != nil {
					applog.Error(nil, "feed.refresh", err, nil)
					continue
				}
				deliver(products)
			}
		}
	}()

	return cancel
}
