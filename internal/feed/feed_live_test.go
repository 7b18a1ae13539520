package feed_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kevina/internal/bus"
	"kevina/internal/domain"
	"kevina/internal/feed"
)

func newLiveFeed(t *testing.T) (*miniredis.Miniredis, *feed.Feed, *bus.Bus) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	b := bus.New()
	f, err := feed.New("redis://"+mr.Addr(), b)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return mr, f, b
}

func TestFetchAllOrdersAndSkipsCorruptDocuments(t *testing.T) {
	mr, f, _ := newLiveFeed(t)

	mr.HSet("kevina:products", "old", `{"name":"Old Cream","price":1000,"createdAt":"2026-01-01T00:00:00Z"}`)
	mr.HSet("kevina:products", "new", `{"name":"New Serum","price":2500,"createdAt":"2026-02-01T00:00:00Z"}`)
	mr.HSet("kevina:products", "bad", `{not json`)

	products, err := f.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2, "undecodable document is skipped")
	assert.Equal(t, "new", products[0].ID, "id comes from the hash field")
	assert.Equal(t, "New Serum", products[0].Name)
	assert.Equal(t, "old", products[1].ID)
}

func TestMutationsRepublishLatestSnapshot(t *testing.T) {
	_, f, b := newLiveFeed(t)
	ctx := context.Background()

	var last []domain.Product
	b.Subscribe(func(e bus.Event) {
		if e.Kind == bus.ProductsChanged {
			last = e.Products
		}
	})

	id, err := f.Add(ctx, domain.Product{Name: " Vitamin C Serum ", Price: 2500, Image: "https://example.com/serum.png"})
	require.NoError(t, err)
	require.Len(t, last, 1)
	assert.Equal(t, id, last[0].ID)
	assert.Equal(t, "Vitamin C Serum", last[0].Name, "name trimmed on add")
	created := last[0].CreatedAt
	require.False(t, created.IsZero())

	require.NoError(t, f.Update(ctx, id, domain.Product{Name: "Vitamin C Serum 20%", Price: 2800, Image: last[0].Image}))
	require.Len(t, last, 1)
	assert.Equal(t, "Vitamin C Serum 20%", last[0].Name)
	assert.Equal(t, 2800.0, last[0].Price)
	assert.True(t, last[0].CreatedAt.Equal(created), "update keeps creation time")

	require.NoError(t, f.Remove(ctx, id))
	assert.Empty(t, last, "listener holds the latest snapshot")
}

func TestSubscribeDeliversSnapshotPerChange(t *testing.T) {
	_, f, _ := newLiveFeed(t)
	ctx := context.Background()

	_, err := f.Add(ctx, domain.Product{Name: "Rose Water Toner", Price: 1200})
	require.NoError(t, err)

	snapshots := make(chan []domain.Product, 8)
	stop := f.Subscribe(ctx, func(ps []domain.Product) { snapshots <- ps })
	defer stop()

	// The first snapshot is delivered before Subscribe returns.
	initial := <-snapshots
	require.Len(t, initial, 1)
	assert.Equal(t, "Rose Water Toner", initial[0].Name)

	_, err = f.Add(ctx, domain.Product{Name: "Clay Mask", Price: 1800})
	require.NoError(t, err)

	deadline := time.After(2 * time.Second)
	for {
		select {
		case ps := <-snapshots:
			if len(ps) == 2 {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for the refreshed snapshot")
		}
	}
}

func TestSubscribeDegradesWhenServerUnreachable(t *testing.T) {
	mr, f, _ := newLiveFeed(t)
	mr.Close()

	var got [][]domain.Product
	stop := f.Subscribe(context.Background(), func(ps []domain.Product) { got = append(got, ps) })

	require.Len(t, got, 1, "one-shot delivery when the subscription cannot be established")
	assert.NotNil(t, got[0])
	assert.Empty(t, got[0], "empty list on total failure")

	// The returned unsubscribe is a safe no-op.
	stop()
	stop()
	assert.Len(t, got, 1)
}
