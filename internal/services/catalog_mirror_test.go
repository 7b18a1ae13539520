package services_test

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
	"kevina/internal/services"
	"kevina/internal/store"
)

// With a feed configured, Start mirrors every catalog snapshot into the
// local store so the installation keeps a usable catalog offline.
func TestStartMirrorsFeedIntoStore(t *testing.T) {
	ctx := context.Background()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	b := bus.New()
	f, err := feed.New("redis://"+mr.Addr(), b)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	s, err := store.Open(":memory:")
	require.NoError(t, err)

	svc := services.NewCatalogService(s, f, b)
	id, err := svc.Add(ctx, domain.Product{Name: "Vitamin C Serum", Price: 2500})
	require.NoError(t, err)

	stop := svc.Start(ctx)
	defer stop()

	// The initial snapshot is mirrored before Start returns.
	local, err := s.Products()
	require.NoError(t, err)
	require.Len(t, local, 1)
	assert.Equal(t, id, local[0].ID)

	// Later changes reach the store once the change notification lands.
	_, err = svc.Add(ctx, domain.Product{Name: "Rose Water Toner", Price: 1200})
	require.NoError(t, err)
	assert.Eventually(t, func() bool {
		ps, err := s.Products()
		return err == nil && len(ps) == 2
	}, 2*time.Second, 10*time.Millisecond)
}
