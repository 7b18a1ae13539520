package migrate_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kevina/internal/domain"
	"kevina/internal/migrate"
	"kevina/internal/store"
)

// fakeCatalog is an in-memory stand-in for the remote feed.
type fakeCatalog struct {
	products []domain.Product
	failAdd  map[string]bool // by name
	listErr  error
	adds     int
}

func (f *fakeCatalog) List(context.Context) ([]domain.Product, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.products, nil
}

func (f *fakeCatalog) Add(_ context.Context, p domain.Product) (string, error) {
	f.adds++
	if f.failAdd[p.Name] {
		return "", errors.New("write refused")
	}
	p.ID = uuid.NewString()
	f.products = append(f.products, p)
	return p.ID, nil
}

func memstore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(":memory:")
	require.NoError(t, err)
	return s
}

func TestRunSeedsEmptyCatalog(t *testing.T) {
	s := memstore(t)
	cat := &fakeCatalog{}

	res, err := migrate.Run(context.Background(), s, cat)
	require.NoError(t, err)

	want := len(migrate.DefaultProducts())
	assert.Equal(t, want, res.Added)
	assert.Equal(t, 0, res.Skipped)
	assert.Len(t, cat.products, want)

	done, _ := s.Flag(store.KeyMigrated)
	assert.True(t, done, "completion flag must be set")
}

func TestRunIsIdempotentUnderRerun(t *testing.T) {
	s := memstore(t)
	cat := &fakeCatalog{}

	_, err := migrate.Run(context.Background(), s, cat)
	require.NoError(t, err)
	first := len(cat.products)

	res, err := migrate.Run(context.Background(), s, cat)
	require.NoError(t, err)

	// Second run is a flag-gated no-op: nothing added, nothing even attempted.
	assert.Equal(t, migrate.Result{}, res)
	assert.Len(t, cat.products, first)
}

func TestRunDedupesByCaseInsensitiveName(t *testing.T) {
	s := memstore(t)
	seed := migrate.DefaultProducts()
	// Pre-existing product with different id and different casing.
	cat := &fakeCatalog{products: []domain.Product{
		{ID: "existing-1", Name: strings.ToUpper(seed[0].Name), Price: 1},
	}}

	res, err := migrate.Run(context.Background(), s, cat)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, len(seed)-1, res.Added)
}

func TestRunSetsFlagDespitePartialFailures(t *testing.T) {
	s := memstore(t)
	seed := migrate.DefaultProducts()
	cat := &fakeCatalog{failAdd: map[string]bool{seed[2].Name: true}}

	res, err := migrate.Run(context.Background(), s, cat)
	require.NoError(t, err)
	assert.Equal(t, len(seed)-1, res.Added)

	done, _ := s.Flag(store.KeyMigrated)
	assert.True(t, done, "flag set regardless of partial failures")

	// The failed product is never retried.
	before := cat.adds
	_, err = migrate.Run(context.Background(), s, cat)
	require.NoError(t, err)
	assert.Equal(t, before, cat.adds)
}

func TestRunLeavesFlagUnsetWhenListFails(t *testing.T) {
	s := memstore(t)
	cat := &fakeCatalog{listErr: errors.New("permission denied")}

	_, err := migrate.Run(context.Background(), s, cat)
	require.Error(t, err)

	done, _ := s.Flag(store.KeyMigrated)
	assert.False(t, done, "failed run must be retryable")
}
