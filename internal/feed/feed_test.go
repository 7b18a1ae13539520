package feed_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"kevina/internal/domain"
	"kevina/internal/feed"
)

func TestSortByNewestDescending(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	products := []domain.Product{
		{ID: "old", CreatedAt: t0},
		{ID: "new", CreatedAt: t0.Add(48 * time.Hour)},
		{ID: "mid", CreatedAt: t0.Add(24 * time.Hour)},
	}
	feed.SortByNewest(products)

	assert.Equal(t, "new", products[0].ID)
	assert.Equal(t, "mid", products[1].ID)
	assert.Equal(t, "old", products[2].ID)
}

func TestSortByNewestKeepsUntimestampedOrder(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	products := []domain.Product{
		{ID: "a"},
		{ID: "b"},
		{ID: "stamped", CreatedAt: t0},
	}
	feed.SortByNewest(products)

	// Entries without createdAt keep their relative positions.
	assert.Equal(t, "a", products[0].ID)
	assert.Equal(t, "b", products[1].ID)
}
