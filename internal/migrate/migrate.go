// Package migrate seeds the default catalog into the active product backend
// exactly once per installation, gated by a local flag.
package migrate

import (
	"context"
	"strings"

	"kevina/internal/domain"
	applog "kevina/internal/log"
	"kevina/internal/store"
)

// Catalog is the product backend being seeded: the remote feed when one is
// configured, the local catalog otherwise.
type Catalog interface {
	List(ctx context.Context) ([]domain.Product, error)
	Add(ctx context.Context, p domain.Product) (string, error)
}

type Result struct {
	Added   int
	Skipped int
}

// Run adds each default product unless one with the same name (case-
// insensitive) already exists. The completion flag is set even when some
// adds fail, so a half-completed run is never retried automatically; only
// a failure to read the existing catalog leaves the flag unset.
func Run(ctx context.Context, s *store.Store, catalog Catalog) (Result, error) {
	done, err := s.Flag(store.KeyMigrated)
	if err != nil {
		return Result{}, err
	}
	if done {
		return Result{}, nil
	}

	existing, err := catalog.List(ctx)
	if err != nil {
		return Result{}, err
	}
	names := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		names[normalize(p.Name)] = struct{}{}
	}

	var res Result
	for _, p := range DefaultProducts() {
		if _, ok := names[normalize(p.Name)]; ok {
			res.Skipped++
			continue
		}
		if _, err := catalog.Add(ctx, p); err != nil {
			applog.Error(nil, "migrate.add", err, map[string]any{"name": p.Name})
			continue
		}
		names[normalize(p.Name)] = struct{}{}
		res.Added++
	}

	if err := s.SetFlag(store.KeyMigrated, true); err != nil {
		return res, err
	}
	applog.Info(nil, "migrate.done", map[string]any{"added": res.Added, "skipped": res.Skipped})
	return res, nil
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
