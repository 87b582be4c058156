// Package registry coordinates the jFrog registry actions: it loads the npm
// user config, applies one list, add or delete operation and saves the result.
package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/devantler-tech/jnl/pkg/registry"
)

var (
	// ErrAlreadyExists is returned by Add when the registry is already configured.
	ErrAlreadyExists = errors.New("registry already exists")
	// ErrNotFound is returned by Delete when the registry is not configured.
	ErrNotFound = errors.New("registry not found")
)

// Store is the persisted npm user configuration.
type Store interface {
	registry.MutableNamespace
	Load() error
	Save() error
}

// Fetcher retrieves credential entries for a registry.
type Fetcher interface {
	Fetch(ctx context.Context, key registry.Key, token string) ([]registry.Entry, error)
}

// Service runs registry actions against a Store.
type Service struct {
	store   Store
	fetcher Fetcher
	logger  *slog.Logger
}

// NewService creates a Service. A nil logger falls back to slog.Default.
func NewService(store Store, fetcher Fetcher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{store: store, fetcher: fetcher, logger: logger}
}

// List loads the config and returns the configured registries.
func (s *Service) List(_ context.Context) (registry.Table, error) {
	err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("list registries: %w", err)
	}

	return registry.Extract(s.store), nil
}

// Add fetches credentials for key and persists them.
// It returns ErrAlreadyExists without contacting the registry when key is
// already configured.
func (s *Service) Add(ctx context.Context, key registry.Key, token string) error {
	table, err := s.List(ctx)
	if err != nil {
		return err
	}

	if table.Has(key) {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, key)
	}

	entries, err := s.fetcher.Fetch(ctx, key, token)
	if err != nil {
		return fmt.Errorf("fetch credentials for %s: %w", key, err)
	}

	written := registry.Apply(s.store, key, entries)
	s.logger.DebugContext(ctx, "applied registry entries", "registry", key.String(), "keys", written)

	err = s.store.Save()
	if err != nil {
		return fmt.Errorf("add registry %s: %w", key, err)
	}

	return nil
}

// Delete removes key and its fields from the config.
// It returns ErrNotFound without saving when key is not configured.
func (s *Service) Delete(ctx context.Context, key registry.Key) error {
	table, err := s.List(ctx)
	if err != nil {
		return err
	}

	if !table.Has(key) {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	registry.Delete(s.store, key)

	err = s.store.Save()
	if err != nil {
		return fmt.Errorf("delete registry %s: %w", key, err)
	}

	s.logger.DebugContext(ctx, "deleted registry", "registry", key.String())

	return nil
}
