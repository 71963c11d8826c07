// Package redis is the persistence adapter of the catalog: three named
// JSON blobs in Redis, one per collection, written without TTL so the
// catalog survives restarts. No business rules live here.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/mynav/mynav/internal/domain"
)

// Store handles Redis operations for the catalog blobs.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis blob store.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// LoadLinks reads the link blob. The second result is false when the
// blob does not exist yet (first run).
func (s *Store) LoadLinks(ctx context.Context) ([]domain.Link, bool, error) {
	var links []domain.Link
	ok, err := s.load(ctx, KeyLinks, &links)
	return links, ok, err
}

// SaveLinks rewrites the link blob.
func (s *Store) SaveLinks(ctx context.Context, links []domain.Link) error {
	return s.save(ctx, KeyLinks, links)
}

// LoadCategories reads the category blob.
func (s *Store) LoadCategories(ctx context.Context) ([]domain.Category, bool, error) {
	var categories []domain.Category
	ok, err := s.load(ctx, KeyCategories, &categories)
	return categories, ok, err
}

// SaveCategories rewrites the category blob.
func (s *Store) SaveCategories(ctx context.Context, categories []domain.Category) error {
	return s.save(ctx, KeyCategories, categories)
}

// LoadSettings reads the settings blob.
func (s *Store) LoadSettings(ctx context.Context) (domain.Settings, bool, error) {
	var settings domain.Settings
	ok, err := s.load(ctx, KeySettings, &settings)
	return settings, ok, err
}

// SaveSettings rewrites the settings blob.
func (s *Store) SaveSettings(ctx context.Context, settings domain.Settings) error {
	return s.save(ctx, KeySettings, settings)
}

func (s *Store) load(ctx context.Context, key string, out any) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return true, nil
}

func (s *Store) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	// No TTL: catalog blobs are durable, not cache.
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
