package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"FashionStoreAPI/internal/cache"
	"FashionStoreAPI/internal/model"
)

// CatalogClient talks to the image-similarity service.
type CatalogClient interface {
	AllItems(ctx context.Context, page, itemsPerPage int) (*model.CatalogPage, error)
	FindSimilar(ctx context.Context, queryID string) ([]model.CatalogItem, error)
}

// CatalogService proxies the similarity service and caches page responses.
// Item pages change rarely and carry base64 images, so a short TTL saves a
// lot of upstream traffic.
type CatalogService struct {
	Client CatalogClient
	Cache  cache.Cache
	TTL    time.Duration
}

func NewCatalogService(client CatalogClient, c cache.Cache, ttl time.Duration) *CatalogService {
	return &CatalogService{Client: client, Cache: c, TTL: ttl}
}

func pageKey(page, itemsPerPage int) string {
	return fmt.Sprintf("catalog:all-items:%d:%d", page, itemsPerPage)
}

func (s *CatalogService) AllItems(ctx context.Context, page, itemsPerPage int) (*model.CatalogPage, error) {
	key := pageKey(page, itemsPerPage)
	if raw, err := s.Cache.Get(ctx, key); err == nil {
		var cached model.CatalogPage
		if err := json.Unmarshal(raw, &cached); err == nil {
			return &cached, nil
		}
		// corrupt entry falls through to the upstream fetch
	}

	result, err := s.Client.AllItems(ctx, page, itemsPerPage)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(result); err == nil {
		// cache write failures are not worth failing the request over
		_ = s.Cache.Set(ctx, key, raw, s.TTL)
	}
	return result, nil
}

// FindSimilar is a pass-through: similarity results depend on the query item
// and are not cached.
func (s *CatalogService) FindSimilar(ctx context.Context, queryID string) ([]model.CatalogItem, error) {
	return s.Client.FindSimilar(ctx, queryID)
}
