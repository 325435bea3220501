package badge

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/bucketly/bucketly-backend/internal/domain"
)

type catalogSource interface {
	ListCatalog(ctx context.Context) ([]domain.BadgeDefinition, error)
}

const catalogKey = "catalog"

// catalogCache keeps the read-only badge catalog in memory for ttl.
type catalogCache struct {
	src   catalogSource
	cache *expirable.LRU[string, []domain.BadgeDefinition]
}

func newCatalogCache(src catalogSource, ttl time.Duration) *catalogCache {
	return &catalogCache{
		src:   src,
		cache: expirable.NewLRU[string, []domain.BadgeDefinition](1, nil, ttl),
	}
}

func (c *catalogCache) ListCatalog(ctx context.Context) ([]domain.BadgeDefinition, error) {
	if cached, ok := c.cache.Get(catalogKey); ok {
		return cloneCatalog(cached), nil
	}

	catalog, err := c.src.ListCatalog(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.Add(catalogKey, cloneCatalog(catalog))
	return cloneCatalog(catalog), nil
}

func cloneCatalog(in []domain.BadgeDefinition) []domain.BadgeDefinition {
	out := make([]domain.BadgeDefinition, len(in))
	copy(out, in)
	return out
}
