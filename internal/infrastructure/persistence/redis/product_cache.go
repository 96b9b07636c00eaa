package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/payflow/storepos/internal/domain/product"
)

// productCache decorates a product repository with a cache-aside layer.
// Reads try Redis first and fall through to the inner repository on a
// miss; writes invalidate. Cache failures are logged and treated as
// misses, the catalog must keep working when Redis is down.
type productCache struct {
	inner  product.Repository
	client *redis.Client
	ttl    time.Duration
}

// NewProductCache wraps repo with a Redis cache. ttl bounds staleness
// for entries updated by another instance.
func NewProductCache(repo product.Repository, client *redis.Client, ttl time.Duration) product.Repository {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &productCache{
		inner:  repo,
		client: client,
		ttl:    ttl,
	}
}

func productKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}

func (c *productCache) Create(ctx context.Context, p *product.Product) error {
	return c.inner.Create(ctx, p)
}

func (c *productCache) FindByID(ctx context.Context, id uint) (*product.Product, error) {
	key := productKey(id)

	data, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var p product.Product
		if err := json.Unmarshal(data, &p); err == nil {
			return &p, nil
		}
		// corrupt entry, drop and reload
		c.client.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("product cache get %s: %v", key, err)
	}

	p, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(p); err == nil {
		if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
			log.Printf("product cache set %s: %v", key, err)
		}
	}

	return p, nil
}

func (c *productCache) Update(ctx context.Context, p *product.Product) error {
	if err := c.inner.Update(ctx, p); err != nil {
		return err
	}

	if err := c.client.Del(ctx, productKey(p.ID)).Err(); err != nil {
		log.Printf("product cache del %s: %v", productKey(p.ID), err)
	}

	return nil
}

func (c *productCache) List(ctx context.Context, params product.ListParams) ([]*product.Product, int64, error) {
	// Lists are not cached; pagination plus activity filters make the
	// key space too wide to invalidate correctly.
	return c.inner.List(ctx, params)
}
