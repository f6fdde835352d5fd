package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/adityarama/shopfront/internal/catalog/app"
	"github.com/adityarama/shopfront/internal/catalog/domain"
	"github.com/redis/go-redis/v9"
)

// ItemCache is a cache-aside decorator over the catalog repo. Only
// slug lookups are cached; listings always hit the database.
type ItemCache struct {
	app.ItemRepo
	rdb *redis.Client
	ttl time.Duration
	log *slog.Logger
}

func NewItemCache(repo app.ItemRepo, rdb *redis.Client, ttl time.Duration, log *slog.Logger) *ItemCache {
	return &ItemCache{ItemRepo: repo, rdb: rdb, ttl: ttl, log: log}
}

func (c *ItemCache) GetBySlug(ctx context.Context, slug string) (domain.Item, error) {
	key := "catalog:item:" + slug

	raw, err := c.rdb.Get(ctx, key).Result()
	if err == nil {
		var item domain.Item
		if uerr := json.Unmarshal([]byte(raw), &item); uerr == nil {
			return item, nil
		}
		// corrupt entry, fall through to the database
		c.rdb.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		c.log.Warn("item cache read failed", slog.Any("err", err), slog.String("slug", slug))
	}

	item, err := c.ItemRepo.GetBySlug(ctx, slug)
	if err != nil {
		return domain.Item{}, err
	}

	if raw, merr := json.Marshal(item); merr == nil {
		if serr := c.rdb.Set(ctx, key, raw, c.ttl).Err(); serr != nil {
			c.log.Warn("item cache write failed", slog.Any("err", serr), slog.String("slug", slug))
		}
	}

	return item, nil
}
