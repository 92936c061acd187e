package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

// Client é o recorte do go-redis que o cache usa.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Cache guarda snapshots de leitura (hoje só o dashboard) no redis.
// Totalmente opcional: sem REDIS_URL o ponteiro é nil e todos os
// métodos viram no-op; erro de leitura/escrita degrada para computar
// direto no banco, com log em debug.
type Cache struct {
	rdb Client
	log zerolog.Logger
}

func New(redisURL string, log zerolog.Logger) *Cache {
	if redisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Warn().Err(err).Msg("invalid REDIS_URL, cache disabled")
		return nil
	}

	return NewWithClient(redis.NewClient(opts), log)
}

func NewWithClient(rdb Client, log zerolog.Logger) *Cache {
	return &Cache{
		rdb: rdb,
		log: log,
	}
}

func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Debug().Err(err).Str("key", key).Msg("cache read failed")
		}
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.Debug().Err(err).Str("key", key).Msg("cache payload corrupt")
		return false
	}
	return true
}

func (c *Cache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		c.log.Debug().Err(err).Str("key", key).Msg("cache write failed")
	}
}
