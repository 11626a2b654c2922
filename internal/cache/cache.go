// Package cache is a small read-through JSON cache on redis, used to keep
// hot single-record lookups off the database.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/sreekarnv/mint/config"
)

type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(cfg config.Redis) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.ADDR,
		Password:        cfg.PASSWORD,
		MaxRetries:      3,
		MinRetryBackoff: 50 * time.Millisecond,
		MaxRetryBackoff: 2 * time.Second,
	})

	return &Cache{rdb: rdb, ttl: cfg.TTL}
}

// Get unmarshals the cached value into dest. The second return is false on
// a miss; cache errors are logged and reported as misses so a flaky redis
// never breaks a read path.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) bool {
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logrus.Errorf("Cache get error for %s: %s", key, err.Error())
		}
		return false
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		logrus.Errorf("Cache unmarshal error for %s: %s", key, err.Error())
		return false
	}
	return true
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		logrus.Errorf("Cache marshal error for %s: %s", key, err.Error())
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		logrus.Errorf("Cache set error for %s: %s", key, err.Error())
	}
}

func (c *Cache) Delete(ctx context.Context, key string) {
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		logrus.Errorf("Cache delete error for %s: %s", key, err.Error())
	}
}

func (c *Cache) Close() error {
	return c.rdb.Close()
}
