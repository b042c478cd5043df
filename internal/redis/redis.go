package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/tasbih"
)

func NewClient(redisAddress string, redisUsername string, redisPassword string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     redisAddress,
		Username: redisUsername,
		Password: redisPassword,
		DB:       0,
	})
}

// Ping checks the connection within a short deadline.
func Ping(ctx context.Context, rdb *redis.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return rdb.Ping(ctx).Err()
}

// Cache stores raw byte values. Failures are logged and treated as misses.
type Cache struct {
	rdb *redis.Client
}

func NewCache(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb}
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("key", key).Msg("failed to read from redis")
		}
		return nil, false
	}
	return value, true
}

func (c *Cache) Set(ctx context.Context, key string, value []byte, expiration time.Duration) {
	if err := c.rdb.Set(ctx, key, value, expiration).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to add key to redis")
	}
}

// TasbihStore keeps tasbih counters as JSON under tasbih:<user id>.
type TasbihStore struct {
	rdb *redis.Client
}

var _ tasbih.Store = (*TasbihStore)(nil)

func NewTasbihStore(rdb *redis.Client) *TasbihStore {
	return &TasbihStore{rdb: rdb}
}

func tasbihKey(userID string) string { return "tasbih:" + userID }

func (s *TasbihStore) Load(ctx context.Context, userID string) (tasbih.Counter, error) {
	raw, err := s.rdb.Get(ctx, tasbihKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return tasbih.Counter{}, tasbih.ErrNotFound
	}
	if err != nil {
		return tasbih.Counter{}, fmt.Errorf("redis get: %w", err)
	}
	var c tasbih.Counter
	if err := json.Unmarshal(raw, &c); err != nil {
		return tasbih.Counter{}, fmt.Errorf("decode tasbih counter: %w", err)
	}
	return c, nil
}

func (s *TasbihStore) Save(ctx context.Context, userID string, counter tasbih.Counter) error {
	raw, err := json.Marshal(counter)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, tasbihKey(userID), raw, 0).Err(); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to save tasbih counter")
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
