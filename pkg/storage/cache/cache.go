// Package cache fronts an aggregate store with Redis. Redis is never the
// source of truth: any cache failure falls through to the inner store.
package cache

import (
	"Crenza-Backend/pkg/diet"
	"Crenza-Backend/pkg/pantry"
	"Crenza-Backend/pkg/settings"
	"Crenza-Backend/pkg/shopping"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"
	"time"
)

const (
	keyPrefix   = "crenza:cache:"
	KeyPantries = keyPrefix + "pantries"
	KeyShopping = keyPrefix + "shopping"
	KeyDiets    = keyPrefix + "diets"
	KeySettings = keyPrefix + "settings"

	DefaultTTL = 10 * time.Minute
)

type Store[T any] interface {
	Load(ctx context.Context) (*T, error)
	Save(ctx context.Context, v *T) error
}

func NewClient(host, port string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", host, port),
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

type ReadThrough[T any] struct {
	inner  Store[T]
	client *redis.Client
	key    string
	ttl    time.Duration
}

func NewReadThrough[T any](inner Store[T], client *redis.Client, key string, ttl time.Duration) *ReadThrough[T] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ReadThrough[T]{inner: inner, client: client, key: key, ttl: ttl}
}

func (c *ReadThrough[T]) Load(ctx context.Context) (*T, error) {
	raw, err := c.client.Get(ctx, c.key).Bytes()
	switch {
	case err == nil:
		out := new(T)
		if err := json.Unmarshal(raw, out); err == nil {
			return out, nil
		}
		log.Warnw("discarding unreadable cache entry", "key", c.key)
	case !errors.Is(err, redis.Nil):
		log.Warnw("cache read failed, using store", "key", c.key, "error", err)
	}

	v, err := c.inner.Load(ctx)
	if err != nil {
		return nil, err
	}
	c.put(ctx, v)
	return v, nil
}

// Save writes through. A failed store write drops the cached copy so the next
// Load goes back to the store.
func (c *ReadThrough[T]) Save(ctx context.Context, v *T) error {
	if err := c.inner.Save(ctx, v); err != nil {
		if delErr := c.client.Del(ctx, c.key).Err(); delErr != nil {
			log.Warnw("cache invalidation failed", "key", c.key, "error", delErr)
		}
		return err
	}
	c.put(ctx, v)
	return nil
}

func (c *ReadThrough[T]) put(ctx context.Context, v *T) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Warnw("cache encode failed", "key", c.key, "error", err)
		return
	}
	if err := c.client.Set(ctx, c.key, data, c.ttl).Err(); err != nil {
		log.Warnw("cache write failed", "key", c.key, "error", err)
	}
}

func Pantries(inner pantry.PantryRepository, client *redis.Client, ttl time.Duration) pantry.PantryRepository {
	return NewReadThrough[pantry.Inventory](inner, client, KeyPantries, ttl)
}

func Shopping(inner shopping.ShoppingRepository, client *redis.Client, ttl time.Duration) shopping.ShoppingRepository {
	return NewReadThrough[shopping.List](inner, client, KeyShopping, ttl)
}

func Diets(inner diet.DietRepository, client *redis.Client, ttl time.Duration) diet.DietRepository {
	return NewReadThrough[diet.Book](inner, client, KeyDiets, ttl)
}

func Settings(inner settings.SettingsRepository, client *redis.Client, ttl time.Duration) settings.SettingsRepository {
	return settingsCache{NewReadThrough[settings.Settings](settingsStore{inner}, client, KeySettings, ttl)}
}

// settingsStore and settingsCache convert between the value-typed settings
// repository and the pointer-typed Store.
type settingsStore struct {
	settings.SettingsRepository
}

func (s settingsStore) Load(ctx context.Context) (*settings.Settings, error) {
	v, err := s.SettingsRepository.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s settingsStore) Save(ctx context.Context, v *settings.Settings) error {
	return s.SettingsRepository.Save(ctx, *v)
}

type settingsCache struct {
	rt *ReadThrough[settings.Settings]
}

func (s settingsCache) Load(ctx context.Context) (settings.Settings, error) {
	v, err := s.rt.Load(ctx)
	if err != nil {
		return settings.Settings{}, err
	}
	return *v, nil
}

func (s settingsCache) Save(ctx context.Context, v settings.Settings) error {
	return s.rt.Save(ctx, &v)
}
