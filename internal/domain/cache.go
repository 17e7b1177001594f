package domain

import "context"

// Ключи кеша — единое место, чтобы не расползались по коду.
func CacheKeyPostFeed() string  { return "feed:posts" }
func CacheKeyEventFeed() string { return "feed:events" }

// Простой k/v интерфейс. Реализация — Redis.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, val []byte, ttlSeconds int) error
	Del(ctx context.Context, keys ...string) error
	Ping(context.Context) error
	Close()
}
