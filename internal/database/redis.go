package database

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOptions configures the Redis backend
type RedisOptions struct {
	Addr    string
	Prefix  string
	Timeout time.Duration
}

// RedisDatabase stores app state as plain string keys under a prefix
type RedisDatabase struct {
	client  *redis.Client
	prefix  string
	timeout time.Duration
}

// OpenRedis creates a Redis-backed DB. The connection is lazy, so an
// unreachable server surfaces as errors from the individual calls.
func OpenRedis(opts RedisOptions) *RedisDatabase {
	if opts.Prefix == "" {
		opts.Prefix = "ytfront:"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 2 * time.Second
	}

	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		DialTimeout:  opts.Timeout,
		ReadTimeout:  opts.Timeout,
		WriteTimeout: opts.Timeout,
		MaxRetries:   1,
	})

	return NewRedisWithClient(client, opts.Prefix, opts.Timeout)
}

// NewRedisWithClient wraps an existing client. Keys are stored under prefix.
func NewRedisWithClient(client *redis.Client, prefix string, timeout time.Duration) *RedisDatabase {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &RedisDatabase{client: client, prefix: prefix, timeout: timeout}
}

func (db *RedisDatabase) key(k string) string {
	return db.prefix + k
}

func (db *RedisDatabase) GetAppState(key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), db.timeout)
	defer cancel()

	v, err := db.client.Get(ctx, db.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %q: %w", key, err)
	}
	return v, true, nil
}

func (db *RedisDatabase) SaveAppState(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.timeout)
	defer cancel()

	if err := db.client.Set(ctx, db.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

func (db *RedisDatabase) DeleteAppState(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.timeout)
	defer cancel()

	if err := db.client.Del(ctx, db.key(key)).Err(); err != nil {
		return fmt.Errorf("redis del %q: %w", key, err)
	}
	return nil
}

// Keys scans every key under the prefix and returns them without it
func (db *RedisDatabase) Keys() ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), db.timeout)
	defer cancel()

	var keys []string
	iter := db.client.Scan(ctx, 0, db.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, strings.TrimPrefix(iter.Val(), db.prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis scan: %w", err)
	}
	sort.Strings(keys)
	return keys, nil
}

// Clear deletes every key under the prefix
func (db *RedisDatabase) Clear() error {
	keys, err := db.Keys()
	if err != nil {
		return err
	}
	for _, k := range keys {
		if err := db.DeleteAppState(k); err != nil {
			return err
		}
	}
	return nil
}

func (db *RedisDatabase) Close() error {
	return db.client.Close()
}
