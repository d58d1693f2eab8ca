package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"beverage-kg/internal/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const defaultTTL = 600 * time.Second

type Redis struct {
	client *redis.Client
	logger *zap.SugaredLogger
	ttl    time.Duration

	warnedUnavailable atomic.Bool
}

// NewRedis connects to Redis and pings it. When Redis cannot be reached the
// returned cache bypasses every call instead of failing.
func NewRedis(cfg config.RedisConfig, logger *zap.SugaredLogger) *Redis {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warnw("redis unavailable, bypassing cache", "addr", cfg.Addr(), "error", err)
		_ = client.Close()
		return &Redis{client: nil, logger: logger, ttl: ttl}
	}

	return NewRedisWithClient(client, ttl, logger)
}

// NewRedisWithClient wraps an existing client without pinging it.
func NewRedisWithClient(client *redis.Client, ttl time.Duration, logger *zap.SugaredLogger) *Redis {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Redis{client: client, logger: logger, ttl: ttl}
}

func (r *Redis) isUnavailable() bool {
	return r == nil || r.client == nil
}

func (r *Redis) warnUnavailableOnce(err error) {
	if r == nil || r.logger == nil {
		return
	}
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.logger.Warnw("redis unavailable, bypassing cache", "error", err)
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	if r.isUnavailable() {
		return errors.New("redis unavailable")
	}
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	if r.isUnavailable() {
		return nil
	}
	return r.client.Close()
}

func (r *Redis) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if r.isUnavailable() {
		return false, nil
	}
	b, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		r.warnUnavailableOnce(err)
		return false, err
	}
	if len(b) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Redis) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if r.isUnavailable() {
		return nil
	}
	if ttl <= 0 {
		ttl = r.ttl
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, key, b, ttl).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if r.isUnavailable() {
		return nil
	}
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

// PurgeStale removes cached entries under prefix that were written for a
// different table fingerprint. Keys look like prefix:fingerprint:hash.
func (r *Redis) PurgeStale(ctx context.Context, prefix, fingerprint string) (int, error) {
	if r.isUnavailable() {
		return 0, nil
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return 0, nil
	}
	keep := prefix + ":" + fingerprint + ":"

	removed := 0
	iter := r.client.Scan(ctx, 0, prefix+":*", 0).Iterator()
	for iter.Next(ctx) {
		k := iter.Val()
		if strings.HasPrefix(k, keep) {
			continue
		}
		if err := r.client.Del(ctx, k).Err(); err != nil {
			r.logger.Warnw("redis delete failed", "key", k, "error", err)
			continue
		}
		removed++
	}
	if err := iter.Err(); err != nil {
		r.warnUnavailableOnce(err)
		return removed, err
	}
	return removed, nil
}
