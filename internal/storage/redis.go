package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/pixil98/go-survive/internal/game"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps saves in Redis under <prefix>:save:<slot>, with a set of
// slot names at <prefix>:saves.
type RedisStore struct {
	client *redis.Client
	prefix string
}

var _ SlotStore = (*RedisStore)(nil)

// NewRedisStore wraps an existing client.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "survive"
	}
	return &RedisStore{client: client, prefix: prefix}
}

// DialRedis connects to the server at url and checks it responds.
func DialRedis(ctx context.Context, url string, prefix string) (*RedisStore, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return NewRedisStore(client, prefix), nil
}

func (s *RedisStore) key(slot string) string {
	return fmt.Sprintf("%s:save:%s", s.prefix, slot)
}

func (s *RedisStore) indexKey() string {
	return s.prefix + ":saves"
}

func (s *RedisStore) Write(ctx context.Context, slot string, data []byte) error {
	if err := ValidateSlot(slot); err != nil {
		return err
	}
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.key(slot), data, 0)
		pipe.SAdd(ctx, s.indexKey(), slot)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: redis write: %w", game.ErrIO, err)
	}
	return nil
}

func (s *RedisStore) Read(ctx context.Context, slot string) ([]byte, error) {
	if err := ValidateSlot(slot); err != nil {
		return nil, err
	}
	data, err := s.client.Get(ctx, s.key(slot)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, slotNotFound(slot)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: redis read: %w", game.ErrIO, err)
	}
	return data, nil
}

func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	slots, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: redis list: %w", game.ErrIO, err)
	}
	sort.Strings(slots)
	return slots, nil
}

// Close releases the client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
