package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"gppgateway/internal/notice/models"
	"gppgateway/pkg/platform/sentinel"
)

// DefaultManualNoticeKey is the Redis key holding the manual-testing notice.
const DefaultManualNoticeKey = "gpp:manual-notice"

// Loader turns stored XML back into a Notice.
type Loader func(xml string) (models.Notice, error)

// RedisStore keeps the manual-testing slot in Redis so it survives restarts
// and is shared between gateway replicas. The notice is stored as XML without
// a TTL.
type RedisStore struct {
	client *redis.Client
	key    string
	load   Loader
}

// NewRedis creates a Redis-backed single-slot store. An empty key falls back
// to DefaultManualNoticeKey.
func NewRedis(client *redis.Client, key string, load Loader) *RedisStore {
	if key == "" {
		key = DefaultManualNoticeKey
	}
	return &RedisStore{client: client, key: key, load: load}
}

// Put serializes the notice and overwrites the slot.
func (s *RedisStore) Put(ctx context.Context, notice models.Notice) error {
	xml, err := notice.XML()
	if err != nil {
		return fmt.Errorf("serialize notice: %w", err)
	}
	if err := s.client.Set(ctx, s.key, xml, 0).Err(); err != nil {
		return fmt.Errorf("store notice: %w: %v", sentinel.ErrUnavailable, err)
	}
	return nil
}

// Get reads the slot and reloads the notice. An empty slot yields
// sentinel.ErrNotFound.
func (s *RedisStore) Get(ctx context.Context) (models.Notice, error) {
	xml, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read notice: %w: %v", sentinel.ErrUnavailable, err)
	}
	notice, err := s.load(xml)
	if err != nil {
		return nil, fmt.Errorf("reload stored notice: %w", err)
	}
	return notice, nil
}
