package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"giftwell/internal/campaign/designer"
	"giftwell/internal/campaign/store"
)

const sessionKeyPrefix = "campaign:session:"

// RedisStore persists designer sessions in Redis with a TTL so abandoned
// sessions expire on their own. This is the production implementation for
// deployments with more than one node.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Save(ctx context.Context, state designer.State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	key := sessionKeyPrefix + state.ID.String()
	if err := s.client.Set(ctx, key, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id uuid.UUID) (designer.State, error) {
	payload, err := s.client.Get(ctx, sessionKeyPrefix+id.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return designer.State{}, store.ErrNotFound
	}
	if err != nil {
		return designer.State{}, fmt.Errorf("read session: %w", err)
	}

	var state designer.State
	if err := json.Unmarshal(payload, &state); err != nil {
		return designer.State{}, fmt.Errorf("decode session: %w", err)
	}
	return state, nil
}

func (s *RedisStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+id.String()).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
