package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/constants"
)

// RedisStore keeps sessions in Redis so several dashboard replicas can share them
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed store; ttl <= 0 disables expiry
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func tokenKey(sid string) string {
	return fmt.Sprintf(constants.KeyAdminToken, sid)
}

func viewKey(sid string) string {
	return fmt.Sprintf(constants.KeyAdminView, sid)
}

func (s *RedisStore) SetToken(ctx context.Context, sid, token string) error {
	if err := s.client.Set(ctx, tokenKey(sid), token, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session token: %w", err)
	}
	return nil
}

func (s *RedisStore) GetToken(ctx context.Context, sid string) (string, error) {
	token, err := s.client.Get(ctx, tokenKey(sid)).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session token: %w", err)
	}
	return token, nil
}

func (s *RedisStore) SaveView(ctx context.Context, sid, name string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal view %s: %w", name, err)
	}

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, viewKey(sid), name, data)
	if s.ttl > 0 {
		pipe.Expire(ctx, viewKey(sid), s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store view %s: %w", name, err)
	}
	return nil
}

func (s *RedisStore) LoadView(ctx context.Context, sid, name string, v interface{}) error {
	data, err := s.client.HGet(ctx, viewKey(sid), name).Bytes()
	if err == redis.Nil {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to read view %s: %w", name, err)
	}
	return json.Unmarshal(data, v)
}

func (s *RedisStore) Clear(ctx context.Context, sid string) error {
	if err := s.client.Del(ctx, tokenKey(sid), viewKey(sid)).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
