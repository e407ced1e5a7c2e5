// internal/session/redis_store.go
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis"

	"movie-catalog-service/internal/domain"
)

// RedisStore хранит состояние сессий в Redis. Состояние сериализуется в
// JSON; каждый Put продлевает TTL ключа, так что сессия живет, пока
// посетитель активен. Вытеснение по TTL - ответственность Redis.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisStore создает хранилище поверх уже подключенного клиента.
func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration, logger *slog.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		logger: logger,
	}
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (domain.SessionReviewState, error) {
	data, err := s.client.Get(s.key(sessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return domain.SessionReviewState{}, nil
		}
		s.logger.ErrorContext(ctx, "Failed to get session state from Redis",
			slog.String("sessionID", sessionID), slog.String("error", err.Error()))
		return domain.SessionReviewState{}, fmt.Errorf("failed to get session state: %w", err)
	}

	var state domain.SessionReviewState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		s.logger.ErrorContext(ctx, "Failed to decode session state from Redis",
			slog.String("sessionID", sessionID), slog.String("error", err.Error()))
		return domain.SessionReviewState{}, fmt.Errorf("failed to decode session state: %w", err)
	}
	return state, nil
}

func (s *RedisStore) Put(ctx context.Context, sessionID string, state domain.SessionReviewState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session state: %w", err)
	}

	if err := s.client.Set(s.key(sessionID), string(data), s.ttl).Err(); err != nil {
		s.logger.ErrorContext(ctx, "Failed to put session state to Redis",
			slog.String("sessionID", sessionID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to put session state: %w", err)
	}
	return nil
}

func (s *RedisStore) key(sessionID string) string {
	if s.prefix != "" {
		return s.prefix + ":" + sessionID
	}
	return sessionID
}
