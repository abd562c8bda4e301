package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// RedisSessionStore хранилище сессий в Redis. Сессии сериализуются в JSON
// и истекают по TTL; продление TTL при обращении не выполняется.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore создает хранилище сессий поверх клиента Redis
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{
		client: client,
		ttl:    ttl,
	}
}

// Save сохраняет сессию с TTL хранилища
func (s *RedisSessionStore) Save(ctx context.Context, session *Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%w: marshal session: %v", ErrInternal, err)
	}
	if err := s.client.Set(ctx, sessionKey(session.Token), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: save session: %v", ErrInternal, err)
	}
	return nil
}

// Get возвращает сессию по токену
func (s *RedisSessionStore) Get(ctx context.Context, token string) (*Session, error) {
	data, err := s.client.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: get session: %v", ErrInternal, err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("%w: unmarshal session: %v", ErrInternal, err)
	}
	return &session, nil
}

// Delete удаляет сессию. Отсутствующий токен не считается ошибкой.
func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("%w: delete session: %v", ErrInternal, err)
	}
	return nil
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}
