package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"clinicore/models"

	"github.com/go-redis/redis/v8"
)

// SessionStore persists availability-editing sessions between requests. The
// draft slot list is private to the operator who opened the session and is
// discarded on save or cancel.
type SessionStore interface {
	Save(ctx context.Context, session *models.AvailabilityEditSession) error
	// Get returns nil when the session does not exist or has expired.
	Get(ctx context.Context, id string) (*models.AvailabilityEditSession, error)
	Delete(ctx context.Context, id string) error
}

// RedisSessionStore keeps editing sessions in Redis under a TTL, so an
// abandoned dialog cleans itself up.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisSessionStore creates a session store with the given expiry.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: ttl}
}

func sessionKey(id string) string {
	return "editsession:" + id
}

func (s *RedisSessionStore) Save(ctx context.Context, session *models.AvailabilityEditSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal edit session: %w", err)
	}
	if err := s.Client.Set(ctx, sessionKey(session.ID), data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to cache edit session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (*models.AvailabilityEditSession, error) {
	data, err := s.Client.Get(ctx, sessionKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch edit session: %w", err)
	}
	var session models.AvailabilityEditSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse edit session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	if err := s.Client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete edit session: %w", err)
	}
	return nil
}
