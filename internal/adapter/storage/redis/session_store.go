package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mobi-voucher-gateway/internal/core/domain"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// SessionStore implements ports.SessionStore on Redis. Sessions are stored
// as JSON blobs under a TTL; expiry is the teardown path for abandoned
// wizards, so every Save refreshes the clock.
type SessionStore struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

// NewSessionStore creates a Redis-backed session store.
func NewSessionStore(client *goredis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{
		client: client,
		prefix: "session:",
		ttl:    ttl,
	}
}

// Save serializes the session and resets its TTL.
func (s *SessionStore) Save(ctx context.Context, session *domain.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+session.ID.String(), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis session set: %w", err)
	}
	return nil
}

// Get returns a session by id, or nil, nil if absent or expired.
func (s *SessionStore) Get(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	payload, err := s.client.Get(ctx, s.prefix+id.String()).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis session get: %w", err)
	}
	session := &domain.Session{}
	if err := json.Unmarshal(payload, session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return session, nil
}

// Delete removes a session. Deleting an absent session is a no-op.
func (s *SessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Del(ctx, s.prefix+id.String()).Err(); err != nil {
		return fmt.Errorf("redis session del: %w", err)
	}
	return nil
}
