// Package session caches authenticated sessions in Redis so an issued
// access token and its user can be reused across client processes.
package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ApexAZ/zentropy-go/auth"
)

// DefaultTTL applies when the access token carries no readable expiry.
const DefaultTTL = 24 * time.Hour

const keyPrefix = "session:"

// Session is one cached sign-in: the issued token plus the session-level
// user it authenticates.
type Session struct {
	Token string        `json:"token"`
	User  auth.AuthUser `json:"user"`
}

// Store persists sessions in Redis.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Ping verifies the Redis connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

// NewSessionID generates a fresh session identifier.
func NewSessionID() string {
	return uuid.New().String()
}

// Save writes the session under the given ID with the given TTL.
func (s *Store) Save(ctx context.Context, sessionID string, sess Session, ttl time.Duration) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, keyPrefix+sessionID, payload, ttl).Err()
}

// Get returns the cached session, or nil without error when the ID is
// unknown or expired.
func (s *Store) Get(ctx context.Context, sessionID string) (*Session, error) {
	payload, err := s.rdb.Get(ctx, keyPrefix+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var sess Session
	if err := json.Unmarshal([]byte(payload), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Delete removes the session.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, keyPrefix+sessionID).Err()
}

// TTLFor derives a cache TTL from the token's exp claim, falling back to
// DefaultTTL when the claim is missing or unreadable. Already-expired
// tokens get no TTL at all.
func TTLFor(token string, now time.Time) time.Duration {
	exp, ok, err := auth.TokenExpiry(token)
	if err != nil || !ok {
		return DefaultTTL
	}
	ttl := exp.Sub(now)
	if ttl <= 0 {
		return 0
	}
	return ttl
}
