package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/ports"
	"loadboard/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix  = "loadboard:session:"
	identityKeyPrefix = "loadboard:identity-sessions:"
)

// record is the JSON value stored under a session key.
type record struct {
	IdentityID string    `json:"identity_id"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// RedisStore is a Redis-backed ports.SessionStore. Each session is a key with
// the store TTL; a per-identity set indexes the tokens so all sessions of an
// identity can be closed at once.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	clock  kernel.Clock
}

func NewRedisStore(client *redis.Client, ttl time.Duration, clock kernel.Clock) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
		clock:  clock,
	}
}

func (s *RedisStore) Create(ctx context.Context, identityID kernel.UUID) (ports.Session, error) {
	if err := identityID.Validate(); err != nil {
		return ports.Session{}, err
	}

	token, err := newToken()
	if err != nil {
		return ports.Session{}, err
	}

	now := s.clock.Now()
	session := ports.Session{
		Token:      token,
		IdentityID: identityID,
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.ttl),
	}

	value, err := json.Marshal(record{
		IdentityID: identityID.String(),
		CreatedAt:  session.CreatedAt,
		ExpiresAt:  session.ExpiresAt,
	})
	if err != nil {
		return ports.Session{}, err
	}

	indexKey := identityKeyPrefix + identityID.String()
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, sessionKeyPrefix+token, value, s.ttl)
	pipe.SAdd(ctx, indexKey, token)
	pipe.Expire(ctx, indexKey, s.ttl)
	if _, err = pipe.Exec(ctx); err != nil {
		return ports.Session{}, fmt.Errorf("store session: %w", err)
	}

	return session, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (ports.Session, error) {
	raw, err := s.client.Get(ctx, sessionKeyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.Session{}, errs.NewObjectNotFoundError("session", "token")
	}
	if err != nil {
		return ports.Session{}, err
	}

	var rec record
	if err = json.Unmarshal(raw, &rec); err != nil {
		return ports.Session{}, fmt.Errorf("decode session: %w", err)
	}

	identityID, err := kernel.UUIDFromString(rec.IdentityID)
	if err != nil {
		return ports.Session{}, err
	}

	return ports.Session{
		Token:      token,
		IdentityID: identityID,
		CreatedAt:  rec.CreatedAt,
		ExpiresAt:  rec.ExpiresAt,
	}, nil
}

// Delete removes the session key. The token stays in the identity index until
// that index expires or is cleared by DeleteByIdentity.
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKeyPrefix+token).Err()
}

func (s *RedisStore) DeleteByIdentity(ctx context.Context, identityID kernel.UUID) (int, error) {
	indexKey := identityKeyPrefix + identityID.String()

	tokens, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return 0, err
	}

	keys := make([]string, 0, len(tokens))
	for _, token := range tokens {
		keys = append(keys, sessionKeyPrefix+token)
	}

	pipe := s.client.TxPipeline()
	var deleted *redis.IntCmd
	if len(keys) > 0 {
		deleted = pipe.Del(ctx, keys...)
	}
	pipe.Del(ctx, indexKey)
	if _, err = pipe.Exec(ctx); err != nil {
		return 0, err
	}

	if deleted == nil {
		return 0, nil
	}
	return int(deleted.Val()), nil
}
