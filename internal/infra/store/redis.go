package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"rentacar/internal/domain/booking"
	"rentacar/internal/infra"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "session:"
	draftKeyPrefix   = "draft:"
)

// RedisStore keeps sessions and drafts in Redis with per-record TTLs, so a
// multi-instance deployment shares them.
type RedisStore struct {
	client     *redis.Client
	sessionTTL time.Duration
	draftTTL   time.Duration
}

func NewRedisStore(client *redis.Client, sessionTTL, draftTTL time.Duration) *RedisStore {
	return &RedisStore{
		client:     client,
		sessionTTL: sessionTTL,
		draftTTL:   draftTTL,
	}
}

func (s *RedisStore) PutSession(ctx context.Context, sess Session) error {
	return s.put(ctx, sessionKeyPrefix+sess.ID.String(), sess, s.sessionTTL)
}

func (s *RedisStore) GetSession(ctx context.Context, id uuid.UUID) (Session, error) {
	var sess Session
	if err := s.get(ctx, sessionKeyPrefix+id.String(), &sess, "session"); err != nil {
		return Session{}, err
	}
	return sess, nil
}

func (s *RedisStore) DeleteSession(ctx context.Context, id uuid.UUID) error {
	return s.del(ctx, sessionKeyPrefix+id.String())
}

func (s *RedisStore) PutDraft(ctx context.Context, d *booking.Draft) error {
	return s.put(ctx, draftKeyPrefix+d.ID.String(), d, s.draftTTL)
}

func (s *RedisStore) GetDraft(ctx context.Context, id uuid.UUID) (*booking.Draft, error) {
	var d booking.Draft
	if err := s.get(ctx, draftKeyPrefix+id.String(), &d, "draft"); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *RedisStore) DeleteDraft(ctx context.Context, id uuid.UUID) error {
	return s.del(ctx, draftKeyPrefix+id.String())
}

func (s *RedisStore) put(ctx context.Context, key string, v any, ttl time.Duration) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return infra.WrapInfraErr("failed to encode store record", err, infra.KindStoreFailure)
	}
	if err := s.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return infra.WrapInfraErr("failed to write store record", err, infra.KindStoreFailure)
	}
	return nil
}

func (s *RedisStore) get(ctx context.Context, key string, out any, what string) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return infra.WrapInfraErr(what+" not found", nil, infra.KindNotFound)
		}
		return infra.WrapInfraErr("failed to read store record", err, infra.KindStoreFailure)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return infra.WrapInfraErr("failed to decode store record", err, infra.KindStoreFailure)
	}
	return nil
}

func (s *RedisStore) del(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return infra.WrapInfraErr("failed to delete store record", err, infra.KindStoreFailure)
	}
	return nil
}
