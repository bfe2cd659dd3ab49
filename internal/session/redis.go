package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go_study_sheet/internal/config"
	"go_study_sheet/internal/model"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "study_sheet:session:"

// NewRedisClient は短いタイムアウトで redis クライアントを作ります
func NewRedisClient(cfg config.SessionConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,
	})
}

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore はセッションを JSON で保存し、保存のたびに TTL を延長します
func NewRedisStore(client *redis.Client, ttl time.Duration) Store {
	return &redisStore{client: client, ttl: ttl}
}

func redisKey(id string) string {
	return redisKeyPrefix + id
}

func (r *redisStore) Get(ctx context.Context, id string) (*model.StudySession, error) {
	b, err := r.client.Get(ctx, redisKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("redisStore.Get: %w", err)
	}
	return decodeSession(b)
}

func (r *redisStore) Save(ctx context.Context, s *model.StudySession) error {
	s.UpdatedAt = time.Now()
	b, err := encodeSession(s)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, redisKey(s.ID), b, r.ttl).Err(); err != nil {
		return fmt.Errorf("redisStore.Save: %w", err)
	}
	return nil
}

func (r *redisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, redisKey(id)).Err(); err != nil {
		return fmt.Errorf("redisStore.Delete: %w", err)
	}
	return nil
}

func (r *redisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func encodeSession(s *model.StudySession) ([]byte, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	return b, nil
}

func decodeSession(b []byte) (*model.StudySession, error) {
	var s model.StudySession
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w: %w", ErrCorruptSession, err)
	}
	if s.Records == nil {
		s.Records = []model.StudyRecord{}
	}
	return &s, nil
}
