//go:generate mockery --name Store --output ./mocks --outpkg mocks --case=underscore
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go_study_sheet/internal/config"
	"go_study_sheet/internal/model"
)

// Store は学習セッションの保存先です。見つからない場合 Get は model.ErrNotFound を返す
type Store interface {
	Get(ctx context.Context, id string) (*model.StudySession, error)
	Save(ctx context.Context, s *model.StudySession) error
	Delete(ctx context.Context, id string) error
}

// ErrCorruptSession は保存済みのセッションを復元できなかったことを表します
var ErrCorruptSession = errors.New("corrupt session")

// Pinger は疎通確認できる Store が実装します (ヘルスチェック用)
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewStore は設定されたバックエンドの Store を返します
func NewStore(cfg config.SessionConfig) (Store, error) {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = config.DefaultSessionTTL
	}
	switch strings.ToLower(cfg.Backend) {
	case "", config.SessionBackendMemory:
		return NewMemoryStore(ttl, time.Now), nil
	case config.SessionBackendRedis:
		if cfg.RedisAddr == "" {
			return nil, fmt.Errorf("session.redis_addr is required for redis backend")
		}
		return NewRedisStore(NewRedisClient(cfg), ttl), nil
	default:
		return nil, fmt.Errorf("unsupported session backend %q", cfg.Backend)
	}
}
