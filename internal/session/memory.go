package session

import (
	"context"
	"sync"
	"time"

	"go_study_sheet/internal/model"
)

type memoryEntry struct {
	session   *model.StudySession
	expiresAt time.Time
}

// memoryStore はプロセス内のマップにセッションを保持します。期限切れは Get/Save 時に掃除する
type memoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryStore(ttl time.Duration, now func() time.Time) Store {
	return &memoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     now,
	}
}

func (m *memoryStore) Get(_ context.Context, id string) (*model.StudySession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	if m.now().After(e.expiresAt) {
		delete(m.entries, id)
		return nil, model.ErrNotFound
	}
	return cloneSession(e.session), nil
}

func (m *memoryStore) Save(_ context.Context, s *model.StudySession) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.sweepLocked(now)
	s.UpdatedAt = now
	m.entries[s.ID] = memoryEntry{session: cloneSession(s), expiresAt: now.Add(m.ttl)}
	return nil
}

func (m *memoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, id)
	return nil
}

func (m *memoryStore) sweepLocked(now time.Time) {
	for id, e := range m.entries {
		if now.After(e.expiresAt) {
			delete(m.entries, id)
		}
	}
}

// cloneSession は呼び出し側の変更がストア内に漏れないようにコピーします
func cloneSession(s *model.StudySession) *model.StudySession {
	c := *s
	c.Records = append([]model.StudyRecord(nil), s.Records...)
	if c.Records == nil {
		c.Records = []model.StudyRecord{}
	}
	if s.CurrentID != nil {
		id := *s.CurrentID
		c.CurrentID = &id
	}
	return &c
}
