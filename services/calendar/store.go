package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

const sessionPrefix = "calendar:session:"

// SessionStore persists calendar sessions between requests.
type SessionStore interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}

// RedisSessionStore keeps sessions as JSON documents. Every save resets the TTL.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (*Session, error) {
	data, err := s.client.Get(ctx, sessionPrefix+id).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session %s: %w", id, err)
	}
	var sess Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", id, err)
	}
	if sess.Filter == nil {
		sess.Filter = &FilterState{}
	}
	return &sess, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, sess *Session) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", sess.ID, err)
	}
	if err := s.client.Set(ctx, sessionPrefix+sess.ID, b, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session %s: %w", sess.ID, err)
	}
	return nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionPrefix+id).Err()
}

// MemorySessionStore keeps encoded sessions in process memory. Sessions are
// stored as JSON so callers never share a live *Session.
type MemorySessionStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{data: map[string][]byte{}}
}

func (m *MemorySessionStore) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.Lock()
	b, ok := m.data[id]
	m.mu.Unlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	var sess Session
	if err := json.Unmarshal(b, &sess); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", id, err)
	}
	if sess.Filter == nil {
		sess.Filter = &FilterState{}
	}
	return &sess, nil
}

func (m *MemorySessionStore) Save(ctx context.Context, sess *Session) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", sess.ID, err)
	}
	m.mu.Lock()
	m.data[sess.ID] = b
	m.mu.Unlock()
	return nil
}

func (m *MemorySessionStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	delete(m.data, id)
	m.mu.Unlock()
	return nil
}
