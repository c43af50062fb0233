// Package sessionstore persists per-session conversation state.
//
// Each session is stored as three independent named records (flight search,
// conversation flow, chat state), mirroring how the flow engine loads and
// saves them: all three at turn start, all three at turn end.
package sessionstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/flight-chat/flight-search-chatbot/internal/domain"
)

// Record name suffixes for the three per-session keys.
const (
	recordFlightSearch     = "flight_search"
	recordConversationFlow = "conversation_flow"
	recordChatState        = "chat_state"
)

// RedisStore is a redis-backed domain.SessionStore. Session keys carry a
// TTL that is refreshed on every save, so idle sessions expire in the store
// rather than in the flow engine.
type RedisStore struct {
	rdb redis.Cmdable
	ttl time.Duration
}

// NewRedisStore creates a store on top of an existing redis client.
// A non-positive ttl disables expiry.
func NewRedisStore(rdb redis.Cmdable, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func sessionKey(sessionID, record string) string {
	return fmt.Sprintf("session:%s:%s", sessionID, record)
}

// Load returns the stored session, or a fresh default session when nothing
// is stored under the identifier. A partially missing session (expired
// mid-write) falls back to defaults for the missing records.
func (s *RedisStore) Load(ctx context.Context, sessionID string) (*domain.Session, error) {
	values, err := s.rdb.MGet(ctx,
		sessionKey(sessionID, recordFlightSearch),
		sessionKey(sessionID, recordConversationFlow),
		sessionKey(sessionID, recordChatState),
	).Result()
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", sessionID, err)
	}

	session := domain.NewSession()

	if raw, ok := values[0].(string); ok {
		if err := json.Unmarshal([]byte(raw), &session.Search); err != nil {
			return nil, fmt.Errorf("decode flight search for session %s: %w", sessionID, err)
		}
	}
	if raw, ok := values[1].(string); ok {
		if err := json.Unmarshal([]byte(raw), &session.Flow); err != nil {
			return nil, fmt.Errorf("decode conversation flow for session %s: %w", sessionID, err)
		}
	}
	if raw, ok := values[2].(string); ok {
		session.Chat = domain.ChatState(raw)
	}

	return session, nil
}

// Save persists all three session records and refreshes their TTL.
func (s *RedisStore) Save(ctx context.Context, sessionID string, session *domain.Session) error {
	searchJSON, err := json.Marshal(session.Search)
	if err != nil {
		return fmt.Errorf("encode flight search: %w", err)
	}
	flowJSON, err := json.Marshal(session.Flow)
	if err != nil {
		return fmt.Errorf("encode conversation flow: %w", err)
	}

	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, sessionKey(sessionID, recordFlightSearch), searchJSON, s.ttl)
	pipe.Set(ctx, sessionKey(sessionID, recordConversationFlow), flowJSON, s.ttl)
	pipe.Set(ctx, sessionKey(sessionID, recordChatState), string(session.Chat), s.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save session %s: %w", sessionID, err)
	}
	return nil
}

var _ domain.SessionStore = (*RedisStore)(nil)
