package sessionstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-chat/flight-search-chatbot/internal/domain"
)

func setupRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client, ttl), mr
}

func sampleSession() *domain.Session {
	session := domain.NewSession()
	session.Search.SetDestination(domain.Airport{IATA: "NBO", Name: "Jomo Kenyatta", City: "Nairobi"})
	session.Flow.LastQuestion = domain.QuestionOrigin
	session.Flow.Offered = []domain.Airport{{IATA: "AMS", Name: "Schiphol", City: "Amsterdam"}}
	session.Chat = domain.ChatStateModify
	return session
}

func TestRedisStore_LoadMissingSessionReturnsDefaults(t *testing.T) {
	store, _ := setupRedisStore(t, time.Hour)

	session, err := store.Load(context.Background(), "unknown")
	require.NoError(t, err)

	assert.Equal(t, domain.QuestionNone, session.Flow.LastQuestion)
	assert.Equal(t, domain.QuestionCompleted, session.Flow.Modifying)
	assert.Equal(t, domain.ChatStateNormal, session.Chat)
	assert.Equal(t, 1, session.Search.Adults)
}

func TestRedisStore_SaveAndLoadRoundTrip(t *testing.T) {
	store, _ := setupRedisStore(t, time.Hour)
	ctx := context.Background()

	saved := sampleSession()
	require.NoError(t, store.Save(ctx, "sess-1", saved))

	loaded, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)

	assert.Equal(t, saved.Search, loaded.Search)
	assert.Equal(t, saved.Flow, loaded.Flow)
	assert.Equal(t, saved.Chat, loaded.Chat)
}

func TestRedisStore_SessionsAreIndependent(t *testing.T) {
	store, _ := setupRedisStore(t, time.Hour)
	ctx := context.Background()

	first := sampleSession()
	require.NoError(t, store.Save(ctx, "sess-1", first))

	second, err := store.Load(ctx, "sess-2")
	require.NoError(t, err)

	// The offered airports cached for one session must never leak into
	// another.
	assert.Empty(t, second.Flow.Offered)
	assert.Empty(t, second.Search.Destination)
}

func TestRedisStore_SaveRefreshesTTL(t *testing.T) {
	store, mr := setupRedisStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sess-1", sampleSession()))
	assert.Equal(t, time.Minute, mr.TTL("session:sess-1:flight_search"))

	mr.FastForward(30 * time.Second)
	require.NoError(t, store.Save(ctx, "sess-1", sampleSession()))
	assert.Equal(t, time.Minute, mr.TTL("session:sess-1:flight_search"))
}

func TestRedisStore_ExpiredSessionFallsBackToDefaults(t *testing.T) {
	store, mr := setupRedisStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sess-1", sampleSession()))
	mr.FastForward(2 * time.Minute)

	loaded, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, domain.QuestionNone, loaded.Flow.LastQuestion)
}

func TestRedisStore_CorruptRecordReturnsError(t *testing.T) {
	store, mr := setupRedisStore(t, time.Hour)

	require.NoError(t, mr.Set("session:sess-1:flight_search", "{not json"))

	_, err := store.Load(context.Background(), "sess-1")
	assert.Error(t, err)
}
