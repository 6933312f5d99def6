package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewStore(client, time.Hour), mr
}

func TestCreateAndResolveSession(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, 42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, ok, err := store.UserID(ctx, token)
	require.NoError(t, err)
	require.True(t, ok)
	require.EqualValues(t, 42, userID)

	ttl := mr.TTL(keyPrefix + token)
	require.Greater(t, ttl, time.Duration(0), "sessions must expire")
}

func TestUnknownTokenIsNotASession(t *testing.T) {
	store, _ := newTestStore(t)

	_, ok, err := store.UserID(context.Background(), "no-such-token")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDestroyRemovesSession(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, 7)
	require.NoError(t, err)

	require.NoError(t, store.Destroy(ctx, token))

	_, ok, err := store.UserID(ctx, token)
	require.NoError(t, err)
	require.False(t, ok)

	// Destroying twice is fine.
	require.NoError(t, store.Destroy(ctx, token))
}

func TestCorruptSessionValue(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	// Values that cannot parse into a 32-bit user id are errors, not
	// silently truncated ids.
	for _, value := range []string{"not-a-number", "4294967296"} {
		require.NoError(t, mr.Set(keyPrefix+"bad-token", value))

		_, ok, err := store.UserID(ctx, "bad-token")
		require.Error(t, err)
		require.False(t, ok)
	}
}

func TestSessionExpiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, 9)
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)

	_, ok, err := store.UserID(ctx, token)
	require.NoError(t, err)
	require.False(t, ok)
}
