package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	kaviarhttp "github.com/usbtecnok/kaviar-admin-os/internal/pkg/http"
)

type heldItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func newRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, ttl), mr
}

// stores runs the same contract against both implementations
func stores(t *testing.T) map[string]Store {
	rs, _ := newRedisStore(t, time.Hour)
	return map[string]Store{
		"redis":  rs,
		"memory": NewMemoryStore(time.Hour),
	}
}

func TestStore_TokenLifecycle(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := store.GetToken(ctx, "sid-1")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, store.SetToken(ctx, "sid-1", "token-a"))
			token, err := store.GetToken(ctx, "sid-1")
			require.NoError(t, err)
			assert.Equal(t, "token-a", token)

			// replacing the token keeps a single value
			require.NoError(t, store.SetToken(ctx, "sid-1", "token-b"))
			token, err = store.GetToken(ctx, "sid-1")
			require.NoError(t, err)
			assert.Equal(t, "token-b", token)

			require.NoError(t, store.Clear(ctx, "sid-1"))
			_, err = store.GetToken(ctx, "sid-1")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestStore_Views(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			held := []heldItem{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}

			var out []heldItem
			assert.ErrorIs(t, store.LoadView(ctx, "sid-1", "combos", &out), ErrNotFound)

			require.NoError(t, store.SaveView(ctx, "sid-1", "combos", held))
			require.NoError(t, store.LoadView(ctx, "sid-1", "combos", &out))
			assert.Equal(t, held, out)

			// views are isolated per session
			assert.ErrorIs(t, store.LoadView(ctx, "sid-2", "combos", &out), ErrNotFound)

			require.NoError(t, store.Clear(ctx, "sid-1"))
			assert.ErrorIs(t, store.LoadView(ctx, "sid-1", "combos", &out), ErrNotFound)
		})
	}
}

func TestRedisStore_TTL(t *testing.T) {
	store, mr := newRedisStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.SetToken(ctx, "sid-1", "token"))
	require.NoError(t, store.SaveView(ctx, "sid-1", "drivers", []heldItem{}))
	assert.Equal(t, time.Minute, mr.TTL("kaviar_admin_token:sid-1"))
	assert.Equal(t, time.Minute, mr.TTL("kaviar_admin_view:sid-1"))

	mr.FastForward(2 * time.Minute)
	_, err := store.GetToken(ctx, "sid-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore_Unavailable(t *testing.T) {
	store, mr := newRedisStore(t, time.Minute)
	mr.Close()

	_, err := store.GetToken(context.Background(), "sid-1")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	now := time.Now()
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.SetToken(ctx, "sid-1", "token"))
	assert.Equal(t, 1, store.Len())

	now = now.Add(2 * time.Minute)
	_, err := store.GetToken(ctx, "sid-1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, store.Len())
}

func TestResolve(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)

	sess, err := Resolve(ctx, store, "")
	require.NoError(t, err)
	assert.Equal(t, StateUnauthenticated, sess.State)

	sess, err = Resolve(ctx, store, "unknown")
	require.NoError(t, err)
	assert.Equal(t, StateUnauthenticated, sess.State)
	assert.False(t, sess.Authenticated())

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": "admin@kaviar.com.br"}).
		SignedString([]byte("secret"))
	require.NoError(t, err)
	require.NoError(t, store.SetToken(ctx, "sid-1", signed))

	sess, err = Resolve(ctx, store, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, StateAuthenticated, sess.State)
	assert.Equal(t, "admin@kaviar.com.br", sess.Admin)
	assert.True(t, sess.Authenticated())
}

func TestResolve_OpaqueToken(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)
	require.NoError(t, store.SetToken(ctx, "sid-1", "opaque"))

	sess, err := Resolve(ctx, store, "sid-1")
	require.NoError(t, err)
	assert.True(t, sess.Authenticated())
	assert.Empty(t, sess.Admin)
}

func TestSession_BearerToken(t *testing.T) {
	var nilSess *Session
	_, err := nilSess.BearerToken()
	assert.ErrorIs(t, err, kaviarhttp.ErrTokenMissing)

	_, err = (&Session{}).BearerToken()
	assert.ErrorIs(t, err, kaviarhttp.ErrTokenMissing)

	token, err := (&Session{Token: "abc"}).BearerToken()
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
}

func TestCookie(t *testing.T) {
	c := Cookie("kaviar_admin_sid", "sid-1", time.Hour, true)
	assert.Equal(t, "sid-1", c.Value)
	assert.Equal(t, 3600, c.MaxAge)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)

	expired := ExpiredCookie("kaviar_admin_sid", false)
	assert.Equal(t, -1, expired.MaxAge)
	assert.Empty(t, expired.Value)

	assert.NotEqual(t, NewID(), NewID())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "checking", StateChecking.String())
	assert.Equal(t, "unauthenticated", StateUnauthenticated.String())
	assert.Equal(t, "authenticated", StateAuthenticated.String())
}
