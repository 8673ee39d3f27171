package redis_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memhub/internal/memes/adapters/redis"
	"memhub/internal/memes/ports/repositories"
)

func newClient(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return srv, client
}

func TestTokenDenylist(t *testing.T) {
	ctx := context.Background()
	srv, client := newClient(t)
	denylist := redis.NewTokenDenylist(client)

	revoked, err := denylist.IsRevoked(ctx, "token-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	claimed, err := denylist.Revoke(ctx, "token-1", time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, claimed)

	claimed, err = denylist.Revoke(ctx, "token-1", time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, claimed, "second revoke must not claim the token")

	revoked, err = denylist.IsRevoked(ctx, "token-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	srv.FastForward(2 * time.Hour)

	revoked, err = denylist.IsRevoked(ctx, "token-1")
	require.NoError(t, err)
	assert.False(t, revoked, "entry must expire together with the token")
}

func TestTokenDenylistSkipsExpiredTokens(t *testing.T) {
	ctx := context.Background()
	srv, client := newClient(t)
	denylist := redis.NewTokenDenylist(client)

	claimed, err := denylist.Revoke(ctx, "stale", time.Now().Add(-time.Minute))
	require.NoError(t, err)
	assert.False(t, claimed)
	assert.Empty(t, srv.Keys())
}

func TestTokenDenylistConcurrentRevoke(t *testing.T) {
	ctx := context.Background()
	_, client := newClient(t)
	denylist := redis.NewTokenDenylist(client)
	expiresAt := time.Now().Add(time.Hour)

	const callers = 8
	var (
		wg      sync.WaitGroup
		start   = make(chan struct{})
		claimed atomic.Int32
	)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			ok, err := denylist.Revoke(ctx, "token-1", expiresAt)
			assert.NoError(t, err)
			if ok {
				claimed.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), claimed.Load())
}

func TestTokenDenylistStorageError(t *testing.T) {
	ctx := context.Background()
	srv, client := newClient(t)
	denylist := redis.NewTokenDenylist(client)
	srv.SetError("LOADING")

	_, err := denylist.IsRevoked(ctx, "token-1")
	require.Error(t, err)
	_, err = denylist.Revoke(ctx, "token-1", time.Now().Add(time.Hour))
	require.Error(t, err)
}

func TestImageRepository(t *testing.T) {
	ctx := context.Background()
	_, client := newClient(t)
	repo := redis.NewImageRepository(client)

	_, err := repo.Get(ctx, "mem_1")
	require.ErrorIs(t, err, repositories.ErrImageNotFound)

	require.NoError(t, repo.Save(ctx, "mem_1", []byte("meme_image")))

	data, err := repo.Get(ctx, "mem_1")
	require.NoError(t, err)
	assert.Equal(t, []byte("meme_image"), data)

	require.NoError(t, repo.Delete(ctx, "mem_1"))
	_, err = repo.Get(ctx, "mem_1")
	require.ErrorIs(t, err, repositories.ErrImageNotFound)

	assert.NoError(t, repo.Delete(ctx, "mem_1"))
}
