package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()

	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestGetSetJSON(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	var out payload
	found, err := GetJSON(ctx, "missing", &out)
	require.NoError(t, err)
	assert.False(t, found)

	in := payload{Name: "dompet", Count: 3}
	require.NoError(t, SetJSON(ctx, "item", in, time.Minute))

	found, err = GetJSON(ctx, "item", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)

	// Expired keys read as misses.
	mr.FastForward(2 * time.Minute)
	found, err = GetJSON(ctx, "item", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAside(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	calls := 0
	load := func(dest *payload) func() error {
		return func() error {
			calls++
			*dest = payload{Name: "loaded", Count: calls}
			return nil
		}
	}

	var first payload
	require.NoError(t, Aside(ctx, "k", &first, time.Minute, load(&first)))
	assert.Equal(t, 1, calls)
	assert.Equal(t, "loaded", first.Name)

	// Second read is served from the cache; the loader must not run again.
	var second payload
	require.NoError(t, Aside(ctx, "k", &second, time.Minute, load(&second)))
	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
}

func TestNilClientIsNoop(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	var out payload
	found, err := GetJSON(ctx, "anything", &out)
	assert.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, SetJSON(ctx, "anything", payload{}, time.Minute))

	// Aside degrades to calling the loader every time.
	calls := 0
	err = Aside(ctx, "anything", &out, time.Minute, func() error {
		calls++
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)

	assert.NoError(t, Close())
}
