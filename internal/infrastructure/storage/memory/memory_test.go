package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pingate/internal/domain/pin"
)

func TestStorage_GetSetHas(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, err := s.Get(ctx, pin.DefaultKey)
	assert.ErrorIs(t, err, pin.ErrNotFound)

	ok, err := s.Has(ctx, pin.DefaultKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, pin.DefaultKey, "999999"))
	require.NoError(t, s.Set(ctx, pin.DefaultKey, "123456"))

	value, err := s.Get(ctx, pin.DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, "123456", value)

	ok, err = s.Has(ctx, pin.DefaultKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, s.Close())
}

func TestStorage_Concurrent(t *testing.T) {
	ctx := context.Background()
	s := New()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Set(ctx, "k", "v")
			_, _ = s.Get(ctx, "k")
		}()
	}
	wg.Wait()

	value, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", value)
}
