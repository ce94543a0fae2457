package cache

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intLayer() Layer[string, int] {
	return Layer[string, int]{
		Name:   "ints",
		Key:    func(k string) string { return "n-" + k },
		Encode: func(v int) ([]byte, error) { return []byte(strconv.Itoa(v)), nil },
		Decode: func(b []byte) (int, error) { return strconv.Atoi(string(b)) },
		Validate: func(_ string, v int) error {
			if v < 0 {
				return errors.New("negative")
			}
			return nil
		},
	}
}

func TestReadThrough_GetOrCompute(t *testing.T) {
	store := NewMemoryCache()
	rt := NewReadThrough(store, intLayer(), nil)

	calls := 0
	compute := func(_ context.Context, k string) (int, error) {
		calls++
		return len(k), nil
	}

	v, err := rt.GetOrCompute(context.Background(), "abc", compute)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = rt.GetOrCompute(context.Background(), "abc", compute)
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.Equal(t, 1, calls, "second call should be served from the store")

	raw, ok := store.Get("n-abc")
	require.True(t, ok)
	assert.Equal(t, "3", string(raw))
}

func TestReadThrough_ComputeErrorStoresNothing(t *testing.T) {
	store := NewMemoryCache()
	rt := NewReadThrough(store, intLayer(), nil)
	boom := errors.New("boom")

	_, err := rt.GetOrCompute(context.Background(), "k", func(context.Context, string) (int, error) {
		return 0, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, store.Len())
}

func TestReadThrough_MalformedEntryIsMiss(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"undecodable", "not a number"},
		{"invalid", "-4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryCache()
			require.NoError(t, store.Set("n-k", []byte(tt.raw)))
			rt := NewReadThrough(store, intLayer(), nil)

			_, ok := rt.Get("k")
			assert.False(t, ok)

			v, err := rt.GetOrCompute(context.Background(), "k", func(context.Context, string) (int, error) {
				return 7, nil
			})
			require.NoError(t, err)
			assert.Equal(t, 7, v)

			raw, _ := store.Get("n-k")
			assert.Equal(t, "7", string(raw), "recomputed value replaces the malformed entry")
		})
	}
}

func TestReadThrough_Delete(t *testing.T) {
	rt := NewReadThrough(NewMemoryCache(), intLayer(), nil)
	require.NoError(t, rt.Put("k", 1))
	require.NoError(t, rt.Delete("k"))

	_, ok := rt.Get("k")
	assert.False(t, ok)
}
