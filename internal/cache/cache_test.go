package cache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_PutGet(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	key := Key{Path: "/media/a.mkv", Size: 8980, ModTime: time.Unix(1605633594, 510000000)}
	require.NoError(t, s.Put(ctx, key, []byte(`{"General":{}}`)))

	data, ok, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"General":{}}`, string(data))
}

func TestStore_Miss(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	key := Key{Path: "/media/a.mkv", Size: 10, ModTime: time.Unix(100, 0)}
	require.NoError(t, s.Put(ctx, key, []byte("old")))

	tests := []struct {
		name string
		key  Key
	}{
		{name: "unknown path", key: Key{Path: "/media/b.mkv", Size: 10, ModTime: time.Unix(100, 0)}},
		{name: "size changed", key: Key{Path: key.Path, Size: 11, ModTime: key.ModTime}},
		{name: "modified", key: Key{Path: key.Path, Size: key.Size, ModTime: time.Unix(101, 0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, ok, err := s.Get(ctx, tt.key)
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Nil(t, data)
		})
	}
}

func TestStore_PutReplaces(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	key := Key{Path: "/media/a.mkv", Size: 10, ModTime: time.Unix(100, 0)}
	require.NoError(t, s.Put(ctx, key, []byte("old")))

	key.Size = 20
	require.NoError(t, s.Put(ctx, key, []byte("new")))

	data, ok, err := s.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "new", string(data))

	n, err := s.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStore_Prune(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	for _, p := range []string{"/a", "/b", "/c"} {
		require.NoError(t, s.Put(ctx, Key{Path: p, ModTime: time.Unix(1, 0)}, []byte(p)))
	}

	removed, err := s.Prune(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Zero(t, removed)

	removed, err = s.Prune(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 3, removed)

	n, err := s.Len(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestOpen_Memory(t *testing.T) {
	s, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	require.NoError(t, s.Close())
}
