package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotStore_TransactionSavePersists(t *testing.T) {
	ctx := context.Background()
	filename := filepath.Join(t.TempDir(), "voyage.godb")

	s1, err := NewSnapshotStore(filename)
	require.NoError(t, err)
	require.NoError(t, s1.Set(ctx, "voyage_Trip", []byte(`[{"id":"a"}]`)))

	// Saved without Close
	info, err := os.Stat(filename)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	s2, err := NewSnapshotStore(filename)
	require.NoError(t, err)
	defer s2.Close()
	v, ok, err := s2.Get(ctx, "voyage_Trip")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[{"id":"a"}]`), v)

	require.NoError(t, s1.Close())
}

func TestSnapshotStore_ClearPersists(t *testing.T) {
	ctx := context.Background()
	filename := filepath.Join(t.TempDir(), "voyage.godb")

	s1, err := NewSnapshotStore(filename)
	require.NoError(t, err)
	require.NoError(t, s1.Set(ctx, "voyage_Trip", []byte(`[]`)))
	require.NoError(t, s1.Clear(ctx))
	require.NoError(t, s1.Close())

	s2, err := NewSnapshotStore(filename)
	require.NoError(t, err)
	defer s2.Close()
	assert.Equal(t, 0, s2.mem.Len())
}

func TestSnapshotStore_BackgroundSave(t *testing.T) {
	ctx := context.Background()
	filename := filepath.Join(t.TempDir(), "voyage.godb")

	s, err := NewSnapshotStore(filename, WithBackgroundSave(20*time.Millisecond))
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set(ctx, "voyage_Trip", []byte(`[]`)))
	_, err = os.Stat(filename)
	assert.True(t, os.IsNotExist(err), "write should not be saved synchronously")

	assert.Eventually(t, func() bool {
		_, err := os.Stat(filename)
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSnapshotStore_CloseFlushesWhenTransactionSaveDisabled(t *testing.T) {
	ctx := context.Background()
	filename := filepath.Join(t.TempDir(), "voyage.godb")

	s, err := NewSnapshotStore(filename, WithTransactionSave(false))
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "voyage_ChatMessage", []byte(`[]`)))
	require.NoError(t, s.Close())

	reopened, err := NewSnapshotStore(filename)
	require.NoError(t, err)
	defer reopened.Close()
	_, ok, err := reopened.Get(ctx, "voyage_ChatMessage")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSnapshotStore_CorruptFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "voyage.godb")
	require.NoError(t, os.WriteFile(filename, []byte("garbage!garbage!"), 0o644))

	_, err := NewSnapshotStore(filename)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load snapshot")
}

func TestSnapshotStore_FailedSaveRollsBack(t *testing.T) {
	ctx := context.Background()
	filename := filepath.Join(t.TempDir(), "voyage.godb")

	s, err := NewSnapshotStore(filename)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "voyage_Trip", []byte(`[{"id":"a"}]`)))

	// A directory in the temp file's place makes every save fail
	require.NoError(t, os.Mkdir(filename+".tmp", 0o755))

	assert.Error(t, s.Set(ctx, "voyage_Itinerary", []byte(`[]`)))
	_, ok, err := s.Get(ctx, "voyage_Itinerary")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Error(t, s.Set(ctx, "voyage_Trip", []byte(`[]`)))
	assert.Error(t, s.Remove(ctx, "voyage_Trip"))
	assert.Error(t, s.Clear(ctx))
	v, ok, err := s.Get(ctx, "voyage_Trip")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[{"id":"a"}]`), v)

	require.NoError(t, os.Remove(filename+".tmp"))
	require.NoError(t, s.Close())
}
