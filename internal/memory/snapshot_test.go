package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSnapshot_FlushRestore(t *testing.T) {
	file := filepath.Join(t.TempDir(), "db", "certstash.data")

	sTo, err := OpenSnapshot(file, false, false, getTestLogger())
	require.NoError(t, err)
	for id := uint64(0); id < 100; id++ {
		require.NoError(t, sTo.Store(NewKey(RecordRegion, id), []byte{byte(id)}))
	}
	require.NoError(t, sTo.Store(NewKey(CounterRegion, 0), []byte("c")))

	_, err = os.Stat(file)
	require.ErrorIs(t, err, os.ErrNotExist, "nothing is written before flush")

	ctx := context.Background()
	require.NoError(t, sTo.Flush(ctx))

	sFrom, err := OpenSnapshot(file, true, false, getTestLogger())
	require.NoError(t, err)
	defer sFrom.Close()

	controlTo, _ := sTo.copyData()
	controlFrom, _ := sFrom.copyData()
	require.Equal(t, controlTo, controlFrom)
}

func TestSnapshot_SyncWrites(t *testing.T) {
	file := filepath.Join(t.TempDir(), "certstash.data")

	s, err := OpenSnapshot(file, true, true, getTestLogger())
	require.NoError(t, err)
	require.NoError(t, s.Store(NewKey(RecordRegion, 1), []byte("one")))
	require.NoError(t, s.Store(NewKey(RecordRegion, 2), []byte("two")))
	require.NoError(t, s.Delete(NewKey(RecordRegion, 1)))

	// no Close: every write already reached the file
	restored, err := OpenSnapshot(file, true, true, getTestLogger())
	require.NoError(t, err)
	defer restored.Close()

	_, err = restored.Load(NewKey(RecordRegion, 1))
	require.ErrorIs(t, err, ErrNotFound)
	value, err := restored.Load(NewKey(RecordRegion, 2))
	require.NoError(t, err)
	require.Equal(t, []byte("two"), value)
}

func TestSnapshot_CloseFlushes(t *testing.T) {
	file := filepath.Join(t.TempDir(), "certstash.data")

	s, err := OpenSnapshot(file, true, false, getTestLogger())
	require.NoError(t, err)
	require.NoError(t, s.Store(NewKey(RecordRegion, 5), []byte("five")))
	require.NoError(t, s.Close())

	restored, err := OpenSnapshot(file, true, false, getTestLogger())
	require.NoError(t, err)
	defer restored.Close()

	value, err := restored.Load(NewKey(RecordRegion, 5))
	require.NoError(t, err)
	require.Equal(t, []byte("five"), value)
}

func TestSnapshot_NoRestore(t *testing.T) {
	file := filepath.Join(t.TempDir(), "certstash.data")

	fresh, err := OpenSnapshot(file, false, true, getTestLogger())
	require.NoError(t, err)
	require.NoError(t, fresh.Store(NewKey(CounterRegion, 0), []byte{0, 0, 0, 0, 0, 0, 0, 9}))
	require.NoError(t, fresh.Close())

	// an empty memory must not replace the saved counter
	_, err = OpenSnapshot(file, false, true, getTestLogger())
	require.ErrorIs(t, err, ErrSnapshotExists)

	restored, err := OpenSnapshot(file, true, true, getTestLogger())
	require.NoError(t, err)
	defer restored.Close()
	value, err := restored.Load(NewKey(CounterRegion, 0))
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 9}, value)
}

func TestSnapshot_SyncWriteFailure(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "db", "certstash.data")

	s, err := OpenSnapshot(file, true, true, getTestLogger())
	require.NoError(t, err)
	require.NoError(t, s.Store(NewKey(RecordRegion, 1), []byte("one")))

	// a regular file in place of the directory makes every save fail
	require.NoError(t, os.Rename(filepath.Join(dir, "db"), filepath.Join(dir, "db.moved")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "db"), nil, 0o644))

	require.Error(t, s.Delete(NewKey(RecordRegion, 1)))
	require.Error(t, s.Store(NewKey(RecordRegion, 2), []byte("two")))

	value, err := s.Load(NewKey(RecordRegion, 1))
	require.NoError(t, err, "failed delete is not applied")
	require.Equal(t, []byte("one"), value)
	_, err = s.Load(NewKey(RecordRegion, 2))
	require.ErrorIs(t, err, ErrNotFound, "failed store is not applied")

	require.NoError(t, os.Remove(filepath.Join(dir, "db")))
	require.NoError(t, os.Rename(filepath.Join(dir, "db.moved"), filepath.Join(dir, "db")))
	require.NoError(t, s.Close())

	restored, err := OpenSnapshot(file, true, true, getTestLogger())
	require.NoError(t, err)
	defer restored.Close()

	value, err = restored.Load(NewKey(RecordRegion, 1))
	require.NoError(t, err)
	require.Equal(t, []byte("one"), value)
	_, err = restored.Load(NewKey(RecordRegion, 2))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSnapshot_Corrupted(t *testing.T) {
	file := filepath.Join(t.TempDir(), "certstash.data")
	require.NoError(t, os.WriteFile(file, []byte("definitely not gob"), 0o644))

	_, err := OpenSnapshot(file, true, false, getTestLogger())
	require.ErrorIs(t, err, ErrCorrupt)
}

func TestSnapshot_FlushCancelled(t *testing.T) {
	file := filepath.Join(t.TempDir(), "certstash.data")

	s, err := OpenSnapshot(file, false, false, getTestLogger())
	require.NoError(t, err)
	require.NoError(t, s.Store(NewKey(RecordRegion, 1), []byte("one")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, s.Flush(ctx), context.Canceled)

	// still dirty, the next flush writes the file
	require.NoError(t, s.Flush(context.Background()))
	_, err = os.Stat(file)
	require.NoError(t, err)
}
