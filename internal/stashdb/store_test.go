package stashdb

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/S0me0neR0man/certstash/internal/memory"
)

func TestStore_InsertGetRemove(t *testing.T) {
	s, err := OpenStore(memory.NewVolatile(getTestLogger()), getTestLogger())
	require.NoError(t, err)

	rec := Record{ID: 0, Owner: "alice", Metadata: "cert-A", CreatedAt: 10}
	require.NoError(t, s.Insert(rec))
	require.Equal(t, 1, s.Len())

	got, ok := s.Get(0)
	require.True(t, ok)
	require.Equal(t, rec, got)

	_, ok = s.Get(1)
	require.False(t, ok)

	removed, ok, err := s.Remove(0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, rec, removed)
	require.Equal(t, 0, s.Len())

	_, ok, err = s.Remove(0)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 0, s.Len())
}

func TestStore_InsertOverwrites(t *testing.T) {
	s, err := OpenStore(memory.NewVolatile(getTestLogger()), getTestLogger())
	require.NoError(t, err)

	require.NoError(t, s.Insert(Record{ID: 5, Owner: "alice", Metadata: "v1"}))
	require.NoError(t, s.Insert(Record{ID: 5, Owner: "alice", Metadata: "v2"}))

	got, ok := s.Get(5)
	require.True(t, ok)
	require.Equal(t, "v2", got.Metadata)
	require.Equal(t, 1, s.Len())
}

func TestStore_TooLarge(t *testing.T) {
	s, err := OpenStore(memory.NewVolatile(getTestLogger()), getTestLogger())
	require.NoError(t, err)

	err = s.Insert(Record{ID: 1, Owner: "o", Metadata: strings.Repeat("x", MaxRecordSize)})
	require.ErrorIs(t, err, ErrRecordTooLarge)
	require.Equal(t, 0, s.Len())
}

func TestStore_StorageFailure(t *testing.T) {
	mem := newFaultyMemory()
	s, err := OpenStore(mem, getTestLogger())
	require.NoError(t, err)

	mem.failStore = true
	require.ErrorIs(t, s.Insert(Record{ID: 1, Owner: "o", Metadata: "m"}), errInjected)
	_, ok := s.Get(1)
	require.False(t, ok, "index must not change when the write fails")

	mem.failStore = false
	require.NoError(t, s.Insert(Record{ID: 1, Owner: "o", Metadata: "m"}))

	mem.failDelete = true
	_, _, err = s.Remove(1)
	require.ErrorIs(t, err, errInjected)
	_, ok = s.Get(1)
	require.True(t, ok, "index must not change when the delete fails")
}

func TestStore_Reopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "db")

	mem, err := memory.OpenLevelDB(dir, true, getTestLogger())
	require.NoError(t, err)
	sTo, err := OpenStore(mem, getTestLogger())
	require.NoError(t, err)
	for id := uint64(0); id < 50; id++ {
		require.NoError(t, sTo.Insert(Record{ID: id, Owner: "owner", Metadata: "meta", CreatedAt: id * 10}))
	}
	for id := uint64(0); id < 50; id += 3 {
		_, ok, err := sTo.Remove(id)
		require.NoError(t, err)
		require.True(t, ok)
	}
	require.NoError(t, mem.Close())

	mem, err = memory.OpenLevelDB(dir, true, getTestLogger())
	require.NoError(t, err)
	defer mem.Close()
	sFrom, err := OpenStore(mem, getTestLogger())
	require.NoError(t, err)

	require.Equal(t, sTo.Len(), sFrom.Len())
	for id := uint64(0); id < 50; id++ {
		before, okBefore := sTo.Get(id)
		after, okAfter := sFrom.Get(id)
		require.Equal(t, okBefore, okAfter, "id %d", id)
		require.Equal(t, before, after)
	}
}

func TestStore_Last(t *testing.T) {
	s, err := OpenStore(memory.NewVolatile(getTestLogger()), getTestLogger())
	require.NoError(t, err)

	_, ok := s.Last()
	require.False(t, ok)

	for _, id := range []uint64{7, 300, 2, 41} {
		require.NoError(t, s.Insert(Record{ID: id, Owner: "o", Metadata: "m"}))
	}
	last, ok := s.Last()
	require.True(t, ok)
	require.EqualValues(t, 300, last.ID)

	_, ok, err = s.Remove(300)
	require.NoError(t, err)
	require.True(t, ok)
	last, ok = s.Last()
	require.True(t, ok)
	require.EqualValues(t, 41, last.ID)
}

func TestStore_CorruptedRecord(t *testing.T) {
	mem := memory.NewVolatile(getTestLogger())
	b, err := MarshalRecord(Record{ID: 3, Owner: "o", Metadata: "m"})
	require.NoError(t, err)
	require.NoError(t, mem.Store(memory.NewKey(memory.RecordRegion, 4), b))

	_, err = OpenStore(mem, getTestLogger())
	require.ErrorIs(t, err, memory.ErrCorrupt)
}
