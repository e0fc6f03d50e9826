package memory

import (
	"errors"
	"log"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"go.uber.org/zap"
)

var (
	once   sync.Once
	logger *zap.Logger
)

func getTestLogger() *zap.Logger {
	once.Do(func() {
		var err error
		logger, err = zap.NewProduction()
		if err != nil {
			log.Fatal(err)
		}
	})

	return logger
}

func backends(t *testing.T) map[string]Memory {
	t.Helper()

	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	require.NoError(t, err)

	return map[string]Memory{
		"leveldb":  NewLevelDB(db, false, getTestLogger()),
		"volatile": NewVolatile(getTestLogger()),
	}
}

func TestMemory_StoreLoadDelete(t *testing.T) {
	for name, mem := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer mem.Close()

			key := NewKey(RecordRegion, 7)
			_, err := mem.Load(key)
			require.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, mem.Store(key, []byte("first")))
			value, err := mem.Load(key)
			require.NoError(t, err)
			require.Equal(t, []byte("first"), value)

			require.NoError(t, mem.Store(key, []byte("second")))
			value, err = mem.Load(key)
			require.NoError(t, err)
			require.Equal(t, []byte("second"), value)

			// the returned slice is a copy
			value[0] = 'X'
			value, err = mem.Load(key)
			require.NoError(t, err)
			require.Equal(t, []byte("second"), value)

			require.NoError(t, mem.Delete(key))
			_, err = mem.Load(key)
			require.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, mem.Delete(key), "deleting a missing key")
		})
	}
}

func TestMemory_RegionsAreIsolated(t *testing.T) {
	for name, mem := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer mem.Close()

			require.NoError(t, mem.Store(NewKey(CounterRegion, 0), []byte("counter")))
			require.NoError(t, mem.Store(NewKey(RecordRegion, 0), []byte("record")))

			value, err := mem.Load(NewKey(CounterRegion, 0))
			require.NoError(t, err)
			require.Equal(t, []byte("counter"), value)

			count := 0
			err = mem.Scan(RecordRegion, func(key Key, value []byte) error {
				require.Equal(t, RecordRegion, key.Region())
				count++
				return nil
			})
			require.NoError(t, err)
			require.Equal(t, 1, count)
		})
	}
}

func TestMemory_ScanOrder(t *testing.T) {
	for name, mem := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer mem.Close()

			for _, id := range []uint64{300, 2, 1 << 40, 17, 0} {
				require.NoError(t, mem.Store(NewKey(RecordRegion, id), []byte{byte(id)}))
			}

			var ids []uint64
			err := mem.Scan(RecordRegion, func(key Key, value []byte) error {
				ids = append(ids, key.ID())
				return nil
			})
			require.NoError(t, err)
			require.Equal(t, []uint64{0, 2, 17, 300, 1 << 40}, ids)

			stop := errors.New("stop")
			calls := 0
			err = mem.Scan(RecordRegion, func(key Key, value []byte) error {
				calls++
				return stop
			})
			require.ErrorIs(t, err, stop)
			require.Equal(t, 1, calls)
		})
	}
}

func TestMemory_Closed(t *testing.T) {
	for name, mem := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, mem.Close())

			_, err := mem.Load(NewKey(RecordRegion, 1))
			require.ErrorIs(t, err, ErrClosed)
			require.ErrorIs(t, mem.Store(NewKey(RecordRegion, 1), nil), ErrClosed)
			require.ErrorIs(t, mem.Close(), ErrClosed)
		})
	}
}

func TestKey_Compare(t *testing.T) {
	k0 := NewKey(CounterRegion, 0)
	k1 := NewKey(CounterRegion, 1)
	k2 := NewKey(RecordRegion, 0)
	k3 := NewKey(RecordRegion, 255)
	k4 := NewKey(RecordRegion, 256)

	require.Equal(t, KeyLessThan, k0.Compare(k1))
	require.Equal(t, KeyLessThan, k1.Compare(k2))
	require.Equal(t, KeyLessThan, k3.Compare(k4))
	require.Equal(t, KeyMoreThan, k4.Compare(k0))
	require.Equal(t, KeyEqual, k4.Compare(k4))

	require.Equal(t, RecordRegion, k4.Region())
	require.EqualValues(t, 256, k4.ID())
	require.Equal(t, "01 0000000000000100", k4.String())

	parsed, err := KeyFromBytes(k4.Bytes())
	require.NoError(t, err)
	require.Equal(t, k4, parsed)

	_, err = KeyFromBytes([]byte{1, 2})
	require.ErrorIs(t, err, ErrCorrupt)
}
