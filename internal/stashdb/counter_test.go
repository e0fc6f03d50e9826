package stashdb

import (
	"math"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/S0me0neR0man/certstash/internal/memory"
)

func TestCounter_Next(t *testing.T) {
	c, err := OpenCounter(memory.NewVolatile(getTestLogger()), getTestLogger())
	require.NoError(t, err)

	require.EqualValues(t, 0, c.Peek())
	for want := uint64(0); want < 10; want++ {
		id, err := c.Next()
		require.NoError(t, err)
		require.Equal(t, want, id)
	}
	require.EqualValues(t, 10, c.Peek())
}

func TestCounter_Persisted(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "db")

	mem, err := memory.OpenLevelDB(dir, true, getTestLogger())
	require.NoError(t, err)
	c, err := OpenCounter(mem, getTestLogger())
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := c.Next()
		require.NoError(t, err)
	}
	require.NoError(t, mem.Close())

	mem, err = memory.OpenLevelDB(dir, true, getTestLogger())
	require.NoError(t, err)
	defer mem.Close()

	c, err = OpenCounter(mem, getTestLogger())
	require.NoError(t, err)
	id, err := c.Next()
	require.NoError(t, err)
	require.EqualValues(t, 3, id)
}

func TestCounter_StoreFailure(t *testing.T) {
	mem := newFaultyMemory()
	c, err := OpenCounter(mem, getTestLogger())
	require.NoError(t, err)

	mem.failStore = true
	_, err = c.Next()
	require.ErrorIs(t, err, errInjected)
	require.EqualValues(t, 0, c.Peek(), "failed write must not consume the id")

	mem.failStore = false
	id, err := c.Next()
	require.NoError(t, err)
	require.EqualValues(t, 0, id)
}

func TestCounter_AdvanceTo(t *testing.T) {
	mem := memory.NewVolatile(getTestLogger())
	c, err := OpenCounter(mem, getTestLogger())
	require.NoError(t, err)

	require.NoError(t, c.AdvanceTo(42))
	require.EqualValues(t, 42, c.Peek())
	require.NoError(t, c.AdvanceTo(7), "lower values are ignored")
	require.EqualValues(t, 42, c.Peek())

	reopened, err := OpenCounter(mem, getTestLogger())
	require.NoError(t, err)
	require.EqualValues(t, 42, reopened.Peek())
}

func TestCounter_Exhausted(t *testing.T) {
	c, err := OpenCounter(memory.NewVolatile(getTestLogger()), getTestLogger())
	require.NoError(t, err)
	require.NoError(t, c.AdvanceTo(math.MaxUint64))

	_, err = c.Next()
	require.ErrorIs(t, err, ErrCounterExhausted)
}

func TestCounter_Corrupted(t *testing.T) {
	mem := memory.NewVolatile(getTestLogger())
	require.NoError(t, mem.Store(counterKey, []byte{1, 2, 3}))

	_, err := OpenCounter(mem, getTestLogger())
	require.ErrorIs(t, err, memory.ErrCorrupt)
}

func TestCounter_inGoroutines(t *testing.T) {
	c, err := OpenCounter(memory.NewVolatile(getTestLogger()), getTestLogger())
	require.NoError(t, err)

	const goroutinesCount, perGoroutine = 50, 20
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[uint64]bool)
	)
	wg.Add(goroutinesCount)
	for i := 0; i < goroutinesCount; i++ {
		go func() {
			defer wg.Done()
			for k := 0; k < perGoroutine; k++ {
				id, err := c.Next()
				require.NoError(t, err)
				mu.Lock()
				require.False(t, seen[id], "id %d issued twice", id)
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Len(t, seen, goroutinesCount*perGoroutine)
	require.EqualValues(t, goroutinesCount*perGoroutine, c.Peek())
}
