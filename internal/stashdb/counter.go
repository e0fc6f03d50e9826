package stashdb

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sync"

	"go.uber.org/zap"

	"github.com/S0me0neR0man/certstash/internal/memory"
)

var ErrCounterExhausted = errors.New("id counter exhausted")

// counterKey the only key of the counter region
var counterKey = memory.NewKey(memory.CounterRegion, 0)

// Counter durable id sequence. The value is the next id to issue
// and equals the number of ids issued so far.
type Counter struct {
	mu    sync.Mutex
	mem   memory.Memory
	value uint64
	sugar *zap.SugaredLogger
}

// OpenCounter loads the persisted value, a missing value means 0
func OpenCounter(mem memory.Memory, logger *zap.Logger) (*Counter, error) {
	c := &Counter{mem: mem, sugar: logger.Sugar()}

	b, err := mem.Load(counterKey)
	switch {
	case errors.Is(err, memory.ErrNotFound):
		return c, nil
	case err != nil:
		return nil, fmt.Errorf("load counter: %w", err)
	case len(b) != 8:
		return nil, fmt.Errorf("%w: counter value of %d bytes", memory.ErrCorrupt, len(b))
	}
	c.value = binary.BigEndian.Uint64(b)
	c.sugar.Debugw("counter loaded", "value", c.value)
	return c, nil
}

// Next returns the current value as a new id and persists value+1.
// When persisting fails nothing is issued.
func (c *Counter) Next() (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.value == math.MaxUint64 {
		return 0, ErrCounterExhausted
	}
	id := c.value
	if err := c.save(id + 1); err != nil {
		return 0, err
	}
	c.value = id + 1
	return id, nil
}

// Peek the id the next call of Next returns
func (c *Counter) Peek() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// AdvanceTo raises the counter to n, a lower n is ignored
func (c *Counter) AdvanceTo(n uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n <= c.value {
		return nil
	}
	if err := c.save(n); err != nil {
		return err
	}
	c.sugar.Infow("counter advanced", "from", c.value, "to", n)
	c.value = n
	return nil
}

func (c *Counter) save(v uint64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	if err := c.mem.Store(counterKey, b[:]); err != nil {
		return fmt.Errorf("save counter: %w", err)
	}
	return nil
}
