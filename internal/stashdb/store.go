// Package stashdb durable id counter and ordered record store.
//
// Records are indexed in memory by a red-black tree and written through
// to the record region of a memory.Memory, the index is rebuilt from
// that region on open.
package stashdb

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/S0me0neR0man/certstash/internal/memory"
)

// Store ordered map id -> Record
type Store struct {
	mu    sync.RWMutex
	tree  *redBlackTree
	mem   memory.Memory
	sugar *zap.SugaredLogger
}

// OpenStore rebuilds the index from the record region
func OpenStore(mem memory.Memory, logger *zap.Logger) (*Store, error) {
	s := &Store{
		tree:  newRedBlackTree(),
		mem:   mem,
		sugar: logger.Sugar(),
	}

	err := mem.Scan(memory.RecordRegion, func(key memory.Key, value []byte) error {
		rec, err := UnmarshalRecord(value)
		if err != nil {
			return fmt.Errorf("record %d: %w", key.ID(), err)
		}
		if rec.ID != key.ID() {
			return fmt.Errorf("%w: record %d stored under key %d", memory.ErrCorrupt, rec.ID, key.ID())
		}
		s.tree.put(rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	s.sugar.Infow("store opened", "records", s.tree.sizeof())
	return s, nil
}

// Insert puts rec under rec.ID, replacing any previous record
func (s *Store) Insert(rec Record) error {
	b, err := MarshalRecord(rec)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.mem.Store(memory.NewKey(memory.RecordRegion, rec.ID), b); err != nil {
		return fmt.Errorf("insert record %d: %w", rec.ID, err)
	}
	s.tree.put(rec)

	s.sugar.Debugw("insert", "id", rec.ID, "bytes", len(b))
	return nil
}

// Get a copy of the record
func (s *Store) Get(id uint64) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	node := s.tree.get(id)
	if node == nil {
		return Record{}, false
	}
	return node.rec, true
}

// Remove the record and return it. An absent id leaves the store untouched.
func (s *Store) Remove(id uint64) (Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tree.get(id) == nil {
		return Record{}, false, nil
	}
	if err := s.mem.Delete(memory.NewKey(memory.RecordRegion, id)); err != nil {
		return Record{}, false, fmt.Errorf("remove record %d: %w", id, err)
	}
	rec, _ := s.tree.remove(id)

	s.sugar.Debugw("remove", "id", id)
	return rec, true, nil
}

// Len number of stored records
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.sizeof()
}

// Last the record with the largest id
func (s *Store) Last() (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	node := s.tree.last()
	if node == nil {
		return Record{}, false
	}
	return node.rec, true
}
