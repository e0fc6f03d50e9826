// Package registry the NFT certificate registry: create, get and delete
// on top of the durable counter and record store
package registry

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/S0me0neR0man/certstash/internal/stashdb"
)

type Option func(*Service)

// WithClock replaces time.Now as the source of created_at
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// Service the record service. Every operation runs under one mutex,
// so id issue and insertion of a create are never interleaved.
type Service struct {
	mu          sync.Mutex
	counter     *stashdb.Counter
	store       *stashdb.Store
	now         func() time.Time
	lastCreated uint64

	sugar *zap.SugaredLogger
}

// New makes the service. If the store holds an id the counter has not
// issued yet (a counter lost or restored from an older copy) the
// counter is advanced past it.
func New(counter *stashdb.Counter, store *stashdb.Store, logger *zap.Logger, opts ...Option) (*Service, error) {
	s := &Service{
		counter: counter,
		store:   store,
		now:     time.Now,
		sugar:   logger.Sugar(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if last, ok := store.Last(); ok && last.ID >= counter.Peek() {
		s.sugar.Warnw("counter behind stored records", "counter", counter.Peek(), "last_id", last.ID)
		if err := counter.AdvanceTo(last.ID + 1); err != nil {
			return nil, fmt.Errorf("reconcile counter: %w", err)
		}
	}
	return s, nil
}

// Create validates the payload, issues a new id and stores the record
func (s *Service) Create(ctx context.Context, owner, metadata string) (stashdb.Record, error) {
	if err := validate(owner, metadata); err != nil {
		s.sugar.Debugw("create rejected", "error", err)
		return stashdb.Record{}, err
	}
	if err := ctx.Err(); err != nil {
		return stashdb.Record{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := stashdb.Record{
		ID:        s.counter.Peek(),
		Owner:     owner,
		Metadata:  metadata,
		CreatedAt: s.timestamp(),
	}
	if size := stashdb.EncodedSize(rec); size > stashdb.MaxRecordSize {
		err := fmt.Errorf("%w: %d bytes, limit %d", stashdb.ErrRecordTooLarge, size, stashdb.MaxRecordSize)
		s.sugar.Debugw("create rejected", "error", err)
		return stashdb.Record{}, storageError(err)
	}

	id, err := s.counter.Next()
	if err != nil {
		s.sugar.Errorw("counter.Next", "error", err)
		return stashdb.Record{}, storageError(err)
	}
	rec.ID = id

	if err := s.store.Insert(rec); err != nil {
		s.sugar.Errorw("store.Insert", "id", id, "error", err)
		return stashdb.Record{}, storageError(err)
	}
	s.lastCreated = rec.CreatedAt

	s.sugar.Debugw("created", "id", rec.ID, "owner", rec.Owner)
	return rec, nil
}

// Get the record by id
func (s *Service) Get(ctx context.Context, id uint64) (stashdb.Record, error) {
	if err := ctx.Err(); err != nil {
		return stashdb.Record{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.store.Get(id)
	if !ok {
		return stashdb.Record{}, notFound("An NFT with id=%d not found", id)
	}
	return rec, nil
}

// Delete the record by id and return it
func (s *Service) Delete(ctx context.Context, id uint64) (stashdb.Record, error) {
	if err := ctx.Err(); err != nil {
		return stashdb.Record{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok, err := s.store.Remove(id)
	if err != nil {
		s.sugar.Errorw("store.Remove", "id", id, "error", err)
		return stashdb.Record{}, storageError(err)
	}
	if !ok {
		return stashdb.Record{}, notFound("Couldn't delete an NFT with id=%d. NFT not found.", id)
	}

	s.sugar.Debugw("deleted", "id", id)
	return rec, nil
}

// timestamp unix nanoseconds, never below the previous create
func (s *Service) timestamp() uint64 {
	var ts uint64
	if nanos := s.now().UnixNano(); nanos > 0 {
		ts = uint64(nanos)
	}
	if ts < s.lastCreated {
		return s.lastCreated
	}
	return ts
}

func validate(owner, metadata string) error {
	if strings.TrimSpace(owner) == "" {
		return invalidInput("Owner is required")
	}
	if strings.TrimSpace(metadata) == "" {
		return invalidInput("Metadata is required")
	}
	return nil
}
