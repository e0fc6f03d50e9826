package memory

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"go.uber.org/zap"
)

const snapshotVersion = 1

// ErrSnapshotExists an existing snapshot would be overwritten by an empty memory
var ErrSnapshotExists = errors.New("memory: snapshot file exists")

// snapshotFile is the gob encoded content of the snapshot file
type snapshotFile struct {
	Version int
	Entries map[Key][]byte
}

// Snapshot the in-memory thread safe memory saved to a single gob file.
// With syncWrites every Store and Delete rewrites the file,
// otherwise changes reach the disk on Flush (and on Close).
// An empty path makes a volatile memory which never touches the disk.
type Snapshot struct {
	mu         sync.RWMutex
	fileMu     sync.Mutex
	path       string
	syncWrites bool
	data       map[Key][]byte
	dirty      bool
	closed     bool

	sugar *zap.SugaredLogger
}

// OpenSnapshot creates the snapshot memory, with restore the content of path is loaded.
// Without restore the file must not exist yet.
func OpenSnapshot(path string, restore bool, syncWrites bool, logger *zap.Logger) (*Snapshot, error) {
	s := &Snapshot{
		path:       path,
		syncWrites: syncWrites,
		data:       make(map[Key][]byte),
		sugar:      logger.Sugar(),
	}
	if path == "" {
		return s, nil
	}
	if !restore {
		// the first flush would replace the file, the counter included
		if _, err := os.Stat(path); err == nil {
			return nil, fmt.Errorf("%w: %s, remove it or enable restore", ErrSnapshotExists, path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("snapshot stat: %w", err)
		}
		return s, nil
	}

	if err := s.loadFromDisk(); err != nil {
		return nil, err
	}
	s.sugar.Infow("snapshot restored", "file", path, "entries", len(s.data))
	return s, nil
}

// NewVolatile memory without a file
func NewVolatile(logger *zap.Logger) *Snapshot {
	s, _ := OpenSnapshot("", false, false, logger)
	return s
}

func (s *Snapshot) Load(key Key) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrClosed
	}
	value, ok := s.data[key]
	if !ok {
		return nil, fmt.Errorf("load %s: %w", key, ErrNotFound)
	}
	return append([]byte(nil), value...), nil
}

func (s *Snapshot) Store(key Key, value []byte) error {
	value = append([]byte(nil), value...)
	return s.mutate(func(m map[Key][]byte) {
		m[key] = value
	})
}

func (s *Snapshot) Delete(key Key) error {
	return s.mutate(func(m map[Key][]byte) {
		delete(m, key)
	})
}

// mutate applies f to the data. With syncWrites f is applied to a copy,
// the copy is saved and only then replaces the data: a failed save leaves
// memory and disk as they were.
func (s *Snapshot) mutate(f func(m map[Key][]byte)) error {
	if !s.syncWrites || s.path == "" {
		s.mu.Lock()
		defer s.mu.Unlock()

		if s.closed {
			return ErrClosed
		}
		f(s.data)
		s.dirty = true
		return nil
	}

	// every synced mutation holds fileMu, data can't change until it is released
	s.fileMu.Lock()
	defer s.fileMu.Unlock()

	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return ErrClosed
	}
	next := make(map[Key][]byte, len(s.data)+1)
	for key, value := range s.data {
		next[key] = value
	}
	s.mu.RUnlock()

	f(next)
	if err := s.saveToDisk(next); err != nil {
		s.sugar.Errorw("snapshot write, change discarded", "file", s.path, "error", err)
		return err
	}

	s.mu.Lock()
	if !s.closed {
		s.data = next
		s.dirty = false
	}
	s.mu.Unlock()
	return nil
}

func (s *Snapshot) Scan(region Region, fn func(key Key, value []byte) error) error {
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return ErrClosed
	}
	keys := make([]Key, 0)
	values := make(map[Key][]byte)
	for key, value := range s.data {
		if key.Region() != region {
			continue
		}
		keys = append(keys, key)
		values[key] = append([]byte(nil), value...)
	}
	s.mu.RUnlock()

	sort.Slice(keys, func(i, j int) bool {
		return bytes.Compare(keys[i][:], keys[j][:]) < 0
	})
	for _, key := range keys {
		if err := fn(key, values[key]); err != nil {
			return err
		}
	}
	return nil
}

// Flush save data to disk if anything changed since the last flush
func (s *Snapshot) Flush(ctx context.Context) error {
	if s.path == "" {
		return nil
	}
	s.fileMu.Lock()
	defer s.fileMu.Unlock()

	m, dirty := s.copyData()
	if !dirty {
		return nil
	}
	if err := ctx.Err(); err != nil {
		s.markDirty()
		return err
	}
	if err := s.saveToDisk(m); err != nil {
		s.markDirty()
		return err
	}
	s.sugar.Debugw("snapshot flushed", "file", s.path, "entries", len(m))
	return nil
}

func (s *Snapshot) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	s.mu.Unlock()

	err := s.Flush(context.Background())

	s.mu.Lock()
	s.closed = true
	s.data = nil
	s.mu.Unlock()
	return err
}

func (s *Snapshot) copyData() (map[Key][]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ret := make(map[Key][]byte, len(s.data))
	for key, value := range s.data {
		ret[key] = value
	}
	dirty := s.dirty
	s.dirty = false
	return ret, dirty
}

func (s *Snapshot) markDirty() {
	s.mu.Lock()
	s.dirty = true
	s.mu.Unlock()
}

// saveToDisk writes a temporary file and renames it over the snapshot,
// a crash in the middle leaves the previous snapshot intact
func (s *Snapshot) saveToDisk(m map[Key][]byte) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("snapshot mkdir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("snapshot create: %w", err)
	}
	defer os.Remove(tmp.Name())

	err = gob.NewEncoder(tmp).Encode(snapshotFile{Version: snapshotVersion, Entries: m})
	if err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("snapshot write: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("snapshot rename: %w", err)
	}
	return nil
}

func (s *Snapshot) loadFromDisk() error {
	file, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("snapshot open: %w", err)
	}
	defer file.Close()

	var sf snapshotFile
	if err := gob.NewDecoder(file).Decode(&sf); err != nil {
		return fmt.Errorf("%w: snapshot %s: %v", ErrCorrupt, s.path, err)
	}
	if sf.Version != snapshotVersion {
		return fmt.Errorf("%w: snapshot %s: version %d", ErrCorrupt, s.path, sf.Version)
	}
	if sf.Entries != nil {
		s.data = sf.Entries
	}
	return nil
}
