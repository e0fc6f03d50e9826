package memory

import (
	"errors"
	"fmt"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	lerrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
	"go.uber.org/zap"
)

// LevelDB memory backed by an embedded LevelDB database.
// Writes are durable once Store or Delete returns.
type LevelDB struct {
	db     *leveldb.DB
	wo     *opt.WriteOptions
	mu     sync.RWMutex // read-held by every operation, Close waits for them
	closed bool
	sugar  *zap.SugaredLogger
}

// OpenLevelDB opens (or creates) the database in dir.
// A corrupted manifest is repaired with leveldb.RecoverFile.
func OpenLevelDB(dir string, syncWrites bool, logger *zap.Logger) (*LevelDB, error) {
	sugar := logger.Sugar()

	db, err := leveldb.OpenFile(dir, nil)
	if lerrors.IsCorrupted(err) {
		sugar.Warnw("leveldb corrupted, recovering", "dir", dir, "error", err)
		db, err = leveldb.RecoverFile(dir, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("open leveldb %s: %w", dir, err)
	}

	sugar.Infow("leveldb opened", "dir", dir, "sync", syncWrites)
	return NewLevelDB(db, syncWrites, logger), nil
}

// NewLevelDB wraps an already opened database, Close closes it
func NewLevelDB(db *leveldb.DB, syncWrites bool, logger *zap.Logger) *LevelDB {
	return &LevelDB{
		db:    db,
		wo:    &opt.WriteOptions{Sync: syncWrites},
		sugar: logger.Sugar(),
	}
}

func (l *LevelDB) Load(key Key) ([]byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return nil, ErrClosed
	}

	value, err := l.db.Get(key[:], nil)
	if err != nil {
		return nil, l.wrap("load", key, err)
	}
	return value, nil
}

func (l *LevelDB) Store(key Key, value []byte) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return ErrClosed
	}

	if err := l.db.Put(key[:], value, l.wo); err != nil {
		return l.wrap("store", key, err)
	}
	return nil
}

func (l *LevelDB) Delete(key Key) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return ErrClosed
	}

	if err := l.db.Delete(key[:], l.wo); err != nil {
		return l.wrap("delete", key, err)
	}
	return nil
}

// Scan fn must not call back into l, a waiting Close would deadlock it
func (l *LevelDB) Scan(region Region, fn func(key Key, value []byte) error) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return ErrClosed
	}

	it := l.db.NewIterator(util.BytesPrefix([]byte{byte(region)}), nil)
	defer it.Release()

	for it.Next() {
		key, err := KeyFromBytes(it.Key())
		if err != nil {
			return err
		}
		// the iterator reuses its buffers
		value := make([]byte, len(it.Value()))
		copy(value, it.Value())
		if err := fn(key, value); err != nil {
			return err
		}
	}
	if err := it.Error(); err != nil {
		return fmt.Errorf("scan %s: %w", region, l.translate(err))
	}
	return nil
}

func (l *LevelDB) Close() error {
	// waits for pending operations
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return ErrClosed
	}
	l.closed = true
	return l.db.Close()
}

func (l *LevelDB) wrap(op string, key Key, err error) error {
	return fmt.Errorf("%s %s: %w", op, key, l.translate(err))
}

func (l *LevelDB) translate(err error) error {
	switch {
	case errors.Is(err, leveldb.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, leveldb.ErrClosed):
		return ErrClosed
	case lerrors.IsCorrupted(err):
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return err
}
