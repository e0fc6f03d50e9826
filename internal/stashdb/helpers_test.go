package stashdb

import (
	"errors"
	"log"
	"sync"

	"go.uber.org/zap"

	"github.com/S0me0neR0man/certstash/internal/memory"
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

var errInjected = errors.New("injected failure")

// faultyMemory fails writes on demand
type faultyMemory struct {
	memory.Memory
	failStore  bool
	failDelete bool
}

func newFaultyMemory() *faultyMemory {
	return &faultyMemory{Memory: memory.NewVolatile(getTestLogger())}
}

func (f *faultyMemory) Store(key memory.Key, value []byte) error {
	if f.failStore {
		return errInjected
	}
	return f.Memory.Store(key, value)
}

func (f *faultyMemory) Delete(key memory.Key) error {
	if f.failDelete {
		return errInjected
	}
	return f.Memory.Delete(key)
}
