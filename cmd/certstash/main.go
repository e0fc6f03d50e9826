package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/S0me0neR0man/certstash/internal/config"
	"github.com/S0me0neR0man/certstash/internal/memory"
	"github.com/S0me0neR0man/certstash/internal/registry"
	"github.com/S0me0neR0man/certstash/internal/server"
	"github.com/S0me0neR0man/certstash/internal/stashdb"
)

func main() {
	conf, err := config.NewConfig(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	logger, err := newLogger(conf)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := run(ctx, conf, logger); err != nil {
		logger.Sugar().Errorw("certstash", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, conf *config.Config, logger *zap.Logger) (err error) {
	sugar := logger.Sugar()

	mem, flusher, err := openMemory(conf, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := mem.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close memory: %w", cerr)
		}
	}()

	counter, err := stashdb.OpenCounter(mem, logger)
	if err != nil {
		return err
	}
	store, err := stashdb.OpenStore(mem, logger)
	if err != nil {
		return err
	}
	svc, err := registry.New(counter, store, logger)
	if err != nil {
		return err
	}
	sugar.Infow("registry ready", "records", store.Len(), "next_id", counter.Peek(), "backend", conf.Backend)

	return server.NewRegistryServer(svc, flusher, conf, logger).Run(ctx)
}

// openMemory flusher is nil for write-through backends
func openMemory(conf *config.Config, logger *zap.Logger) (memory.Memory, memory.Flusher, error) {
	switch conf.Backend {
	case config.SnapshotBackend:
		s, err := memory.OpenSnapshot(conf.StoreFile, conf.Restore, conf.StoreInterval == 0, logger)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	default:
		l, err := memory.OpenLevelDB(conf.StoreFile, conf.SyncWrites, logger)
		if err != nil {
			return nil, nil, err
		}
		return l, nil, nil
	}
}

func newLogger(conf *config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(conf.LogLevel)
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	if conf.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level
	return zc.Build()
}
