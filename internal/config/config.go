package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	envPrefix = "CERTSTASH"

	LevelDBBackend  = "leveldb"
	SnapshotBackend = "snapshot"
)

type Config struct {
	Address       string        `envconfig:"ADDRESS"`
	Backend       string        `envconfig:"BACKEND"`
	StoreFile     string        `envconfig:"STORE_FILE"`     // leveldb directory or snapshot file
	StoreInterval time.Duration `envconfig:"STORE_INTERVAL"` // snapshot only, 0 - save on every write
	Restore       bool          `envconfig:"RESTORE"`        // snapshot only, restore DB from disk on startup
	SyncWrites    bool          `envconfig:"SYNC_WRITES"`    // leveldb only, fsync every write
	LogLevel      string        `envconfig:"LOG_LEVEL"`
	Development   bool          `envconfig:"DEVELOPMENT"`
}

func defaultConfig() Config {
	return Config{
		Address:       "127.0.0.1:3200",
		Backend:       LevelDBBackend,
		StoreFile:     "db/certstash",
		StoreInterval: time.Second * 5,
		Restore:       true,
		SyncWrites:    true,
		LogLevel:      "info",
	}
}

// NewConfig defaults, overridden by CERTSTASH_* environment variables,
// overridden by command line flags
func NewConfig(args []string) (*Config, error) {
	conf := defaultConfig()

	if err := envconfig.Process(envPrefix, &conf); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("certstash", flag.ContinueOnError)
	fs.StringVar(&conf.Address, "a", conf.Address, "listen address")
	fs.StringVar(&conf.Backend, "backend", conf.Backend, "storage backend: leveldb or snapshot")
	fs.StringVar(&conf.StoreFile, "f", conf.StoreFile, "store file (leveldb directory or snapshot file)")
	fs.DurationVar(&conf.StoreInterval, "i", conf.StoreInterval, "snapshot store interval, 0 - save on every write")
	fs.BoolVar(&conf.Restore, "r", conf.Restore, "restore snapshot from disk on startup")
	fs.BoolVar(&conf.SyncWrites, "sync", conf.SyncWrites, "fsync every leveldb write")
	fs.StringVar(&conf.LogLevel, "log", conf.LogLevel, "log level")
	fs.BoolVar(&conf.Development, "dev", conf.Development, "development logger")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

func (c *Config) Validate() error {
	switch c.Backend {
	case LevelDBBackend, SnapshotBackend:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.StoreFile == "" {
		return errors.New("store file must be set")
	}
	if c.StoreInterval < 0 {
		return fmt.Errorf("store interval must not be negative, got %v", c.StoreInterval)
	}
	return nil
}
