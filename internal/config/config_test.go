package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	conf, err := NewConfig(nil)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:3200", conf.Address)
	require.Equal(t, LevelDBBackend, conf.Backend)
	require.Equal(t, "db/certstash", conf.StoreFile)
	require.Equal(t, 5*time.Second, conf.StoreInterval)
	require.True(t, conf.Restore)
	require.True(t, conf.SyncWrites)
}

func TestNewConfig_Env(t *testing.T) {
	t.Setenv("CERTSTASH_BACKEND", "snapshot")
	t.Setenv("CERTSTASH_STORE_FILE", "/tmp/certstash.data")
	t.Setenv("CERTSTASH_STORE_INTERVAL", "0s")
	t.Setenv("CERTSTASH_RESTORE", "false")

	conf, err := NewConfig(nil)
	require.NoError(t, err)
	require.Equal(t, SnapshotBackend, conf.Backend)
	require.Equal(t, "/tmp/certstash.data", conf.StoreFile)
	require.Zero(t, conf.StoreInterval)
	require.False(t, conf.Restore)
}

func TestNewConfig_FlagsWin(t *testing.T) {
	t.Setenv("CERTSTASH_ADDRESS", "0.0.0.0:9000")

	conf, err := NewConfig([]string{"-a", "127.0.0.1:9100", "-i", "1m", "-dev"})
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9100", conf.Address)
	require.Equal(t, time.Minute, conf.StoreInterval)
	require.True(t, conf.Development)
}

func TestNewConfig_Invalid(t *testing.T) {
	_, err := NewConfig([]string{"-backend", "redis"})
	require.Error(t, err)

	_, err = NewConfig([]string{"-f", ""})
	require.Error(t, err)

	_, err = NewConfig([]string{"-i", "-1s"})
	require.Error(t, err)

	t.Setenv("CERTSTASH_STORE_INTERVAL", "soon")
	_, err = NewConfig(nil)
	require.Error(t, err)
}
