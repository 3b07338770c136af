package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, ":8080", c.EndpointAddrHTTP)
	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
	assert.Equal(t, 24*time.Hour, c.AccessTokenValidityDuration)
	assert.Equal(t, "slog", c.LogFormat)
	assert.Equal(t, uint64(5), c.DBConnectRetries)
	assert.Equal(t, 10*time.Second, c.DBConnectMaxDelay)
	assert.Equal(t, 5*time.Second, c.ShutdownTimeout)
	assert.NotEmpty(t, c.SecretKey)
	assert.False(t, c.InMemory())
}

func TestLoad_NoSources(t *testing.T) {
	c, err := Load(nil)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(defaults(), c))
}

func TestLoad_JSONFile(t *testing.T) {
	path := writeFile(t, "cfg.json", `{
		"endpoint_addr_http": ":9000",
		"database_dsn": "memory",
		"secret_key": "from-json",
		"access_token_validity_duration": "1h",
		"db_connect_retries": 0,
		"shutdown_timeout": 2000000000
	}`)

	c, err := Load([]string{"-c", path})
	require.NoError(t, err)

	want := defaults()
	want.EndpointAddrHTTP = ":9000"
	want.DatabaseDSN = "memory"
	want.SecretKey = "from-json"
	want.AccessTokenValidityDuration = time.Hour
	want.DBConnectRetries = 0
	want.ShutdownTimeout = 2 * time.Second

	assert.Empty(t, cmp.Diff(want, c))
	assert.True(t, c.InMemory())
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeFile(t, "cfg.yaml", "endpoint_addr_grpc: \":6000\"\nlog_format: zap\ndb_connect_max_delay: 3s\n")

	c, err := Load([]string{"-config=" + path})
	require.NoError(t, err)

	want := defaults()
	want.EndpointAddrGRPC = ":6000"
	want.LogFormat = "zap"
	want.DBConnectMaxDelay = 3 * time.Second

	assert.Empty(t, cmp.Diff(want, c))
}

func TestLoad_FileErrors(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		_, err := Load([]string{"-c", filepath.Join(t.TempDir(), "absent.json")})
		assert.Error(t, err)
	})

	t.Run("invalid json", func(t *testing.T) {
		path := writeFile(t, "bad.json", `{ not json`)
		_, err := Load([]string{"-c", path})
		assert.Error(t, err)
	})

	t.Run("invalid duration", func(t *testing.T) {
		path := writeFile(t, "bad.yml", "shutdown_timeout: soon\n")
		_, err := Load([]string{"-c", path})
		assert.Error(t, err)
	})
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "cfg.json", `{"secret_key":"from-json","endpoint_addr_http":":9000"}`)

	t.Setenv("SECRET_KEY", "from-env")
	t.Setenv("ACCESS_TOKEN_VALIDITY", "30m")
	t.Setenv("DB_CONNECT_RETRIES", "2")

	c, err := Load([]string{"-c", path})
	require.NoError(t, err)

	assert.Equal(t, "from-env", c.SecretKey)
	assert.Equal(t, ":9000", c.EndpointAddrHTTP)
	assert.Equal(t, 30*time.Minute, c.AccessTokenValidityDuration)
	assert.Equal(t, uint64(2), c.DBConnectRetries)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "later")

	_, err := Load(nil)
	assert.Error(t, err)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", ":7000")
	t.Setenv("DATABASE_DSN", "postgres://env")

	c, err := Load([]string{
		"-a", ":7100", "-g", ":7200", "-d", "memory", "-s", "flag-secret",
		"-t", "15m", "-l", "zap", "-r", "9", "-m", "1s", "-w", "250ms",
		"-unknown", "ignored",
	})
	require.NoError(t, err)

	want := &Config{
		EndpointAddrHTTP:            ":7100",
		EndpointAddrGRPC:            ":7200",
		DatabaseDSN:                 "memory",
		SecretKey:                   "flag-secret",
		AccessTokenValidityDuration: 15 * time.Minute,
		LogFormat:                   "zap",
		DBConnectRetries:            9,
		DBConnectMaxDelay:           time.Second,
		ShutdownTimeout:             250 * time.Millisecond,
	}
	assert.Empty(t, cmp.Diff(want, c))
}

func TestLoad_InvalidFlag(t *testing.T) {
	_, err := Load([]string{"-t", "forever"})
	assert.Error(t, err)
}
