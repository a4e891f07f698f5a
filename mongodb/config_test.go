package mongodb_test

import (
	"os"
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcatalog/mongodb"
)

func TestConfig_Defaults(t *testing.T) {
	t.Setenv("MONGODB_URL", "mongodb://localhost:27017")

	var cfg mongodb.Config
	require.NoError(t, env.Parse(&cfg))

	assert.Equal(t, "mongodb://localhost:27017", cfg.ConnectionURL)
	assert.Equal(t, 10*time.Second, cfg.ConnectTimeout)
	assert.Equal(t, uint64(100), cfg.MaxPoolSize)
	assert.Equal(t, uint64(1), cfg.MinPoolSize)
	assert.Equal(t, 300*time.Second, cfg.MaxConnIdleTime)
	assert.True(t, cfg.RetryWrites)
	assert.True(t, cfg.RetryReads)
	assert.Equal(t, 3, cfg.RetryAttempts)
	assert.Equal(t, 5*time.Second, cfg.RetryInterval)
}

func TestConfig_URLRequired(t *testing.T) {
	// t.Setenv registers restoration of any surrounding value; the unset
	// afterwards is what makes the required tag trip.
	t.Setenv("MONGODB_URL", "placeholder")
	require.NoError(t, os.Unsetenv("MONGODB_URL"))

	var cfg mongodb.Config
	err := env.Parse(&cfg)

	require.Error(t, err)
}

func TestConfig_Overrides(t *testing.T) {
	t.Setenv("MONGODB_URL", "mongodb+srv://cluster0.example.mongodb.net")
	t.Setenv("MONGODB_CONNECT_TIMEOUT", "2s")
	t.Setenv("MONGODB_MAX_POOL_SIZE", "10")
	t.Setenv("MONGODB_RETRY_ATTEMPTS", "1")
	t.Setenv("MONGODB_RETRY_WRITES", "false")

	var cfg mongodb.Config
	require.NoError(t, env.Parse(&cfg))

	assert.Equal(t, 2*time.Second, cfg.ConnectTimeout)
	assert.Equal(t, uint64(10), cfg.MaxPoolSize)
	assert.Equal(t, 1, cfg.RetryAttempts)
	assert.False(t, cfg.RetryWrites)
}
