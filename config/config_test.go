package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcatalog/config"
)

func TestLoad_Defaults(t *testing.T) {
	type defaultsConfig struct {
		Host string `env:"CONFIG_TEST_HOST" envDefault:"localhost"`
		Port int    `env:"CONFIG_TEST_PORT" envDefault:"27017"`
	}

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 27017, cfg.Port)
}

func TestLoad_FromEnvironment(t *testing.T) {
	type envConfig struct {
		Name  string `env:"CONFIG_TEST_NAME" envDefault:"fallback"`
		Debug bool   `env:"CONFIG_TEST_DEBUG" envDefault:"false"`
	}

	t.Setenv("CONFIG_TEST_NAME", "bookcatalog")
	t.Setenv("CONFIG_TEST_DEBUG", "true")

	var cfg envConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "bookcatalog", cfg.Name)
	assert.True(t, cfg.Debug)
}

func TestLoad_RequiredMissing(t *testing.T) {
	type requiredConfig struct {
		Secret string `env:"CONFIG_TEST_REQUIRED_SECRET,required"`
	}

	var cfg requiredConfig
	err := config.Load(&cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParseFailed)
}

func TestLoad_CachesPerType(t *testing.T) {
	type cachedConfig struct {
		Value string `env:"CONFIG_TEST_CACHED" envDefault:"first"`
	}

	t.Setenv("CONFIG_TEST_CACHED", "original")

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	require.Equal(t, "original", first.Value)

	// Changing the environment after the first load must not be observed:
	// the type is served from cache.
	t.Setenv("CONFIG_TEST_CACHED", "changed")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "original", second.Value)
}

func TestMustLoad_PanicsOnError(t *testing.T) {
	type panicConfig struct {
		Token string `env:"CONFIG_TEST_MUST_TOKEN,required"`
	}

	assert.Panics(t, func() {
		var cfg panicConfig
		config.MustLoad(&cfg)
	})
}
