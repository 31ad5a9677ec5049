package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beautyflow/leadfunnel/pkg/config"
)

type mailerEnv struct {
	Token  string `env:"TEST_MAILER_TOKEN"`
	Sender string `env:"TEST_MAILER_SENDER" envDefault:"hello@beautyflow.pro"`
}

type requiredEnv struct {
	Key string `env:"TEST_REQUIRED_KEY,required"`
}

func TestLoad(t *testing.T) {
	t.Setenv("TEST_MAILER_TOKEN", "pm-token")
	config.ResetCache()

	var cfg mailerEnv
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "pm-token", cfg.Token)
	assert.Equal(t, "hello@beautyflow.pro", cfg.Sender)
}

func TestLoad_Cached(t *testing.T) {
	t.Setenv("TEST_MAILER_TOKEN", "first")
	config.ResetCache()

	var cfg mailerEnv
	require.NoError(t, config.Load(&cfg))

	// A later change to the environment must not affect the cached value.
	t.Setenv("TEST_MAILER_TOKEN", "second")
	var again mailerEnv
	require.NoError(t, config.Load(&again))
	assert.Equal(t, "first", again.Token)
}

func TestLoad_RequiredMissing(t *testing.T) {
	config.ResetCache()

	var cfg requiredEnv
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	err := config.Load[mailerEnv](nil)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestLoadEnv_NonExistentPath(t *testing.T) {
	err := config.LoadEnv("testdata/does_not_exist.env")
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}

func TestMustLoad_Panics(t *testing.T) {
	config.ResetCache()

	assert.Panics(t, func() {
		var cfg requiredEnv
		config.MustLoad(&cfg)
	})
}
