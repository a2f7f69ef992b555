package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "token")

	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "token", cfg.TelegramAPIToken)
	assert.Equal(t, "assets/data/eng.csv", cfg.Data.EnglishSource)
	assert.Equal(t, ',', cfg.Data.DelimiterRune())
	assert.Equal(t, time.Second, cfg.Geography.AnswerDelay)
	assert.Equal(t, 4, cfg.Geography.OptionsCount)
	assert.False(t, cfg.Geography.EndOnExhaustion)
	assert.Equal(t, 5, cfg.English.MaxBlanks)
	assert.Equal(t, 3, cfg.English.RevealAfter)
	assert.Equal(t, 2*time.Hour, cfg.Sessions.IdleTTL)
	assert.Equal(t, "@every 15m", cfg.Sessions.CleanupSchedule)
}

func TestLoadFrom_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
env: production
data:
  geography_source: https://example.com/geo.csv
  delimiter: ";"
geography:
  end_on_exhaustion: true
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))

	t.Setenv("TELEGRAM_API_TOKEN", "token")
	t.Setenv("ENGLISH_MAX_BLANKS", "3")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "https://example.com/geo.csv", cfg.Data.GeographySource)
	assert.Equal(t, ';', cfg.Data.DelimiterRune())
	assert.True(t, cfg.Geography.EndOnExhaustion)
	assert.Equal(t, 3, cfg.English.MaxBlanks)
}

func TestLoadFrom_MissingToken(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "")

	_, err := LoadFrom(t.TempDir())
	assert.ErrorIs(t, err, ErrMissingEnvironmentVariables)
}

func TestLoadFrom_PostgresNeedsDatabaseURL(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "token")
	t.Setenv("DATA_GEOGRAPHY_SOURCE", SourcePostgres)
	t.Setenv("DATABASE_URL", "")

	_, err := LoadFrom(t.TempDir())
	assert.ErrorIs(t, err, ErrMissingEnvironmentVariables)

	t.Setenv("DATABASE_URL", "postgres://localhost/drill")
	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	dsn, err := cfg.DB.DSN()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/drill", dsn)
}

func TestLoadFrom_Invalid(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "token")
	t.Setenv("DATA_DELIMITER", ";;")

	_, err := LoadFrom(t.TempDir())
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
