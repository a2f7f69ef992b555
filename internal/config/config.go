package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrInvalidConfig               = errors.New("invalid configuration")
)

// SourcePostgres selects the database as the dataset source.
const SourcePostgres = "postgres"

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string    `mapstructure:"env"`       // current application environment (local, dev, production)
	LogLevel         string    `mapstructure:"log_level"` // zap level name
	TelegramAPIToken string    `mapstructure:"-"`         // Telegram API token loaded from environment
	Data             Data      `mapstructure:"data"`
	Geography        Geography `mapstructure:"geography"`
	English          English   `mapstructure:"english"`
	Sessions         Sessions  `mapstructure:"sessions"`
	DB               DB        `mapstructure:"database"`
}

// Data describes where the datasets are loaded from.
type Data struct {
	EnglishSource   string        `mapstructure:"english_source"`   // file path, http(s) URL or "postgres"
	GeographySource string        `mapstructure:"geography_source"` // file path, http(s) URL or "postgres"
	Delimiter       string        `mapstructure:"delimiter"`        // single CSV field separator
	FetchTimeout    time.Duration `mapstructure:"fetch_timeout"`    // timeout of a dataset download
}

// DelimiterRune returns the configured delimiter as a rune.
func (d Data) DelimiterRune() rune {
	for _, r := range d.Delimiter {
		return r
	}
	return ','
}

// UsesPostgres reports whether any dataset is read from the database.
func (d Data) UsesPostgres() bool {
	return d.EnglishSource == SourcePostgres || d.GeographySource == SourcePostgres
}

// Geography contains the multiple-choice quiz settings.
type Geography struct {
	AnswerDelay     time.Duration `mapstructure:"answer_delay"`      // pause before the next question after a correct answer
	OptionsCount    int           `mapstructure:"options_count"`     // options per question, correct one included
	EndOnExhaustion bool          `mapstructure:"end_on_exhaustion"` // end the game instead of refilling the pool
}

// English contains the sentence drill settings.
type English struct {
	MaxBlanks   int `mapstructure:"max_blanks"`   // hidden words in fill-in-blank mode
	RevealAfter int `mapstructure:"reveal_after"` // failed checks before the answer is shown
}

// Sessions controls in-memory session eviction.
type Sessions struct {
	IdleTTL         time.Duration `mapstructure:"idle_ttl"`         // idle time after which a chat's game is dropped
	CleanupSchedule string        `mapstructure:"cleanup_schedule"` // cron spec of the eviction job
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Load reads configuration from ./config and environment variables.
func Load() (*Config, error) {
	return LoadFrom("./config")
}

// LoadFrom reads configuration from a config.yaml in dir and environment variables.
func LoadFrom(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetDefault("env", "local")
	v.SetDefault("log_level", "info")
	v.SetDefault("data.english_source", "assets/data/eng.csv")
	v.SetDefault("data.geography_source", "assets/data/geography_data.csv")
	v.SetDefault("data.delimiter", ",")
	v.SetDefault("data.fetch_timeout", "10s")
	v.SetDefault("geography.answer_delay", "1s")
	v.SetDefault("geography.options_count", 4)
	v.SetDefault("geography.end_on_exhaustion", false)
	v.SetDefault("english.max_blanks", 5)
	v.SetDefault("english.reveal_after", 3)
	v.SetDefault("sessions.idle_ttl", "2h")
	v.SetDefault("sessions.cleanup_schedule", "@every 15m")
	v.SetDefault("database.max_connections", 5)
	v.SetDefault("database.max_conn_lifetime", "30m")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // data.english_source -> DATA_ENGLISH_SOURCE
	v.AutomaticEnv()

	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, fmt.Errorf("%w: TELEGRAM_API_TOKEN", ErrMissingEnvironmentVariables)
	}

	cfg.DB.URL = v.GetString("database_url")
	if cfg.Data.UsesPostgres() && cfg.DB.URL == "" {
		return nil, fmt.Errorf("%w: DATABASE_URL", ErrMissingEnvironmentVariables)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case len([]rune(c.Data.Delimiter)) != 1:
		return fmt.Errorf("%w: data.delimiter must be a single character", ErrInvalidConfig)
	case c.Geography.OptionsCount < 2:
		return fmt.Errorf("%w: geography.options_count must be at least 2", ErrInvalidConfig)
	case c.English.MaxBlanks < 1:
		return fmt.Errorf("%w: english.max_blanks must be positive", ErrInvalidConfig)
	case c.English.RevealAfter < 1:
		return fmt.Errorf("%w: english.reveal_after must be positive", ErrInvalidConfig)
	case c.Sessions.IdleTTL <= 0:
		return fmt.Errorf("%w: sessions.idle_ttl must be positive", ErrInvalidConfig)
	}
	return nil
}
