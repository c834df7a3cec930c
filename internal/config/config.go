package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Store backends
const (
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// Config holds all configuration for the application
type Config struct {
	Discord   DiscordConfig   `envPrefix:"DISCORD_"`
	Redis     RedisConfig     `envPrefix:"REDIS_"`
	SQLite    SQLiteConfig    `envPrefix:"SQLITE_"`
	Store     string          `env:"STORE" envDefault:"redis"`
	Catalog   CatalogConfig   `envPrefix:"CATALOG_"`
	Ops       OpsConfig       `envPrefix:"OPS_"`
	Log       LogConfig       `envPrefix:"LOG_"`
	RateLimit RateLimitConfig `envPrefix:"RATE_LIMIT_"`
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string `env:"TOKEN"`
	AppID   string `env:"APP_ID"`
	GuildID string `env:"GUILD_ID"` // Optional: for guild-specific commands
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Addr      string `env:"ADDR" envDefault:"localhost:6379"`
	Password  string `env:"PASSWORD"`
	DB        int    `env:"DB" envDefault:"0"`
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"spy:"`
}

// SQLiteConfig holds the path of the SQLite store
type SQLiteConfig struct {
	Path string `env:"PATH" envDefault:"spot-the-spy.db"`
}

// CatalogConfig selects where locations are drawn from. URL wins over File.
type CatalogConfig struct {
	File    string        `env:"FILE"`
	Theme   string        `env:"THEME"`
	URL     string        `env:"URL"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`
}

// OpsConfig holds the health and metrics listener
type OpsConfig struct {
	Addr string `env:"ADDR" envDefault:":9090"`
}

// LogConfig controls zerolog output
type LogConfig struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"json"` // json or console
}

// RateLimitConfig limits how many interactions one user may send
type RateLimitConfig struct {
	Requests int           `env:"REQUESTS" envDefault:"10"`
	Window   time.Duration `env:"WINDOW" envDefault:"10s"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom loads configuration from the given variables instead of the
// process environment
func LoadFrom(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Store {
	case StoreRedis, StoreSQLite, StoreMemory:
	default:
		return fmt.Errorf("STORE must be one of %s, %s or %s, got '%s'", StoreRedis, StoreSQLite, StoreMemory, c.Store)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got '%s'", c.Log.Format)
	}
	if c.RateLimit.Requests < 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must not be negative")
	}
	return nil
}

// RequireDiscord checks the settings needed to talk to Discord
func (c *Config) RequireDiscord() error {
	if c.Discord.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}
	if c.Discord.AppID == "" {
		return fmt.Errorf("DISCORD_APP_ID is required")
	}
	return nil
}
