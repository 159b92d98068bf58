package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

const devSessionSecret = "dev-session-secret-change-me"

// Config holds all configuration values
type Config struct {
	Port     string `mapstructure:"API_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	SessionSecret        string        `mapstructure:"SESSION_SECRET"`
	SessionTTL           time.Duration `mapstructure:"SESSION_TTL"`
	SessionSweepInterval time.Duration `mapstructure:"SESSION_SWEEP_INTERVAL"`
	BcryptCost           int           `mapstructure:"BCRYPT_COST"`
	SeedDemoUsers        bool          `mapstructure:"SEED_DEMO_USERS"`

	SearchLatencyMin time.Duration `mapstructure:"SEARCH_LATENCY_MIN"`
	SearchLatencyMax time.Duration `mapstructure:"SEARCH_LATENCY_MAX"`
	FlightCacheTTL   time.Duration `mapstructure:"FLIGHT_CACHE_TTL"`
	FlightCacheSize  int           `mapstructure:"FLIGHT_CACHE_SIZE"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	TemporalHost      string `mapstructure:"TEMPORAL_HOST"`
	TemporalNamespace string `mapstructure:"TEMPORAL_NAMESPACE"`

	LoginRatePerMin   int    `mapstructure:"LOGIN_RATE_PER_MIN"`
	LoginRateBurst    int    `mapstructure:"LOGIN_RATE_BURST"`
	CORSAllowedOrigin string `mapstructure:"CORS_ALLOWED_ORIGIN"`
}

// IsProduction checks if the environment is production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads config.yaml from . or ./config when present, then lets
// environment variables override it
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("SESSION_SECRET", "")
	v.SetDefault("SESSION_TTL", "168h")
	v.SetDefault("SESSION_SWEEP_INTERVAL", "1h")
	v.SetDefault("BCRYPT_COST", 12)
	v.SetDefault("SEED_DEMO_USERS", true)

	v.SetDefault("SEARCH_LATENCY_MIN", "800ms")
	v.SetDefault("SEARCH_LATENCY_MAX", "2s")
	v.SetDefault("FLIGHT_CACHE_TTL", "30m")
	v.SetDefault("FLIGHT_CACHE_SIZE", 5000)

	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("TEMPORAL_HOST", "")
	v.SetDefault("TEMPORAL_NAMESPACE", "default")

	v.SetDefault("LOGIN_RATE_PER_MIN", 20)
	v.SetDefault("LOGIN_RATE_BURST", 5)
	v.SetDefault("CORS_ALLOWED_ORIGIN", "*")
}

// Validate checks value ranges and fills the development session secret
func (c *Config) Validate() error {
	if c.SessionSecret == "" {
		if c.IsProduction() {
			return errors.New("SESSION_SECRET is required in production")
		}
		c.SessionSecret = devSessionSecret
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	if c.SessionSweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive, got %s", c.SessionSweepInterval)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be within [%d, %d], got %d", bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost)
	}
	if c.SearchLatencyMin < 0 || c.SearchLatencyMax < c.SearchLatencyMin {
		return fmt.Errorf("invalid search latency range [%s, %s]", c.SearchLatencyMin, c.SearchLatencyMax)
	}
	if c.FlightCacheSize <= 0 || c.FlightCacheTTL <= 0 {
		return errors.New("FLIGHT_CACHE_SIZE and FLIGHT_CACHE_TTL must be positive")
	}
	if c.LoginRatePerMin <= 0 || c.LoginRateBurst <= 0 {
		return errors.New("LOGIN_RATE_PER_MIN and LOGIN_RATE_BURST must be positive")
	}
	return nil
}
