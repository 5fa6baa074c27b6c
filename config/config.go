package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Env Environment `mapstructure:"-"`

	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Shopping  ShoppingConfig  `mapstructure:"shopping"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Meals     MealsConfig     `mapstructure:"meals"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	S3        S3Settings      `mapstructure:"s3"`
	CORS      CORSConfig      `mapstructure:"cors"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns host:port for http.Server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
	DSN    string `mapstructure:"dsn"`
}

type RedisConfig struct {
	URL string `mapstructure:"url"`
}

// StorageConfig selects where shopping lists are persisted.
type StorageConfig struct {
	Driver string `mapstructure:"driver"`
	Key    string `mapstructure:"key"`
}

type ShoppingConfig struct {
	DaysAhead        int    `mapstructure:"days_ahead"`
	WeekStart        string `mapstructure:"week_start"`
	Timezone         string `mapstructure:"timezone"`
	DefaultHousehold string `mapstructure:"default_household"`
}

// WeekStartDay maps week_start onto a weekday. Anything but "monday" is Sunday.
func (s ShoppingConfig) WeekStartDay() time.Weekday {
	if strings.EqualFold(s.WeekStart, "monday") {
		return time.Monday
	}
	return time.Sunday
}

// Location loads the configured time zone, the local zone when unset.
func (s ShoppingConfig) Location() (*time.Location, error) {
	if s.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(s.Timezone)
}

type CatalogConfig struct {
	OverridesPath string `mapstructure:"overrides_path"`
}

// MealsConfig selects where planned meals are read from.
type MealsConfig struct {
	Source  string        `mapstructure:"source"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type RateLimitConfig struct {
	Enabled         bool `mapstructure:"enabled"`
	GeneratePerHour int  `mapstructure:"generate_per_hour"`
}

// S3Settings configures sharing exported lists through S3.
type S3Settings struct {
	Enabled bool          `mapstructure:"enabled"`
	Bucket  string        `mapstructure:"bucket"`
	Region  string        `mapstructure:"region"`
	LinkTTL time.Duration `mapstructure:"link_ttl"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

const envPrefix = "KIOSK"

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "data/kiosk.db")
	v.SetDefault("database.dsn", "")

	v.SetDefault("redis.url", "")

	v.SetDefault("storage.driver", "sqlite")
	v.SetDefault("storage.key", "shopping-list")

	v.SetDefault("shopping.days_ahead", 7)
	v.SetDefault("shopping.week_start", "sunday")
	v.SetDefault("shopping.timezone", "")
	v.SetDefault("shopping.default_household", "home")

	v.SetDefault("catalog.overrides_path", "")

	v.SetDefault("meals.source", "db")
	v.SetDefault("meals.base_url", "")
	v.SetDefault("meals.timeout", 10*time.Second)

	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.generate_per_hour", 60)

	v.SetDefault("s3.enabled", false)
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.region", "")
	v.SetDefault("s3.link_ttl", 24*time.Hour)

	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000", "http://localhost:5173"})
}

// LoadConfig reads configuration from defaults, an optional config file
// named by KIOSK_CONFIG_FILE, a .env file and KIOSK_* environment variables,
// in increasing order of precedence.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file := os.Getenv(envPrefix + "_CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Env = GetEnvironment()

	// secrets mounted as files take precedence in production
	if cfg.Env == Production {
		if dsn := readSecret("database_dsn"); dsn != "" {
			cfg.Database.DSN = dsn
		}
		if url := readSecret("redis_url"); url != "" {
			cfg.Redis.URL = url
		}
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
