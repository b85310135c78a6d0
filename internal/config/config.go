package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Store     StoreConfig     `yaml:"store"`
	Redis     RedisConfig     `yaml:"redis"`
	Auth      AuthConfig      `yaml:"auth"`
	Upload    UploadConfig    `yaml:"upload"`
	HTTP      HTTPConfig      `yaml:"http"`
	Log       LogConfig       `yaml:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StoreConfig selects and configures the backing realtime store
type StoreConfig struct {
	Type                string `yaml:"type"` // "memory" or "firebase"
	Path                string `yaml:"path"` // collection path, e.g. "listings"
	DatabaseURL         string `yaml:"database_url"`
	CredentialsFile     string `yaml:"credentials_file"`
	PollIntervalSeconds int    `yaml:"poll_interval_seconds"`
}

// RedisConfig contains the warm snapshot cache settings
type RedisConfig struct {
	Enabled          bool   `yaml:"enabled"`
	Addr             string `yaml:"addr"`
	Password         string `yaml:"password"`
	SnapshotTTLHours int    `yaml:"snapshot_ttl_hours"`
}

// AdminAccount is one admin console credential pair
type AdminAccount struct {
	Email        string `yaml:"email"`
	PasswordHash string `yaml:"password_hash"` // bcrypt
}

// AuthConfig contains session token and admin account settings
type AuthConfig struct {
	JWTSecret            string         `yaml:"jwt_secret"`
	SessionExpiryMinutes int            `yaml:"session_expiry_minutes"`
	Admins               []AdminAccount `yaml:"admins"`
}

// UploadConfig bounds the admin image intake
type UploadConfig struct {
	MaxFileSizeMB int      `yaml:"max_file_size_mb"`
	AllowedTypes  []string `yaml:"allowed_types"`
}

// HTTPConfig contains cross-cutting HTTP settings
type HTTPConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	PersistSnapshot string `yaml:"persist_snapshot"`
	LogListingStats string `yaml:"log_listing_stats"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	if val := os.Getenv("STORE_TYPE"); val != "" {
		c.Store.Type = val
	}
	if val := os.Getenv("FIREBASE_DATABASE_URL"); val != "" {
		c.Store.DatabaseURL = val
	}
	if val := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); val != "" {
		c.Store.CredentialsFile = val
	}

	if val := os.Getenv("REDIS_ADDR"); val != "" {
		c.Redis.Addr = val
		c.Redis.Enabled = true
	}
	if val := os.Getenv("REDIS_PASSWORD"); val != "" {
		c.Redis.Password = val
	}

	if val := os.Getenv("JWT_SECRET"); val != "" {
		c.Auth.JWTSecret = val
	}

	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	if val := os.Getenv("ALLOWED_ORIGINS"); val != "" {
		c.HTTP.AllowedOrigins = strings.Split(val, ",")
	}

	// Defaults
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Store.Path == "" {
		c.Store.Path = "listings"
	}
	if c.Store.Type == "" {
		c.Store.Type = "memory"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Store.Type {
	case "memory":
	case "firebase":
		if c.Store.DatabaseURL == "" {
			return fmt.Errorf("store database_url is required for the firebase store")
		}
	default:
		return fmt.Errorf("unknown store type: %q", c.Store.Type)
	}

	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("redis addr is required when redis is enabled")
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters")
	}
	for i, a := range c.Auth.Admins {
		if a.Email == "" || a.PasswordHash == "" {
			return fmt.Errorf("admin account %d needs both email and password_hash", i)
		}
	}

	// Upload defaults
	if c.Upload.MaxFileSizeMB == 0 {
		c.Upload.MaxFileSizeMB = 5
	}
	if len(c.Upload.AllowedTypes) == 0 {
		c.Upload.AllowedTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}
	}

	// Scheduler defaults
	if c.Scheduler.PersistSnapshot == "" {
		c.Scheduler.PersistSnapshot = "0 */10 * * * *" // every 10 minutes
	}
	if c.Scheduler.LogListingStats == "" {
		c.Scheduler.LogListingStats = "0 0 * * * *" // hourly
	}

	return nil
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// PollInterval returns the firebase poll interval as a duration
func (c *StoreConfig) PollInterval() time.Duration {
	if c.PollIntervalSeconds <= 0 {
		return 2 * time.Second
	}
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

// SessionExpiry returns the admin session lifetime as a duration
func (c *AuthConfig) SessionExpiry() time.Duration {
	if c.SessionExpiryMinutes <= 0 {
		return 12 * time.Hour
	}
	return time.Duration(c.SessionExpiryMinutes) * time.Minute
}

// MaxFileSizeBytes returns the upload size limit in bytes
func (c *UploadConfig) MaxFileSizeBytes() int64 {
	return int64(c.MaxFileSizeMB) << 20
}

// SnapshotTTL returns the Redis snapshot TTL (0 = no expiry)
func (c *RedisConfig) SnapshotTTL() time.Duration {
	return time.Duration(c.SnapshotTTLHours) * time.Hour
}
