package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string         `json:"env"`
	Http     HttpConfig     `json:"http"`
	Postgres PostgresConfig `json:"postgres"`
	Redis    RedisConfig    `json:"redis"`
	Engine   EngineConfig   `json:"engine"`
	APIKey   string         `json:"api_key,omitempty"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

// EngineConfig tunes the marker/alert core. Observer TTL is deliberately a
// knob: the product copy says one hour but it has never been pinned down.
type EngineConfig struct {
	DefaultRadiusMiles   float64       `json:"default_radius_miles"`
	ObserverTTL          time.Duration `json:"observer_ttl"`
	IceTTL               time.Duration `json:"ice_ttl"`
	AlertDuration        time.Duration `json:"alert_duration"`
	MaxVisibleAlerts     int           `json:"max_visible_alerts"`
	DedupeWindow         time.Duration `json:"dedupe_window"`
	RetryAttempts        int           `json:"retry_attempts"`
	CacheTTL             time.Duration `json:"cache_ttl"`
	CacheRefreshInterval time.Duration `json:"cache_refresh_interval"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", ""),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "sightmap_db"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "redis-local:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Engine: EngineConfig{
			DefaultRadiusMiles:   getEnvFloat("ENGINE_DEFAULT_RADIUS_MILES", 5.0),
			ObserverTTL:          getEnvDuration("ENGINE_OBSERVER_TTL", 1*time.Hour),
			IceTTL:               getEnvDuration("ENGINE_ICE_TTL", 24*time.Hour),
			AlertDuration:        getEnvDuration("ENGINE_ALERT_DURATION", 5*time.Second),
			MaxVisibleAlerts:     getEnvInt("ENGINE_MAX_VISIBLE_ALERTS", 5),
			DedupeWindow:         getEnvDuration("ENGINE_DEDUPE_WINDOW", 30*time.Second),
			RetryAttempts:        getEnvInt("ENGINE_RETRY_ATTEMPTS", 3),
			CacheTTL:             getEnvDuration("ENGINE_CACHE_TTL", 30*time.Second),
			CacheRefreshInterval: getEnvDuration("ENGINE_CACHE_REFRESH_INTERVAL", 30*time.Second),
		},
		APIKey: getEnv("API_KEY", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Http.Port == "" || c.Http.Port[0] != ':' {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}
	if c.Engine.DefaultRadiusMiles <= 0 {
		return errors.New("ENGINE_DEFAULT_RADIUS_MILES must be positive")
	}
	if c.Engine.ObserverTTL <= 0 || c.Engine.IceTTL <= 0 {
		return errors.New("marker TTLs must be positive")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
