package config

import (
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Redis    RedisConfig
	Sweep    SweepConfig
	Limits   LimitsConfig
}

// DatabaseConfig holds storage configuration. Driver "mysql" (default) uses
// the durable adapter; "memory" runs the engine fully in-process for demos.
type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string
	Port string
}

// RedisConfig holds the optional redis connection for the submission rate
// limiter. An empty Addr disables the limiter entirely.
type RedisConfig struct {
	Addr     string
	Password string
}

// SweepConfig controls the optional periodic overdue sweep. The sweep is
// pull-driven by default; IntervalSeconds > 0 additionally runs it on a
// timer.
type SweepConfig struct {
	IntervalSeconds int
}

// LimitsConfig holds abuse-prevention limits
type LimitsConfig struct {
	DailySubmissions int // per citizen per 24h; 0 disables the cap
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:   getEnv("STORAGE_DRIVER", "mysql"),
			Host:     getEnv("DB_HOST", "127.0.0.1"),
			Port:     getEnv("DB_PORT", "3306"),
			User:     getEnv("DB_USER", "root"),
			Password: os.Getenv("DB_PASSWORD"),
			DBName:   getEnv("DB_NAME", "janseva"),
		},
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnv("PORT", getEnv("SERVER_PORT", "8080")),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDRESS"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Sweep: SweepConfig{
			IntervalSeconds: getEnvInt("SWEEP_INTERVAL_SECONDS", 0),
		},
		Limits: LimitsConfig{
			DailySubmissions: getEnvInt("DAILY_SUBMISSION_LIMIT", 0),
		},
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
