package config

import (
	"os"
	"time"
)

// Config is loaded once at startup and passed by reference to every
// component that needs it. Nothing outside this package reads
// environment variables.
type Config struct {
	DatabaseDSN        string
	RedisAddr          string
	KafkaBroker        string
	JWTSecret          string
	JWTExpiration      time.Duration
	ServerPort         string
	Env                string
	OutboxPollInterval time.Duration
	ReportCacheTTL     time.Duration
}

func Load() *Config {
	return &Config{
		DatabaseDSN:        getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=portal_rh port=5432 sslmode=disable"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker:        getEnv("KAFKA_BROKER", "localhost:9092"),
		JWTSecret:          getEnv("JWT_SECRET", "change-me-in-production"),
		JWTExpiration:      7 * 24 * time.Hour,
		ServerPort:         getEnv("PORT", "3000"),
		Env:                getEnv("APP_ENV", "development"),
		OutboxPollInterval: 3 * time.Second,
		ReportCacheTTL:     time.Minute,
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
