package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	JWTSecret     string
	TokenValidity time.Duration
	GinMode       string
	Port          string
}

// Load reads configuration from the environment. The JWT secret has no
// default: a missing JWT_SECRET is a startup error, never a silent fallback.
func Load() (*Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	ttlHours, err := strconv.Atoi(getEnv("TOKEN_TTL_HOURS", "168"))
	if err != nil || ttlHours <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL_HOURS must be a positive integer")
	}

	return &Config{
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "voluntai"),
		DBPassword:    getEnv("DB_PASSWORD", "voluntai"),
		DBName:        getEnv("DB_NAME", "voluntai"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		JWTSecret:     secret,
		TokenValidity: time.Duration(ttlHours) * time.Hour,
		GinMode:       getEnv("GIN_MODE", "debug"),
		Port:          getEnv("PORT", "4000"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
