// Package config reads runtime settings from the environment. A .env file in
// the working directory is loaded first when present.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const EnvDevelopment = "development"

type Config struct {
	Port       string
	APIURL     string
	APITimeout time.Duration
	AppEnv     string

	// RedisAddr selects the redis session store; empty keeps sessions in
	// process memory.
	RedisAddr  string
	SessionTTL time.Duration

	// RateLimitRPS and RateLimitBurst bound mutating requests per client IP.
	RateLimitRPS   float64
	RateLimitBurst int
	// TrustedProxies lists proxy IPs or CIDRs whose X-Forwarded-For header
	// is believed. Empty means the peer address is always the client.
	TrustedProxies []string

	DevAPIPort string
	DBPath     string

	// Warnings collects problems found while reading the environment. They
	// are logged once the logger exists.
	Warnings []string
}

func (c Config) Development() bool { return c.AppEnv == EnvDevelopment }

// Load reads .env (if any) and the process environment.
func Load() Config {
	envErr := godotenv.Load()
	cfg := FromEnv()
	if envErr != nil {
		cfg.Warnings = append([]string{"error loading .env file: " + envErr.Error()}, cfg.Warnings...)
	}
	return cfg
}

// FromEnv builds a Config from the process environment only.
func FromEnv() Config {
	var e env
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		APIURL:         getEnv("API_URL", "http://localhost:8000"),
		APITimeout:     e.duration("API_TIMEOUT", 10*time.Second),
		AppEnv:         getEnv("APP_ENV", EnvDevelopment),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		SessionTTL:     e.duration("SESSION_TTL", 12*time.Hour),
		RateLimitRPS:   e.number("RATE_LIMIT_RPS", 5),
		RateLimitBurst: e.integer("RATE_LIMIT_BURST", 20),
		TrustedProxies: getList("TRUSTED_PROXIES"),
		DevAPIPort:     getEnv("DEVAPI_PORT", "8000"),
		DBPath:         getEnv("DB_PATH", "hrms.db"),
	}
	cfg.Warnings = e.warnings
	return cfg
}

// env records parse failures while reading typed values.
type env struct {
	warnings []string
}

func (e *env) warn(kind, key, value string) {
	e.warnings = append(e.warnings, fmt.Sprintf("invalid %s for %s (%q), using default", kind, key, value))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (e *env) duration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.warn("duration", key, v)
		return fallback
	}
	return d
}

func (e *env) integer(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.warn("integer", key, v)
		return fallback
	}
	return n
}

func (e *env) number(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		e.warn("number", key, v)
		return fallback
	}
	return f
}
