package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds runtime configuration for the Routeview service.
type Config struct {
	AppEnv     string
	ListenPort string

	// Route-search / conflict-validation backend
	BackendBaseURL string
	BackendTimeout time.Duration

	// Cache backend: "memory" or "redis"
	CacheBackend  string
	RedisHost     string
	RedisPort     string
	RedisPassword string

	// View-state sessions
	SessionTTL time.Duration

	// Lookup tables
	LookupRefreshTTL time.Duration

	// Conflict report cache
	ConflictReportTTL time.Duration
}

// Load reads configuration from the environment, applying defaults.
func Load() *Config {
	return &Config{
		AppEnv:            getenvStr("APP_ENV", "development"),
		ListenPort:        getenvStr("ROUTEVIEW_PORT", "3000"),
		BackendBaseURL:    getenvStr("ROUTER_API_BASE_URL", "http://localhost:5001"),
		BackendTimeout:    getenvDur("ROUTER_API_TIMEOUT", 10*time.Second),
		CacheBackend:      getenvStr("CACHE_BACKEND", "memory"),
		RedisHost:         getenvStr("REDIS_HOST", "localhost"),
		RedisPort:         getenvStr("REDIS_PORT", "6379"),
		RedisPassword:     getenvStr("REDIS_PASSWORD", ""),
		SessionTTL:        getenvDur("SESSION_TTL", 2*time.Hour),
		LookupRefreshTTL:  getenvDur("LOOKUP_REFRESH_TTL", 15*time.Minute),
		ConflictReportTTL: getenvDur("CONFLICT_REPORT_TTL", 30*time.Second),
	}
}

func getenvStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return def
}
