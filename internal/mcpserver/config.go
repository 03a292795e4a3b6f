package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Records cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// Input limits.
	MaxInlineSize int64

	// list_records defaults.
	ListLimit int
	MaxLimit  int

	// convert defaults.
	Format      string
	Strict      bool
	IncludeInfo bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from APIDOC_SWAGGER_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("CACHE_ENABLED", true),
		CacheMaxSize:       envInt("CACHE_MAX_SIZE", 10),
		CacheFileTTL:       envDuration("CACHE_FILE_TTL", 15*time.Minute),
		CacheContentTTL:    envDuration("CACHE_CONTENT_TTL", 15*time.Minute),
		CacheSweepInterval: envDuration("CACHE_SWEEP_INTERVAL", 60*time.Second),
		MaxInlineSize:      int64(envInt("MAX_INLINE_SIZE", 10*1024*1024)),
		ListLimit:          envInt("LIST_LIMIT", 100),
		MaxLimit:           envInt("MAX_LIMIT", 1000),
		Format:             envFormat("FORMAT", "json"),
		Strict:             envBool("STRICT", false),
		IncludeInfo:        envBool("INCLUDE_INFO", true),
	}
}

const envPrefix = "APIDOC_SWAGGER_"

// env parses the variable envPrefix+name. Unset variables and values parse
// rejects yield fallback; rejected values are logged.
func env[T any](name string, fallback T, parse func(string) (T, bool)) T {
	key := envPrefix + name
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, ok := parse(v)
	if !ok {
		slog.Warn("invalid env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return parsed
}

func envBool(name string, fallback bool) bool {
	return env(name, fallback, func(v string) (bool, bool) {
		b, err := strconv.ParseBool(v)
		return b, err == nil
	})
}

// envInt accepts positive integers only.
func envInt(name string, fallback int) int {
	return env(name, fallback, func(v string) (int, bool) {
		n, err := strconv.Atoi(v)
		return n, err == nil && n > 0
	})
}

func envDuration(name string, fallback time.Duration) time.Duration {
	return env(name, fallback, func(v string) (time.Duration, bool) {
		d, err := time.ParseDuration(v)
		return d, err == nil && d > 0
	})
}

// validFormats is the set of recognised output formats.
var validFormats = map[string]bool{"json": true, "yaml": true, "yml": true}

// envFormat accepts a valid format in any case and returns it lower-cased.
func envFormat(name, fallback string) string {
	return env(name, fallback, func(v string) (string, bool) {
		v = strings.ToLower(v)
		return v, validFormats[v]
	})
}
