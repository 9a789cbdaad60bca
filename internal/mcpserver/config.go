package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// PointTwoD controls whether format_point defaults to a 2D dict.
	PointTwoD bool

	// PointFormat is the default document format for format_point:
	// "none", "json", or "yaml".
	PointFormat string
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from SNAILTOOLS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		PointTwoD:   envBool("SNAILTOOLS_POINT_TWO_D", true),
		PointFormat: envFormat("SNAILTOOLS_POINT_FORMAT", formatNone),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envFormat(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if !isValidFormat(v) {
		slog.Warn("invalid format env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return v
}
