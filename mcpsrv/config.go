package mcpsrv

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Config holds the MCP transport settings. The content API settings come
// from the TOML config instead.
type Config struct {
	Port           string
	AllowedOrigins []string
	Stateless      bool
	RPS            float64
	Burst          int
	SessionTimeout time.Duration
	MaxLimit       int
}

func LoadConfig() Config {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	cfg := Config{
		Port:           port,
		AllowedOrigins: parseCSV(os.Getenv("PLACETUI_MCP_ALLOWED_ORIGINS")),
		Stateless:      parseBool(os.Getenv("PLACETUI_MCP_STATELESS"), false),
		RPS:            parseFloat(os.Getenv("PLACETUI_MCP_RPS"), 2),
		Burst:          parseInt(os.Getenv("PLACETUI_MCP_BURST"), 5),
		SessionTimeout: parseDuration(os.Getenv("PLACETUI_MCP_SESSION_TIMEOUT"), 15*time.Minute),
		MaxLimit:       parseInt(os.Getenv("PLACETUI_MCP_MAX_LIMIT"), defaultMaxLimit),
	}

	if cfg.RPS <= 0 {
		cfg.RPS = 2
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 5
	}
	if cfg.MaxLimit <= 0 {
		cfg.MaxLimit = defaultMaxLimit
	}

	return cfg
}

func StreamableOptions(cfg Config) *mcp.StreamableHTTPOptions {
	return &mcp.StreamableHTTPOptions{
		Stateless:      cfg.Stateless,
		SessionTimeout: cfg.SessionTimeout,
	}
}

func parseCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func parseBool(raw string, fallback bool) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return b
}

func parseInt(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return n
}

func parseFloat(raw string, fallback float64) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fallback
	}
	return n
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return d
}
