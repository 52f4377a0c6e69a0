package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/dshills/codechunk/internal/chunker"
	"github.com/dshills/codechunk/internal/ingester"
)

// Config holds all configuration for the codechunk driver.
type Config struct {
	RootPath      string   // Repository root to ingest
	OutputPath    string   // JSONL output file; empty means stdout
	MaxLines      int      // Per-chunk line bound
	Workers       int      // Concurrent chunking workers; 0 means NumCPU
	MinChunkChars int      // Minimum content length for an emitted chunk
	IncludeExts   []string // Extension allow-list; empty means the classifier's table
	ExcludeDirs   []string // Directory names to skip during the walk
}

// Load reads configuration from environment variables and returns a
// Config struct, applying defaults for optional fields. If a .env file
// exists in the current directory it is loaded first; variables already
// set in the environment take precedence over .env values.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		RootPath:   getEnv("CODECHUNK_ROOT", "."),
		OutputPath: getEnv("CODECHUNK_OUTPUT", ""),
	}

	var err error
	if cfg.MaxLines, err = getEnvInt("CODECHUNK_MAX_LINES", chunker.DefaultMaxLines); err != nil {
		return nil, err
	}
	if cfg.Workers, err = getEnvInt("CODECHUNK_WORKERS", 0); err != nil {
		return nil, err
	}
	if cfg.MinChunkChars, err = getEnvInt("CODECHUNK_MIN_CHARS", ingester.DefaultMinChunkChars); err != nil {
		return nil, err
	}

	cfg.IncludeExts = getEnvList("CODECHUNK_INCLUDE_EXTS", nil)
	cfg.ExcludeDirs = getEnvList("CODECHUNK_EXCLUDE_DIRS", ingester.DefaultExcludeDirs)

	if cfg.MaxLines <= 0 {
		return nil, fmt.Errorf("CODECHUNK_MAX_LINES must be greater than 0")
	}
	if info, err := os.Stat(cfg.RootPath); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("CODECHUNK_ROOT %q is not a readable directory", cfg.RootPath)
	}

	return cfg, nil
}

// IngesterConfig maps the loaded configuration onto the ingester's Config.
func (c *Config) IngesterConfig() *ingester.Config {
	return &ingester.Config{
		Workers:       c.Workers,
		MaxLines:      c.MaxLines,
		MinChunkChars: c.MinChunkChars,
		IncludeExts:   c.IncludeExts,
		ExcludeDirs:   c.ExcludeDirs,
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable or returns a default value.
func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid integer: %w", key, err)
	}
	return n, nil
}

// getEnvList gets a comma-separated environment variable as a slice,
// trimming whitespace around each element.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}
