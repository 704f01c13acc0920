package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultInputDir      = "input"
	DefaultWorkingDir    = "working"
	DefaultPagesPerChunk = 30
	DefaultInputExt      = ".pdf"
)

// Config holds the settings shared by the CLI and the MCP server
type Config struct {
	// InputDir is scanned for the single document to split
	InputDir string
	// WorkingDir receives the chunk files
	WorkingDir    string
	PagesPerChunk int
	InputExt      string

	// DBPath is the run history database. Empty disables history.
	DBPath string

	ZoteroAPIKey    string
	ZoteroLibraryID string
}

// LoadDotEnv loads variables from a .env file into the process environment.
// A missing file is not an error; variables already set are left alone.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Load reads configuration from the environment, falling back to defaults
func Load() Config {
	cfg := Config{
		InputDir:      envOr("PDFSPLIT_INPUT_DIR", DefaultInputDir),
		WorkingDir:    envOr("PDFSPLIT_WORKING_DIR", DefaultWorkingDir),
		PagesPerChunk: envInt("PDFSPLIT_PAGES_PER_CHUNK", DefaultPagesPerChunk),
		InputExt:      envOr("PDFSPLIT_INPUT_EXT", DefaultInputExt),

		DBPath: os.Getenv("PDFSPLIT_DB_PATH"),

		ZoteroAPIKey:    os.Getenv("ZOTERO_API_KEY"),
		ZoteroLibraryID: os.Getenv("ZOTERO_LIBRARY_ID"),
	}

	if cfg.InputExt != "" && cfg.InputExt[0] != '.' {
		cfg.InputExt = "." + cfg.InputExt
	}

	return cfg
}

// Validate checks that the configuration can drive a split
func (c Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("PDFSPLIT_INPUT_DIR must not be empty")
	}
	if c.WorkingDir == "" {
		return fmt.Errorf("PDFSPLIT_WORKING_DIR must not be empty")
	}
	if c.PagesPerChunk < 1 {
		return fmt.Errorf("PDFSPLIT_PAGES_PER_CHUNK must be at least 1, got %d", c.PagesPerChunk)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
