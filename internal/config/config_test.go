package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PDFSPLIT_INPUT_DIR",
		"PDFSPLIT_WORKING_DIR",
		"PDFSPLIT_PAGES_PER_CHUNK",
		"PDFSPLIT_INPUT_EXT",
		"PDFSPLIT_DB_PATH",
		"ZOTERO_API_KEY",
		"ZOTERO_LIBRARY_ID",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	if cfg.InputDir != "input" {
		t.Errorf("InputDir = %q, want %q", cfg.InputDir, "input")
	}
	if cfg.WorkingDir != "working" {
		t.Errorf("WorkingDir = %q, want %q", cfg.WorkingDir, "working")
	}
	if cfg.PagesPerChunk != 30 {
		t.Errorf("PagesPerChunk = %d, want 30", cfg.PagesPerChunk)
	}
	if cfg.InputExt != ".pdf" {
		t.Errorf("InputExt = %q, want %q", cfg.InputExt, ".pdf")
	}
	if cfg.DBPath != "" {
		t.Errorf("DBPath = %q, want empty", cfg.DBPath)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PDFSPLIT_INPUT_DIR", "in")
	t.Setenv("PDFSPLIT_WORKING_DIR", "out")
	t.Setenv("PDFSPLIT_PAGES_PER_CHUNK", "12")
	t.Setenv("PDFSPLIT_INPUT_EXT", "PDF")
	t.Setenv("PDFSPLIT_DB_PATH", "/tmp/history.db")

	cfg := Load()
	if cfg.InputDir != "in" || cfg.WorkingDir != "out" {
		t.Errorf("Unexpected directories: %q, %q", cfg.InputDir, cfg.WorkingDir)
	}
	if cfg.PagesPerChunk != 12 {
		t.Errorf("PagesPerChunk = %d, want 12", cfg.PagesPerChunk)
	}
	if cfg.InputExt != ".PDF" {
		t.Errorf("InputExt = %q, want %q", cfg.InputExt, ".PDF")
	}
	if cfg.DBPath != "/tmp/history.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
}

func TestLoad_BadIntegerFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("PDFSPLIT_PAGES_PER_CHUNK", "thirty")

	if got := Load().PagesPerChunk; got != DefaultPagesPerChunk {
		t.Errorf("PagesPerChunk = %d, want default %d", got, DefaultPagesPerChunk)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{InputDir: "a", WorkingDir: "b", PagesPerChunk: 1}, false},
		{"zero chunk size", Config{InputDir: "a", WorkingDir: "b", PagesPerChunk: 0}, true},
		{"negative chunk size", Config{InputDir: "a", WorkingDir: "b", PagesPerChunk: -5}, true},
		{"missing input dir", Config{WorkingDir: "b", PagesPerChunk: 30}, true},
		{"missing working dir", Config{InputDir: "a", PagesPerChunk: 30}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	// godotenv never overrides variables that exist, even empty ones
	os.Unsetenv("PDFSPLIT_PAGES_PER_CHUNK")
	dir := t.TempDir()

	// Missing file is ignored
	if err := LoadDotEnv(filepath.Join(dir, ".env")); err != nil {
		t.Fatalf("Missing .env should not fail: %v", err)
	}

	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("PDFSPLIT_PAGES_PER_CHUNK=7\n"), 0644); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}
	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv failed: %v", err)
	}

	if got := Load().PagesPerChunk; got != 7 {
		t.Errorf("PagesPerChunk = %d, want 7", got)
	}
}
