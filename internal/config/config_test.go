package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ListenAddr != DefaultListenAddr {
		t.Errorf("ListenAddr = %q, want %q", cfg.ListenAddr, DefaultListenAddr)
	}
	if cfg.TaskConcurrency != DefaultTaskConcurrency {
		t.Errorf("TaskConcurrency = %d, want %d", cfg.TaskConcurrency, DefaultTaskConcurrency)
	}
}

func TestLoadAppliesDefaultsForOmittedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	data, _ := json.Marshal(map[string]any{"listenAddr": ":9090"})
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ListenAddr != ":9090" {
		t.Errorf("ListenAddr = %q, want %q", cfg.ListenAddr, ":9090")
	}
	if cfg.TaskConcurrency != DefaultTaskConcurrency {
		t.Errorf("TaskConcurrency = %d, want %d", cfg.TaskConcurrency, DefaultTaskConcurrency)
	}
}

func TestValidateRejectsNegativeConcurrency(t *testing.T) {
	cfg := New()
	cfg.TaskConcurrency = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error for negative TaskConcurrency")
	}
}

func TestValidateRequiresRegionWithBucket(t *testing.T) {
	cfg := New()
	cfg.S3.Bucket = "widget-results"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error for a bucket with no region")
	}
}

func TestUsesS3(t *testing.T) {
	cfg := New()
	if cfg.UsesS3() {
		t.Fatal("default config should not use S3")
	}
	cfg.S3.Bucket = "widget-results"
	if !cfg.UsesS3() {
		t.Fatal("expected UsesS3 to be true once bucket is set")
	}
}
