package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Downlink.ListenAddr != "127.0.0.1:19800" {
		t.Errorf("ListenAddr = %s, want 127.0.0.1:19800", cfg.Downlink.ListenAddr)
	}
	if cfg.Console.HistorySize != 1000 {
		t.Errorf("HistorySize = %d, want 1000", cfg.Console.HistorySize)
	}
	if cfg.Console.Prompt != "agc> " {
		t.Errorf("Prompt = %q, want %q", cfg.Console.Prompt, "agc> ")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %s, want info", cfg.Log.Level)
	}
	if cfg.Timing.IdleSleepMillis != 5 {
		t.Errorf("IdleSleepMillis = %d, want 5", cfg.Timing.IdleSleepMillis)
	}
}

func TestGetConfigPath(t *testing.T) {
	path := GetConfigPath()
	if path == "" {
		t.Fatal("GetConfigPath returned empty string")
	}
	if filepath.Base(path) != "config.toml" {
		t.Errorf("path = %s, want a file named config.toml", path)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test_config.toml")

	cfg := DefaultConfig()
	cfg.Rom.ImagePath = "/roms/luminary99.bin"
	cfg.Downlink.ListenAddr = "0.0.0.0:20000"
	cfg.Console.HistorySize = 50
	cfg.Log.Level = "debug"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if loaded.Rom.ImagePath != "/roms/luminary99.bin" {
		t.Errorf("ImagePath = %s, want /roms/luminary99.bin", loaded.Rom.ImagePath)
	}
	if loaded.Downlink.ListenAddr != "0.0.0.0:20000" {
		t.Errorf("ListenAddr = %s, want 0.0.0.0:20000", loaded.Downlink.ListenAddr)
	}
	if loaded.Console.HistorySize != 50 {
		t.Errorf("HistorySize = %d, want 50", loaded.Console.HistorySize)
	}
	if loaded.Log.Level != "debug" {
		t.Errorf("Log.Level = %s, want debug", loaded.Log.Level)
	}
}

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "does_not_exist.toml")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Console.Prompt != "agc> " {
		t.Errorf("Prompt = %q, want defaults preserved", cfg.Console.Prompt)
	}
}
