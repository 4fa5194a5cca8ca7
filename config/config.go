package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config holds the settings that shape a run of the emulator: which rope
// to load, where the downlink listens, and how the console and log file
// behave.
type Config struct {
	Rom struct {
		ImagePath string `toml:"image_path"`
	} `toml:"rom"`

	Downlink struct {
		ListenAddr string `toml:"listen_addr"`
	} `toml:"downlink"`

	Console struct {
		HistorySize int    `toml:"history_size"`
		Prompt      string `toml:"prompt"`
	} `toml:"console"`

	Log struct {
		FilePath string `toml:"file_path"`
		Level    string `toml:"level"` // debug, info, warn, error
	} `toml:"log"`

	Timing struct {
		IdleSleepMillis int `toml:"idle_sleep_millis"`
	} `toml:"timing"`
}

// DefaultConfig returns the settings a fresh install starts with.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Rom.ImagePath = ""

	cfg.Downlink.ListenAddr = "127.0.0.1:19800"

	cfg.Console.HistorySize = 1000
	cfg.Console.Prompt = "agc> "

	cfg.Log.FilePath = ""
	cfg.Log.Level = "info"

	cfg.Timing.IdleSleepMillis = 5

	return cfg
}

// GetConfigPath returns the platform-specific config file path.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "ragc-go")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "ragc-go")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the given file, falling back to
// defaults if it does not exist yet.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the given file.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user-supplied config path
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	return nil
}
