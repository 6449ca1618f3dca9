package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata" // timezones must resolve on hosts without a zoneinfo database

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	appName = "overload"

	DefaultTimestampLayout = "02/01/2006 15:04:05"
	DefaultTimezone        = "Local"
	DefaultLogLevel        = "info"
)

type Config struct {
	DB      DBConfig      `toml:"database"`
	Display DisplayConfig `toml:"display"`
	Log     LogConfig     `toml:"log"`
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string"` // libsql:// URL, file: URL or plain path.
	AuthToken        string `toml:"auth_token"`
}

type DisplayConfig struct {
	Timezone        string `toml:"timezone"`
	TimestampLayout string `toml:"timestamp_layout"`
}

type LogConfig struct {
	Level    string `toml:"level"`
	File     string `toml:"file"`
	ToStdout bool   `toml:"to_stdout"`
}

// Returns the directory holding the config, the local database and the logs.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Default returns the configuration used when no config file exists.
func Default(dir string) *Config {
	return &Config{
		DB: DBConfig{
			ConnectionString: "file:" + filepath.Join(dir, appName+".db"),
		},
		Display: DisplayConfig{
			Timezone:        DefaultTimezone,
			TimestampLayout: DefaultTimestampLayout,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
			File:  filepath.Join(dir, appName+".log"),
		},
	}
}

// LoadConfig reads the config file at path (the default path when empty), loads a .env
// file if there is one and applies environment overrides. A missing config file is not
// an error.
func LoadConfig(path string) (*Config, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}
	if path == "" {
		path = filepath.Join(dir, "config.toml")
	}

	cfg := Default(dir)
	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	// .env is optional.
	_ = godotenv.Load()
	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("OVERLOAD_DATABASE_URL"); v != "" {
		cfg.DB.ConnectionString = v
	} else if v := os.Getenv("TURSO_DATABASE_URL"); v != "" {
		cfg.DB.ConnectionString = v
	}
	if v := os.Getenv("TURSO_AUTH_TOKEN"); v != "" {
		cfg.DB.AuthToken = v
	}
	if v := os.Getenv("OVERLOAD_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		cfg.DB.ConnectionString = "file:./local.db"
	}
}

func (c *Config) validate() error {
	if c.DB.ConnectionString == "" {
		return fmt.Errorf("database.connection_string is required")
	}
	if c.Display.TimestampLayout == "" {
		c.Display.TimestampLayout = DefaultTimestampLayout
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("display.timezone: %w", err)
	}
	return nil
}

// Location resolves the display timezone.
func (c *Config) Location() (*time.Location, error) {
	switch c.Display.Timezone {
	case "", DefaultTimezone:
		return time.Local, nil
	default:
		return time.LoadLocation(c.Display.Timezone)
	}
}

// Save writes cfg as TOML to path, creating the parent directory.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
