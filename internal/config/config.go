package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	AppName               = "todoquiz"
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "todoquiz.db"
	DefaultLogName        = "todoquiz.log"

	// EnvConfigPath overrides where the config file lives.
	EnvConfigPath = "TODOQUIZ_CONFIG"
	// EnvDBPath overrides db_path from the file.
	EnvDBPath = "TODOQUIZ_DB"
)

type Keymap struct {
	Quit     string `toml:"quit"`
	Add      string `toml:"add"`
	Up       string `toml:"up"`
	Down     string `toml:"down"`
	Toggle   string `toml:"toggle"`
	Delete   string `toml:"delete"`
	Detail   string `toml:"detail"`
	Confirm  string `toml:"confirm"`
	Cancel   string `toml:"cancel"`
	Edit     string `toml:"edit"`
	Search   string `toml:"search"`
	Category string `toml:"category"`
	Share    string `toml:"share"`
	History  string `toml:"history"`
	Clear    string `toml:"clear"`
}

type Reminders struct {
	Enabled bool `toml:"enabled"`
}

type Config struct {
	DBPath        string    `toml:"db_path"`
	LogFile       string    `toml:"log_file"`
	DefaultFilter string    `toml:"default_filter"`
	SeedSamples   bool      `toml:"seed_samples"`
	Reminders     Reminders `toml:"reminders"`
	Keys          Keymap    `toml:"keys"`
}

// ResolveConfigPath returns $TODOQUIZ_CONFIG, or config.toml under the user
// config directory, falling back to the working directory.
func ResolveConfigPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, AppName, DefaultConfigFileName)
}

func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig(filepath.Dir(path))
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg.withEnv(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.fillDefaults(filepath.Dir(path))
	return cfg.withEnv(), nil
}

func (c *Config) fillDefaults(dir string) {
	def := defaultConfig(dir)
	if c.DBPath == "" {
		c.DBPath = def.DBPath
	}
	if c.LogFile == "" {
		c.LogFile = def.LogFile
	}
	if c.DefaultFilter == "" {
		c.DefaultFilter = def.DefaultFilter
	}
	k, d := &c.Keys, def.Keys
	for _, f := range []struct {
		v   *string
		def string
	}{
		{&k.Quit, d.Quit}, {&k.Add, d.Add}, {&k.Up, d.Up}, {&k.Down, d.Down},
		{&k.Toggle, d.Toggle}, {&k.Delete, d.Delete}, {&k.Detail, d.Detail},
		{&k.Confirm, d.Confirm}, {&k.Cancel, d.Cancel}, {&k.Edit, d.Edit},
		{&k.Search, d.Search}, {&k.Category, d.Category}, {&k.Share, d.Share},
		{&k.History, d.History}, {&k.Clear, d.Clear},
	} {
		if *f.v == "" {
			*f.v = f.def
		}
	}
}

func (c Config) withEnv() Config {
	if p := os.Getenv(EnvDBPath); p != "" {
		c.DBPath = p
	}
	return c
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig(dir string) Config {
	return Config{
		DBPath:        filepath.Join(dir, DefaultDBName),
		LogFile:       filepath.Join(dir, DefaultLogName),
		DefaultFilter: "all",
		SeedSamples:   true,
		Reminders:     Reminders{Enabled: true},
		Keys: Keymap{
			Quit:     "q",
			Add:      "a",
			Up:       "k",
			Down:     "j",
			Toggle:   " ",
			Delete:   "d",
			Detail:   "enter",
			Confirm:  "enter",
			Cancel:   "esc",
			Edit:     "e",
			Search:   "/",
			Category: "c",
			Share:    "s",
			History:  "h",
			Clear:    "x",
		},
	}
}
