package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akyairhashvil/pomo/internal/util"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ErrConfigExists is returned by WriteDefault when the target already exists.
var ErrConfigExists = errors.New("config file already exists")

// File is the user-editable runtime configuration.
type File struct {
	DataDir      string `mapstructure:"data_dir" yaml:"data_dir"`
	Language     string `mapstructure:"language" yaml:"language"`
	Theme        string `mapstructure:"theme" yaml:"theme"`
	LogFile      string `mapstructure:"log_file" yaml:"log_file,omitempty"`
	ToastSeconds int    `mapstructure:"toast_seconds" yaml:"toast_seconds"`
}

// Default returns the configuration used when no file exists.
func Default() File {
	dataDir := util.DataDir(AppName)
	return File{
		DataDir:      dataDir,
		Language:     "",
		Theme:        "light",
		LogFile:      filepath.Join(dataDir, LogFileName),
		ToastSeconds: int(DefaultToastDuration / time.Second),
	}
}

// DefaultPath resolves the config file location, honouring POMO_CONFIG.
func DefaultPath() string {
	if p := strings.TrimSpace(os.Getenv("POMO_CONFIG")); p != "" {
		return p
	}
	return filepath.Join(util.ConfigDir(AppName), ConfigFileName)
}

// Load reads the config at path on top of the defaults. A missing file is not an error.
func Load(path string) (File, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault("data_dir", cfg.DataDir)
	v.SetDefault("language", cfg.Language)
	v.SetDefault("theme", cfg.Theme)
	v.SetDefault("log_file", "")
	v.SetDefault("toast_seconds", cfg.ToastSeconds)

	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	// An unset log_file follows data_dir.
	cfg.LogFile = ""
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	if cfg.ToastSeconds <= 0 {
		cfg.ToastSeconds = int(DefaultToastDuration / time.Second)
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(cfg.DataDir, LogFileName)
	}
	return cfg, nil
}

// WriteDefault writes the default configuration to path.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return ErrConfigExists
	}
	cfg := Default()
	cfg.LogFile = ""
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// DBPath is the sqlite file inside the data directory.
func (f File) DBPath() string {
	return filepath.Join(f.DataDir, DBFileName)
}

// ToastDuration converts ToastSeconds.
func (f File) ToastDuration() time.Duration {
	if f.ToastSeconds <= 0 {
		return DefaultToastDuration
	}
	return time.Duration(f.ToastSeconds) * time.Second
}
