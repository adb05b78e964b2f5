package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

// Environment keys that override values from medref.yaml.
const (
	EnvContentDir   = "MEDREF_CONTENT_DIR"
	EnvLogLevel     = "MEDREF_LOG_LEVEL"
	EnvDefaultLevel = "MEDREF_DEFAULT_LEVEL"
)

// Config is the in-memory representation of ~/.medref/medref.yaml.
type Config struct {
	ContentDir   string   `yaml:"content_dir,omitempty"`
	Excludes     []string `yaml:"excludes,omitempty"`
	DefaultLevel string   `yaml:"default_level,omitempty"`
	LogLevel     string   `yaml:"log_level,omitempty"`
}

// MedrefDir returns the absolute path to ~/.medref/.
func MedrefDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".medref"), nil
}

// ConfigPath returns the absolute path to ~/.medref/medref.yaml.
func ConfigPath() (string, error) {
	dir, err := MedrefDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "medref.yaml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// DefaultConfig returns the Config written by medref init.
func DefaultConfig() (*Config, error) {
	dir, err := MedrefDir()
	if err != nil {
		return nil, err
	}
	return &Config{
		ContentDir: filepath.Join(dir, "content"),
		Excludes: []string{
			".DS_Store",
			"Thumbs.db",
			"*.tmp",
			"*.bak",
			"*~",
			"drafts/**",
		},
		DefaultLevel: "intermediate",
		LogLevel:     "warn",
	}, nil
}

// Exists reports whether ~/.medref/medref.yaml is present.
func Exists() (bool, error) {
	path, err := ConfigPath()
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("cannot stat config %s: %w", path, err)
	}
	return true, nil
}

// Load reads and parses ~/.medref/medref.yaml. A missing file yields
// DefaultConfig.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig()
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	cfg.ContentDir, err = ExpandPath(cfg.ContentDir)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Resolve loads the config and applies overrides from the environment and
// ~/.medref/.env.
func Resolve() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	dotenv, err := LoadDotEnv()
	if err != nil {
		return nil, err
	}
	overrides := []struct {
		key string
		dst *string
	}{
		{EnvContentDir, &cfg.ContentDir},
		{EnvLogLevel, &cfg.LogLevel},
		{EnvDefaultLevel, &cfg.DefaultLevel},
	}
	for _, o := range overrides {
		v := os.Getenv(o.key)
		if v == "" {
			v = dotenv[o.key]
		}
		if v != "" {
			*o.dst = v
		}
	}
	cfg.ContentDir, err = ExpandPath(cfg.ContentDir)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save marshals cfg and writes it to ~/.medref/medref.yaml while holding
// ~/.medref/medref.yaml.lock.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", filepath.Dir(path), err)
	}
	unlock, err := acquireLock(path+".lock", 5*time.Second)
	if err != nil {
		return err
	}
	defer unlock()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}

func acquireLock(lockPath string, timeout time.Duration) (func(), error) {
	l := flock.New(lockPath)
	deadline := time.Now().Add(timeout)
	for {
		locked, err := l.TryLock()
		if err != nil {
			return func() {}, fmt.Errorf("cannot acquire config lock: %w", err)
		}
		if locked {
			return func() { _ = l.Unlock() }, nil
		}
		if time.Now().After(deadline) {
			return func() {}, fmt.Errorf("config is locked by another process (lock: %s)", lockPath)
		}
		time.Sleep(100 * time.Millisecond)
	}
}
