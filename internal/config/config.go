package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// RootEnv overrides the configured root directory.
const RootEnv = "CLG_ROOT"

// Config holds the clg configuration
type Config struct {
	// Root is the directory all checkouts live under.
	Root string `toml:"root"`
}

// Default returns the default configuration
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{Root: ".clg"}
	}
	return Config{Root: filepath.Join(home, ".clg")}
}

// Path returns the path to the config file
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".clg.toml"), nil
}

// ValidatePath checks that the path is absolute or starts with ~
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if path == "~" || (len(path) >= 2 && path[:2] == "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}

// Load reads config from ~/.clg.toml and applies the CLG_ROOT override.
// The returned Config is always usable; a non-nil error reports why the
// file was ignored and is meant to be logged, not treated as fatal.
func Load() (Config, error) {
	cfg := Default()
	var loadErr error

	if path, err := Path(); err == nil {
		cfg, loadErr = LoadFile(path)
	}

	if env := os.Getenv(RootEnv); env != "" {
		root, err := resolveRoot(env, RootEnv)
		if err != nil {
			return cfg, errors.Join(loadErr, err)
		}
		cfg.Root = root
	}

	return cfg, loadErr
}

// LoadFile reads config from path.
// Returns Default() without error if the file doesn't exist, and Default()
// with an error if it exists but cannot be read or is invalid.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if cfg.Root == "" {
		return Default(), nil
	}

	root, err := resolveRoot(cfg.Root, "root")
	if err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	cfg.Root = root

	return cfg, nil
}

func resolveRoot(root, fieldName string) (string, error) {
	if err := ValidatePath(root, fieldName); err != nil {
		return "", err
	}
	expanded, err := expandPath(root)
	if err != nil {
		return "", fmt.Errorf("expand %s: %w", fieldName, err)
	}
	return filepath.Clean(expanded), nil
}

type ctxKey struct{}

// WithConfig attaches the config to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext retrieves the config from context.
// Returns the defaults if none is attached.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}
	cfg := Default()
	return &cfg
}
