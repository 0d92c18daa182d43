package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"toolver/internal/settings"
)

//go:embed sample_config.toml
var sampleConfig string

// LocalConfigName is the project-local settings file discovered in the
// working directory.
const LocalConfigName = ".toolver.toml"

// EnvVerbose forces verbose output when set to a truthy value. It feeds the
// builder's Verbose field before resolution; unparsable values are ignored.
const EnvVerbose = "TOOLVER_VERBOSE"

// DefaultConfigPath returns the absolute path to the global configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/toolver/config.toml")
}

// Load reads configuration files into a settings builder. An explicit path
// replaces the global file; otherwise the default location is used. A
// project-local .toolver.toml, when present, is merged over the global layer.
// Absent files contribute nothing and are not an error. The returned path and
// existence flag describe the global file.
func Load(path string) (*settings.Builder, string, bool, error) {
	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	builder := &settings.Builder{}

	if exists {
		global, err := decodeFile(resolvedPath)
		if err != nil {
			return nil, "", false, err
		}
		builder.Merge(global)
	}

	localPath, err := filepath.Abs(LocalConfigName)
	if err != nil {
		return nil, "", false, fmt.Errorf("resolve local config path: %w", err)
	}
	if info, err := os.Stat(localPath); err == nil && !info.IsDir() {
		local, err := decodeFile(localPath)
		if err != nil {
			return nil, "", false, err
		}
		builder.Merge(local)
	}

	builder.Merge(environBuilder())

	return builder, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

func decodeFile(path string) (settings.Builder, error) {
	file, err := os.Open(path)
	if err != nil {
		return settings.Builder{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var raw fileSettings
	decoder := toml.NewDecoder(file)
	if err := decoder.Decode(&raw); err != nil {
		return settings.Builder{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	builder, err := raw.builder()
	if err != nil {
		return settings.Builder{}, fmt.Errorf("config %s: %w", path, err)
	}
	return builder, nil
}

func environBuilder() settings.Builder {
	var builder settings.Builder
	if value, ok := os.LookupEnv(EnvVerbose); ok {
		if verbose, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			builder.Verbose = &verbose
		}
	}
	return builder
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a commented sample configuration file to the specified
// location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
