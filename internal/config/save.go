package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"

	"toolver/internal/settings"
)

var settingKeys = []string{
	"missing_runtime_behavior",
	"always_keep_download",
	"legacy_version_file",
	"disable_plugin_short_name_repository",
	"plugin_autoupdate_last_check_duration",
	"plugin_repository_last_check_duration",
	"verbose",
}

// SettingKeys lists the scalar keys accepted by SetValue and UnsetValue, in
// export order.
func SettingKeys() []string {
	keys := make([]string, len(settingKeys))
	copy(keys, settingKeys)
	return keys
}

// SetValue persists one setting to the configuration file at path, creating
// the file if needed. The write happens under a file lock so concurrent CLI
// invocations do not clobber each other. Keys and values outside the schema
// are rejected.
func SetValue(path, key, value string) error {
	parsed, err := parseSettingValue(key, value)
	if err != nil {
		return err
	}
	return mutateFile(path, func(doc map[string]any) {
		doc[key] = parsed
	})
}

// UnsetValue removes one setting from the configuration file at path so the
// value falls back to lower-priority layers. Removing a key that is absent,
// or unsetting against a missing file, is not an error.
func UnsetValue(path, key string) error {
	if !knownKey(key) {
		return unknownKeyError(key)
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return mutateFile(path, func(doc map[string]any) {
		delete(doc, key)
	})
}

func mutateFile(path string, mutate func(map[string]any)) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock config file: %w", err)
	}
	defer lock.Unlock()

	doc := map[string]any{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// Start from an empty document.
	default:
		return fmt.Errorf("read config: %w", err)
	}

	mutate(doc)

	encoded, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func parseSettingValue(key, value string) (any, error) {
	switch key {
	case "missing_runtime_behavior":
		behavior, ok := settings.ParseMissingRuntimeBehavior(value)
		if !ok {
			return nil, fmt.Errorf(
				"missing_runtime_behavior: unrecognized value %q (expected autoinstall, prompt, warn, or ignore)", value)
		}
		return behavior.String(), nil
	case "always_keep_download", "legacy_version_file", "disable_plugin_short_name_repository", "verbose":
		parsed, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("%s: expected a boolean, got %q", key, value)
		}
		return parsed, nil
	case "plugin_autoupdate_last_check_duration", "plugin_repository_last_check_duration":
		minutes, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil || minutes < 0 {
			return nil, fmt.Errorf("%s: expected a non-negative minute count, got %q", key, value)
		}
		return minutes, nil
	default:
		return nil, unknownKeyError(key)
	}
}

func knownKey(key string) bool {
	for _, known := range settingKeys {
		if key == known {
			return true
		}
	}
	return false
}

func unknownKeyError(key string) error {
	return fmt.Errorf("unknown setting %q (known keys: %s)", key, strings.Join(settingKeys, ", "))
}
