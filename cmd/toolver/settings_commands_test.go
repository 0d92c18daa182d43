package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"toolver/internal/settings"
)

func TestSettingsListShowsResolvedValues(t *testing.T) {
	setupCLIHome(t)

	out, err := runCLI(t, "settings")
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	requireContains(t, out, "missing_runtime_behavior")
	requireContains(t, out, "prompt")
	requireContains(t, out, "legacy_version_file")
	requireContains(t, out, "plugin_autoupdate_last_check_duration")
	requireContains(t, out, "10080")

	lsOut, err := runCLI(t, "settings", "ls")
	if err != nil {
		t.Fatalf("settings ls: %v", err)
	}
	if lsOut != out {
		t.Fatal("settings and settings ls must render identically")
	}
}

func TestSettingsListKeyOrder(t *testing.T) {
	setupCLIHome(t)

	out, err := runCLI(t, "settings", "ls")
	if err != nil {
		t.Fatalf("settings ls: %v", err)
	}
	previous := -1
	for _, key := range []string{
		"missing_runtime_behavior",
		"always_keep_download",
		"legacy_version_file",
		"disable_plugin_short_name_repository",
		"plugin_autoupdate_last_check_duration",
		"plugin_repository_last_check_duration",
		"verbose",
	} {
		index := strings.Index(out, key)
		if index < 0 {
			t.Fatalf("missing key %q in output:\n%s", key, out)
		}
		if index < previous {
			t.Fatalf("key %q out of order in output:\n%s", key, out)
		}
		previous = index
	}
}

func TestSettingsGet(t *testing.T) {
	setupCLIHome(t)

	out, err := runCLI(t, "settings", "get", "legacy_version_file")
	if err != nil {
		t.Fatalf("settings get: %v", err)
	}
	if strings.TrimSpace(out) != "true" {
		t.Fatalf("unexpected value: %q", out)
	}

	if _, err := runCLI(t, "settings", "get", "bogus"); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestSettingsGetHonorsEnvironmentOverride(t *testing.T) {
	home := setupCLIHome(t)
	writeConfigFile(t, globalConfigPath(home), `missing_runtime_behavior = "autoinstall"`+"\n")
	t.Setenv(settings.EnvMissingRuntimeBehavior, "ignore")

	out, err := runCLI(t, "settings", "get", "missing_runtime_behavior")
	if err != nil {
		t.Fatalf("settings get: %v", err)
	}
	if strings.TrimSpace(out) != "ignore" {
		t.Fatalf("expected environment to win, got %q", out)
	}
}

func TestSettingsSetAndUnset(t *testing.T) {
	home := setupCLIHome(t)

	out, err := runCLI(t, "settings", "set", "missing_runtime_behavior", "warn")
	if err != nil {
		t.Fatalf("settings set: %v", err)
	}
	requireContains(t, out, "Set missing_runtime_behavior = warn")
	if _, err := os.Stat(globalConfigPath(home)); err != nil {
		t.Fatalf("expected config file to be created: %v", err)
	}

	out, err = runCLI(t, "settings", "get", "missing_runtime_behavior")
	if err != nil {
		t.Fatalf("settings get: %v", err)
	}
	if strings.TrimSpace(out) != "warn" {
		t.Fatalf("expected persisted value, got %q", out)
	}

	if _, err := runCLI(t, "settings", "unset", "missing_runtime_behavior"); err != nil {
		t.Fatalf("settings unset: %v", err)
	}
	out, err = runCLI(t, "settings", "get", "missing_runtime_behavior")
	if err != nil {
		t.Fatalf("settings get: %v", err)
	}
	if strings.TrimSpace(out) != "prompt" {
		t.Fatalf("expected default after unset, got %q", out)
	}
}

func TestSettingsSetValidation(t *testing.T) {
	setupCLIHome(t)

	if _, err := runCLI(t, "settings", "set", "bogus", "1"); err == nil {
		t.Fatal("expected error for unknown key")
	}
	if _, err := runCLI(t, "settings", "set", "verbose", "maybe"); err == nil {
		t.Fatal("expected error for bad boolean")
	}
}

func TestSettingsRespectsConfigFlag(t *testing.T) {
	setupCLIHome(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	writeConfigFile(t, path, "verbose = true\n")

	out, err := runCLI(t, "--config", path, "settings", "get", "verbose")
	if err != nil {
		t.Fatalf("settings get: %v", err)
	}
	if strings.TrimSpace(out) != "true" {
		t.Fatalf("expected verbose from explicit config, got %q", out)
	}
}
