package settings_test

import (
	"testing"
	"time"

	"toolver/internal/settings"
)

func interactive(v bool) func() bool {
	return func() bool { return v }
}

func TestDefaultValues(t *testing.T) {
	t.Setenv(settings.EnvMissingRuntimeBehavior, "")

	s := settings.Default(interactive(true))
	if s.MissingRuntimeBehavior != settings.Prompt {
		t.Fatalf("unexpected default behavior: %v", s.MissingRuntimeBehavior)
	}
	if s.AlwaysKeepDownload {
		t.Fatal("expected always_keep_download false by default")
	}
	if !s.LegacyVersionFile {
		t.Fatal("expected legacy_version_file true by default")
	}
	if s.DisablePluginShortNameRepository {
		t.Fatal("expected disable_plugin_short_name_repository false by default")
	}
	week := 7 * 24 * time.Hour
	if s.PluginAutoupdateLastCheckDuration != week {
		t.Fatalf("unexpected autoupdate check interval: %v", s.PluginAutoupdateLastCheckDuration)
	}
	if s.PluginRepositoryLastCheckDuration != week {
		t.Fatalf("unexpected repository check interval: %v", s.PluginRepositoryLastCheckDuration)
	}
	if s.Aliases.Len() != 0 {
		t.Fatalf("expected no default aliases, got %d plugins", s.Aliases.Len())
	}
}

func TestDefaultVerboseNegatesInteractive(t *testing.T) {
	if settings.Default(interactive(true)).Verbose {
		t.Fatal("interactive sessions should not be verbose by default")
	}
	if !settings.Default(interactive(false)).Verbose {
		t.Fatal("non-interactive sessions should be verbose by default")
	}
}

func TestPairsKeyOrder(t *testing.T) {
	want := []string{
		"missing_runtime_behavior",
		"always_keep_download",
		"legacy_version_file",
		"disable_plugin_short_name_repository",
		"plugin_autoupdate_last_check_duration",
		"plugin_repository_last_check_duration",
		"verbose",
	}

	pairs := settings.Default(interactive(true)).Pairs()
	if len(pairs) != len(want) {
		t.Fatalf("expected %d pairs, got %d", len(want), len(pairs))
	}
	for i, pair := range pairs {
		if pair.Key != want[i] {
			t.Fatalf("pair %d: got key %q want %q", i, pair.Key, want[i])
		}
	}
}

func TestPairsValueFormatting(t *testing.T) {
	s := settings.Default(interactive(true))
	s.MissingRuntimeBehavior = settings.Warn
	s.AlwaysKeepDownload = true
	// 90 seconds is one whole minute on export, truncated.
	s.PluginAutoupdateLastCheckDuration = 90 * time.Second
	s.PluginRepositoryLastCheckDuration = 59 * time.Second

	byKey := map[string]string{}
	for _, pair := range s.Pairs() {
		byKey[pair.Key] = pair.Value
	}

	if byKey["missing_runtime_behavior"] != "warn" {
		t.Fatalf("unexpected behavior value: %q", byKey["missing_runtime_behavior"])
	}
	if byKey["always_keep_download"] != "true" {
		t.Fatalf("unexpected always_keep_download: %q", byKey["always_keep_download"])
	}
	if byKey["legacy_version_file"] != "true" {
		t.Fatalf("unexpected legacy_version_file: %q", byKey["legacy_version_file"])
	}
	if byKey["plugin_autoupdate_last_check_duration"] != "1" {
		t.Fatalf("expected 90s to export as 1 minute, got %q", byKey["plugin_autoupdate_last_check_duration"])
	}
	if byKey["plugin_repository_last_check_duration"] != "0" {
		t.Fatalf("expected 59s to export as 0 minutes, got %q", byKey["plugin_repository_last_check_duration"])
	}
	if byKey["verbose"] != "false" {
		t.Fatalf("unexpected verbose: %q", byKey["verbose"])
	}
}

func TestGet(t *testing.T) {
	s := settings.Default(interactive(true))
	value, ok := s.Get("legacy_version_file")
	if !ok || value != "true" {
		t.Fatalf("unexpected legacy_version_file lookup: %q %v", value, ok)
	}
	if _, ok := s.Get("aliases"); ok {
		t.Fatal("aliases must not appear in the scalar export")
	}
	if _, ok := s.Get("bogus"); ok {
		t.Fatal("unknown key must not resolve")
	}
}

func TestMissingRuntimeBehaviorTokens(t *testing.T) {
	cases := map[settings.MissingRuntimeBehavior]string{
		settings.AutoInstall: "autoinstall",
		settings.Prompt:      "prompt",
		settings.Warn:        "warn",
		settings.Ignore:      "ignore",
	}
	for behavior, token := range cases {
		if behavior.String() != token {
			t.Fatalf("behavior %d: got token %q want %q", behavior, behavior.String(), token)
		}
		parsed, ok := settings.ParseMissingRuntimeBehavior(token)
		if !ok || parsed != behavior {
			t.Fatalf("token %q: parsed %v ok=%v", token, parsed, ok)
		}
	}
}

func TestParseMissingRuntimeBehaviorIsCaseSensitive(t *testing.T) {
	for _, token := range []string{"Warn", "WARN", "auto-install", "bogus", ""} {
		if _, ok := settings.ParseMissingRuntimeBehavior(token); ok {
			t.Fatalf("token %q should not parse", token)
		}
	}
}
