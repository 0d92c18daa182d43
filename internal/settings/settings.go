package settings

import (
	"strconv"
	"time"
)

const defaultPluginCheckInterval = 7 * 24 * time.Hour

// Settings is the fully-resolved toolver configuration. Values are populated
// once by Builder.Build and treated as read-only afterward, so a Settings
// value may be shared across goroutines without synchronization.
type Settings struct {
	MissingRuntimeBehavior            MissingRuntimeBehavior
	AlwaysKeepDownload                bool
	LegacyVersionFile                 bool
	DisablePluginShortNameRepository  bool
	PluginAutoupdateLastCheckDuration time.Duration
	PluginRepositoryLastCheckDuration time.Duration
	Aliases                           AliasMap
	Verbose                           bool
}

// Default returns Settings populated with built-in defaults. The interactive
// probe reports whether the process is attached to a terminal; non-interactive
// runs default to verbose output. The probe is consulted once, here, not again
// at resolve time.
func Default(interactive func() bool) Settings {
	return Settings{
		MissingRuntimeBehavior:            Prompt,
		AlwaysKeepDownload:                false,
		LegacyVersionFile:                 true,
		DisablePluginShortNameRepository:  false,
		PluginAutoupdateLastCheckDuration: defaultPluginCheckInterval,
		PluginRepositoryLastCheckDuration: defaultPluginCheckInterval,
		Verbose:                           !interactive(),
	}
}

// Pair is one settings key/value rendered for display or export.
type Pair struct {
	Key   string
	Value string
}

// Pairs renders the scalar settings as key/value strings in declaration
// order. Aliases are structured rather than scalar and are excluded.
// Durations render as whole minutes, truncated.
func (s Settings) Pairs() []Pair {
	return []Pair{
		{"missing_runtime_behavior", s.MissingRuntimeBehavior.String()},
		{"always_keep_download", strconv.FormatBool(s.AlwaysKeepDownload)},
		{"legacy_version_file", strconv.FormatBool(s.LegacyVersionFile)},
		{"disable_plugin_short_name_repository", strconv.FormatBool(s.DisablePluginShortNameRepository)},
		{"plugin_autoupdate_last_check_duration", formatMinutes(s.PluginAutoupdateLastCheckDuration)},
		{"plugin_repository_last_check_duration", formatMinutes(s.PluginRepositoryLastCheckDuration)},
		{"verbose", strconv.FormatBool(s.Verbose)},
	}
}

// Get returns the rendered value for one export key.
func (s Settings) Get(key string) (string, bool) {
	for _, pair := range s.Pairs() {
		if pair.Key == key {
			return pair.Value, true
		}
	}
	return "", false
}

func formatMinutes(d time.Duration) string {
	return strconv.FormatInt(int64(d/time.Second)/60, 10)
}
