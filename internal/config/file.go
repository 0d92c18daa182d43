package config

import (
	"fmt"
	"sort"
	"time"

	"toolver/internal/settings"
)

// fileSettings mirrors the on-disk schema. Scalar keys match the settings
// export keys; durations are integer minutes, symmetric with the export
// format. Alias tables live under [alias.<plugin>].
type fileSettings struct {
	MissingRuntimeBehavior           *string                      `toml:"missing_runtime_behavior"`
	AlwaysKeepDownload               *bool                        `toml:"always_keep_download"`
	LegacyVersionFile                *bool                        `toml:"legacy_version_file"`
	DisablePluginShortNameRepository *bool                        `toml:"disable_plugin_short_name_repository"`
	PluginAutoupdateLastCheckMinutes *int64                       `toml:"plugin_autoupdate_last_check_duration"`
	PluginRepositoryLastCheckMinutes *int64                       `toml:"plugin_repository_last_check_duration"`
	Verbose                          *bool                        `toml:"verbose"`
	Alias                            map[string]map[string]string `toml:"alias"`
}

func (f *fileSettings) builder() (settings.Builder, error) {
	var builder settings.Builder

	if f.MissingRuntimeBehavior != nil {
		behavior, ok := settings.ParseMissingRuntimeBehavior(*f.MissingRuntimeBehavior)
		if !ok {
			return settings.Builder{}, fmt.Errorf(
				"missing_runtime_behavior: unrecognized value %q (expected autoinstall, prompt, warn, or ignore)",
				*f.MissingRuntimeBehavior)
		}
		builder.MissingRuntimeBehavior = &behavior
	}

	builder.AlwaysKeepDownload = f.AlwaysKeepDownload
	builder.LegacyVersionFile = f.LegacyVersionFile
	builder.DisablePluginShortNameRepository = f.DisablePluginShortNameRepository
	builder.Verbose = f.Verbose

	autoupdate, err := minutesDuration("plugin_autoupdate_last_check_duration", f.PluginAutoupdateLastCheckMinutes)
	if err != nil {
		return settings.Builder{}, err
	}
	builder.PluginAutoupdateLastCheckDuration = autoupdate

	repository, err := minutesDuration("plugin_repository_last_check_duration", f.PluginRepositoryLastCheckMinutes)
	if err != nil {
		return settings.Builder{}, err
	}
	builder.PluginRepositoryLastCheckDuration = repository

	if len(f.Alias) > 0 {
		builder.Aliases = aliasMapFromTables(f.Alias)
	}

	return builder, nil
}

func minutesDuration(key string, minutes *int64) (*time.Duration, error) {
	if minutes == nil {
		return nil, nil
	}
	if *minutes < 0 {
		return nil, fmt.Errorf("%s: negative duration %d", key, *minutes)
	}
	d := time.Duration(*minutes) * time.Minute
	return &d, nil
}

// aliasMapFromTables converts decoded TOML alias tables into an AliasMap.
// TOML decoding goes through Go maps, so the file's table order is not
// recoverable; entries are inserted in sorted order for determinism.
func aliasMapFromTables(tables map[string]map[string]string) *settings.AliasMap {
	plugins := make([]string, 0, len(tables))
	for plugin := range tables {
		plugins = append(plugins, plugin)
	}
	sort.Strings(plugins)

	var aliases settings.AliasMap
	for _, plugin := range plugins {
		names := make([]string, 0, len(tables[plugin]))
		for name := range tables[plugin] {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			aliases.Set(settings.PluginName(plugin), name, tables[plugin][name])
		}
	}
	return &aliases
}
