package settings

import (
	"os"
	"time"
)

// EnvMissingRuntimeBehavior overrides the missing_runtime_behavior setting
// when set to one of the recognized tokens. It is the only environment
// variable this package consults; other fields deliberately never check the
// environment here, so their precedence stays two-level.
const EnvMissingRuntimeBehavior = "TOOLVER_MISSING_RUNTIME_BEHAVIOR"

// Builder accumulates explicit setting overrides. A nil pointer field means
// "unset, inherit from the next layer". The zero value is an empty builder.
type Builder struct {
	MissingRuntimeBehavior            *MissingRuntimeBehavior
	AlwaysKeepDownload                *bool
	LegacyVersionFile                 *bool
	DisablePluginShortNameRepository  *bool
	PluginAutoupdateLastCheckDuration *time.Duration
	PluginRepositoryLastCheckDuration *time.Duration
	Aliases                           *AliasMap
	Verbose                           *bool
}

// Merge applies other's set fields over b's, field by field. A set field in
// other replaces b's field even when b's was already set; unset fields leave
// b untouched. Merge is total and returns b for chaining. It is not
// commutative: the later-applied builder wins.
func (b *Builder) Merge(other Builder) *Builder {
	if other.MissingRuntimeBehavior != nil {
		b.MissingRuntimeBehavior = other.MissingRuntimeBehavior
	}
	if other.AlwaysKeepDownload != nil {
		b.AlwaysKeepDownload = other.AlwaysKeepDownload
	}
	if other.LegacyVersionFile != nil {
		b.LegacyVersionFile = other.LegacyVersionFile
	}
	if other.DisablePluginShortNameRepository != nil {
		b.DisablePluginShortNameRepository = other.DisablePluginShortNameRepository
	}
	if other.PluginAutoupdateLastCheckDuration != nil {
		b.PluginAutoupdateLastCheckDuration = other.PluginAutoupdateLastCheckDuration
	}
	if other.PluginRepositoryLastCheckDuration != nil {
		b.PluginRepositoryLastCheckDuration = other.PluginRepositoryLastCheckDuration
	}
	if other.Verbose != nil {
		b.Verbose = other.Verbose
	}
	if other.Aliases != nil {
		b.Aliases = other.Aliases
	}
	return b
}

// Build resolves the accumulated overrides against built-in defaults and the
// environment, producing a fully-populated Settings value. Resolution never
// fails: absent or unrecognized input falls through to the next layer.
//
// missing_runtime_behavior is special: TOOLVER_MISSING_RUNTIME_BEHAVIOR wins
// when it holds a recognized token, then the builder's field, then the
// default. Every other field is builder-if-set else default. The interactive
// probe only feeds the verbose default, via Default.
func (b *Builder) Build(interactive func() bool) Settings {
	resolved := Default(interactive)

	if behavior, ok := ParseMissingRuntimeBehavior(os.Getenv(EnvMissingRuntimeBehavior)); ok {
		resolved.MissingRuntimeBehavior = behavior
	} else if b.MissingRuntimeBehavior != nil {
		resolved.MissingRuntimeBehavior = *b.MissingRuntimeBehavior
	}

	if b.AlwaysKeepDownload != nil {
		resolved.AlwaysKeepDownload = *b.AlwaysKeepDownload
	}
	if b.LegacyVersionFile != nil {
		resolved.LegacyVersionFile = *b.LegacyVersionFile
	}
	if b.DisablePluginShortNameRepository != nil {
		resolved.DisablePluginShortNameRepository = *b.DisablePluginShortNameRepository
	}
	if b.PluginAutoupdateLastCheckDuration != nil {
		resolved.PluginAutoupdateLastCheckDuration = *b.PluginAutoupdateLastCheckDuration
	}
	if b.PluginRepositoryLastCheckDuration != nil {
		resolved.PluginRepositoryLastCheckDuration = *b.PluginRepositoryLastCheckDuration
	}
	if b.Verbose != nil {
		resolved.Verbose = *b.Verbose
	}
	if b.Aliases != nil {
		resolved.Aliases = b.Aliases.Clone()
	}

	return resolved
}
