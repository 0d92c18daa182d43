package settings

// MissingRuntimeBehavior controls how toolver reacts when a required runtime
// version is not installed.
type MissingRuntimeBehavior int

const (
	// AutoInstall installs the missing runtime without asking.
	AutoInstall MissingRuntimeBehavior = iota
	// Prompt asks the user before installing.
	Prompt
	// Warn prints a warning and continues.
	Warn
	// Ignore continues silently.
	Ignore
)

// String renders the behavior as its canonical lowercase token. Formatting is
// the exact inverse of ParseMissingRuntimeBehavior.
func (b MissingRuntimeBehavior) String() string {
	switch b {
	case AutoInstall:
		return "autoinstall"
	case Warn:
		return "warn"
	case Ignore:
		return "ignore"
	default:
		return "prompt"
	}
}

// ParseMissingRuntimeBehavior matches a token case-sensitively against the
// four recognized behaviors. Unrecognized tokens report ok=false so callers
// can fall through to the next configuration layer.
func ParseMissingRuntimeBehavior(token string) (MissingRuntimeBehavior, bool) {
	switch token {
	case "autoinstall":
		return AutoInstall, true
	case "warn":
		return Warn, true
	case "ignore":
		return Ignore, true
	case "prompt":
		return Prompt, true
	default:
		return Prompt, false
	}
}
