// Package settings resolves the effective toolver configuration from layered
// sources.
//
// A Builder accumulates explicit overrides (from config files, flags, or any
// other caller) with per-field set/unset semantics. Builders merge
// right-biased, so later layers win. Build combines the accumulated overrides
// with built-in defaults and the TOOLVER_MISSING_RUNTIME_BEHAVIOR environment
// variable into one fully-populated Settings value.
//
// Resolution is total: absent or malformed input always falls back to the
// next layer, never to an error. Configuration resolution must not be the
// reason a toolver invocation aborts.
package settings
