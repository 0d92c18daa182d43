// Package config reads toolver configuration files into a settings.Builder.
//
// It discovers the global config file (~/.config/toolver/config.toml) and an
// optional project-local .toolver.toml in the working directory, decodes both,
// and layers local over global so project settings win. An environment layer
// (TOOLVER_VERBOSE) is applied last. The resulting builder is handed to
// settings.Builder.Build for final resolution against defaults.
//
// The package also persists individual settings for `toolver settings set`,
// guarding concurrent CLI invocations with a file lock.
package config
