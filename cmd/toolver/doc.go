// Package main hosts the toolver CLI entrypoint and command graph.
//
// The Cobra-based command tree surfaces settings resolution, alias listing,
// and configuration scaffolding. It centralizes config discovery and logger
// construction in a shared command context so subcommands stay declarative;
// resolution semantics live in internal/settings and internal/config.
package main
