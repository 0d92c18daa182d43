package main

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"toolver/internal/config"
	"toolver/internal/logging"
	"toolver/internal/settings"
	"toolver/internal/tty"
)

type commandContext struct {
	configFlag *string

	resolveOnce  sync.Once
	settings     settings.Settings
	configPath   string
	configExists bool
	resolveErr   error
	logger       *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

// ensureSettings resolves settings once per invocation: config files feed a
// builder, the builder resolves against defaults and the environment, and
// the logger level follows the resolved verbose flag.
func (c *commandContext) ensureSettings() (settings.Settings, error) {
	c.resolveOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		builder, resolvedPath, exists, err := config.Load(path)
		if err != nil {
			c.resolveErr = err
			return
		}
		c.configPath = resolvedPath
		c.configExists = exists
		c.settings = builder.Build(tty.IsInteractive)
		c.logger = logging.ForSettings(c.settings, os.Stderr)
		c.logger.Debug("settings resolved",
			"config", resolvedPath,
			"config_exists", exists,
			"missing_runtime_behavior", c.settings.MissingRuntimeBehavior.String())
	})
	return c.settings, c.resolveErr
}

func (c *commandContext) log() *slog.Logger {
	if c.logger == nil {
		return logging.NewNop()
	}
	return c.logger
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
