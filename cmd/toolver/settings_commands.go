package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"toolver/internal/config"
)

func newSettingsCommand(ctx *commandContext) *cobra.Command {
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Show and modify toolver settings",
		RunE:  runSettingsList(ctx),
	}

	settingsCmd.AddCommand(&cobra.Command{
		Use:   "ls",
		Short: "List resolved settings",
		RunE:  runSettingsList(ctx),
	})
	settingsCmd.AddCommand(newSettingsGetCommand(ctx))
	settingsCmd.AddCommand(newSettingsSetCommand(ctx))
	settingsCmd.AddCommand(newSettingsUnsetCommand(ctx))

	return settingsCmd
}

func runSettingsList(ctx *commandContext) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		resolved, err := ctx.ensureSettings()
		if err != nil {
			return err
		}

		rows := make([][]string, 0, 8)
		for _, pair := range resolved.Pairs() {
			rows = append(rows, []string{pair.Key, pair.Value})
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Setting", "Value"}, rows))
		return nil
	}
}

func newSettingsGetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print one resolved setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := ctx.ensureSettings()
			if err != nil {
				return err
			}
			value, ok := resolved.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown setting %q (known keys: %s)",
					args[0], strings.Join(config.SettingKeys(), ", "))
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

func newSettingsSetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Persist one setting to the configuration file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ctx.ensureSettings(); err != nil {
				return err
			}
			if err := config.SetValue(ctx.configPath, args[0], args[1]); err != nil {
				return err
			}
			ctx.log().Debug("setting persisted", "key", args[0], "value", args[1], "config", ctx.configPath)
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s in %s\n", args[0], args[1], ctx.configPath)
			return nil
		},
	}
}

func newSettingsUnsetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove one setting from the configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ctx.ensureSettings(); err != nil {
				return err
			}
			if err := config.UnsetValue(ctx.configPath, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Unset %s in %s\n", args[0], ctx.configPath)
			return nil
		},
	}
}
