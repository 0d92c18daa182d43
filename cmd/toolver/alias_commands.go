package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"toolver/internal/settings"
)

func newAliasCommand(ctx *commandContext) *cobra.Command {
	aliasCmd := &cobra.Command{
		Use:   "alias",
		Short: "Version alias utilities",
	}
	aliasCmd.AddCommand(newAliasListCommand(ctx))
	return aliasCmd
}

func newAliasListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "ls [plugin]",
		Short: "List configured version aliases",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := ctx.ensureSettings()
			if err != nil {
				return err
			}

			plugins := resolved.Aliases.Plugins()
			if len(args) == 1 {
				plugins = []settings.PluginName{settings.PluginName(args[0])}
			}

			var rows [][]string
			for _, plugin := range plugins {
				for _, alias := range resolved.Aliases.For(plugin) {
					rows = append(rows, []string{string(plugin), alias.Name, alias.Value})
				}
			}
			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No aliases configured")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Plugin", "Alias", "Version"}, rows))
			return nil
		},
	}
}
