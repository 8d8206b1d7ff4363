package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "todo",
		Short:         "A tiny in-memory todo list",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&ctx.configPath, "config", "c", "", "Configuration file path (default ./todo.toml)")
	flags.StringVar(&ctx.title, "title", "", "List title")
	flags.StringVar(&ctx.theme, "theme", "", "Theme: classic, neon or mono")
	flags.StringVar(&ctx.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.StringVar(&ctx.seed, "seed", "", "JSON file with starting items")

	rootCmd.AddCommand(newPrintCommand(ctx))
	rootCmd.AddCommand(newExecCommand(ctx))
	rootCmd.AddCommand(newTUICommand(ctx))

	return rootCmd
}
