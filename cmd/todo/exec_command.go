package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/todolist/internal/cli"
	"github.com/Makepad-fr/todolist/internal/ui"
)

func newExecCommand(ctx *commandContext) *cobra.Command {
	var opt cli.Options

	cmd := &cobra.Command{
		Use:   "exec [script|-]",
		Short: "Run list commands from a script file or stdin",
		Long:  "Run list commands, one per line, against the starting list.\n\nCommands:\n" + helpText(),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := ctx.buildList(cmd)
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open script: %w", err)
				}
				defer f.Close()
				in = f
			}

			ui.ConfigureColor(stdoutFile(cmd), false)
			s := cli.NewSession(l, cmd.OutOrStdout(), ctx.logger, opt)
			return s.Run(in)
		},
	}

	cmd.Flags().BoolVar(&opt.KeepGoing, "keep-going", false, "Log failing commands and continue")
	cmd.Flags().BoolVar(&opt.Group, "group", false, "ls groups output by pending/done")
	return cmd
}

func helpText() string {
	var b strings.Builder
	cli.PrintHelp(&b)
	return b.String()
}
