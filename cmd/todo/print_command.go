package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/todolist/internal/seed"
	"github.com/Makepad-fr/todolist/internal/ui"
)

func newPrintCommand(ctx *commandContext) *cobra.Command {
	var asJSON, group, raw bool

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print the starting list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := ctx.buildList(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				return seed.Write(out, l)
			case raw:
				fmt.Fprintln(out, l)
				return nil
			default:
				ui.ConfigureColor(stdoutFile(cmd), false)
				fmt.Fprintln(out, ui.Document(l, group))
				return nil
			}
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print a JSON snapshot")
	cmd.Flags().BoolVar(&group, "group", false, "Group output by pending/done")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the plain text rendering")
	return cmd
}
