package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/todolist/internal/tui"
)

func newTUICommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Edit the starting list interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := ctx.buildList(cmd)
			if err != nil {
				return err
			}
			if err := tui.Run(l); err != nil {
				return fmt.Errorf("tui: %w", err)
			}
			// Nothing is saved; the final state is printed on exit.
			fmt.Fprintln(cmd.OutOrStdout(), l)
			return nil
		},
	}
}
