package main

import (
	"os"

	"github.com/Makepad-fr/todolist/internal/ui"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		ui.Fail(os.Stderr, err.Error())
		os.Exit(1)
	}
}
