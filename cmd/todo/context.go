package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/todolist/internal/config"
	"github.com/Makepad-fr/todolist/internal/logging"
	"github.com/Makepad-fr/todolist/internal/model"
	"github.com/Makepad-fr/todolist/internal/seed"
	"github.com/Makepad-fr/todolist/internal/todolist"
	"github.com/Makepad-fr/todolist/internal/ui"
)

// commandContext carries root flags and the lazily resolved config.
type commandContext struct {
	configPath string
	title      string
	theme      string
	logLevel   string
	seed       string

	cfg    *config.Config
	logger *log.Logger
}

// ensureConfig loads the config once, applies flag overrides and sets up
// theme and logger.
func (c *commandContext) ensureConfig(cmd *cobra.Command) (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("title") {
		cfg.Title = c.title
	}
	if flags.Changed("theme") {
		cfg.Theme = c.theme
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = c.logLevel
	}
	if flags.Changed("seed") {
		cfg.SeedFile = c.seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ui.SetTheme(cfg.Theme)
	c.logger = logging.NewFromStrings(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	c.cfg = cfg
	return cfg, nil
}

// buildList creates the starting list from config items, then the seed file.
func (c *commandContext) buildList(cmd *cobra.Command) (*todolist.List[*model.Todo], error) {
	cfg, err := c.ensureConfig(cmd)
	if err != nil {
		return nil, err
	}

	l := todolist.New[*model.Todo](cfg.Title)
	records := make([]seed.Record, 0, len(cfg.Items))
	for _, it := range cfg.Items {
		records = append(records, seed.Record{Title: it.Title, Done: it.Done})
	}
	seed.Populate(l, records)

	if cfg.SeedFile != "" {
		records, err = seed.Load(cfg.SeedFile)
		if err != nil {
			return nil, fmt.Errorf("seed %s: %w", cfg.SeedFile, err)
		}
		seed.Populate(l, records)
	}

	c.logger.Debug("list ready", "title", l.Title(), "items", l.Size(), "seed", cfg.SeedFile)
	return l, nil
}

// stdoutFile returns the command's stdout when it is a real file.
func stdoutFile(cmd *cobra.Command) *os.File {
	f, _ := cmd.OutOrStdout().(*os.File)
	return f
}
