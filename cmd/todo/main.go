package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/memtodo/internal/cli"
	"github.com/idilsaglam/memtodo/internal/config"
	"github.com/idilsaglam/memtodo/internal/logging"
	"github.com/idilsaglam/memtodo/internal/store/memstore"
	"github.com/idilsaglam/memtodo/internal/ui"
)

var version = "dev"

func main() {
	// Root flags (apply to every subcommand)
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.Usage = func() { cli.PrintHelp(os.Stderr) }

	cfg, err := config.Load(fs, os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(cli.ExitOK)
		}
		ui.Fail(os.Stderr, err.Error())
		os.Exit(cli.ExitUsage)
	}

	ui.SetTheme(cfg.Theme)

	logOpts := logging.DefaultOptions()
	logOpts.Level = cfg.LogLevel
	logger, err := logging.New(os.Stderr, logOpts)
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
		os.Exit(cli.ExitUsage)
	}
	if cfg.Path != "" {
		logger.Debug("loaded config", "path", cfg.Path)
	}

	// One store per process; nothing outlives it.
	store := memstore.New(
		memstore.WithIDPolicy(cfg.Policy()),
		memstore.WithLogger(logger),
	)

	// Hand the remaining args to the CLI runner.
	code := cli.Run(fs.Args(), cli.Options{
		Group:     cfg.Group,
		Strict:    cfg.StrictInput,
		Interface: cfg.Interface,
		Version:   version,
		Store:     store,
		Logger:    logger,
	})
	if code != cli.ExitOK {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
