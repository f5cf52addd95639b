// Command splitbill splits bills from the command line and keeps their history.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mmynk/splitbill/internal/cli"
	"github.com/mmynk/splitbill/internal/config"
	"github.com/mmynk/splitbill/pkg/logging"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(int(subcommands.ExitFailure))
	}
	// the CLI stays quiet unless asked otherwise
	if os.Getenv("LOG_LEVEL") == "" {
		cfg.LogLevel = "warn"
	}
	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))

	cli.Register(subcommands.DefaultCommander, &cli.Env{
		Config: cfg,
		Out:    os.Stdout,
		Err:    os.Stderr,
	})

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}
