package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	pflag "github.com/spf13/pflag"

	"github.com/idilsaglam/showcase/internal/cli"
	"github.com/idilsaglam/showcase/internal/config"
	"github.com/idilsaglam/showcase/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	flags := cli.NewFlags("showcase")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			cli.PrintHelp(os.Stdout)
			os.Exit(0)
		}
		ui.Fail(err.Error())
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		ui.Fail(err.Error())
		os.Exit(2)
	}
	flags.Apply(&cfg)
	if err := cfg.Validate(); err != nil {
		ui.Fail("config: " + err.Error())
		os.Exit(2)
	}

	ui.SetTheme(cfg.Theme)
	if flags.NoColor() {
		ui.SetColorForcing(false, true)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Hand the remaining args to the CLI runner.
	code := cli.Run(ctx, flags.Args(), cli.Options{Config: cfg})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	stop()
	os.Exit(code)
}
