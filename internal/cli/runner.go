package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/idilsaglam/showcase/internal/api"
	"github.com/idilsaglam/showcase/internal/config"
	"github.com/idilsaglam/showcase/internal/model"
	"github.com/idilsaglam/showcase/internal/showcase"
	"github.com/idilsaglam/showcase/internal/store/jsonstore"
	"github.com/idilsaglam/showcase/internal/tui"
	"github.com/idilsaglam/showcase/internal/ui"
	"github.com/idilsaglam/showcase/internal/web"
)

// Options tune behavior from root flags and the environment.
type Options struct {
	Config config.Config
	Stdout io.Writer
	Stderr io.Writer
	// Source overrides the API client or fixture picked from Config.
	Source showcase.Source
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, opt Options) int {
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	ui.SetOutput(opt.Stdout, opt.Stderr)

	cmd, a := "browse", []string(nil)
	if len(args) > 0 {
		cmd, a = args[0], args[1:]
	}

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Stdout)
		return 0

	case "categories":
		return doCategories(opt)

	case "ls":
		if len(a) > 1 {
			ui.Fail("usage: showcase ls [CATEGORY]")
			return 2
		}
		category := opt.Config.StartCategory()
		if len(a) == 1 {
			c, err := model.ParseCategory(a[0])
			if err != nil {
				ui.Fail("ls: " + err.Error())
				return 2
			}
			category = c
		}
		return doList(ctx, opt, category)

	case "browse":
		if len(a) != 0 {
			ui.Fail("usage: showcase browse")
			return 2
		}
		return doBrowse(ctx, opt)

	case "serve":
		if len(a) != 0 {
			ui.Fail("usage: showcase serve (use --addr to pick the address)")
			return 2
		}
		return doServe(ctx, opt)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(opt.Stderr)
	PrintHelp(opt.Stderr)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprintf(w, `showcase - browse portfolio projects by category

Usage:
  showcase [flags] <subcommand> [args]

Subcommands:
  browse             Interactive terminal view (default)
  ls [CATEGORY]      Fetch once and print the projects
  categories         List the category filters
  serve              Serve the web view on --addr

Flags:
%s
Examples:
  showcase
  showcase ls react
  showcase --fixture projects.json serve --addr :9000
`, flagUsages())
}

// -------------- subcommand impls ----------------

func doCategories(opt Options) int {
	for i, c := range model.Categories() {
		fmt.Fprintf(opt.Stdout, "%d  %-11s %s\n", i+1, c, ui.Dim(c.Label()))
	}
	return 0
}

func doList(ctx context.Context, opt Options, category model.Category) int {
	logger, closeLog, err := newLogger(opt.Config, opt.Stderr, false)
	if err != nil {
		ui.Fail("log: " + err.Error())
		return 1
	}
	defer closeLog()

	src, closeSrc, err := newSource(opt)
	if err != nil {
		ui.Fail("source: " + err.Error())
		return 1
	}
	defer closeSrc()

	ctrl := showcase.New(category)
	if err := ctrl.Fetch(ctx, src); err != nil {
		logger.Warn("fetch failed", "category", category, "err", err)
		ui.Fail("Oops! Something Went Wrong")
		fmt.Fprintln(opt.Stderr, ui.Dim("We cannot seem to find the page you are looking for"))
		return 1
	}

	ui.Panel(projectLines(ctrl.Category(), ctrl.Projects()))
	return 0
}

func doBrowse(ctx context.Context, opt Options) int {
	logger, closeLog, err := newLogger(opt.Config, opt.Stderr, true)
	if err != nil {
		ui.Fail("log: " + err.Error())
		return 1
	}
	defer closeLog()

	src, closeSrc, err := newSource(opt)
	if err != nil {
		ui.Fail("source: " + err.Error())
		return 1
	}
	defer closeSrc()

	if err := tui.Run(ctx, tui.Options{
		Source:   src,
		Category: opt.Config.StartCategory(),
		Logger:   logger,
	}); err != nil {
		ui.Fail("browse: " + err.Error())
		return 1
	}
	return 0
}

func doServe(ctx context.Context, opt Options) int {
	logger, closeLog, err := newLogger(opt.Config, opt.Stderr, false)
	if err != nil {
		ui.Fail("log: " + err.Error())
		return 1
	}
	defer closeLog()

	src, closeSrc, err := newSource(opt)
	if err != nil {
		ui.Fail("source: " + err.Error())
		return 1
	}
	defer closeSrc()

	if err := web.Serve(ctx, opt.Config.Addr, web.NewRouter(src, logger), logger); err != nil {
		ui.Fail("serve: " + err.Error())
		return 1
	}
	return 0
}

// -------------- wiring helpers --------------

// newSource picks the fixture file when one is configured, the API otherwise.
func newSource(opt Options) (showcase.Source, func(), error) {
	if opt.Source != nil {
		return opt.Source, func() {}, nil
	}
	if opt.Config.Fixture != "" {
		s, err := jsonstore.New(opt.Config.Fixture)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil
	}
	c, err := api.NewClient(opt.Config.APIBaseURL, opt.Config.Timeout)
	if err != nil {
		return nil, nil, err
	}
	return c, c.Close, nil
}

// newLogger writes to the configured log file, or to stderr. The terminal
// view owns the screen, so without a file it logs nowhere.
func newLogger(cfg config.Config, stderr io.Writer, owningTerminal bool) (*slog.Logger, func(), error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, nil, err
	}
	out, closeFn := stderr, func() {}
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closeFn = f, func() { _ = f.Close() }
	case owningTerminal:
		out = io.Discard
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: lvl})), closeFn, nil
}

// -------------- rendering helpers --------------

func projectLines(category model.Category, projects []model.Project) []string {
	header := fmt.Sprintf("%s  %s %s  %s %d",
		ui.C(ui.Current().Title, "Projects Showcase"),
		ui.C(ui.Current().Accent, ui.Current().Selected), category.Label(),
		ui.C(ui.Current().Muted, "Total"), len(projects),
	)
	lines := []string{header, ""}
	if len(projects) == 0 {
		return append(lines, ui.C(ui.Current().Muted, "no projects"))
	}
	for i, p := range projects {
		idx := fmt.Sprintf("%2d.", i+1)
		lines = append(lines,
			fmt.Sprintf("%s %s", ui.Dim(idx), ui.Truncate(p.Name, 60)),
			"    "+ui.C(ui.Current().Muted, ui.Truncate(p.ImageURL, 72)),
		)
	}
	return lines
}
