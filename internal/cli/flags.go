package cli

import (
	"time"

	pflag "github.com/spf13/pflag"

	"github.com/idilsaglam/showcase/internal/config"
)

// Flags are the root flags. Only flags the user actually set override the
// environment.
type Flags struct {
	fs *pflag.FlagSet

	api      string
	timeout  time.Duration
	addr     string
	category string
	theme    string
	logLevel string
	logFile  string
	fixture  string
	noColor  bool
}

// NewFlags declares the root flags on a fresh set.
func NewFlags(name string) *Flags {
	f := &Flags{fs: pflag.NewFlagSet(name, pflag.ContinueOnError)}
	f.fs.Usage = func() {} // PrintHelp covers it
	f.fs.StringVar(&f.api, "api", "", "projects API base URL (or set SHOWCASE_API_BASE_URL)")
	f.fs.DurationVar(&f.timeout, "timeout", 0, "request timeout (or set SHOWCASE_TIMEOUT)")
	f.fs.StringVar(&f.addr, "addr", "", "listen address for serve (or set SHOWCASE_ADDR)")
	f.fs.StringVarP(&f.category, "category", "c", "", "starting category: ALL, STATIC, RESPONSIVE, DYNAMIC, REACT")
	f.fs.StringVar(&f.theme, "theme", "", "plain output theme: classic, neon, mono")
	f.fs.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	f.fs.StringVar(&f.logFile, "log-file", "", "append logs to this file")
	f.fs.StringVar(&f.fixture, "fixture", "", "read projects from a JSON file instead of the API")
	f.fs.BoolVar(&f.noColor, "no-color", false, "disable colors in plain output")
	return f
}

func (f *Flags) Parse(args []string) error { return f.fs.Parse(args) }

// Args are the positional arguments left after Parse.
func (f *Flags) Args() []string { return f.fs.Args() }

func (f *Flags) NoColor() bool { return f.noColor }

// Apply copies every flag that was set onto cfg.
func (f *Flags) Apply(cfg *config.Config) {
	set := func(name string, dst *string, v string) {
		if f.fs.Changed(name) {
			*dst = v
		}
	}
	set("api", &cfg.APIBaseURL, f.api)
	set("addr", &cfg.Addr, f.addr)
	set("category", &cfg.Category, f.category)
	set("theme", &cfg.Theme, f.theme)
	set("log-level", &cfg.LogLevel, f.logLevel)
	set("log-file", &cfg.LogFile, f.logFile)
	set("fixture", &cfg.Fixture, f.fixture)
	if f.fs.Changed("timeout") {
		cfg.Timeout = f.timeout
	}
}

func flagUsages() string {
	return NewFlags("showcase").fs.FlagUsages()
}
