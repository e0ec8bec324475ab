// Package cmd implements the counter CLI commands.
//
// The command structure follows standard cobra patterns with a root command
// that resolves configuration once and dispatches to subcommands (run,
// render, version).
package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/go-drift/counter/cmd/counter/internal/app"
	"github.com/go-drift/counter/cmd/counter/internal/config"
	"github.com/go-drift/counter/pkg/core"
	"github.com/go-drift/counter/pkg/engine"
	"github.com/go-drift/counter/pkg/errors"
	"github.com/go-drift/counter/pkg/telemetry"
	"github.com/go-drift/counter/pkg/widgets"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// cli holds flag values and the state resolved before a subcommand runs.
type cli struct {
	dir     string
	start   int
	locale  string
	format  string
	verbose bool
	trace   bool

	cfg      *config.Resolved
	logger   zerolog.Logger
	shutdown func(context.Context) error
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree. Each call returns an independent
// tree, which keeps tests isolated.
func NewRootCommand() *cobra.Command {
	c := &cli{logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "counter",
		Short: "A counter with increment and decrement buttons",
		Long: `counter renders "count: N" with increment and decrement controls.

Settings come from built-in defaults, an optional counter.yaml in the
project root, COUNTER_* environment variables and flags, in that order.`,
		SilenceUsage:       true,
		PersistentPreRunE:  c.setup,
		PersistentPostRunE: c.teardown,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.dir, "dir", ".", "project directory (counter.yaml is read from its module root)")
	flags.IntVar(&c.start, "start", config.DefaultStart, "initial counter value")
	flags.StringVar(&c.locale, "locale", "", "BCP 47 locale for number formatting")
	flags.StringVarP(&c.format, "format", "f", string(config.DefaultFormat), "output format: text, html, json or png")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&c.trace, "trace", false, "write OpenTelemetry spans to stderr")

	root.AddCommand(c.runCmd(), c.renderCmd(), versionCmd())
	return root
}

func (c *cli) setup(cmd *cobra.Command, args []string) error {
	root, err := config.FindProjectRoot(c.dir)
	if err != nil {
		return err
	}

	var overrides config.Overrides
	flags := cmd.Flags()
	if flags.Changed("start") {
		overrides.Start = &c.start
	}
	if flags.Changed("locale") {
		overrides.Locale = &c.locale
	}
	if flags.Changed("format") {
		overrides.Format = &c.format
	}

	cfg, err := config.Resolve(root, overrides)
	if err != nil {
		return errors.Wrap("config.Resolve", errors.KindConfig, err)
	}
	cfg.Verbose = cfg.Verbose || c.verbose
	cfg.Trace = cfg.Trace || c.trace
	c.cfg = cfg

	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	c.logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
		Level(level).
		With().Timestamp().Str("app", cfg.AppName).
		Logger()

	errors.SetHandler(errors.NewLogHandler(c.logger, cfg.Verbose))
	core.SetErrorWidgetBuilder(widgets.ErrorWidget)

	c.shutdown, err = telemetry.Setup(cmd.Context(), cfg.AppName, cmd.ErrOrStderr(), cfg.Trace)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}

	c.logger.Debug().
		Str("root", cfg.Root).
		Int("start", cfg.Start).
		Str("format", string(cfg.Format)).
		Str("locale", cfg.Locale).
		Msg("resolved config")
	return nil
}

func (c *cli) teardown(cmd *cobra.Command, args []string) error {
	if c.shutdown == nil {
		return nil
	}
	return c.shutdown(cmd.Context())
}

// newSession mounts the counter app configured by c.cfg.
func (c *cli) newSession(opts ...engine.Option) (*engine.Session, error) {
	widget := app.CounterApp{
		Start:          c.cfg.Start,
		IncrementLabel: c.cfg.IncrementLabel,
		DecrementLabel: c.cfg.DecrementLabel,
		Locale:         c.cfg.Locale,
	}
	opts = append([]engine.Option{engine.WithLogger(c.logger)}, opts...)
	return engine.NewSession(widget, opts...)
}

// controlLabel maps a command word to a button label. Unknown words are
// returned unchanged so configured labels can be used directly.
func (c *cli) controlLabel(word string) string {
	switch strings.ToLower(word) {
	case "+", "i", "inc", "increment":
		return c.cfg.IncrementLabel
	case "-", "d", "dec", "decrement":
		return c.cfg.DecrementLabel
	default:
		return word
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// Version needs no configuration.
		PersistentPreRunE:  func(*cobra.Command, []string) error { return nil },
		PersistentPostRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "counter version %s (built %s)\n", Version, BuildTime)
			return err
		},
	}
}
