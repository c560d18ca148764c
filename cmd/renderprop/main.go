package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/renderprop/internal/config"
	"github.com/vango-dev/renderprop/internal/errors"
	"github.com/vango-dev/renderprop/pkg/slot"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

// app holds the state shared by every command.
type app struct {
	configPath string
	logLevel   string
	strict     bool
	noColor    bool

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "renderprop",
		Short: "Resolve and preview render-prop fixtures",
		Long: `renderprop resolves declarative component fixtures with the slot,
stateful, and container resolvers and renders them to HTML.

  • render prints one fixture's HTML
  • check renders every fixture twice and verifies expectations
  • serve runs a gallery with live reload`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.noColor {
				errors.DisableColors()
			}
			if cmd.Name() == "version" {
				return nil
			}
			return a.load(cmd.ErrOrStderr())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "Path to renderprop.json (default: nearest project root)")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.BoolVar(&a.strict, "strict", false, "Report handlers and render overrides that fall back")
	flags.BoolVar(&a.noColor, "no-color", false, "Disable colored error output")

	rootCmd.AddCommand(
		renderCmd(a),
		checkCmd(a),
		serveCmd(a),
		versionCmd(),
	)
	return rootCmd
}

// load reads the configuration, applies global flags, and builds the
// logger.
func (a *app) load(logOut io.Writer) error {
	var (
		cfg *config.Config
		err error
	)
	if a.configPath != "" {
		cfg, err = config.LoadFile(a.configPath)
	} else {
		cfg, err = config.LoadFromWorkingDir()
	}
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.strict {
		cfg.Merge.Strict = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: cfg.LogLevel()}))
	return nil
}

// resolveOptions are the resolver options the configuration asks for.
func (a *app) resolveOptions() []slot.Option {
	return []slot.Option{
		slot.WithLogger(a.logger),
		slot.WithStrict(a.cfg.Merge.Strict),
		slot.WithMerger(a.cfg.Merger(a.logger, nil)),
	}
}

// success prints a success line.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// failure prints a failure line.
func failure(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[31m✗\033[0m %s\n", fmt.Sprintf(format, args...))
}
