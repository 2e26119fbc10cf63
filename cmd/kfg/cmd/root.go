package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	mdwerror "github.com/felpofo/kfg/foundation/core/error"
	mdwlog "github.com/felpofo/kfg/foundation/core/log"
	"github.com/felpofo/kfg/foundation/kfg"
	"github.com/felpofo/kfg/foundation/kfg/trace"
	"github.com/felpofo/kfg/internal/printer"
	"github.com/felpofo/kfg/pkg/core/config"
	"github.com/felpofo/kfg/pkg/core/logging"
)

var (
	cfgFile   string
	verbose   bool
	logLevel  string
	logFormat string
	noColor   bool
)

// session is the per-run state built before any subcommand runs
type session struct {
	settings *config.Config
	logger   *mdwlog.Logger
	engine   *kfg.Engine
	printer  *printer.Printer
}

var app *session

var rootCmd = &cobra.Command{
	Use:   "kfg",
	Short: "kfg - configuration language tooling",
	Long: `kfg reads documents written in the kfg configuration language,
reports syntax errors with their position and converts documents
to other formats.

  name = 'kfg'
  server::host = 'localhost'
  server::port = 8080
  limits = { .cpu: 2, .mem: 512.5 }

Commands:
  parse    - print the parsed tree
  tokens   - print the token stream
  check    - validate one or more files
  get      - look up a dotted key
  export   - convert to json, yaml, toml or sqlite
  watch    - re-parse whenever a file changes
  view     - browse a file interactively`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and prints any error that was not already
// reported by the command itself
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !isReported(err) {
		printError(rootCmd, err)
	}
	return err
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if kfg.IsSyntaxError(err) && !mdwerror.HasCode(err, mdwerror.CodeKFGSyntax) {
		return mdwerror.CodeKFGSyntax.ExitCode()
	}
	return mdwerror.GetCode(err).ExitCode()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (default: $KFG_CONFIG, ./kfg.toml, ~/.config/kfg/kfg.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (text, json, console, logfmt)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func setup(cmd *cobra.Command, args []string) error {
	var (
		settings *config.Config
		err      error
	)
	if cfgFile != "" {
		settings, err = config.Load(cfgFile)
	} else {
		settings, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if logLevel != "" {
		settings.Log.Level = logLevel
	}
	if verbose {
		settings.Log.Level = "debug"
	}
	if logFormat != "" {
		settings.Log.Format = logFormat
	}
	if noColor {
		settings.Output.Color = printer.ColorNever
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	logger := logging.NewLogger(logging.LoggerConfig{
		ServiceName: "kfg",
		Level:       settings.Log.Level,
		Format:      settings.Log.Format,
		Output:      cmd.ErrOrStderr(),
		Fields:      mdwlog.Fields{"command": cmd.Name()},
		Caller:      logging.ParseLevel(settings.Log.Level) == mdwlog.LevelTrace,
	})
	if settings.Path() != "" {
		logger.Debug("Loaded settings", mdwlog.String("path", settings.Path()))
	}

	app = &session{
		settings: settings,
		logger:   logger,
		engine:   kfg.NewEngine(kfg.Options{Logger: logger, Tracer: trace.FromLogger(logger)}),
		printer: printer.New(printer.Options{
			Output: cmd.OutOrStdout(),
			Color:  settings.Output.Color,
			Indent: settings.Output.Indent,
		}),
	}
	return nil
}

// reportedError marks an error whose details were already written to the
// terminal
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error {
	return e.error
}

func reported(err error) error {
	return reportedError{err}
}

func isReported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}

func printError(cmd *cobra.Command, err error) {
	msg := err.Error()
	if app != nil {
		fmt.Fprint(cmd.ErrOrStderr(), app.printer.Error(msg))
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "error: %s\n", msg)
}
