package cli

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/labelquant/internal/app"
	"github.com/specialistvlad/labelquant/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version is reported by --version.
var Version = "dev"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// options receives the raw flag values.
type options struct {
	inPlace     bool
	verbose     bool
	configPaths []string
	logLevel    string
	logFormat   string
}

const longHelp = `labelquant snaps every timestamp in TARGET_FILE to the nearest timestamp
in REFERENCE_FILE and reports how far each value moved.

Both files hold one label per line: either a single timestamp in seconds,
or an Audacity label "start<TAB>end[<TAB>text]". For reference labels the
start time is used.

Quantized labels are printed to stdout, or written back to TARGET_FILE with
--inplace. The adjustment summary is printed to stderr.`

// newCommand builds the root command. RunE only records the positional
// arguments; all work happens after parsing.
func newCommand(opts *options, output io.Writer, positional *[]string, ran *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "labelquant [flags] REFERENCE_FILE TARGET_FILE",
		Short:         "Quantize labels in the target file to the reference file.",
		Long:          longHelp,
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			*ran = true
			*positional = args
			return nil
		},
	}
	cmd.SetOut(output)
	cmd.SetErr(output)

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.BoolVarP(&opts.inPlace, "inplace", "i", false, "Apply quantizations directly to the TARGET_FILE.")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output.")
	flags.StringArrayVarP(&opts.configPaths, "config", "c", nil, "HCL settings file or directory of .hcl files (repeatable).")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.StringVar(&opts.logFormat, "log-format", "auto", "Log output format. Options: 'text', 'json' or 'auto'.")
	return cmd
}

// Parse processes command-line arguments. It returns a populated Config, a
// boolean indicating if the program should exit cleanly, or an ExitError.
// Settings files named with --config are read through loader; flags given
// on the command line take precedence over them.
func Parse(ctx context.Context, args []string, output io.Writer, loader config.Loader) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var (
		opts       options
		positional []string
		ran        bool
	)
	if args == nil {
		args = []string{}
	}
	cmd := newCommand(&opts, output, &positional, &ran)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error() + "\nRun 'labelquant --help' for usage."}
	}
	if !ran {
		// --help or --version was handled by cobra.
		return nil, true, nil
	}
	slog.Debug("Arguments parsed successfully.", "positional", positional)

	if len(positional) == 0 {
		slog.Debug("No label files provided, printing usage.")
		_ = cmd.Usage()
		return nil, false, &ExitError{
			Code:    2,
			Message: "missing arguments: REFERENCE_FILE TARGET_FILE",
		}
	}
	if len(positional) != 2 {
		return nil, false, &ExitError{
			Code:    2,
			Message: "expected exactly two arguments: REFERENCE_FILE TARGET_FILE\nRun 'labelquant --help' for usage.",
		}
	}

	if len(opts.configPaths) > 0 {
		model, err := loader.Load(ctx, opts.configPaths...)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: "failed to load settings: " + err.Error()}
		}
		applySettings(cmd.Flags(), &opts, model)
		slog.Debug("Settings files merged.", "sources", model.Sources)
	}

	cfg, err := app.NewConfig(app.Config{
		ReferencePath: positional[0],
		TargetPath:    positional[1],
		InPlace:       opts.inPlace,
		Verbose:       opts.verbose,
		LogLevel:      strings.ToLower(opts.logLevel),
		LogFormat:     strings.ToLower(opts.logFormat),
		ConfigPaths:   opts.configPaths,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}

// applySettings copies values from the settings model into opts for every
// flag the user did not set explicitly.
func applySettings(flags *pflag.FlagSet, opts *options, model *config.Model) {
	if model.InPlace != nil && !flags.Changed("inplace") {
		opts.inPlace = *model.InPlace
	}
	if model.Verbose != nil && !flags.Changed("verbose") {
		opts.verbose = *model.Verbose
	}
	if model.LogLevel != nil && !flags.Changed("log-level") {
		opts.logLevel = *model.LogLevel
	}
	if model.LogFormat != nil && !flags.Changed("log-format") {
		opts.logFormat = *model.LogFormat
	}
}
