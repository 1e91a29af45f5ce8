package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/jonhoo/tally/internal/app"
	"github.com/jonhoo/tally/internal/domain"
	"github.com/jonhoo/tally/internal/infra"
)

const version = "0.2.0"

type options struct {
	posix     bool
	gnu       bool
	delimiter string
	verbose   bool
}

func buildRunRequest(cmd *cobra.Command, args []string, opts *options) *domain.RunRequest {
	req := &domain.RunRequest{
		Command: args,
		Format:  domain.FormatPretty,
	}
	switch {
	case opts.posix:
		req.Format = domain.FormatPosix
	case opts.gnu:
		req.Format = domain.FormatGnu
	case cmd.Flags().Changed("delimited"):
		req.Format = domain.FormatDelimited
		req.Delimiter = opts.delimiter
		if req.Delimiter == "" {
			req.Delimiter = ","
		}
	}
	return req
}

func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})))
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	setupLogging(opts.verbose)

	if len(args) == 0 {
		cmd.Usage()
		os.Exit(127)
	}

	req := buildRunRequest(cmd, args, opts)
	if err := domain.NewRequestValidator().Validate(req); err != nil {
		return err
	}

	reporter := app.NewReporter(infra.NewProcessRunner(), os.Stdout, os.Stderr)
	os.Exit(reporter.Report(req))
	return nil
}

func newRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tally [flags] command [arguments]...",
		Short: "prettier substitute for time",
		Long: `tally runs the specified command with the given arguments. When the
command finishes, tally writes a report to standard output with timing
statistics about the run: the elapsed real time between invocation and
termination, the user and system CPU time as returned by getrusage(2),
and other runtime statistics such as peak resident memory usage and
page fault counts.

tally exits with the command's own exit code, or with 128+N when the
command was terminated by signal N. When the command cannot be launched
at all, tally exits with 127 (not found), 126 (not executable) or 125
(any other spawn failure) and writes a diagnostic to standard error.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	// Everything after the first positional belongs to the child command.
	cmd.Flags().SetInterspersed(false)

	cmd.Flags().BoolVarP(&opts.posix, "portability", "p", false, "use the portable (POSIX) output format")
	cmd.Flags().BoolVarP(&opts.gnu, "gnu", "g", false, "use the GNU time output format")
	cmd.Flags().StringVarP(&opts.delimiter, "delimited", "d", "", "output in delimited format with the given separator")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug diagnostics on stderr")
	cmd.Version = version

	return cmd
}

func main() {
	opts := &options{}
	rootCmd := newRootCmd(opts)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(125)
	}
}
