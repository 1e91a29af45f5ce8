package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"syscall"

	"github.com/jonhoo/tally/internal/domain"
	"github.com/jonhoo/tally/internal/infra"
	"github.com/jonhoo/tally/internal/ui"
)

// Reporter drives one measurement end to end: run the child, derive metrics,
// render them, and decide the exit code tally terminates with.
type Reporter struct {
	runner *infra.ProcessRunner
	stdout io.Writer
	stderr io.Writer
}

func NewReporter(runner *infra.ProcessRunner, stdout, stderr io.Writer) *Reporter {
	return &Reporter{
		runner: runner,
		stdout: stdout,
		stderr: stderr,
	}
}

// Report returns the exit code the process should terminate with: the
// child's own code, 128+N for a child killed by signal N, or the launch
// failure code when the child never ran. The rendered report goes to stdout
// so it composes with shell redirection; diagnostics go to stderr.
func (r *Reporter) Report(req *domain.RunRequest) int {
	outcome, err := r.runner.Run(req)
	if err != nil {
		fmt.Fprintf(r.stderr, "tally: %v\n", err)
		var le *infra.LaunchError
		if errors.As(err, &le) {
			return le.ExitCode()
		}
		return 125
	}

	if outcome.Relayed != nil {
		// tally was told to terminate while waiting; the signal has been
		// forwarded, so mirror the child's fate without a report.
		slog.Debug("terminated while waiting", "signal", outcome.Relayed)
		if sig, ok := outcome.Relayed.(syscall.Signal); ok {
			return 128 + int(sig)
		}
		return 128 + int(syscall.SIGINT)
	}

	metrics := Collect(outcome.Status, outcome.Usage)
	formatter := ui.New(req.Format, req.Delimiter)
	fmt.Fprintln(r.stdout, formatter.Render(metrics))
	return metrics.ExitStatus.ProcessCode()
}
