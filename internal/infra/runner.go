package infra

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"time"

	"github.com/jonhoo/tally/internal/domain"
)

// LaunchError means the child never ran: nothing was measured and no report
// is produced for it.
type LaunchError struct {
	Path string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("cannot launch %s: %v", e.Path, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// ExitCode follows the shell convention for failed launches: 127 when the
// executable cannot be found, 126 when it exists but cannot be executed,
// 125 for any other spawn failure.
func (e *LaunchError) ExitCode() int {
	switch {
	case errors.Is(e.Err, exec.ErrNotFound), errors.Is(e.Err, fs.ErrNotExist):
		return 127
	case errors.Is(e.Err, fs.ErrPermission):
		return 126
	default:
		return 125
	}
}

type ProcessRunner struct{}

func NewProcessRunner() *ProcessRunner {
	return &ProcessRunner{}
}

// Run spawns the requested command with tally's own standard streams and
// blocks until it terminates. The child inherits the working directory and
// environment unchanged, so its interactive behavior is unaffected by being
// measured. Termination signals delivered to tally while it waits are
// forwarded to the child; the first one is recorded in Outcome.Relayed.
func (r *ProcessRunner) Run(req *domain.RunRequest) (domain.Outcome, error) {
	cmd := exec.Command(req.Command[0], req.Command[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// The handler must be in place before the child exists so a signal
	// arriving during spawn is held in sigs rather than killing tally
	// outright; the relay goroutine drains it once Start returns.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, forwardedSignals()...)

	started := time.Now()
	if err := cmd.Start(); err != nil {
		signal.Stop(sigs)
		return domain.Outcome{}, &LaunchError{Path: req.Command[0], Err: err}
	}
	slog.Debug("child started", "pid", cmd.Process.Pid, "path", cmd.Path)

	relayed := make(chan os.Signal, 1)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-sigs:
				select {
				case relayed <- sig:
				default:
				}
				_ = cmd.Process.Signal(sig)
			case <-done:
				return
			}
		}
	}()

	waitErr := cmd.Wait()
	finished := time.Now()
	signal.Stop(sigs)
	close(done)

	var exitErr *exec.ExitError
	if waitErr != nil && !errors.As(waitErr, &exitErr) {
		// Wait itself failed; with inherited stream handles this only
		// happens on wait syscall errors.
		return domain.Outcome{}, &LaunchError{Path: req.Command[0], Err: waitErr}
	}

	outcome := domain.Outcome{
		Status: exitStatus(cmd.ProcessState),
		Usage:  childUsage(cmd.ProcessState, started, finished),
	}
	select {
	case outcome.Relayed = <-relayed:
	default:
	}

	slog.Debug("child exited",
		"pid", cmd.Process.Pid,
		"wall", finished.Sub(started),
		"user", outcome.Usage.UserTime,
		"sys", outcome.Usage.SystemTime)
	return outcome, nil
}
