//go:build windows

package infra

import (
	"os"
	"time"

	"github.com/jonhoo/tally/internal/domain"
)

func forwardedSignals() []os.Signal {
	return []os.Signal{os.Interrupt}
}

func exitStatus(state *os.ProcessState) domain.ExitStatus {
	code := state.ExitCode()
	return domain.ExitStatus{Code: &code}
}

// Windows has no getrusage; CPU times come from the process handle and the
// remaining counters stay absent so formatters can mark them as such.
func childUsage(state *os.ProcessState, started, finished time.Time) domain.RawUsage {
	return domain.RawUsage{
		StartedAt:  started,
		FinishedAt: finished,
		UserTime:   state.UserTime(),
		SystemTime: state.SystemTime(),
	}
}
