//go:build !windows

package infra

import (
	"os"
	"runtime"
	"syscall"
	"time"

	"github.com/jonhoo/tally/internal/domain"
)

func forwardedSignals() []os.Signal {
	return []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT}
}

func exitStatus(state *os.ProcessState) domain.ExitStatus {
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		n := int(ws.Signal())
		return domain.ExitStatus{Signal: &n}
	}
	code := state.ExitCode()
	return domain.ExitStatus{Code: &code}
}

func childUsage(state *os.ProcessState, started, finished time.Time) domain.RawUsage {
	usage := domain.RawUsage{
		StartedAt:  started,
		FinishedAt: finished,
		UserTime:   state.UserTime(),
		SystemTime: state.SystemTime(),
	}

	ru, ok := state.SysUsage().(*syscall.Rusage)
	if !ok || ru == nil {
		return usage
	}
	usage.MaxRSSBytes = counter(rssBytes(int64(ru.Maxrss)))
	usage.MajorFaults = counter(int64(ru.Majflt))
	usage.MinorFaults = counter(int64(ru.Minflt))
	usage.InBlocks = counter(int64(ru.Inblock))
	usage.OutBlocks = counter(int64(ru.Oublock))
	usage.VolCtxSwitches = counter(int64(ru.Nvcsw))
	usage.InvolCtxSwitches = counter(int64(ru.Nivcsw))
	return usage
}

// getrusage reports ru_maxrss in kilobytes everywhere that matters to us,
// except Darwin, which reports bytes.
func rssBytes(maxrss int64) int64 {
	if runtime.GOOS == "darwin" {
		return maxrss
	}
	return maxrss * 1024
}

func counter(v int64) *int64 {
	return &v
}
