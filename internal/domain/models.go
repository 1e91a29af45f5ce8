package domain

import (
	"os"
	"time"
)

type Format string

const (
	FormatPretty    Format = "pretty"
	FormatPosix     Format = "posix"
	FormatGnu       Format = "gnu"
	FormatDelimited Format = "delimited"
)

// RunRequest describes one measurement: the command to spawn and how to
// render the result. It is built once by the CLI and never mutated.
type RunRequest struct {
	Command   []string
	Format    Format
	Delimiter string
}

// ExitStatus records how the child terminated. Exactly one of Code and
// Signal is set after a measured run; both are nil only when the child
// never started.
type ExitStatus struct {
	Code   *int
	Signal *int
}

// ProcessCode maps the child's termination onto the exit code tally itself
// should use: the child's own code, or 128+N for death by signal N.
func (s ExitStatus) ProcessCode() int {
	if s.Signal != nil {
		return 128 + *s.Signal
	}
	if s.Code != nil {
		return *s.Code
	}
	return 1
}

// RawUsage holds the OS-reported counters for a single child, captured once
// when it terminates. Counter fields are nil when the platform cannot report
// them; zero always means a measured zero.
type RawUsage struct {
	StartedAt  time.Time
	FinishedAt time.Time

	UserTime   time.Duration
	SystemTime time.Duration

	MaxRSSBytes      *int64
	MajorFaults      *int64
	MinorFaults      *int64
	InBlocks         *int64
	OutBlocks        *int64
	VolCtxSwitches   *int64
	InvolCtxSwitches *int64
}

// Outcome is what the runner hands back for a child that actually ran.
// Relayed is non-nil when tally itself received a termination signal while
// waiting and forwarded it to the child; no report is produced in that case.
type Outcome struct {
	Status  ExitStatus
	Usage   RawUsage
	Relayed os.Signal
}

// Metrics is the display-ready record derived from one RawUsage.
type Metrics struct {
	WallClock  time.Duration
	UserCPU    time.Duration
	SystemCPU  time.Duration
	CPUPercent float64

	MaxMemoryBytes *int64
	MajorFaults    *int64
	MinorFaults    *int64
	InBlocks       *int64
	OutBlocks      *int64

	ExitStatus ExitStatus
}
