package app

import "github.com/jonhoo/tally/internal/domain"

// Collect normalizes one raw usage sample into the display-ready Metrics
// record. It is pure: no I/O, no failure path. Counters the platform could
// not report stay absent rather than being coerced to zero.
func Collect(status domain.ExitStatus, raw domain.RawUsage) domain.Metrics {
	m := domain.Metrics{
		WallClock:      raw.FinishedAt.Sub(raw.StartedAt),
		UserCPU:        raw.UserTime,
		SystemCPU:      raw.SystemTime,
		MaxMemoryBytes: raw.MaxRSSBytes,
		MajorFaults:    raw.MajorFaults,
		MinorFaults:    raw.MinorFaults,
		InBlocks:       raw.InBlocks,
		OutBlocks:      raw.OutBlocks,
		ExitStatus:     status,
	}
	if m.WallClock > 0 {
		m.CPUPercent = float64(raw.UserTime+raw.SystemTime) / float64(m.WallClock) * 100
	}
	return m
}
