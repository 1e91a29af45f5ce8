package ui_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonhoo/tally/internal/domain"
	"github.com/jonhoo/tally/internal/ui"
)

func TestPrettyRenderLayout(t *testing.T) {
	m := domain.Metrics{
		WallClock:      time.Second + 5*time.Millisecond,
		UserCPU:        200 * time.Millisecond,
		SystemCPU:      10 * time.Millisecond,
		MaxMemoryBytes: int64p(1300 * 1024),
		MajorFaults:    int64p(0),
		MinorFaults:    int64p(15),
	}

	got := ui.NewPrettyFormatter().Render(m)

	assert.Contains(t, got, "[stats]")
	assert.Contains(t, got, "user time:")
	assert.Contains(t, got, "system time:")
	assert.Contains(t, got, "real time:")
	assert.Contains(t, got, "max memory:")
	assert.Contains(t, got, "page faults:")
	// 1300 kB crosses the MB threshold
	assert.Contains(t, got, "1.3 ")
	assert.Contains(t, got, "15")
}

func TestPrettyRenderSharedUnitColumns(t *testing.T) {
	m := domain.Metrics{
		WallClock: 2*time.Minute + 3*time.Second,
		UserCPU:   time.Second,
		SystemCPU: 100 * time.Millisecond,
	}

	got := ui.NewPrettyFormatter().Render(m)

	// once one row needs minutes, every time row shows them
	assert.Contains(t, got, " 2m")
	assert.Contains(t, got, " 0m")
}

func TestPrettyRenderAbsentMemory(t *testing.T) {
	m := domain.Metrics{WallClock: time.Second}

	got := ui.NewPrettyFormatter().Render(m)

	assert.Contains(t, got, "N/A")
}
