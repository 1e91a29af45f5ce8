package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jonhoo/tally/internal/domain"
)

var (
	colorLabel = lipgloss.Color("220") // yellow labels
	colorFaded = lipgloss.Color("240") // unit suffixes and rules

	styleLabel = lipgloss.NewStyle().Foreground(colorLabel)
	styleFaded = lipgloss.NewStyle().Foreground(colorFaded)
)

const (
	labelWidth = 15
	ruleWidth  = 45
)

type PrettyFormatter struct{}

func NewPrettyFormatter() *PrettyFormatter {
	return &PrettyFormatter{}
}

// Render produces the multi-line human layout: a stats rule, the three time
// rows, then memory and page faults. Every time row shows the same unit
// columns so the values line up vertically regardless of magnitude.
func (f *PrettyFormatter) Render(m domain.Metrics) string {
	u := timeUnitsFor(m)

	var b strings.Builder
	b.WriteString(styleFaded.Render(rule(" [stats] ")))
	b.WriteString("\n\n")
	writeRow(&b, "user time:", u.render(m.UserCPU, false))
	writeRow(&b, "system time:", u.render(m.SystemCPU, false))
	writeRow(&b, "real time:", u.render(m.WallClock, true))
	b.WriteString("\n")
	writeRow(&b, "max memory:", prettyMemory(m.MaxMemoryBytes))
	writeRow(&b, "page faults:", prettyFaults(m.MajorFaults, m.MinorFaults))
	b.WriteString("\n")
	b.WriteString(styleFaded.Render(rule("")))
	return b.String()
}

func writeRow(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%s %s\n",
		styleLabel.Render(fmt.Sprintf("%*s", labelWidth, label)), value)
}

func rule(title string) string {
	pad := ruleWidth - len(title)
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat("-", pad/2) + title + strings.Repeat("-", pad-pad/2)
}

// timeUnits records which unit columns the time rows share. A column shows
// up as soon as any of the three durations needs it.
type timeUnits struct {
	hours   bool
	minutes bool
	millis  bool
	micros  bool
}

func timeUnitsFor(m domain.Metrics) timeUnits {
	var u timeUnits
	for _, d := range []time.Duration{m.UserCPU, m.SystemCPU, m.WallClock} {
		if d >= time.Hour {
			u.hours = true
		}
		if d >= time.Minute {
			u.minutes = true
		}
		if d%time.Second >= time.Millisecond {
			u.millis = true
		}
		if d%time.Millisecond >= time.Microsecond {
			u.micros = true
		}
	}
	u.minutes = u.minutes || u.hours
	u.millis = u.millis || u.micros
	return u
}

// render writes one duration using the shared columns. Only the wall clock
// row carries a nanosecond remainder; CPU times never resolve below a
// microsecond.
func (u timeUnits) render(d time.Duration, withNanos bool) string {
	var parts []string
	s := int64(d / time.Second)
	if u.hours {
		parts = append(parts, unit(fmt.Sprintf("%2d", s/3600), "h"))
	}
	if u.minutes {
		parts = append(parts, unit(fmt.Sprintf("%2d", (s%3600)/60), "m"))
	}
	parts = append(parts, unit(fmt.Sprintf("%2d", s%60), "s"))
	if u.millis {
		parts = append(parts, unit(fmt.Sprintf("%3d", int64(d%time.Second/time.Millisecond)), "ms"))
	}
	if u.micros {
		parts = append(parts, unit(fmt.Sprintf("%3d", int64(d%time.Millisecond/time.Microsecond)), "µs"))
	}
	if withNanos {
		if ns := int64(d % time.Microsecond); ns != 0 {
			parts = append(parts, unit(fmt.Sprintf("%3d", ns), "ns"))
		}
	}
	return strings.Join(parts, " ")
}

func unit(v, suffix string) string {
	return v + styleFaded.Render(suffix)
}

func prettyMemory(bytes *int64) string {
	if bytes == nil {
		return "N/A"
	}
	ks := *bytes / 1024
	switch {
	case ks > 10*1024*1024:
		return unit(fmt.Sprintf("%.0f ", float64(ks)/1024/1024), "GB")
	case ks > 1024*1024:
		return unit(fmt.Sprintf("%.1f ", float64(ks)/1024/1024), "GB")
	case ks > 10*1024:
		return unit(fmt.Sprintf("%.0f ", float64(ks)/1024), "MB")
	case ks > 1024:
		return unit(fmt.Sprintf("%.1f ", float64(ks)/1024), "MB")
	default:
		return unit(fmt.Sprintf("%d ", ks), "kB")
	}
}

func prettyFaults(major, minor *int64) string {
	if major == nil && minor == nil {
		return "N/A"
	}
	return fmt.Sprintf("%s, %s",
		unit(fmt.Sprintf("%d", deref(major)), "major"),
		unit(fmt.Sprintf("%d", deref(minor)), "minor"))
}

func deref(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
