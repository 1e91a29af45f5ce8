package ui

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jonhoo/tally/internal/domain"
)

type GnuFormatter struct{}

func NewGnuFormatter() *GnuFormatter {
	return &GnuFormatter{}
}

// Render matches the default template of GNU time:
//
//	%Uuser %Ssystem %Eelapsed %PCPU (%Xtext+%Ddata %Mmax)k
//	%Iinputs+%Ooutputs (%Fmajor+%Rminor)pagefaults %Wswaps
//
// %X, %D and %W are deprecated on modern kernels and always render as 0.
// Counters the platform cannot report render as N/A.
func (f *GnuFormatter) Render(m domain.Metrics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%suser %ssystem %selapsed %s%%CPU (0text+0data %smax)k\n",
		gnuSeconds(m.UserCPU),
		gnuSeconds(m.SystemCPU),
		gnuElapsed(m.WallClock),
		strconv.Itoa(int(math.Round(m.CPUPercent))),
		gnuKilobytes(m.MaxMemoryBytes))
	fmt.Fprintf(&b, "%sinputs+%soutputs (%smajor+%sminor)pagefaults 0swaps",
		gnuCount(m.InBlocks),
		gnuCount(m.OutBlocks),
		gnuCount(m.MajorFaults),
		gnuCount(m.MinorFaults))
	return b.String()
}

func gnuSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 2, 64)
}

// gnuElapsed renders wall clock as m:ss.cc, with an hour prefix once the run
// crosses the hour mark, matching %E. GNU time truncates to centiseconds
// rather than rounding, so 59.995s stays 0:59.99 instead of spilling into
// 0:60.00.
func gnuElapsed(d time.Duration) string {
	d = d.Truncate(10 * time.Millisecond)
	h := int(d / time.Hour)
	min := int(d/time.Minute) % 60
	s := (d % time.Minute).Seconds()
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%05.2f", h, min, s)
	}
	return fmt.Sprintf("%d:%05.2f", min, s)
}

func gnuKilobytes(bytes *int64) string {
	if bytes == nil {
		return "N/A"
	}
	return strconv.FormatInt(*bytes/1024, 10)
}

func gnuCount(v *int64) string {
	if v == nil {
		return "N/A"
	}
	return strconv.FormatInt(*v, 10)
}
