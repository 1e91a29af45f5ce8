package ui

import (
	"strconv"
	"strings"

	"github.com/jonhoo/tally/internal/domain"
)

// DelimitedFormatter emits one machine-readable line per run. The field
// order is a stable contract:
//
//	wall_ns, user_ns, sys_ns, cpu_pct, max_rss_kb, major_faults, minor_faults
//
// The line always has exactly these seven fields in this order; a statistic
// the platform cannot report is an empty field, never an omitted one.
type DelimitedFormatter struct {
	delimiter string
}

// NewDelimitedFormatter builds the formatter; an empty delimiter falls back
// to a comma.
func NewDelimitedFormatter(delimiter string) *DelimitedFormatter {
	if delimiter == "" {
		delimiter = ","
	}
	return &DelimitedFormatter{delimiter: delimiter}
}

func (f *DelimitedFormatter) Render(m domain.Metrics) string {
	fields := []string{
		strconv.FormatInt(m.WallClock.Nanoseconds(), 10),
		strconv.FormatInt(m.UserCPU.Nanoseconds(), 10),
		strconv.FormatInt(m.SystemCPU.Nanoseconds(), 10),
		strconv.FormatFloat(m.CPUPercent, 'f', 1, 64),
		delimitedKilobytes(m.MaxMemoryBytes),
		delimitedCount(m.MajorFaults),
		delimitedCount(m.MinorFaults),
	}
	return strings.Join(fields, f.delimiter)
}

func delimitedKilobytes(bytes *int64) string {
	if bytes == nil {
		return ""
	}
	return strconv.FormatInt(*bytes/1024, 10)
}

func delimitedCount(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}
