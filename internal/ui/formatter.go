package ui

import "github.com/jonhoo/tally/internal/domain"

// Formatter renders one Metrics record to text. Rendering never fails on a
// well-formed record; a statistic the platform could not report comes out as
// an explicit absent-value marker instead.
type Formatter interface {
	Render(m domain.Metrics) string
}

// New selects the formatter for a request. The delimiter only matters for
// the delimited format and is ignored by the others.
func New(format domain.Format, delimiter string) Formatter {
	switch format {
	case domain.FormatPosix:
		return NewPosixFormatter()
	case domain.FormatGnu:
		return NewGnuFormatter()
	case domain.FormatDelimited:
		return NewDelimitedFormatter(delimiter)
	default:
		return NewPrettyFormatter()
	}
}
