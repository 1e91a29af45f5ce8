package ui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jonhoo/tally/internal/domain"
)

type PosixFormatter struct{}

func NewPosixFormatter() *PosixFormatter {
	return &PosixFormatter{}
}

// Render produces the traditional portable layout: real, user and sys on one
// line each, label and seconds separated by a tab. Three decimals is enough
// to express clock tick accuracy on every platform we run on.
func (f *PosixFormatter) Render(m domain.Metrics) string {
	return fmt.Sprintf("real\t%s\nuser\t%s\nsys\t%s",
		posixSeconds(m.WallClock),
		posixSeconds(m.UserCPU),
		posixSeconds(m.SystemCPU))
}

func posixSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 3, 64)
}
