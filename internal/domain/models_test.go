package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonhoo/tally/internal/domain"
)

func intp(v int) *int { return &v }

func TestProcessCode(t *testing.T) {
	tests := []struct {
		name   string
		status domain.ExitStatus
		want   int
	}{
		{"clean exit", domain.ExitStatus{Code: intp(0)}, 0},
		{"non-zero exit", domain.ExitStatus{Code: intp(3)}, 3},
		{"killed by SIGKILL", domain.ExitStatus{Signal: intp(9)}, 137},
		{"killed by SIGTERM", domain.ExitStatus{Signal: intp(15)}, 143},
		{"never started", domain.ExitStatus{}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.ProcessCode())
		})
	}
}
