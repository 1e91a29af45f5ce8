package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonhoo/tally/internal/domain"
)

func TestValidateRequest(t *testing.T) {
	v := domain.NewRequestValidator()

	tests := []struct {
		name    string
		req     domain.RunRequest
		wantErr bool
	}{
		{
			name: "plain command",
			req:  domain.RunRequest{Command: []string{"sleep", "1"}, Format: domain.FormatPretty},
		},
		{
			name:    "empty command",
			req:     domain.RunRequest{Format: domain.FormatPretty},
			wantErr: true,
		},
		{
			name:    "unknown format",
			req:     domain.RunRequest{Command: []string{"true"}, Format: domain.Format("yaml")},
			wantErr: true,
		},
		{
			name: "delimited with separator",
			req:  domain.RunRequest{Command: []string{"true"}, Format: domain.FormatDelimited, Delimiter: ";"},
		},
		{
			name:    "delimited without separator",
			req:     domain.RunRequest{Command: []string{"true"}, Format: domain.FormatDelimited},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
