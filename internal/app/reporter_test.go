//go:build !windows

package app_test

import (
	"bytes"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonhoo/tally/internal/app"
	"github.com/jonhoo/tally/internal/domain"
	"github.com/jonhoo/tally/internal/infra"
)

func report(req *domain.RunRequest) (code int, stdout, stderr string) {
	var out, errb bytes.Buffer
	rep := app.NewReporter(infra.NewProcessRunner(), &out, &errb)
	return rep.Report(req), out.String(), errb.String()
}

func TestReportPropagatesExitCode(t *testing.T) {
	code, stdout, stderr := report(&domain.RunRequest{
		Command:   []string{"sh", "-c", "exit 3"},
		Format:    domain.FormatDelimited,
		Delimiter: ";",
	})

	assert.Equal(t, 3, code)
	assert.Empty(t, stderr)

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Len(t, strings.Split(lines[0], ";"), 7)
}

func TestReportSignalExitCode(t *testing.T) {
	code, stdout, _ := report(&domain.RunRequest{
		Command: []string{"sh", "-c", "kill -9 $$"},
		Format:  domain.FormatPosix,
	})

	// a child killed by a signal is still a successful measurement
	assert.Equal(t, 137, code)
	assert.NotEmpty(t, stdout)
}

func TestReportSuppressedWhenSignaledWhileWaiting(t *testing.T) {
	var out, errb bytes.Buffer
	rep := app.NewReporter(infra.NewProcessRunner(), &out, &errb)

	codes := make(chan int, 1)
	go func() {
		codes <- rep.Report(&domain.RunRequest{
			Command: []string{"sleep", "5"},
			Format:  domain.FormatPosix,
		})
	}()

	time.Sleep(200 * time.Millisecond)
	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

	select {
	case code := <-codes:
		// the forwarded signal mirrors the child's fate, with no report
		assert.Equal(t, 128+int(syscall.SIGTERM), code)
		assert.Empty(t, out.String())
	case <-time.After(3 * time.Second):
		t.Fatal("report did not return after the forwarded signal")
	}
}

func TestReportLaunchFailure(t *testing.T) {
	code, stdout, stderr := report(&domain.RunRequest{
		Command: []string{"/no/such/binary"},
		Format:  domain.FormatPretty,
	})

	assert.Equal(t, 127, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "tally:")
}

func TestReportPosixLayout(t *testing.T) {
	code, stdout, _ := report(&domain.RunRequest{
		Command: []string{"sh", "-c", ":"},
		Format:  domain.FormatPosix,
	})

	assert.Equal(t, 0, code)
	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "real\t"))
	assert.True(t, strings.HasPrefix(lines[1], "user\t"))
	assert.True(t, strings.HasPrefix(lines[2], "sys\t"))
}
