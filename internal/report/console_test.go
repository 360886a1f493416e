package report

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bianoble/chart-uploader/internal/engine"
	"github.com/bianoble/chart-uploader/internal/upload"
)

func newTestConsole(verbose bool) (*Console, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewConsole(&out, &errOut, "/charts", verbose, true), &out, &errOut
}

func TestConsoleProgressLines(t *testing.T) {
	c, out, _ := newTestConsole(false)

	c.FileStarted(0, 2, filepath.Join("/charts", "a", "one.ksh"))
	c.FileFinished(0, 2, engine.FileReport{State: engine.StateImported})
	c.FileStarted(1, 2, filepath.Join("/charts", "two.ksh"))
	c.FileFinished(1, 2, engine.FileReport{State: engine.StateSkipped})

	want := "\nStarting upload...\n" +
		"[1/2] Uploading " + filepath.Join("a", "one.ksh") + "... SUCCESS\n" +
		"[2/2] Uploading two.ksh... SKIPPED (already exists)\n"
	if out.String() != want {
		t.Errorf("output =\n%q\nwant\n%q", out.String(), want)
	}
}

func TestConsoleOutcomeWords(t *testing.T) {
	tests := []struct {
		fr   engine.FileReport
		want string
	}{
		{engine.FileReport{State: engine.StateDryRun}, "SKIPPED (dry run)\n"},
		{engine.FileReport{State: engine.StateRejected, Message: "bad chart"}, "FAILED (bad chart)\n"},
		{engine.FileReport{State: engine.StateFailed, Message: "HTTP error: 503 Service Unavailable"}, "ERROR (HTTP error: 503 Service Unavailable)\n"},
	}
	for _, tt := range tests {
		c, out, _ := newTestConsole(false)
		c.FileFinished(0, 1, tt.fr)
		if out.String() != tt.want {
			t.Errorf("%s: output = %q, want %q", tt.fr.State, out.String(), tt.want)
		}
	}
}

func TestConsoleRetryNotice(t *testing.T) {
	c, out, _ := newTestConsole(false)
	c.Retrying("/charts/a.ksh", 1, 3, errors.New("boom"))
	c.Retrying("/charts/a.ksh", 2, 3, errors.New("boom"))

	want := " Failed. Retry 1/3...  Failed. Retry 2/3... "
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestConsoleVerboseChart(t *testing.T) {
	c, out, _ := newTestConsole(true)
	c.FileFinished(0, 1, engine.FileReport{
		State: engine.StateImported,
		Chart: &upload.ImportResult{
			ChartHash:  "abc123",
			Title:      "Song",
			Artist:     "Band",
			Level:      12,
			Difficulty: 3,
			Message:    "ok",
		},
	})

	for _, want := range []string{
		"  Title: Song\n",
		"  Artist: Band\n",
		"  Level: 12 (Difficulty: 3)\n",
		"  Hash: abc123\n",
		"  Message: ok\n",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestConsoleQuietWithoutVerbose(t *testing.T) {
	c, out, _ := newTestConsole(false)
	c.FileFinished(0, 1, engine.FileReport{State: engine.StateImported, Chart: &upload.ImportResult{Title: "Song"}})
	if strings.Contains(out.String(), "Title") {
		t.Errorf("metadata printed without verbose: %s", out.String())
	}
}

func TestConsoleStopNotice(t *testing.T) {
	c, out, errOut := newTestConsole(false)

	c.RunFinished(&engine.RunReport{})
	if errOut.Len() != 0 {
		t.Errorf("unexpected stop notice: %q", errOut.String())
	}

	c.RunFinished(&engine.RunReport{Stopped: true, Elapsed: time.Second})
	if errOut.String() != "\nError: Upload stopped due to error\n" {
		t.Errorf("stderr = %q", errOut.String())
	}
	if out.Len() != 0 {
		t.Errorf("stop notice leaked to stdout: %q", out.String())
	}
}
