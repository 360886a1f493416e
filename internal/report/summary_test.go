package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bianoble/chart-uploader/internal/engine"
	"github.com/google/go-cmp/cmp"
)

func sampleReport() *engine.RunReport {
	return &engine.RunReport{
		SuccessCount: 1,
		SkipCount:    1,
		ErrorCount:   1,
		Total:        4,
		Stopped:      true,
		Elapsed:      1234 * time.Millisecond,
		Files: []engine.FileReport{
			{Path: "/charts/a.ksh", Success: true, State: engine.StateImported, Message: "ok", Attempts: 1},
			{Path: "/charts/b.ksh", State: engine.StateSkipped, Message: "exists", Attempts: 1},
			{Path: "/charts/c.ksh", State: engine.StateFailed, Message: "server error (code 40): bad", Attempts: 4},
		},
	}
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	Summary(&buf, sampleReport(), "/charts", false, NewStyles(&buf, true))

	want := "\n=== Upload Summary ===\n" +
		"Total files: 4\n" +
		"Successful: 1\n" +
		"Skipped: 1\n" +
		"Errors: 1\n" +
		"Time elapsed: 1.23s\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestSummaryVerboseListsFailures(t *testing.T) {
	var buf bytes.Buffer
	Summary(&buf, sampleReport(), "/charts", true, NewStyles(&buf, true))

	out := buf.String()
	if !strings.Contains(out, "\nFailed uploads:\n  - c.ksh: server error (code 40): bad\n") {
		t.Errorf("failed list missing:\n%s", out)
	}
	if strings.Contains(out, "b.ksh") {
		t.Errorf("skipped file listed as failure:\n%s", out)
	}
}

func TestSummaryVerboseNoErrors(t *testing.T) {
	var buf bytes.Buffer
	Summary(&buf, &engine.RunReport{Total: 1, SuccessCount: 1}, "", true, NewStyles(&buf, true))
	if strings.Contains(buf.String(), "Failed uploads") {
		t.Errorf("unexpected failed list:\n%s", buf.String())
	}
}

func TestFileList(t *testing.T) {
	var buf bytes.Buffer
	FileList(&buf, []string{"/charts/a.ksh", "/charts/x/b.ksh"}, "/charts", NewStyles(&buf, true))

	want := "\nFiles to upload:\n  - a.ksh\n  - " + filepath.Join("x", "b.ksh") + "\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleReport()); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var got engine.RunReport
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if diff := cmp.Diff(sampleReport(), &got); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(buf.String(), `"state": "failed"`) {
		t.Errorf("expected indented state field:\n%s", buf.String())
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	if err := os.WriteFile(path, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Save(path, sampleReport()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got engine.RunReport
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("saved report is not JSON: %v\n%s", err, data)
	}
	if got.ErrorCount != 1 || len(got.Files) != 3 {
		t.Errorf("saved report = %+v", got)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %v", entries)
	}
}

func TestSaveMissingDir(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "missing", "report.json"), sampleReport())
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}
