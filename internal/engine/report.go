package engine

import (
	"time"

	"github.com/bianoble/chart-uploader/internal/upload"
)

// State is the final state of a single file in a run.
type State string

const (
	StateImported State = "imported"
	StateSkipped  State = "skipped"
	StateRejected State = "rejected"
	StateFailed   State = "failed"
	StateDryRun   State = "dry_run"
)

// FileReport is the record of one processed file. Exactly one exists per
// file that completed processing, however many attempts it took.
type FileReport struct {
	Path     string               `json:"path"`
	Success  bool                 `json:"success"`
	Message  string               `json:"message"`
	State    State                `json:"state"`
	Attempts int                  `json:"attempts"`
	Chart    *upload.ImportResult `json:"chart,omitempty"` // set whenever the server returned a body
}

// RunReport aggregates the outcome of a run. SuccessCount + SkipCount +
// ErrorCount always equals len(Files).
type RunReport struct {
	SuccessCount int           `json:"success_count"`
	SkipCount    int           `json:"skip_count"`
	ErrorCount   int           `json:"error_count"`
	Total        int           `json:"total"`   // candidate files, processed or not
	Stopped      bool          `json:"stopped"` // run ended early on a failure
	DryRun       bool          `json:"dry_run"`
	Elapsed      time.Duration `json:"elapsed_ns"`
	Files        []FileReport  `json:"files"`
}

// HasErrors reports whether any file ended in an error state.
func (r *RunReport) HasErrors() bool {
	return r.ErrorCount > 0
}

// Failed returns the reports of files that ended in an error state.
func (r *RunReport) Failed() []FileReport {
	var out []FileReport
	for _, f := range r.Files {
		if f.State == StateRejected || f.State == StateFailed {
			out = append(out, f)
		}
	}
	return out
}

func (r *RunReport) record(fr FileReport) {
	switch fr.State {
	case StateImported:
		r.SuccessCount++
	case StateSkipped, StateDryRun:
		r.SkipCount++
	default:
		r.ErrorCount++
	}
	r.Files = append(r.Files, fr)
}
