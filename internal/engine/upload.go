package engine

import (
	"context"
	"time"

	"github.com/bianoble/chart-uploader/internal/upload"
	"github.com/rs/zerolog"
)

// DryRunMessage is the report message for files skipped by a dry run.
const DryRunMessage = "dry run"

// UploadEngine orchestrates a run: files are uploaded one at a time, in the
// order given, each through a Retrier.
type UploadEngine struct {
	Uploader   upload.Uploader // unused in dry-run mode
	MaxRetries int
	RetryDelay time.Duration
	Sleep      func(time.Duration) // nil means time.Sleep
	Observer   Observer            // nil means no notifications
	Logger     zerolog.Logger
}

// UploadOptions configures a run.
type UploadOptions struct {
	DryRun          bool
	ContinueOnError bool
}

// Run processes files in order and returns the run report. It never
// returns a nil report. With ContinueOnError unset, the first file whose
// attempts are exhausted ends the run; later files are neither attempted
// nor reported.
func (e *UploadEngine) Run(ctx context.Context, files []string, opts UploadOptions) *RunReport {
	started := time.Now()
	obs := e.Observer
	if obs == nil {
		obs = NopObserver{}
	}

	report := &RunReport{Total: len(files), DryRun: opts.DryRun}
	retrier := &upload.Retrier{
		Uploader:   e.Uploader,
		MaxRetries: e.MaxRetries,
		Delay:      e.RetryDelay,
		Sleep:      e.Sleep,
		OnRetry:    obs.Retrying,
		Logger:     e.Logger,
	}

	for i, path := range files {
		obs.FileStarted(i, len(files), path)

		if opts.DryRun {
			fr := FileReport{Path: path, State: StateDryRun, Message: DryRunMessage}
			report.record(fr)
			obs.FileFinished(i, len(files), fr)
			continue
		}

		out, attempts, err := retrier.Do(ctx, path)
		fr := fileReport(path, out, attempts, err)
		report.record(fr)
		obs.FileFinished(i, len(files), fr)

		e.Logger.Debug().
			Str("path", path).
			Str("state", string(fr.State)).
			Int("attempts", attempts).
			Msg("file processed")

		if err != nil && !opts.ContinueOnError {
			report.Stopped = true
			e.Logger.Info().Str("path", path).Int("remaining", len(files)-i-1).Msg("stopping run after failure")
			break
		}
	}

	report.Elapsed = time.Since(started)
	obs.RunFinished(report)
	return report
}

func fileReport(path string, out upload.Outcome, attempts int, err error) FileReport {
	fr := FileReport{Path: path, Attempts: attempts}
	if err != nil {
		fr.State = StateFailed
		fr.Message = err.Error()
		return fr
	}

	chart := out.Result
	fr.Chart = &chart
	fr.Message = out.Message
	switch out.Status {
	case upload.Imported:
		fr.State = StateImported
		fr.Success = true
	case upload.Skipped:
		fr.State = StateSkipped
	default:
		fr.State = StateRejected
	}
	return fr
}
