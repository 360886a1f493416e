package chartupload

import (
	"github.com/bianoble/chart-uploader/internal/engine"
	"github.com/bianoble/chart-uploader/internal/upload"
)

// Type aliases re-export the result types as the public API.
// Users import "github.com/bianoble/chart-uploader/pkg/chartupload" and use
// chartupload.RunReport, chartupload.Failure, etc.

type Outcome = upload.Outcome
type Status = upload.Status
type ImportResult = upload.ImportResult
type Failure = upload.Failure
type FailureKind = upload.Kind
type RunReport = engine.RunReport
type FileReport = engine.FileReport
type State = engine.State
type Observer = engine.Observer

const (
	Imported = upload.Imported
	Skipped  = upload.Skipped
	Rejected = upload.Rejected
)

// Sentinels matched with errors.Is against a *Failure.
var (
	ErrFileNotFound    = upload.ErrFileNotFound
	ErrTransport       = upload.ErrTransport
	ErrInvalidResponse = upload.ErrInvalidResponse
	ErrServer          = upload.ErrServer
)
