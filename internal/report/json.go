package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bianoble/chart-uploader/internal/engine"
	"github.com/google/renameio/v2"
)

// WriteJSON encodes the run report as indented JSON.
func WriteJSON(w io.Writer, r *engine.RunReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}

// Save writes the JSON report to path atomically. A reader never sees a
// partially written file.
func Save(path string, r *engine.RunReport) (err error) {
	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(0644))
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer func() {
		if cerr := pending.Cleanup(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := WriteJSON(pending, r); err != nil {
		return err
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replacing report file %s: %w", path, err)
	}
	return nil
}
