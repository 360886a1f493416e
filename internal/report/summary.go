package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/bianoble/chart-uploader/internal/discover"
	"github.com/bianoble/chart-uploader/internal/engine"
)

// Summary prints the end-of-run totals. With verbose set, files that
// ended in an error state are listed with their messages.
func Summary(w io.Writer, r *engine.RunReport, basePath string, verbose bool, s Styles) {
	fmt.Fprintf(w, "\n%s\n", s.Heading.Render("=== Upload Summary ==="))
	fmt.Fprintf(w, "Total files: %d\n", r.Total)
	fmt.Fprintf(w, "Successful: %s\n", s.Success.Render(strconv.Itoa(r.SuccessCount)))
	fmt.Fprintf(w, "Skipped: %s\n", s.Warn.Render(strconv.Itoa(r.SkipCount)))
	fmt.Fprintf(w, "Errors: %s\n", s.Error.Render(strconv.Itoa(r.ErrorCount)))
	fmt.Fprintf(w, "Time elapsed: %.2fs\n", r.Elapsed.Seconds())

	if !verbose || !r.HasErrors() {
		return
	}
	fmt.Fprintf(w, "\n%s\n", s.Error.Render("Failed uploads:"))
	for _, f := range r.Failed() {
		fmt.Fprintf(w, "  - %s: %s\n", discover.DisplayPath(basePath, f.Path), f.Message)
	}
}

// FileList prints the discovered files, one per line.
func FileList(w io.Writer, files []string, basePath string, s Styles) {
	fmt.Fprintf(w, "\n%s\n", s.Heading.Render("Files to upload:"))
	for _, f := range files {
		fmt.Fprintf(w, "  - %s\n", discover.DisplayPath(basePath, f))
	}
}
