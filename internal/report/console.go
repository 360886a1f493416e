package report

import (
	"fmt"
	"io"

	"github.com/bianoble/chart-uploader/internal/discover"
	"github.com/bianoble/chart-uploader/internal/engine"
	"github.com/bianoble/chart-uploader/internal/upload"
)

// Console prints one progress line per file as the run advances:
//
//	[2/5] Uploading songs/b.ksh...  Failed. Retry 1/3... SUCCESS
//
// Paths are shown relative to BasePath.
type Console struct {
	Out      io.Writer
	Err      io.Writer // stop notice; nil means Out
	BasePath string
	Verbose  bool
	Styles   Styles
}

// NewConsole returns a Console writing progress to out and the stop notice
// to errOut.
func NewConsole(out, errOut io.Writer, basePath string, verbose, noColor bool) *Console {
	return &Console{
		Out:      out,
		Err:      errOut,
		BasePath: basePath,
		Verbose:  verbose,
		Styles:   NewStyles(out, noColor),
	}
}

func (c *Console) FileStarted(index, total int, path string) {
	if index == 0 {
		fmt.Fprintf(c.Out, "\n%s\n", c.Styles.Heading.Render("Starting upload..."))
	}
	progress := fmt.Sprintf("[%d/%d]", index+1, total)
	fmt.Fprintf(c.Out, "%s Uploading %s... ", c.Styles.Progress.Render(progress), discover.DisplayPath(c.BasePath, path))
}

func (c *Console) Retrying(_ string, attempt, maxRetries int, _ error) {
	fmt.Fprintf(c.Out, " %s. Retry %d/%d... ", c.Styles.Error.Render("Failed"), attempt, maxRetries)
}

func (c *Console) FileFinished(_, _ int, fr engine.FileReport) {
	switch fr.State {
	case engine.StateDryRun:
		fmt.Fprintln(c.Out, c.Styles.Warn.Render("SKIPPED (dry run)"))
	case engine.StateImported:
		fmt.Fprintln(c.Out, c.Styles.Success.Render("SUCCESS"))
	case engine.StateSkipped:
		fmt.Fprintf(c.Out, "%s (already exists)\n", c.Styles.Warn.Render("SKIPPED"))
	case engine.StateRejected:
		fmt.Fprintf(c.Out, "%s (%s)\n", c.Styles.Error.Render("FAILED"), fr.Message)
	default:
		fmt.Fprintf(c.Out, "%s (%s)\n", c.Styles.Error.Render("ERROR"), fr.Message)
	}

	if c.Verbose && fr.Chart != nil {
		c.printChart(fr.Chart)
	}
}

func (c *Console) RunFinished(r *engine.RunReport) {
	if !r.Stopped {
		return
	}
	w := c.Err
	if w == nil {
		w = c.Out
	}
	fmt.Fprintf(w, "\n%s: Upload stopped due to error\n", c.Styles.Error.Render("Error"))
}

func (c *Console) printChart(chart *upload.ImportResult) {
	fmt.Fprintf(c.Out, "  Title: %s\n", chart.Title)
	fmt.Fprintf(c.Out, "  Artist: %s\n", chart.Artist)
	fmt.Fprintf(c.Out, "  Level: %d (Difficulty: %d)\n", chart.Level, chart.Difficulty)
	fmt.Fprintf(c.Out, "  Hash: %s\n", chart.ChartHash)
	fmt.Fprintf(c.Out, "  Message: %s\n", chart.Message)
}
