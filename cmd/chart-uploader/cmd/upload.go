package cmd

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bianoble/chart-uploader/internal/config"
	"github.com/bianoble/chart-uploader/internal/discover"
	"github.com/bianoble/chart-uploader/internal/engine"
	applog "github.com/bianoble/chart-uploader/internal/log"
	"github.com/bianoble/chart-uploader/internal/metrics"
	"github.com/bianoble/chart-uploader/internal/report"
	"github.com/bianoble/chart-uploader/internal/upload"
	"github.com/spf13/cobra"
)

// Upload flags.
var (
	server          string
	token           string
	dryRun          bool
	yes             bool
	continueOnError bool
	maxRetries      int
	retryDelay      int
	timeout         int
	jsonOutput      bool
	reportFile      string
	metricsFile     string
)

func registerUploadFlags(c *cobra.Command) {
	f := c.Flags()
	f.StringVarP(&server, "server", "s", "", "server base URL (env "+config.EnvServer+")")
	f.StringVarP(&token, "token", "t", "", "bearer token (env "+config.EnvToken+")")
	f.BoolVarP(&dryRun, "dry-run", "d", false, "list what would be uploaded without contacting the server")
	f.BoolVarP(&yes, "yes", "y", false, "skip interactive confirmation")
	f.BoolVarP(&continueOnError, "continue-on-error", "c", false, "keep going after a file fails")
	f.IntVarP(&maxRetries, "max-retries", "r", config.DefaultMaxRetries, "retries after a failed attempt")
	f.IntVar(&retryDelay, "retry-delay", config.DefaultRetryDelay, "seconds to wait between attempts")
	f.IntVar(&timeout, "timeout", 0, "per-request timeout in seconds (0 = none)")
	f.BoolVar(&jsonOutput, "json", false, "print the run report as JSON on stdout (progress goes to stderr)")
	f.StringVar(&reportFile, "report-file", "", "write the JSON run report to this file")
	f.StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
}

func runUpload(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if errs := config.Validate(cfg); len(errs) > 0 {
		return &config.ValidationError{Errors: errs}
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		out = cmd.ErrOrStderr()
	}
	p := newPrinter(out, cmd.ErrOrStderr())

	files, base, err := findCharts(cfg)
	if err != nil {
		return err
	}
	ext := cfg.ChartExtension()
	if len(files) == 0 {
		p.warn("No .%s files found in '%s'", ext, cfg.Path)
		return nil
	}
	p.info("Found %s .%s files", p.styles.Success.Render(strconv.Itoa(len(files))), ext)
	if verbose {
		report.FileList(p.out, files, base, p.styles)
	}

	if !yes && !dryRun {
		fmt.Fprintf(p.out, "\n%s Upload %d files to %s?\n", p.styles.Warn.Render("Confirm"), len(files), p.styles.Success.Render(cfg.Server))
		if !p.confirm(cmd.InOrStdin(), "Continue?") {
			fmt.Fprintln(p.out, p.styles.Warn.Render("Upload cancelled"))
			return nil
		}
	}

	client := upload.NewClient(cfg.Server, cfg.Token, &http.Client{Timeout: cfg.HTTPTimeout()})
	client.Logger = applog.WithComponent("upload")

	collector := metrics.NewCollector()
	eng := &engine.UploadEngine{
		Uploader:   client,
		MaxRetries: cfg.Retries(),
		RetryDelay: cfg.Delay(),
		Observer: engine.Observers{
			report.NewConsole(p.out, p.err, base, verbose, noColor),
			collector,
		},
		Logger: applog.WithComponent("engine"),
	}

	result := eng.Run(cmd.Context(), files, engine.UploadOptions{
		DryRun:          dryRun,
		ContinueOnError: cfg.ContinueOnErrors(),
	})

	report.Summary(p.out, result, base, verbose, p.styles)

	if metricsFile != "" {
		if err := collector.WriteTextfile(metricsFile); err != nil {
			return err
		}
		p.detail("metrics written to %s", metricsFile)
	}
	if reportFile != "" {
		if err := report.Save(reportFile, result); err != nil {
			return err
		}
		p.detail("report written to %s", reportFile)
	}
	if jsonOutput {
		if err := report.WriteJSON(cmd.OutOrStdout(), result); err != nil {
			return err
		}
	}

	if result.HasErrors() && !cfg.ContinueOnErrors() {
		return errRunFailed
	}
	return nil
}

// findCharts discovers the chart files under cfg.Path and returns them with
// the directory progress lines are shown relative to.
func findCharts(cfg *config.Config) ([]string, string, error) {
	found, err := discover.Find(cfg.Path, discover.Options{
		Extension: cfg.ChartExtension(),
		Logger:    applog.WithComponent("discover"),
	})
	if err != nil {
		return nil, "", err
	}

	base := cfg.Path
	if fi, err := os.Stat(cfg.Path); err == nil && !fi.IsDir() {
		base = filepath.Dir(cfg.Path)
	}
	return discover.Paths(found), base, nil
}
