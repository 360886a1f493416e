// Package chartupload provides the public Go library API for chart-uploader.
//
// It bundles discovery, the single-file client, the retry controller and
// the sequential orchestrator behind one Client.
//
// # Basic Usage
//
//	client, err := chartupload.New(chartupload.Options{
//	    Server:     "https://ir.example.com",
//	    Token:      os.Getenv("CHART_UPLOADER_TOKEN"),
//	    MaxRetries: 3,
//	    RetryDelay: time.Second,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Upload every .ksh file under a directory
//	report, err := client.UploadDir(ctx, "./charts", chartupload.RunOptions{})
//
//	// Or a single file, with retries
//	outcome, err := client.UploadFile(ctx, "./charts/song.ksh")
package chartupload

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/bianoble/chart-uploader/internal/discover"
	"github.com/bianoble/chart-uploader/internal/engine"
	"github.com/bianoble/chart-uploader/internal/upload"
	"github.com/rs/zerolog"
)

// Options configures a chart-uploader client.
type Options struct {
	// Server is the base URL of the ingest server. Required.
	Server string

	// Token is the bearer token sent with every request. Required.
	Token string

	// HTTPClient performs requests. If nil, a client with Timeout is used.
	HTTPClient upload.HTTPClient

	// Timeout bounds each request when HTTPClient is nil. Zero means none.
	Timeout time.Duration

	// MaxRetries is the number of retries after a failed first attempt.
	MaxRetries int

	// RetryDelay is the fixed wait between attempts.
	RetryDelay time.Duration

	// Extension selects the chart files UploadDir picks up. Default: "ksh".
	Extension string

	// Observer receives progress notifications. Optional.
	Observer Observer

	// Logger receives debug diagnostics. The zero value discards them.
	Logger zerolog.Logger
}

// RunOptions configures UploadDir.
type RunOptions struct {
	DryRun          bool
	ContinueOnError bool
}

// Client is the main entry point for the chart-uploader library.
type Client struct {
	uploader  *upload.Client
	retrier   *upload.Retrier
	engine    *engine.UploadEngine
	extension string
	logger    zerolog.Logger
}

// New creates a new chart-uploader Client.
func New(opts Options) (*Client, error) {
	if opts.Server == "" {
		return nil, errors.New("server is required")
	}
	if opts.Token == "" {
		return nil, errors.New("token is required")
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	up := upload.NewClient(opts.Server, opts.Token, httpClient)
	up.Logger = opts.Logger

	return &Client{
		uploader: up,
		retrier: &upload.Retrier{
			Uploader:   up,
			MaxRetries: opts.MaxRetries,
			Delay:      opts.RetryDelay,
			Logger:     opts.Logger,
		},
		engine: &engine.UploadEngine{
			Uploader:   up,
			MaxRetries: opts.MaxRetries,
			RetryDelay: opts.RetryDelay,
			Observer:   opts.Observer,
			Logger:     opts.Logger,
		},
		extension: opts.Extension,
		logger:    opts.Logger,
	}, nil
}

// Endpoint returns the URL charts are posted to.
func (c *Client) Endpoint() string {
	return c.uploader.Endpoint
}

// UploadFile uploads one file, retrying failures. Any error is a *Failure.
func (c *Client) UploadFile(ctx context.Context, path string) (Outcome, error) {
	out, _, err := c.retrier.Do(ctx, path)
	return out, err
}

// Find lists the chart files under root in upload order.
func (c *Client) Find(root string) ([]string, error) {
	found, err := discover.Find(root, discover.Options{Extension: c.extension, Logger: c.logger})
	if err != nil {
		return nil, err
	}
	return discover.Paths(found), nil
}

// UploadDir discovers the chart files under root and uploads them in
// order. The error is non-nil only when discovery fails; per-file
// failures are recorded in the report.
func (c *Client) UploadDir(ctx context.Context, root string, opts RunOptions) (*RunReport, error) {
	files, err := c.Find(root)
	if err != nil {
		return nil, err
	}
	return c.UploadFiles(ctx, files, opts), nil
}

// UploadFiles uploads files in the order given.
func (c *Client) UploadFiles(ctx context.Context, files []string, opts RunOptions) *RunReport {
	return c.engine.Run(ctx, files, engine.UploadOptions{
		DryRun:          opts.DryRun,
		ContinueOnError: opts.ContinueOnError,
	})
}
