package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bianoble/chart-uploader/internal/config"
	applog "github.com/bianoble/chart-uploader/internal/log"
	"github.com/bianoble/chart-uploader/internal/report"
	"github.com/spf13/cobra"
)

// configureLogging points diagnostics at stderr. --verbose raises the
// default level to info; --log-level wins over both.
func configureLogging() {
	level := logLevel
	if level == "" && verbose {
		level = "info"
	}
	applog.Configure(applog.Config{Level: level, Output: os.Stderr, Console: true})
}

// loadConfig builds the effective config: config file layers, then the
// environment (after the dotenv file), then flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := config.LoadDotEnv(envFile); err != nil {
		return nil, err
	}

	result, err := config.LoadHierarchical(config.DiscoverOptions{
		ProjectPath: configPath,
		NoInherit:   noInherit,
	})
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := applog.WithComponent("config")
	for _, l := range result.Layers {
		logger.Debug().Str("level", string(l.Level)).Str("path", l.Path).Bool("loaded", l.Loaded).Msg("config layer")
	}

	return config.MergeAll([]*config.Config{result.Config, config.FromEnv(), flagConfig(cmd)})
}

// flagConfig returns a layer holding only the flags that were set on the
// command line, so flag defaults never mask config file values.
func flagConfig(cmd *cobra.Command) *config.Config {
	flags := cmd.Flags()
	cfg := &config.Config{}
	if flags.Changed("path") {
		cfg.Path = chartPath
	}
	if flags.Changed("extension") {
		cfg.Extension = extension
	}
	if flags.Changed("server") {
		cfg.Server = server
	}
	if flags.Changed("token") {
		cfg.Token = token
	}
	if flags.Changed("max-retries") {
		cfg.MaxRetries = &maxRetries
	}
	if flags.Changed("retry-delay") {
		cfg.RetryDelay = &retryDelay
	}
	if flags.Changed("timeout") {
		cfg.Timeout = &timeout
	}
	if flags.Changed("continue-on-error") {
		cfg.ContinueOnError = &continueOnError
	}
	return cfg
}

// printer writes user-facing lines with the shared console styles.
type printer struct {
	out    io.Writer
	err    io.Writer
	styles report.Styles
}

func newPrinter(out, errOut io.Writer) *printer {
	return &printer{out: out, err: errOut, styles: report.NewStyles(out, noColor)}
}

// info prints a line prefixed with a blue "Info" tag.
func (p *printer) info(format string, args ...any) {
	fmt.Fprintf(p.out, "%s "+format+"\n", append([]any{p.styles.Heading.Render("Info")}, args...)...)
}

// warn prints a line prefixed with a yellow "Warning:" tag.
func (p *printer) warn(format string, args ...any) {
	fmt.Fprintf(p.out, "%s: "+format+"\n", append([]any{p.styles.Warn.Render("Warning")}, args...)...)
}

// detail prints an indented line only in verbose mode.
func (p *printer) detail(format string, args ...any) {
	if verbose {
		fmt.Fprintf(p.out, "  "+format+"\n", args...)
	}
}

// confirm asks a yes/no question on in. Anything but y or yes is a no.
func (p *printer) confirm(in io.Reader, prompt string) bool {
	fmt.Fprintf(p.out, "%s [y/N]: ", prompt)
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return false
	}
	answer := strings.TrimSpace(strings.ToLower(scanner.Text()))
	return answer == "y" || answer == "yes"
}

// errorf prints an error message to stderr.
func errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
