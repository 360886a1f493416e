package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/bianoble/chart-uploader/internal/config"
	"github.com/spf13/cobra"
)

// Build-time variables set via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags.
var (
	configPath string
	noInherit  bool
	envFile    string
	chartPath  string
	extension  string
	verbose    bool
	logLevel   string
	noColor    bool
)

// errRunFailed signals a failed run whose details were already printed.
var errRunFailed = errors.New("upload finished with errors")

var rootCmd = &cobra.Command{
	Use:   "chart-uploader",
	Short: "Bulk upload .ksh charts to a chart ingest server",
	Long: `chart-uploader finds every .ksh chart under a path and uploads the files
one at a time to the server's /charts/import/ksh endpoint, retrying failed
attempts with a fixed delay. Each file is reported as imported, skipped
(already on the server) or failed, followed by a summary of the run.

Settings come from chart-uploader.yaml (system, user and project layers),
then CHART_UPLOADER_SERVER and CHART_UPLOADER_TOKEN, then flags.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging()
	},
	RunE: runUpload,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "chart-uploader %s\n", version)
		fmt.Fprintf(out, "  commit:  %s\n", commit)
		fmt.Fprintf(out, "  built:   %s\n", date)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", config.DefaultProjectPath, "path to project config file")
	pf.BoolVar(&noInherit, "no-inherit", false, "ignore system and user config files")
	pf.StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	pf.StringVarP(&chartPath, "path", "p", "", "directory (or single file) containing .ksh charts")
	pf.StringVar(&extension, "extension", "", "chart file extension (default \"ksh\")")
	pf.BoolVarP(&verbose, "verbose", "v", false, "detailed output")
	pf.StringVar(&logLevel, "log-level", "", "diagnostic log level on stderr (debug, info, warn, error)")
	pf.BoolVar(&noColor, "no-color", false, "disable colored output")

	registerUploadFlags(rootCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errRunFailed) {
			errorf("%v", err)
		}
		return err
	}
	return nil
}
