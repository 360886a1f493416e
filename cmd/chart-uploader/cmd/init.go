package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var initForce bool

// initTemplate is the default chart-uploader.yaml scaffold.
const initTemplate = `# chart-uploader configuration
# Values here are overridden by CHART_UPLOADER_SERVER / CHART_UPLOADER_TOKEN
# and by command-line flags.
version: 1

server: https://ir.example.com
# token: keep the token out of version control; prefer CHART_UPLOADER_TOKEN
#        or a .env file next to this one.

path: ./charts
extension: ksh

max_retries: 3
retry_delay: 1        # seconds between attempts
# timeout: 30         # per-request timeout in seconds
continue_on_error: false
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter chart-uploader.yaml configuration",
	Long: `Creates a chart-uploader.yaml file in the current directory with the
server, chart path and retry settings documented.

Use --force to overwrite an existing configuration file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		outPath := configPath
		if !filepath.IsAbs(outPath) {
			abs, err := filepath.Abs(outPath)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			outPath = abs
		}

		if !initForce {
			if _, err := os.Stat(outPath); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", outPath)
			}
		}

		if err := os.WriteFile(outPath, []byte(initTemplate), 0644); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Created %s\n\n", outPath)
		fmt.Fprintln(out, "Next steps:")
		fmt.Fprintln(out, "  1. Set server and path for your charts")
		fmt.Fprintf(out, "  2. Export %s (or add it to .env)\n", "CHART_UPLOADER_TOKEN")
		fmt.Fprintln(out, "  3. Run 'chart-uploader --dry-run' to preview, then 'chart-uploader'")
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing config file")
	rootCmd.AddCommand(initCmd)
}
