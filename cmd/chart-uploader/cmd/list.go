package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bianoble/chart-uploader/internal/discover"
	applog "github.com/bianoble/chart-uploader/internal/log"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the chart files an upload would send",
	Long: `Runs discovery only: prints every chart file under --path in upload
order with its size, followed by the total. The server is never contacted
and no server or token is needed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cfg.Path == "" {
			return errors.New("'path' is required — pass --path")
		}

		found, err := discover.Find(cfg.Path, discover.Options{
			Extension: cfg.ChartExtension(),
			Logger:    applog.WithComponent("discover"),
		})
		if err != nil {
			return err
		}

		p := newPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr())
		if len(found) == 0 {
			p.warn("No .%s files found in '%s'", cfg.ChartExtension(), cfg.Path)
			return nil
		}

		base := cfg.Path
		if fi, err := os.Stat(cfg.Path); err == nil && !fi.IsDir() {
			base = ""
		}
		writeListing(p.out, base, found)
		return nil
	},
}

// writeListing prints one line per chart with its size, then a total line.
func writeListing(w io.Writer, base string, found []discover.Candidate) {
	var total int64
	for _, c := range found {
		fmt.Fprintf(w, "  %-50s %10s\n", discover.DisplayPath(base, c.Path), chartSize(c.Size))
		total += c.Size
	}
	noun := "files"
	if len(found) == 1 {
		noun = "file"
	}
	fmt.Fprintf(w, "\n%d %s, %s\n", len(found), noun, chartSize(total))
}

// chartSize formats n bytes in binary units with one decimal above 1 KB.
func chartSize(n int64) string {
	const kb = 1 << 10
	switch {
	case n < kb:
		return fmt.Sprintf("%d B", n)
	case n < kb<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/kb)
	case n < kb<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(kb<<10))
	default:
		return fmt.Sprintf("%.1f GB", float64(n)/(kb<<20))
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
