package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"squish/internal/optimizer"
	"squish/internal/tui"
)

var (
	scanFormat string
	scanWidth  int
	scanHeight int
)

var scanCmd = &cobra.Command{
	Use:   "scan [flags] <directory>",
	Short: "Report what optimize would do without modifying files",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		info, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("directory %q: %w", dir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%q is not a directory", dir)
		}

		format := optimizer.FormatKeep
		if scanFormat != "" {
			format, err = optimizer.ParseOutputFormat(scanFormat)
			if err != nil {
				return err
			}
		}

		logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})

		summary, results, err := optimizer.Run(context.Background(), dir, optimizer.Options{
			Mode:         optimizer.ModeScan,
			OutputFormat: format,
			MaxWidth:     scanWidth,
			MaxHeight:    scanHeight,
			Log:          logger,
		}, nil)
		if err != nil {
			return err
		}

		for i, res := range results {
			if i > 0 {
				fmt.Fprintln(os.Stdout)
			}
			fmt.Fprintf(os.Stdout, "%s\n", scanFileStyle.Render(res.Display))
			if res.Err != nil {
				fmt.Fprintf(os.Stdout, "  %s %s\n",
					scanBulletStyle.Render("-"),
					scanWarnStyle.Render(fmt.Sprintf("%s failed: %v", res.Stage, res.Err)),
				)
				continue
			}

			fmt.Fprintf(os.Stdout, "  %s %s\n", scanBulletStyle.Render("-"),
				scanValueStyle.Render(fmt.Sprintf("%s %dx%d", res.Kind, res.OldWidth, res.OldHeight)))
			if res.Resized {
				fmt.Fprintf(os.Stdout, "  %s %s\n", scanBulletStyle.Render("-"),
					scanValueStyle.Render(fmt.Sprintf("would resize to %dx%d", res.NewWidth, res.NewHeight)))
			}
			fmt.Fprintf(os.Stdout, "  %s %s\n", scanBulletStyle.Render("-"),
				scanValueStyle.Render(fmt.Sprintf("would re-encode as %s", res.TargetFormat)))
			if res.MetaDropped > 0 {
				fmt.Fprintf(os.Stdout, "  %s %s\n", scanBulletStyle.Render("-"),
					scanDimStyle.Render(fmt.Sprintf("%d metadata tags would be dropped", res.MetaDropped)))
			}
		}

		if len(results) > 0 {
			fmt.Fprintln(os.Stdout)
		}
		fmt.Fprintf(os.Stdout, "%s\n",
			scanDimStyle.Render(fmt.Sprintf("%d candidates, %d readable", summary.Candidates, summary.Optimized)))

		return nil
	},
}

var (
	scanFileStyle   = lipgloss.NewStyle().Bold(true).Foreground(tui.ColorAccent)
	scanValueStyle  = lipgloss.NewStyle().Foreground(tui.ColorInk)
	scanWarnStyle   = lipgloss.NewStyle().Foreground(tui.ColorWarn)
	scanDimStyle    = lipgloss.NewStyle().Foreground(tui.ColorDim)
	scanBulletStyle = lipgloss.NewStyle().Foreground(tui.ColorDim)
)

func init() {
	scanCmd.Flags().StringVarP(&scanFormat, "format", "f", "", "target format to preview: webp, png, or jpg")
	scanCmd.Flags().IntVarP(&scanWidth, "width", "w", 0, "maximum width in pixels to preview")
	scanCmd.Flags().IntVarP(&scanHeight, "height", "a", 0, "maximum height in pixels to preview")
	scanCmd.MarkFlagsMutuallyExclusive("width", "height")

	rootCmd.AddCommand(scanCmd)
}
