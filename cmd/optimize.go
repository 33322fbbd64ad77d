package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"squish/internal/optimizer"
	"squish/internal/tui"
)

var (
	optimizeFormat  string
	optimizeWidth   int
	optimizeHeight  int
	optimizeVerbose bool
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize [flags] <directory>",
	Short: "Re-encode every image under a directory in place",
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
		if optimizeFormat != "" {
			format, err = optimizer.ParseOutputFormat(optimizeFormat)
			if err != nil {
				return err
			}
		}
		if optimizeWidth < 0 || optimizeHeight < 0 {
			return fmt.Errorf("width and height must be positive")
		}

		level := log.WarnLevel
		if optimizeVerbose {
			level = log.InfoLevel
		}
		logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Level: level})

		updates := make(chan optimizer.ProgressUpdate, 64)
		model := tui.NewModel(updates)
		program := tea.NewProgram(model)

		uiDone := make(chan struct{})
		go func() {
			_, _ = program.Run()
			close(uiDone)
		}()

		summary, _, err := optimizer.Run(context.Background(), dir, optimizer.Options{
			Mode:         optimizer.ModeOptimize,
			OutputFormat: format,
			MaxWidth:     optimizeWidth,
			MaxHeight:    optimizeHeight,
			Verbose:      optimizeVerbose,
			Log:          logger,
		}, updates)

		close(updates)
		<-uiDone
		if err != nil {
			return err
		}

		rows := []tui.SummaryRow{
			{Label: "Candidate images", Value: fmt.Sprintf("%d", summary.Candidates)},
			{Label: "Optimized", Value: fmt.Sprintf("%d", summary.Optimized)},
			{Label: "Failed", Value: fmt.Sprintf("%d", summary.Failed)},
			{Label: "Bytes saved", Value: fmt.Sprintf("%d", summary.BytesSaved)},
			{Label: "Metadata tags dropped", Value: fmt.Sprintf("%d", summary.MetaDropped)},
		}
		fmt.Fprintln(os.Stdout, tui.RenderSummary(rows))

		return nil
	},
}

func init() {
	optimizeCmd.Flags().StringVarP(&optimizeFormat, "format", "f", "", "target format: webp, png, or jpg (default keeps each file's own format)")
	optimizeCmd.Flags().IntVarP(&optimizeWidth, "width", "w", 0, "maximum width in pixels, aspect ratio preserved")
	optimizeCmd.Flags().IntVarP(&optimizeHeight, "height", "a", 0, "maximum height in pixels, aspect ratio preserved")
	optimizeCmd.Flags().BoolVarP(&optimizeVerbose, "verbose", "v", false, "log every optimized file")
	optimizeCmd.MarkFlagsMutuallyExclusive("width", "height")

	rootCmd.AddCommand(optimizeCmd)
}
