package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"nlpkit/internal/adapter/fs"
	"nlpkit/internal/usecase"
)

var batchOutput string

var batchCmd = &cobra.Command{
	Use:   "batch [path]",
	Short: "Preprocess every matching file in a directory",
	Long: `Clean every file under the directory that matches batch.includes and not
batch.excludes, and write the result as JSON.

Examples:
  nlpkit batch .                    # Clean files under the current directory
  nlpkit batch ./corpus -o out.json # Write the report to a file`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "output file (default is stdout)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	cfg := GetConfig()
	cleaner, err := newCleaner()
	if err != nil {
		return err
	}
	walker := fs.NewWalker(cfg.Batch.Includes, cfg.Batch.Excludes)
	batchUC := usecase.NewBatchUseCase(walker, cleaner)

	log := GetLogger()
	log.Info("batch started", "root", path)
	start := time.Now()

	report, err := batchUC.Run(path, newBatchProgress())
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	for _, e := range report.Errors {
		log.Warn("file skipped", "error", e)
	}
	log.Info("batch complete",
		"documents", len(report.Documents),
		"errors", len(report.Errors),
		"elapsed", time.Since(start).Round(time.Millisecond).String(),
	)

	if batchOutput == "" {
		return writeJSON(cmd.OutOrStdout(), report)
	}

	f, err := os.Create(batchOutput)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()
	if err := writeJSON(f, report); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Report written to: %s\n", batchOutput)
	return nil
}

// newBatchProgress draws a progress bar on stderr so the JSON report on
// stdout stays clean.
func newBatchProgress() usecase.ProgressFunc {
	var bar *progressbar.ProgressBar
	var startTime time.Time

	return func(processed, total int, currentFile string) {
		if bar == nil {
			startTime = time.Now()
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Cleaning[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(os.Stderr)
				}),
			)
		}

		bar.Set(processed)

		if processed > 0 {
			elapsed := time.Since(startTime)
			rate := float64(processed) / elapsed.Seconds()
			remaining := total - processed
			if rate > 0 {
				eta := time.Duration(float64(remaining)/rate) * time.Second
				bar.Describe(fmt.Sprintf("[cyan]Cleaning[reset] ETA: %s", formatDuration(eta)))
			}
		}
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "<1s"
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}
