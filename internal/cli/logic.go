package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/idelchi/sizewise/internal/recommend"
	"github.com/idelchi/sizewise/internal/sizewise"
)

func logic(writer io.Writer, options sizewise.Options) error {
	enableProgress := options.Output == "table" &&
		!options.Debug &&
		isatty.IsTerminal(os.Stderr.Fd())

	// Simple progress callback that prints directly to stderr
	var progressHook func(files, bytes int64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progressHook = func(files, bytes int64) {
			msg := fmt.Sprintf("Scanning… %s files, %s",
				humanize.Comma(files), formatBytes(float64(bytes)))
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	ctx := context.Background()

	stats, err := sizewise.Scan(ctx, options, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	report := Report{
		Target: filepath.Clean(options.Path),
		Mode:   options.Mode,
		Stats:  stats,
	}

	switch options.Mode {
	case ModeWorkers:
		plan := recommend.Workers(stats.TotalBytes, stats.FileCount)
		report.Workers = &plan
	default:
		plan := recommend.Storage(stats.MedianBytes, stats.P25Bytes, stats.P75Bytes)
		report.Storage = &plan
	}

	switch options.Output {
	case "json":
		return PrintJSON(report, writer)
	case "yaml":
		return PrintYAML(report, writer)
	case "table":
		return PrintTable(report, writer)
	default:
		return fmt.Errorf("unknown output format: %s", options.Output)
	}
}
