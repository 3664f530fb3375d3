package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/idelchi/sizewise/internal/recommend"
	"github.com/idelchi/sizewise/internal/sizewise"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// Report bundles the scan statistics with the selected recommendation for
// output in any of the supported formats.
type Report struct {
	// Target is the cleaned path that was scanned.
	Target string `json:"target" yaml:"target"`
	// Mode is the recommendation mode the report was built for.
	Mode string `json:"mode" yaml:"mode"`
	// Stats holds the aggregate scan statistics.
	Stats *sizewise.Stats `json:"stats" yaml:"stats"`
	// Workers is set when the workers mode was selected.
	Workers *recommend.WorkerPlan `json:"workers,omitempty" yaml:"workers,omitempty"`
	// Storage is set when the storage mode was selected.
	Storage *recommend.StoragePlan `json:"storage,omitempty" yaml:"storage,omitempty"`
}

// formatBytes renders a byte quantity with binary magnitudes and decimal
// labels. Precision shrinks as the scaled value grows: two decimals below 10,
// one below 100, none from there on. Plain bytes and non-positive values
// never carry decimals.
func formatBytes(n float64) string {
	if n <= 0 {
		return "0 B"
	}

	units := []string{"B", "KB", "MB", "GB", "TB", "PB"}

	unit := 0
	for n >= 1024 && unit < len(units)-1 {
		n /= 1024
		unit++
	}

	switch {
	case unit == 0 || n >= 100:
		return fmt.Sprintf("%.0f %s", n, units[unit])
	case n >= 10:
		return fmt.Sprintf("%.1f %s", n, units[unit])
	default:
		return fmt.Sprintf("%.2f %s", n, units[unit])
	}
}

// PrintJSON outputs the report in JSON format.
func PrintJSON(report Report, writer io.Writer) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintYAML outputs the report in YAML format.
func PrintYAML(report Report, writer io.Writer) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("encoding YAML output: %w", err)
	}

	if _, err := writer.Write(data); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs the report in human-readable table format.
//
//nolint:forbidigo // This function prints output to the console.
func PrintTable(report Report, writer io.Writer) error {
	stats := report.Stats

	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintf(w, "Target:\t%s\n", report.Target)
	fmt.Fprintf(w, "Files scanned:\t%s (%s dirs, %s unreadable, %s symlinks skipped)\n",
		humanize.Comma(stats.FileCount),
		humanize.Comma(stats.DirCount),
		humanize.Comma(stats.UnreadableEntries),
		humanize.Comma(stats.SkippedSymlinks))
	fmt.Fprintf(w, "Total size:\t%s\n", formatBytes(float64(stats.TotalBytes)))

	if report.Workers != nil {
		fmt.Fprintf(w, "Average file size:\t%s\n", averageFileSize(stats))
	} else {
		fmt.Fprintf(w, "Median file size:\t%s\n", formatBytes(stats.MedianBytes))
	}

	if stats.FileCount > 0 {
		fmt.Fprintf(w, "Largest file:\t%s (%s)\n",
			formatBytes(float64(stats.LargestFileBytes)), stats.LargestFilePath)
	} else {
		fmt.Fprintf(w, "Largest file:\tN/A\n")
	}

	switch {
	case report.Workers != nil:
		noun := "nodes"
		if report.Workers.Nodes == 1 {
			noun = "node"
		}

		fmt.Fprintf(w, "Suggested cluster size:\t%d %s\n", report.Workers.Nodes, noun)
		fmt.Fprintf(w, "Rationale:\t%s\n", report.Workers.Reason)
	case report.Storage != nil:
		fmt.Fprintf(w, "Suggested cluster size:\t%s\n", formatBytes(float64(report.Storage.ClusterBytes)))
		fmt.Fprintf(w, "Rationale:\t%s\n", report.Storage.Reason)
	}

	fmt.Fprintf(w, "\nElapsed:\t%v\n", stats.Elapsed)

	return w.Flush()
}

func averageFileSize(stats *sizewise.Stats) string {
	if stats.FileCount == 0 {
		return "N/A"
	}

	return formatBytes(float64(stats.TotalBytes) / float64(stats.FileCount))
}
