package cli

import (
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/sizewise/internal/sizewise"
)

// Recommendation modes selectable with the --mode flag.
const (
	// ModeStorage recommends a storage-cluster size from file-size percentiles.
	ModeStorage = "storage"
	// ModeWorkers recommends a worker-node count from total size and file count.
	ModeWorkers = "workers"
)

// allowedModes lists the accepted values for the --mode flag.
//
//nolint:gochecknoglobals // Config constant
var allowedModes = []string{ModeStorage, ModeWorkers}

// allowedOutputs lists the accepted values for the --output flag.
//
//nolint:gochecknoglobals // Config constant
var allowedOutputs = []string{"table", "json", "yaml"}

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	return c.command().Execute()
}

func (c CLI) command() *cobra.Command {
	var options sizewise.Options

	cmd := &cobra.Command{
		Use:   "sizewise [path]",
		Short: "Scan a directory tree and recommend cluster sizing",
		Long: heredoc.Doc(`
			sizewise scans a directory tree, aggregates file-size statistics and
			recommends a cluster configuration for the scanned data.

			Modes:
			  storage   Recommend a storage-cluster size from file-size percentiles.
			  workers   Recommend a worker-node count from total size and file count.

			The path defaults to the current directory. Symbolic links are never
			followed; unreadable entries are counted and skipped.
		`),
		Example: heredoc.Doc(`
			# Scan the current directory with the default storage mode
			sizewise

			# Recommend worker nodes for a large tree
			sizewise --mode workers /var/data

			# Machine-readable output, scanning a path that looks like a flag
			sizewise --output json -- --odd-directory-name
		`),
		Version:       c.version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				options.Path = args[0]
			} else {
				options.Path = "."
			}

			if !slices.Contains(allowedModes, options.Mode) {
				return fmt.Errorf("invalid mode %q: must be one of %v", options.Mode, allowedModes)
			}

			if !slices.Contains(allowedOutputs, options.Output) {
				return fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
			}

			return logic(cmd.OutOrStdout(), options)
		},
	}

	cmd.Flags().StringVarP(&options.Mode, "mode", "m", ModeStorage, "Recommendation mode: storage or workers")
	cmd.Flags().StringVarP(&options.Output, "output", "o", "table", "Output format: table, json or yaml")
	cmd.Flags().StringSliceVarP(&options.Excludes, "exclude", "e", nil, "Regex patterns to exclude")
	cmd.Flags().BoolVar(&options.Debug, "debug", false, "Enable debug output")

	cmd.Flags().SortFlags = false

	cmd.SetVersionTemplate("{{.Version}}\n")

	return cmd
}
