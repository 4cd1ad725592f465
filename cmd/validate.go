package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/abhisek/modelcheck/internal/batch"
	"github.com/abhisek/modelcheck/internal/report"
	"github.com/abhisek/modelcheck/internal/store"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// errRejected makes the process exit non-zero when any document is invalid.
var errRejected = errors.New("one or more documents were rejected")

var validateCmd = &cobra.Command{
	Use:   "validate <file|dir>...",
	Short: "Validate model documents (JSON or YAML)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("workers") {
			cfg.Workers, _ = cmd.Flags().GetInt("workers")
		}
		if v, _ := cmd.Flags().GetString("output"); v != "" {
			cfg.Output.Format = v
		}
		if noRecord, _ := cmd.Flags().GetBool("no-record"); noRecord {
			cfg.Record = false
		}
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			cfg.Output.Color = false
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		paths, err := expandPaths(args)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			return fmt.Errorf("no model documents found in %v", args)
		}

		opts := []batch.Option{batch.WithWorkers(cfg.Workers)}
		if cfg.Record {
			dbPath, err := resolveDBPath()
			if err != nil {
				return fmt.Errorf("resolve DB path: %w", err)
			}
			st, err := store.Open(dbPath)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer st.Close()
			opts = append(opts, batch.WithRecorder(st.RunRepo()))
		}

		log.WithField("documents", len(paths)).Debug("Starting validation")
		batchID, results, err := batch.NewRunner(opts...).Run(cmd.Context(), paths)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch cfg.Output.Format {
		case "json":
			err = report.JSON(out, batchID, results)
		default:
			err = report.Text(out, results, cfg.Output.Color)
		}
		if err != nil {
			return err
		}

		if _, invalid := report.Counts(results); invalid > 0 {
			return errRejected
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().Int("workers", 0, "Documents validated in parallel (0 = one per CPU)")
	validateCmd.Flags().String("output", "", "Output format: text or json")
	validateCmd.Flags().Bool("no-record", false, "Do not record results in the history database")
	validateCmd.Flags().Bool("no-color", false, "Disable colored output")
}

// expandPaths replaces each directory argument with the JSON and YAML
// files directly inside it.
func expandPaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil || !info.IsDir() {
			// Missing files are reported per document by the runner.
			paths = append(paths, arg)
			continue
		}
		var found []string
		for _, pattern := range []string{"*.json", "*.yaml", "*.yml"} {
			m, err := filepath.Glob(filepath.Join(arg, pattern))
			if err != nil {
				return nil, fmt.Errorf("scan %s: %w", arg, err)
			}
			found = append(found, m...)
		}
		sort.Strings(found)
		paths = append(paths, found...)
	}
	return paths, nil
}
