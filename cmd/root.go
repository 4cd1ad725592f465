package cmd

import (
	"os"

	"github.com/abhisek/modelcheck/internal/config"
	"github.com/abhisek/modelcheck/internal/logging"
	"github.com/abhisek/modelcheck/internal/store"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// cfg is loaded once per invocation by the root command.
var cfg = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:   "modelcheck",
	Short: "Validate nearest-neighbors classifier model documents",
	Long: "modelcheck checks serialized k-nearest-neighbors classifier documents for\n" +
		"structural and cross-field consistency before they are deployed.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (overrides MODELCHECK_CONFIG env var)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite history database (overrides MODELCHECK_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: text or json")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig builds cfg from defaults, config file, environment and
// flags, then configures logging.
func loadConfig(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = os.Getenv("MODELCHECK_CONFIG")
	}

	loaded, err := config.Load(path)
	if err != nil {
		return err
	}

	if v, _ := cmd.Flags().GetString("db"); v != "" {
		loaded.DBPath = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		loaded.Log.Level = v
	}
	if v, _ := cmd.Flags().GetString("log-format"); v != "" {
		loaded.Log.Format = v
	}
	cfg = loaded

	return logging.Configure(log.StandardLogger(), cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
}

// resolveDBPath returns the database path using --db / config (highest
// priority), then the default XDG path.
func resolveDBPath() (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
