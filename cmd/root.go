package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/assessgen/internal/logger"
	"github.com/abhisek/assessgen/internal/store"
)

// log is configured from the persistent flags before any subcommand runs.
var log = logger.Nop()

var rootCmd = &cobra.Command{
	Use:   "assessgen",
	Short: "Generate assessment items with an LLM",
	Long: "assessgen generates multiple choice, fill-in-the-blank and true/false items for a topic.\n" +
		"It uses an LLM when a credential is configured and a template bank otherwise.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		mode, _ := cmd.Flags().GetString("log-mode")
		verbose, _ := cmd.Flags().GetBool("verbose")
		l, err := logger.New(mode, verbose)
		if err != nil {
			return err
		}
		log = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		log.Sync()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ASSESSGEN_DB env var)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log pipeline attempts and rejections")
	rootCmd.PersistentFlags().String("log-mode", "development", "Log encoding: development or production (JSON)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(batchesCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then ASSESSGEN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the database selected by the persistent flags.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
