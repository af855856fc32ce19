package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/levelup/internal/logging"
	"github.com/abhisek/levelup/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "levelup",
	Short: "Gamified career skill trees in the terminal",
	Long: "LevelUp turns a career path into a skill tree. Complete skills to earn XP,\n" +
		"unlock what comes next, and let an AI draft a roadmap for any career.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to the LLM audit database (overrides LEVELUP_DB env var)")
	rootCmd.PersistentFlags().String("log-file", "", "Log file path, or \"off\" (overrides LEVELUP_LOG_FILE)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides LEVELUP_LOG_LEVEL)")

	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LEVELUP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// newLogger builds the file logger from env and flags.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	cfg := logging.ConfigFromEnv()
	if f, _ := cmd.Flags().GetString("log-file"); f != "" {
		cfg.File = f
		cfg.Disabled = f == "off"
	}
	if l, _ := cmd.Flags().GetString("log-level"); l != "" {
		cfg.Level = l
	}
	return logging.New(cfg)
}
