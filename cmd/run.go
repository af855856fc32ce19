package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/levelup/internal/app"
	"github.com/abhisek/levelup/internal/llm"
	"github.com/abhisek/levelup/internal/roadmapgen"
	"github.com/abhisek/levelup/internal/session"
	"github.com/abhisek/levelup/internal/store"
	"github.com/abhisek/levelup/internal/templates"
)

// runApp opens the audit store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger, err := newLogger(cmd)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	lib, err := templates.Builtin()
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}
	sess, err := session.New(lib, logger)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	gen, err := newGenerator(ctx, st, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Roadmap generation will be unavailable; templates still work.")
	}

	logger.Info("starting", zap.String("session_id", sess.ID().String()), zap.Bool("generator", gen != nil))
	return app.Run(ctx, sess, gen)
}

// newGenerator builds the roadmap generator on the provider configured in
// the environment, recording requests in st.
func newGenerator(ctx context.Context, st *store.Store, logger *zap.Logger) (roadmapgen.Generator, error) {
	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo(), logger)
	if err != nil {
		return nil, err
	}
	return roadmapgen.New(provider, roadmapgen.DefaultConfig()), nil
}
