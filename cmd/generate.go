package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/levelup/internal/cliui"
	"github.com/abhisek/levelup/internal/llm"
	"github.com/abhisek/levelup/internal/roadmap"
	"github.com/abhisek/levelup/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate <career>",
	Short: "Generate a roadmap for a career and print it",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		career := strings.Join(args, " ")
		asJSON, _ := cmd.Flags().GetBool("json")

		logger, err := newLogger(cmd)
		if err != nil {
			return fmt.Errorf("init logging: %w", err)
		}
		defer logger.Sync() //nolint:errcheck

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
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "Generating a roadmap for %q...\n", career)
		c, err := gen.Generate(ctx, career)
		if err != nil {
			if why := llm.Explain(err); why != "" {
				return fmt.Errorf("%w\n%s", err, why)
			}
			return err
		}

		g, _, err := roadmap.Import(*c)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(c)
		}
		cliui.PrintTree(out, c.Name, c.Description, g)
		return nil
	},
}

func init() {
	generateCmd.Flags().Bool("json", false, "Print the validated roadmap as JSON instead of a tree")
}
