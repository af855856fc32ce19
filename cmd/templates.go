package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/levelup/internal/cliui"
	"github.com/abhisek/levelup/internal/roadmap"
	"github.com/abhisek/levelup/internal/templates"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the built-in roadmap templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := templates.Builtin()
		if err != nil {
			return err
		}
		cliui.PrintTemplates(cmd.OutOrStdout(), lib.All(), lib.Default().ID)
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a template's skill tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := templates.Builtin()
		if err != nil {
			return err
		}

		id, _ := cmd.Flags().GetString("template")
		if id == "" {
			id = lib.Default().ID
		}
		t, err := lib.Get(id)
		if err != nil {
			return err
		}

		g, _, err := roadmap.Import(t.Candidate)
		if err != nil {
			return fmt.Errorf("template %s: %w", id, err)
		}
		cliui.PrintTree(cmd.OutOrStdout(), t.Name, t.Description, g)
		return nil
	},
}

func init() {
	showCmd.Flags().StringP("template", "t", "", "Template id (default: the first template)")
}
