package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/levelup/internal/cliui"
	"github.com/abhisek/levelup/internal/llm"
	"github.com/abhisek/levelup/internal/roadmap"
	"github.com/abhisek/levelup/internal/store"
)

const timeLayout = "2006-01-02 15:04:05"

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the audit log of roadmap generation requests",
}

// openStore opens the audit database selected by --db or the environment.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func rule(w io.Writer, n int) {
	fmt.Fprintln(w, strings.Repeat("─", n))
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")
		failedOnly, _ := cmd.Flags().GetBool("failed")
		since, _ := cmd.Flags().GetDuration("since")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		opts := store.QueryOpts{Purpose: purpose}
		if since > 0 {
			opts.From = time.Now().Add(-since)
		}
		if !failedOnly {
			opts.Limit = limit
		}
		events, err := s.EventRepo().QueryLLMEvents(commandContext(cmd), opts)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if failedOnly {
			events = failed(events, limit)
		}

		w := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(w, "No LLM requests recorded.")
			return nil
		}

		fmt.Fprintln(w, cliui.Bold(fmt.Sprintf("%-5s  %-19s  %-12s  %-28s  %6s  %6s  %7s  %s",
			"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")))
		rule(w, 100)
		for _, e := range events {
			fmt.Fprintf(w, "%-5d  %-19s  %-12s  %-28s  %6d  %6d  %7d  %s\n",
				e.ID,
				e.Timestamp.Local().Format(timeLayout),
				truncate(e.Purpose, 12),
				truncate(e.Model, 28),
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				cliui.OKMark(e.Success),
			)
		}
		return nil
	},
}

// failed keeps the unsuccessful events, at most limit of them when limit > 0.
func failed(events []store.LLMRequestEventRecord, limit int) []store.LLMRequestEventRecord {
	var out []store.LLMRequestEventRecord
	for _, e := range events {
		if e.Success {
			continue
		}
		out = append(out, e)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the full request and response of one LLM request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}
		asTree, _ := cmd.Flags().GetBool("tree")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetLLMEvent(commandContext(cmd), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}

		w := cmd.OutOrStdout()
		if asTree {
			return printRecordedRoadmap(w, e)
		}

		fmt.Fprintf(w, "ID:        %d\n", e.ID)
		fmt.Fprintf(w, "Time:      %s\n", e.Timestamp.Local().Format(timeLayout))
		fmt.Fprintf(w, "Provider:  %s\n", e.Provider)
		fmt.Fprintf(w, "Model:     %s\n", e.Model)
		fmt.Fprintf(w, "Purpose:   %s\n", e.Purpose)
		fmt.Fprintf(w, "Tokens:    %d in / %d out\n", e.InputTokens, e.OutputTokens)
		fmt.Fprintf(w, "Latency:   %dms\n", e.LatencyMs)
		fmt.Fprintf(w, "Success:   %s\n", cliui.OKMark(e.Success))
		if e.ErrorMessage != "" {
			fmt.Fprintf(w, "Error:     %s\n", cliui.Red(e.ErrorMessage))
		}

		for _, section := range []struct{ title, body string }{
			{"REQUEST", e.RequestBody},
			{"RESPONSE", e.ResponseBody},
		} {
			fmt.Fprintln(w)
			rule(w, 60)
			fmt.Fprintln(w, cliui.BoldCyan(section.title))
			rule(w, 60)
			if section.body == "" {
				fmt.Fprintln(w, "(not captured)")
			} else {
				fmt.Fprintln(w, section.body)
			}
		}
		return nil
	},
}

// printRecordedRoadmap renders a stored generator response as a skill tree.
func printRecordedRoadmap(w io.Writer, e *store.LLMRequestEventRecord) error {
	if e.ResponseBody == "" {
		return fmt.Errorf("event %d has no recorded response", e.ID)
	}
	var c roadmap.Candidate
	if err := json.Unmarshal([]byte(e.ResponseBody), &c); err != nil {
		return fmt.Errorf("event %d response is not a roadmap: %w", e.ID, err)
	}
	g, _, err := roadmap.Import(c)
	if err != nil {
		return fmt.Errorf("event %d: %w", e.ID, err)
	}
	cliui.PrintTree(w, c.Name, c.Description, g)
	return nil
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage per purpose and estimated cost per model",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := commandContext(cmd)
		repo := s.EventRepo()
		w := cmd.OutOrStdout()

		stats, err := repo.LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(stats) == 0 {
			fmt.Fprintln(w, "No LLM usage recorded yet.")
			return nil
		}

		fmt.Fprintln(w, cliui.BoldCyan("Usage by Purpose"))
		rule(w, 72)
		fmt.Fprintf(w, "%-16s  %6s  %10s  %10s  %10s  %8s\n",
			"Purpose", "Calls", "Input", "Output", "Total", "Avg Ms")
		rule(w, 72)

		var calls, in, out int
		for _, st := range stats {
			fmt.Fprintf(w, "%-16s  %6d  %10d  %10d  %10d  %8d\n",
				st.Purpose, st.Calls, st.InputTokens, st.OutputTokens, st.InputTokens+st.OutputTokens, st.AvgLatencyMs)
			calls += st.Calls
			in += st.InputTokens
			out += st.OutputTokens
		}
		rule(w, 72)
		fmt.Fprintf(w, "%-16s  %6d  %10d  %10d  %10d\n", "TOTAL", calls, in, out, in+out)

		byModel, err := repo.LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}
		if len(byModel) == 0 {
			return nil
		}

		fmt.Fprintln(w)
		fmt.Fprintln(w, cliui.BoldCyan("Estimated Cost (USD)"))
		rule(w, 72)
		fmt.Fprintf(w, "%-32s  %6s  %10s  %10s  %10s\n", "Model", "Calls", "Input", "Output", "Cost")
		rule(w, 72)

		var total float64
		var unpriced []string
		for _, mu := range byModel {
			cost := "?"
			if price := llm.LookupCost(mu.Model); price != nil {
				c := price.Cost(mu.InputTokens, mu.OutputTokens)
				total += c
				cost = formatCost(c)
			} else {
				unpriced = append(unpriced, mu.Model)
			}
			fmt.Fprintf(w, "%-32s  %6d  %10d  %10d  %10s\n",
				truncate(mu.Model, 32), mu.Calls, mu.InputTokens, mu.OutputTokens, cost)
		}
		rule(w, 72)

		label := "TOTAL"
		if len(unpriced) > 0 {
			label = "TOTAL (partial)"
		}
		fmt.Fprintf(w, "%-32s  %6s  %10s  %10s  %10s\n", label, "", "", "", formatCost(total))
		if len(unpriced) > 0 {
			fmt.Fprintf(w, "\nPricing unavailable for: %s\n", strings.Join(unpriced, ", "))
		}
		return nil
	},
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. roadmap-gen)")
	llmListCmd.Flags().Bool("failed", false, "Only show failed requests")
	llmListCmd.Flags().Duration("since", 0, "Only show requests newer than this (e.g. 24h)")
	llmViewCmd.Flags().Bool("tree", false, "Render the recorded response as a skill tree")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
