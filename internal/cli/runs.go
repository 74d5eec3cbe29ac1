package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/pmi-sydney/pmdos-match/internal/config"
	"github.com/pmi-sydney/pmdos-match/internal/store"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List stored matching runs",
	Long: `List the recorded matching runs, newest first.

Examples:
  pmdos-match runs
  pmdos-match runs --limit=5
  pmdos-match runs --json`,
	RunE: runRuns,
}

var (
	runsLimit int
	runsJSON  bool
)

func init() {
	rootCmd.AddCommand(runsCmd)

	runsCmd.Flags().IntVar(&runsLimit, "limit", 20, "Maximum number of runs to show")
	runsCmd.Flags().BoolVar(&runsJSON, "json", false, "Output as JSON")
}

func runRuns(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	db, err := store.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	if err := db.Health(ctx); err != nil {
		return fmt.Errorf("history database unavailable: %w", err)
	}

	runs, err := db.ListRuns(ctx, runsLimit)
	if err != nil {
		return err
	}

	if runsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet. Use 'pmdos-match run --save' to store one.")
		return nil
	}

	table := tablewriter.NewTable(os.Stdout)
	table.Header("ID", "Created", "Policy", "Volunteers", "Assigned", "Unassigned", "Avg Score")
	for _, r := range runs {
		if err := table.Append(
			r.ID,
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Policy,
			strconv.Itoa(r.Volunteers),
			strconv.Itoa(r.Assigned),
			strconv.Itoa(r.Unassigned),
			strconv.FormatFloat(r.AverageScore, 'f', 1, 64),
		); err != nil {
			return fmt.Errorf("rendering runs table: %w", err)
		}
	}
	return table.Render()
}
