package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pmi-sydney/pmdos-match/internal/assign"
	"github.com/pmi-sydney/pmdos-match/internal/catalog"
	"github.com/pmi-sydney/pmdos-match/internal/config"
	"github.com/pmi-sydney/pmdos-match/internal/engine"
	"github.com/pmi-sydney/pmdos-match/internal/logger"
	"github.com/pmi-sydney/pmdos-match/internal/report"
	"github.com/pmi-sydney/pmdos-match/internal/roster"
	"github.com/pmi-sydney/pmdos-match/internal/store"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Match volunteers to projects and print the assignments",
	Long: `Run the matching pipeline over the survey exports.

Roster files come from --volunteers/--projects, the config, or discovery
of the newest matching export in the input directory.

Examples:
  pmdos-match run                          # flexible policy, terminal table
  pmdos-match run --policy=fixed           # teams of exactly two
  pmdos-match run --format=csv > teams.csv # full report for the organisers
  pmdos-match run --save                   # also record the run history`,
	RunE: runRun,
}

var (
	runPolicy     string
	runVolunteers string
	runProjects   string
	runFormat     string
	runSave       bool
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runPolicy, "policy", "", "Assignment policy (fixed, flexible); default from config")
	runCmd.Flags().StringVar(&runVolunteers, "volunteers", "", "Volunteer registration CSV (default: discovered)")
	runCmd.Flags().StringVar(&runProjects, "projects", "", "Charity project CSV (default: discovered)")
	runCmd.Flags().StringVar(&runFormat, "format", "table", "Output format (table, csv, json)")
	runCmd.Flags().BoolVar(&runSave, "save", false, "Store the run in the history database")
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Logging.JSON, cfg.Logging.Debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer log.Sync()

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	volunteerPath, projectPath, err := resolveRosterPaths(cfg)
	if err != nil {
		return err
	}
	log.Info("loading rosters",
		zap.String("volunteers", volunteerPath),
		zap.String("projects", projectPath))

	volunteers, err := roster.LoadVolunteers(volunteerPath, cat)
	if err != nil {
		return err
	}
	projects, err := roster.LoadProjects(projectPath)
	if err != nil {
		return err
	}

	policy := runPolicy
	if policy == "" {
		policy = cfg.Matching.Policy
	}

	out, err := engine.Run(engine.Input{
		Volunteers: volunteers,
		Projects:   projects,
	}, assign.Policy(policy), cat, cfg.Matching.Options(), log)
	if err != nil {
		return err
	}

	rows := report.Rows(out.Result, cat)
	summary := report.Summarize(out.Result)

	switch runFormat {
	case "table":
		err = report.WriteTable(os.Stdout, rows, summary)
	case "csv":
		err = report.WriteCSV(os.Stdout, rows)
	case "json":
		err = report.WriteJSON(os.Stdout, rows, summary)
	default:
		return fmt.Errorf("unknown output format %q (want table, csv or json)", runFormat)
	}
	if err != nil {
		return err
	}

	if runSave {
		if err := cfg.EnsureDirectories(); err != nil {
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

		id, err := db.SaveRun(ctx, summary, rows)
		if err != nil {
			return fmt.Errorf("failed to save run: %w", err)
		}
		log.Info("run saved", zap.String("run_id", id))
	}

	return nil
}

// loadCatalog returns the configured catalog override or the built-in one.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.Path == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(cfg.Catalog.Path)
}

// resolveRosterPaths applies flag, config and discovery precedence for
// both roster files.
func resolveRosterPaths(cfg *config.Config) (string, string, error) {
	volunteerPath := runVolunteers
	if volunteerPath == "" {
		volunteerPath = cfg.Input.VolunteerFile
	}
	if volunteerPath == "" {
		var err error
		volunteerPath, err = roster.DiscoverVolunteerFile(cfg.Input.Dir)
		if err != nil {
			return "", "", err
		}
	}

	projectPath := runProjects
	if projectPath == "" {
		projectPath = cfg.Input.ProjectFile
	}
	if projectPath == "" {
		var err error
		projectPath, err = roster.DiscoverProjectFile(cfg.Input.Dir)
		if err != nil {
			return "", "", err
		}
	}

	return volunteerPath, projectPath, nil
}
