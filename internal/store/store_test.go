package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pmi-sydney/pmdos-match/internal/report"
)

func setupTestDB(t *testing.T) (*DB, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "pmdos-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	dbPath := filepath.Join(tmpDir, "test.db")
	db, err := Open(dbPath)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("failed to open database: %v", err)
	}

	cleanup := func() {
		db.Close()
		os.RemoveAll(tmpDir)
	}

	return db, cleanup
}

func TestOpen(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	// Verify tables exist
	for _, table := range []string{"runs", "assignments"} {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		if err != nil {
			t.Fatalf("failed to query tables: %v", err)
		}
		if count != 1 {
			t.Errorf("expected %s table to exist", table)
		}
	}
}

func TestHealth(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := db.Health(ctx); err != nil {
		t.Errorf("Health on an open database: %v", err)
	}

	db.Close()
	if err := db.Health(ctx); err == nil {
		t.Error("expected Health to fail on a closed database")
	}
}

func TestSaveAndListRuns(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	summary := report.Summary{
		Policy:       "flexible",
		Volunteers:   3,
		Projects:     2,
		Assigned:     3,
		AverageScore: 72.5,
	}
	rows := []report.Row{
		{Organization: "Hope Shelter", Role: "PMP 1", Volunteer: "Alice Wong", Employer: "Acme", MatchScore: 83.3, Rationale: "strong match"},
		{Organization: "Hope Shelter", Role: "PMP 2", Volunteer: "Bob Reed", MatchScore: 61.7},
		{Organization: "Food Bank", Role: "PMP 1", Volunteer: "Cara Singh", Employer: "Beta", MatchScore: 72.5},
	}

	id, err := db.SaveRun(ctx, summary, rows)
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if id == "" {
		t.Fatal("expected a generated run id")
	}

	runs, err := db.ListRuns(ctx, 10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	run := runs[0]
	if run.ID != id || run.Policy != "flexible" || run.Volunteers != 3 || run.Assigned != 3 {
		t.Errorf("stored run = %+v", run)
	}
	if run.AverageScore != 72.5 {
		t.Errorf("AverageScore = %f, want 72.5", run.AverageScore)
	}
	if run.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}

	assignments, err := db.GetRunAssignments(ctx, id)
	if err != nil {
		t.Fatalf("GetRunAssignments: %v", err)
	}
	if len(assignments) != 3 {
		t.Fatalf("got %d assignments, want 3", len(assignments))
	}
	if assignments[0].Volunteer != "Alice Wong" || assignments[0].Role != "PMP 1" {
		t.Errorf("first assignment = %+v", assignments[0])
	}
	if assignments[1].Employer != "" {
		t.Errorf("expected empty employer, got %q", assignments[1].Employer)
	}
}

func TestListRunsLimit(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := db.SaveRun(ctx, report.Summary{Policy: "fixed"}, nil); err != nil {
			t.Fatalf("SaveRun %d: %v", i, err)
		}
	}

	runs, err := db.ListRuns(ctx, 3)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("got %d runs, want 3", len(runs))
	}
}
