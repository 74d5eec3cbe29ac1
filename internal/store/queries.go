package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pmi-sydney/pmdos-match/internal/report"
)

// SaveRun stores a run summary and its placement rows in one transaction,
// returning the generated run id.
func (db *DB) SaveRun(ctx context.Context, s report.Summary, rows []report.Row) (string, error) {
	id := uuid.New().String()
	now := time.Now()

	err := db.Transaction(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO runs (
				id, policy, volunteers, projects, assigned, unassigned,
				average_score, created_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`,
			id, s.Policy, s.Volunteers, s.Projects, s.Assigned,
			len(s.Unassigned), s.AverageScore, now,
		)
		if err != nil {
			return fmt.Errorf("inserting run: %w", err)
		}

		for _, r := range rows {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO assignments (
					run_id, organization, role, volunteer, employer,
					match_score, rationale
				) VALUES (?, ?, ?, ?, ?, ?, ?)
			`,
				id, r.Organization, r.Role, r.Volunteer, r.Employer,
				r.MatchScore, r.Rationale,
			)
			if err != nil {
				return fmt.Errorf("inserting assignment for %s: %w", r.Volunteer, err)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, policy, volunteers, projects, assigned, unassigned,
		       average_score, created_at
		FROM runs
		ORDER BY created_at DESC, id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(
			&r.ID, &r.Policy, &r.Volunteers, &r.Projects, &r.Assigned,
			&r.Unassigned, &r.AverageScore, &r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRunAssignments returns the stored placements of one run in insert
// order.
func (db *DB) GetRunAssignments(ctx context.Context, runID string) ([]Assignment, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, run_id, organization, role, volunteer, employer,
		       match_score, rationale
		FROM assignments
		WHERE run_id = ?
		ORDER BY id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("listing assignments for run %s: %w", runID, err)
	}
	defer rows.Close()

	var assignments []Assignment
	for rows.Next() {
		var a Assignment
		var employer, rationale sql.NullString
		if err := rows.Scan(
			&a.ID, &a.RunID, &a.Organization, &a.Role, &a.Volunteer,
			&employer, &a.MatchScore, &rationale,
		); err != nil {
			return nil, fmt.Errorf("scanning assignment: %w", err)
		}
		a.Employer = employer.String
		a.Rationale = rationale.String
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}
