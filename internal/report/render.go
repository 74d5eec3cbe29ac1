package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

var csvHeader = []string{
	"Organization", "Initiative", "Priority", "Complexity", "Description",
	"Role", "Volunteer", "Experience", "Employer",
	"Volunteer Skills", "Required Skills",
	"Match Score", "Overall Rating", "Team Size", "Rationale",
}

// WriteCSV writes the full placement report, one row per assigned
// volunteer.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing report header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.Organization, r.Initiative, r.Priority, r.Complexity, r.Description,
			r.Role, r.Volunteer, r.Experience, r.Employer,
			r.VolunteerSkills, r.RequiredSkills,
			strconv.FormatFloat(r.MatchScore, 'f', 2, 64),
			strconv.FormatFloat(r.OverallRating, 'f', 2, 64),
			strconv.Itoa(r.TeamSize),
			r.Rationale,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing report row for %s: %w", r.Volunteer, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTable renders a compact terminal view of the placements followed by
// the run summary. The CSV report carries the full detail; the table keeps
// to what fits a screen.
func WriteTable(w io.Writer, rows []Row, s Summary) error {
	table := tablewriter.NewTable(w)
	table.Header("Organization", "Role", "Volunteer", "Employer", "Score", "Top Skills")
	for _, r := range rows {
		if err := table.Append(
			r.Organization,
			r.Role,
			r.Volunteer,
			r.Employer,
			strconv.FormatFloat(r.MatchScore, 'f', 1, 64),
			r.VolunteerSkills,
		); err != nil {
			return fmt.Errorf("rendering report table: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering report table: %w", err)
	}

	fmt.Fprintf(w, "\n%s policy: %d of %d volunteers assigned across %d teams, average score %.1f\n",
		s.Policy, s.Assigned, s.Volunteers, len(s.Teams), s.AverageScore)
	if len(s.Unassigned) > 0 {
		fmt.Fprintf(w, "unassigned: %s\n", strings.Join(s.Unassigned, ", "))
	}
	return nil
}

// Document is the JSON report shape.
type Document struct {
	Summary Summary `json:"summary"`
	Rows    []Row   `json:"assignments"`
}

// WriteJSON writes the summary and all placement rows as indented JSON.
func WriteJSON(w io.Writer, rows []Row, s Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Document{Summary: s, Rows: rows}); err != nil {
		return fmt.Errorf("encoding report json: %w", err)
	}
	return nil
}
