package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pmi-sydney/pmdos-match/internal/catalog"
)

// Column aliases accepted for each logical field. Headers from the
// registration forms are long survey questions, so lookup goes through
// normalizeHeader and an alias list rather than exact strings.
var volunteerColumns = map[string][]string{
	"first_name": {"first name"},
	"last_name":  {"last name"},
	"email":      {"email address", "email"},
	"employer":   {"company", "employer"},
	"job_title":  {"current / latest job title", "job title"},
	"member_id":  {"pmi id number", "member id"},
	"link":       {"linkedin profile url", "linkedin url", "profile link"},
	"experience": {"year(s) as a project professional", "years as a project professional", "experience"},
	"interests":  {"areas of interest", "interests"},
}

var projectColumns = map[string][]string{
	"organization": {"name of the organisation", "name of the organization", "organisation", "organization"},
	"initiative":   {"name of the initiative", "initiative"},
	"description":  {"simple description of the initiative or the project", "description"},
	"outcomes":     {"what are the key outcomes expected from this initiative or project", "outcomes"},
	"benefits":     {"how will this initiative benefit your organisation", "benefits"},
	"expectations": {"what outcome(s) do you expect to achieve by participating in this pmdos event", "expectations"},
}

// LoadVolunteers reads the volunteer registration CSV. The first and last
// name columns are required; every other cell may be blank.
func LoadVolunteers(path string, cat *catalog.Catalog) ([]VolunteerRow, error) {
	header, records, err := readTable(path, "volunteer")
	if err != nil {
		return nil, err
	}

	idx := indexHeader(header)

	var missing []string
	for _, field := range []string{"first_name", "last_name"} {
		if _, ok := findColumn(idx, volunteerColumns[field]); !ok {
			missing = append(missing, volunteerColumns[field][0])
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("volunteer table %s is missing required columns: %s",
			path, strings.Join(missing, ", "))
	}

	cell := func(record []string, field string) string {
		col, ok := findColumn(idx, volunteerColumns[field])
		if !ok || col >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[col])
	}

	volunteers := make([]VolunteerRow, 0, len(records))
	for i, record := range records {
		row := VolunteerRow{
			ID:          i,
			FirstName:   cell(record, "first_name"),
			LastName:    cell(record, "last_name"),
			Email:       cell(record, "email"),
			Employer:    cell(record, "employer"),
			JobTitle:    cell(record, "job_title"),
			MemberID:    cell(record, "member_id"),
			ProfileLink: cell(record, "link"),
			Experience:  cell(record, "experience"),
			Interests:   cell(record, "interests"),
			Ratings:     make(map[string]string, len(cat.Skills)),
		}

		for _, skill := range cat.Skills {
			if col, ok := idx[normalizeHeader(skill.Name)]; ok && col < len(record) {
				row.Ratings[skill.Name] = strings.TrimSpace(record[col])
			}
		}

		volunteers = append(volunteers, row)
	}

	return volunteers, nil
}

// LoadProjects reads the charity project CSV. The organization column is
// required; the free-text fields may be blank.
func LoadProjects(path string) ([]ProjectRow, error) {
	header, records, err := readTable(path, "project")
	if err != nil {
		return nil, err
	}

	idx := indexHeader(header)

	if _, ok := findColumn(idx, projectColumns["organization"]); !ok {
		return nil, fmt.Errorf("project table %s is missing required column: %s",
			path, projectColumns["organization"][0])
	}

	cell := func(record []string, field string) string {
		col, ok := findColumn(idx, projectColumns[field])
		if !ok || col >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[col])
	}

	projects := make([]ProjectRow, 0, len(records))
	for i, record := range records {
		projects = append(projects, ProjectRow{
			ID:           i,
			Organization: cell(record, "organization"),
			Initiative:   cell(record, "initiative"),
			Description:  cell(record, "description"),
			Outcomes:     cell(record, "outcomes"),
			Benefits:     cell(record, "benefits"),
			Expectations: cell(record, "expectations"),
		})
	}

	return projects, nil
}

// readTable opens a CSV and returns its header plus data records. Ragged
// rows are tolerated; an absent header or zero data rows is fatal.
func readTable(path, kind string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s table: %w", kind, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("%s table %s is empty", kind, path)
		}
		return nil, nil, fmt.Errorf("failed to read %s table header: %w", kind, err)
	}

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s table %s: %w", kind, path, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%s table %s has no data rows", kind, path)
	}

	return header, records, nil
}

// indexHeader maps normalized header names to column positions. The first
// occurrence wins when a header repeats.
func indexHeader(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		key := normalizeHeader(h)
		if _, exists := idx[key]; !exists {
			idx[key] = i
		}
	}
	return idx
}

func findColumn(idx map[string]int, aliases []string) (int, bool) {
	for _, alias := range aliases {
		if col, ok := idx[alias]; ok {
			return col, true
		}
	}
	return 0, false
}

// normalizeHeader lower-cases a header, collapses internal whitespace and
// strips trailing question/punctuation marks from survey-style questions.
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.Join(strings.Fields(h), " ")
	return strings.TrimRight(h, "?.: ")
}
