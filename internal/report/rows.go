// Package report flattens an assignment result into the event-day
// deliverables: per-placement rows, a run summary, and CSV, terminal-table
// and JSON renderings.
package report

import (
	"fmt"
	"strings"

	"github.com/pmi-sydney/pmdos-match/internal/assign"
	"github.com/pmi-sydney/pmdos-match/internal/catalog"
)

// descriptionLimit is where long project descriptions are cut in reports.
const descriptionLimit = 100

// topSkillCount is how many skills each side of a match shows.
const topSkillCount = 3

// Row is one volunteer placement, ready for rendering.
type Row struct {
	Organization    string  `json:"organization"`
	Initiative      string  `json:"initiative"`
	Priority        string  `json:"priority"`
	Complexity      string  `json:"complexity"`
	Description     string  `json:"description"`
	Role            string  `json:"role"`
	Volunteer       string  `json:"volunteer"`
	Experience      string  `json:"experience"`
	Employer        string  `json:"employer"`
	VolunteerSkills string  `json:"volunteer_skills"`
	RequiredSkills  string  `json:"required_skills"`
	MatchScore      float64 `json:"match_score"`
	OverallRating   float64 `json:"overall_rating"`
	TeamSize        int     `json:"team_size"`
	Rationale       string  `json:"rationale"`
}

// Rows flattens every placement into report rows, teams in project input
// order, members in assignment order. The required-skills column only
// appears for fixed-mode results; the flexible report carries team size
// instead.
func Rows(res assign.Result, cat *catalog.Catalog) []Row {
	var rows []Row
	for _, team := range res.Teams {
		req := team.Project
		required := ""
		if res.Policy == assign.PolicyFixed {
			required = requiredSkills(team, cat)
		}
		for i, m := range team.Members {
			rows = append(rows, Row{
				Organization:    req.Organization,
				Initiative:      req.Initiative,
				Priority:        string(req.Priority),
				Complexity:      string(req.Complexity),
				Description:     truncate(req.Description, descriptionLimit),
				Role:            fmt.Sprintf("PMP %d", i+1),
				Volunteer:       m.Volunteer.Name,
				Experience:      m.Volunteer.Experience,
				Employer:        m.Volunteer.Employer,
				VolunteerSkills: volunteerSkills(m, cat),
				RequiredSkills:  required,
				MatchScore:      m.Score,
				OverallRating:   m.Volunteer.Overall,
				TeamSize:        len(team.Members),
				Rationale:       m.Rationale,
			})
		}
	}
	return rows
}

func volunteerSkills(m assign.Member, cat *catalog.Catalog) string {
	top := m.Volunteer.TopSkills(cat, topSkillCount)
	parts := make([]string, len(top))
	for i, s := range top {
		parts[i] = fmt.Sprintf("%s (%g/5)", s.Name, s.Rating)
	}
	return strings.Join(parts, "; ")
}

func requiredSkills(team assign.Team, cat *catalog.Catalog) string {
	top := team.Project.TopSkills(cat, topSkillCount)
	parts := make([]string, len(top))
	for i, s := range top {
		parts[i] = fmt.Sprintf("%s (%d)", s.Name, s.Weight)
	}
	return strings.Join(parts, "; ")
}

// truncate cuts s at limit runes and marks the cut with an ellipsis.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
