package report

import (
	"github.com/pmi-sydney/pmdos-match/internal/assign"
)

// TeamSize is one project's headcount against its capacity.
type TeamSize struct {
	Organization string `json:"organization"`
	Members      int    `json:"members"`
	MaxCapacity  int    `json:"max_capacity"`
}

// Summary aggregates one run for the report header and the run history.
type Summary struct {
	Policy       string     `json:"policy"`
	Volunteers   int        `json:"volunteers"`
	Projects     int        `json:"projects"`
	Assigned     int        `json:"assigned"`
	Unassigned   []string   `json:"unassigned"`
	AverageScore float64    `json:"average_score"`
	Teams        []TeamSize `json:"teams"`
}

// Summarize reduces a result to run-level numbers. Unassigned volunteers
// are listed by name in input order.
func Summarize(res assign.Result) Summary {
	s := Summary{
		Policy:       string(res.Policy),
		Projects:     len(res.Teams),
		Assigned:     res.AssignedCount(),
		AverageScore: res.AverageScore(),
	}
	s.Volunteers = s.Assigned + len(res.Unassigned)
	for _, v := range res.Unassigned {
		s.Unassigned = append(s.Unassigned, v.Name)
	}
	for _, team := range res.Teams {
		s.Teams = append(s.Teams, TeamSize{
			Organization: team.Project.Organization,
			Members:      len(team.Members),
			MaxCapacity:  team.MaxCapacity,
		})
	}
	return s
}
