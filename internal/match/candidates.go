package match

import (
	"sort"

	"github.com/pmi-sydney/pmdos-match/internal/catalog"
	"github.com/pmi-sydney/pmdos-match/internal/profile"
	"github.com/pmi-sydney/pmdos-match/internal/requirement"
)

// Candidate is one scored volunteer-project pair. Every pair is scored
// regardless of how low the score is: the assignment policies need a total
// order over all pairs.
type Candidate struct {
	Volunteer   *profile.Profile
	Project     *requirement.Requirement
	Score       float64
	EmployerKey string
}

// BuildCandidates scores the full |volunteers| x |projects| matrix and
// returns it sorted by score descending. Generation order is
// volunteer-major then project-minor, and the sort is stable, so equal
// scores keep that order.
func BuildCandidates(profiles []profile.Profile, reqs []requirement.Requirement, cat *catalog.Catalog) []Candidate {
	candidates := make([]Candidate, 0, len(profiles)*len(reqs))
	for i := range profiles {
		p := &profiles[i]
		key := EmployerKey(p.Employer, p.ID)
		for j := range reqs {
			candidates = append(candidates, Candidate{
				Volunteer:   p,
				Project:     &reqs[j],
				Score:       Score(*p, reqs[j], cat),
				EmployerKey: key,
			})
		}
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].Score > candidates[b].Score
	})

	return candidates
}
