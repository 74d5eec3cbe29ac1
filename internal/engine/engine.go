// Package engine runs the full matching pipeline: roster rows in, scored
// and assigned teams out. It is pure apart from logging, so repeated runs
// over the same inputs produce identical results.
package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/pmi-sydney/pmdos-match/internal/assign"
	"github.com/pmi-sydney/pmdos-match/internal/catalog"
	"github.com/pmi-sydney/pmdos-match/internal/profile"
	"github.com/pmi-sydney/pmdos-match/internal/requirement"
	"github.com/pmi-sydney/pmdos-match/internal/roster"
)

// Input is one event's parsed survey data.
type Input struct {
	Volunteers []roster.VolunteerRow
	Projects   []roster.ProjectRow
}

// Outcome carries the intermediate artifacts alongside the assignment so
// reports can show both sides of every match.
type Outcome struct {
	Profiles     []profile.Profile
	Requirements []requirement.Requirement
	Result       assign.Result
}

// Run scores every volunteer against every project and assigns teams under
// the requested policy.
func Run(in Input, policy assign.Policy, cat *catalog.Catalog, opts assign.Options, log *zap.Logger) (Outcome, error) {
	if log == nil {
		log = zap.NewNop()
	}

	profiles := profile.BuildAll(in.Volunteers, cat)
	reqs := requirement.ExtractAll(in.Projects, cat)
	for _, r := range reqs {
		if len(r.TopSkills(cat, 1)) == 0 {
			log.Warn("no skill signal extracted from project description",
				zap.String("organization", r.Organization),
				zap.String("initiative", r.Initiative))
		}
	}
	log.Info("pipeline inputs prepared",
		zap.Int("volunteers", len(profiles)),
		zap.Int("projects", len(reqs)),
		zap.String("policy", string(policy)))

	var result assign.Result
	switch policy {
	case assign.PolicyFixed:
		result = assign.Fixed(profiles, reqs, cat, opts)
	case assign.PolicyFlexible:
		result = assign.Flexible(profiles, reqs, cat, opts)
	default:
		return Outcome{}, fmt.Errorf("unknown assignment policy %q", policy)
	}

	for _, v := range result.Unassigned {
		log.Warn("volunteer left unassigned", zap.String("volunteer", v.Name))
	}
	log.Info("assignment complete",
		zap.Int("assigned", result.AssignedCount()),
		zap.Int("unassigned", len(result.Unassigned)),
		zap.Float64("average_score", result.AverageScore()))

	return Outcome{
		Profiles:     profiles,
		Requirements: reqs,
		Result:       result,
	}, nil
}
