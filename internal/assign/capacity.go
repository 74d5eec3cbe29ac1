package assign

import (
	"github.com/pmi-sydney/pmdos-match/internal/catalog"
	"github.com/pmi-sydney/pmdos-match/internal/requirement"
)

// minTeamSize is the floor for every flexible team: never leave a project
// single-volunteer in case of event-day no-shows.
const minTeamSize = 2

// significantWeight is the requirement weight above which a skill counts
// toward the skill-diversity capacity bonus.
const significantWeight = 2

// capacity computes how many volunteers a project can effectively use
// under the flexible policy: base 2, +2 for High complexity (+1 Medium),
// +1 for High priority, +1 per full group of three significant skills
// (capped at one increment), the total capped at maxCap and floored at the
// minimum team size.
func capacity(req requirement.Requirement, cat *catalog.Catalog, maxCap int) (min, max int) {
	total := minTeamSize

	switch req.Complexity {
	case requirement.LevelHigh:
		total += 2
	case requirement.LevelMedium:
		total++
	}

	if req.Priority == requirement.LevelHigh {
		total++
	}

	skillBonus := req.SignificantSkills(cat, significantWeight) / 3
	if skillBonus > 1 {
		skillBonus = 1
	}
	total += skillBonus

	if total > maxCap {
		total = maxCap
	}
	if total < minTeamSize {
		total = minTeamSize
	}
	return minTeamSize, total
}
