// Package match computes pairwise volunteer-project compatibility scores
// and the sorted candidate set both assignment policies consume.
package match

import (
	"strconv"
	"strings"

	"github.com/pmi-sydney/pmdos-match/internal/catalog"
	"github.com/pmi-sydney/pmdos-match/internal/profile"
	"github.com/pmi-sydney/pmdos-match/internal/requirement"
)

// Score bonus scales: link quality contributes up to 3 points of max,
// completeness up to 2.
const (
	linkBonusMax         = 3.0
	completenessBonusMax = 2.0
)

// Score returns the 0-100 compatibility score for one volunteer-project
// pair. Pure function: a running (score, max) pair is accumulated and
// normalized at the end.
//
// Skills with required weight 0 contribute to neither side, so a project
// with no extracted requirements is scored almost entirely on the
// volunteer-side terms below.
func Score(p profile.Profile, req requirement.Requirement, cat *catalog.Catalog) float64 {
	var score, max float64

	// Skill alignment against each required skill.
	for _, skill := range cat.Skills {
		weight := req.Skills[skill.Name]
		if weight <= 0 {
			continue
		}
		score += (p.Skills[skill.Name] / 5.0) * float64(weight)
		max += float64(weight)
	}

	// Experience bonus, always in the denominator.
	score += cat.ExperienceBonus(p.Experience)
	max += cat.MaxExperienceBonus()

	// Interest alignment: the two bonuses are independent and additive.
	interests := strings.ToLower(p.Interests)
	if containsAny(interests, cat.Interest.Primary) {
		score += cat.Interest.PrimaryBonus
	}
	if containsAny(interests, cat.Interest.Secondary) {
		score += cat.Interest.SecondaryBonus
	}
	max += cat.MaxInterestBonus()

	// Structural profile bonuses.
	score += float64(p.LinkQuality) / 10.0 * linkBonusMax
	max += linkBonusMax
	score += float64(p.Completeness) / 10.0 * completenessBonusMax
	max += completenessBonusMax

	if max <= 0 {
		return 0
	}
	return score / max * 100
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if term != "" && strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// EmployerKey normalizes an employer name for the diversity constraint.
// Blank employers get a per-volunteer sentinel so two volunteers without an
// employer never collide on "no employer".
func EmployerKey(employer string, volunteerID int) string {
	key := strings.ToLower(strings.TrimSpace(employer))
	if key == "" {
		return sentinelKey(volunteerID)
	}
	return key
}

func sentinelKey(volunteerID int) string {
	// Distinct per volunteer, never a plausible company name.
	return "\x00no-employer\x00" + strconv.Itoa(volunteerID)
}
