// Package requirement infers a charity project's skill needs from its
// free-text intake answers. There are no error cases: a project with no
// usable text degrades to zero skill weights and the default labels, and
// gets matched almost entirely on volunteer-side factors.
package requirement

import (
	"strings"

	"github.com/pmi-sydney/pmdos-match/internal/catalog"
	"github.com/pmi-sydney/pmdos-match/internal/roster"
)

// Level is a High/Medium/Low label for priority and complexity.
type Level string

const (
	LevelHigh   Level = "High"
	LevelMedium Level = "Medium"
	LevelLow    Level = "Low"
)

// Weighting constants for keyword extraction.
const (
	// keywordWeight is added per keyword occurrence in the combined text.
	keywordWeight = 2
	// initiativeBonus applies once per skill whose keywords appear in the
	// initiative name itself.
	initiativeBonus = 5
	// maxSkillWeight caps each skill's extracted weight.
	maxSkillWeight = 10
)

// Requirement is an immutable scored project.
type Requirement struct {
	ID           int
	Organization string
	Initiative   string
	Description  string
	Outcomes     string
	Benefits     string
	Expectations string

	// Skills maps catalog skill name to the inferred 0-10 requirement
	// weight. Iterate via the catalog's ordered skill list.
	Skills map[string]int

	Priority   Level
	Complexity Level
}

// Extract scores one project row against the catalog.
func Extract(row roster.ProjectRow, cat *catalog.Catalog) Requirement {
	req := Requirement{
		ID:           row.ID,
		Organization: row.Organization,
		Initiative:   row.Initiative,
		Description:  row.Description,
		Outcomes:     row.Outcomes,
		Benefits:     row.Benefits,
		Expectations: row.Expectations,
		Skills:       make(map[string]int, len(cat.Skills)),
	}

	searchText := strings.ToLower(strings.Join([]string{
		row.Organization,
		row.Initiative,
		row.Description,
		row.Outcomes,
		row.Benefits,
		row.Expectations,
	}, " "))
	initiative := strings.ToLower(row.Initiative)

	for _, skill := range cat.Skills {
		weight := 0
		inInitiative := false
		for _, keyword := range skill.Keywords {
			weight += strings.Count(searchText, keyword) * keywordWeight
			if initiative != "" && strings.Contains(initiative, keyword) {
				inInitiative = true
			}
		}
		if inInitiative {
			weight += initiativeBonus
		}
		if weight > maxSkillWeight {
			weight = maxSkillWeight
		}
		req.Skills[skill.Name] = weight
	}

	labelText := strings.ToLower(row.Description + " " + row.Outcomes)
	req.Priority = priorityLabel(labelText, cat.Priority)
	req.Complexity = complexityLabel(labelText, cat.Complexity)

	return req
}

// ExtractAll scores every row, preserving input order.
func ExtractAll(rows []roster.ProjectRow, cat *catalog.Catalog) []Requirement {
	reqs := make([]Requirement, len(rows))
	for i, row := range rows {
		reqs[i] = Extract(row, cat)
	}
	return reqs
}

// SignificantSkills counts requirement weights above the threshold, used
// by the flexible capacity policy.
func (r Requirement) SignificantSkills(cat *catalog.Catalog, threshold int) int {
	count := 0
	for _, skill := range cat.Skills {
		if r.Skills[skill.Name] > threshold {
			count++
		}
	}
	return count
}

// TopSkills returns up to n (skill, weight) pairs with weight > 0, sorted
// by weight descending, catalog order breaking ties.
func (r Requirement) TopSkills(cat *catalog.Catalog, n int) []WeightedSkill {
	weighted := make([]WeightedSkill, 0, len(cat.Skills))
	for _, skill := range cat.Skills {
		if w := r.Skills[skill.Name]; w > 0 {
			weighted = append(weighted, WeightedSkill{Name: skill.Name, Weight: w})
		}
	}
	for i := 1; i < len(weighted); i++ {
		for j := i; j > 0 && weighted[j].Weight > weighted[j-1].Weight; j-- {
			weighted[j], weighted[j-1] = weighted[j-1], weighted[j]
		}
	}
	if len(weighted) > n {
		weighted = weighted[:n]
	}
	return weighted
}

// WeightedSkill is a (skill, required weight) pair for reporting.
type WeightedSkill struct {
	Name   string
	Weight int
}

// priorityLabel scans indicator tiers in order; the first tier with any
// match wins.
func priorityLabel(text string, ind catalog.PriorityIndicators) Level {
	for _, phrase := range ind.High {
		if strings.Contains(text, phrase) {
			return LevelHigh
		}
	}
	for _, phrase := range ind.Medium {
		if strings.Contains(text, phrase) {
			return LevelMedium
		}
	}
	return LevelLow
}

// complexityLabel counts indicator matches per tier and returns the tier
// with the highest count. Ties and all-zero default to Medium.
func complexityLabel(text string, ind catalog.ComplexityIndicators) Level {
	count := func(words []string) int {
		n := 0
		for _, w := range words {
			if strings.Contains(text, w) {
				n++
			}
		}
		return n
	}

	high := count(ind.High)
	medium := count(ind.Medium)
	low := count(ind.Low)

	switch {
	case high > medium && high > low:
		return LevelHigh
	case low > high && low > medium:
		return LevelLow
	default:
		return LevelMedium
	}
}
