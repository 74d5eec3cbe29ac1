// Package profile turns a raw volunteer registration row into an immutable
// scored profile: the skill vector, experience and interest text, and the
// structural link-quality and completeness scores used by the match scorer.
package profile

import (
	"strconv"
	"strings"

	"github.com/pmi-sydney/pmdos-match/internal/catalog"
	"github.com/pmi-sydney/pmdos-match/internal/roster"
)

// Profile is a volunteer ready for matching. Built once per input row and
// never mutated afterwards.
type Profile struct {
	ID          int
	Name        string
	Email       string
	Employer    string
	JobTitle    string
	MemberID    string
	ProfileLink string
	Experience  string
	Interests   string

	// Skills maps catalog skill name to the 0-5 self-rating. Unrated or
	// unparseable cells are 0; iteration must go through the catalog's
	// ordered skill list, never over this map.
	Skills map[string]float64

	LinkQuality  int
	Completeness int
	Overall      float64
}

// Build scores one volunteer row against the catalog. Malformed cells are
// coerced to safe defaults; Build never fails.
func Build(row roster.VolunteerRow, cat *catalog.Catalog) Profile {
	p := Profile{
		ID:          row.ID,
		Name:        row.Name(),
		Email:       row.Email,
		Employer:    row.Employer,
		JobTitle:    row.JobTitle,
		MemberID:    row.MemberID,
		ProfileLink: row.ProfileLink,
		Experience:  row.Experience,
		Interests:   row.Interests,
		Skills:      make(map[string]float64, len(cat.Skills)),
	}

	var skillSum float64
	for _, skill := range cat.Skills {
		rating := parseRating(row.Ratings[skill.Name])
		p.Skills[skill.Name] = rating
		skillSum += rating
	}

	p.LinkQuality = LinkQuality(row.ProfileLink, cat.Link)
	p.Completeness = Completeness(row, cat)

	// Skills dominate the overall rating; link quality and completeness
	// add at most ~1.5 combined. Display-only, never fed into match scores
	// directly.
	base := skillSum / float64(len(cat.Skills))
	p.Overall = base + float64(p.LinkQuality)*0.1 + float64(p.Completeness)*0.05

	return p
}

// BuildAll scores every row, preserving input order.
func BuildAll(rows []roster.VolunteerRow, cat *catalog.Catalog) []Profile {
	profiles := make([]Profile, len(rows))
	for i, row := range rows {
		profiles[i] = Build(row, cat)
	}
	return profiles
}

// TopSkills returns up to n (skill, rating) pairs sorted by rating
// descending, catalog order breaking ties.
func (p Profile) TopSkills(cat *catalog.Catalog, n int) []RatedSkill {
	rated := make([]RatedSkill, 0, len(cat.Skills))
	for _, skill := range cat.Skills {
		rated = append(rated, RatedSkill{Name: skill.Name, Rating: p.Skills[skill.Name]})
	}
	sortRatedStable(rated)
	if len(rated) > n {
		rated = rated[:n]
	}
	return rated
}

// RatedSkill is a (skill, rating) pair for reporting.
type RatedSkill struct {
	Name   string
	Rating float64
}

func sortRatedStable(rated []RatedSkill) {
	// Insertion sort keeps the catalog order for equal ratings.
	for i := 1; i < len(rated); i++ {
		for j := i; j > 0 && rated[j].Rating > rated[j-1].Rating; j-- {
			rated[j], rated[j-1] = rated[j-1], rated[j]
		}
	}
}

func parseRating(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	rating, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return rating
}

// LinkQuality scores a profile URL 0-10 from its structure alone. The
// linked page is never fetched.
func LinkQuality(link string, rules catalog.LinkRules) int {
	url := strings.ToLower(strings.TrimSpace(link))
	if url == "" {
		return 0
	}

	score := 0
	if rules.PlatformDomain != "" && strings.Contains(url, rules.PlatformDomain) {
		score += 3
	}
	if rules.ProfilePath != "" && strings.Contains(url, rules.ProfilePath) {
		score += 4
	}
	if strings.HasPrefix(url, "https://") {
		score += 2
	}

	// A customized handle scores over a default numeric profile ID.
	if rules.PathMarker != "" && strings.Contains(url, rules.PathMarker) {
		parts := strings.Split(url, rules.PathMarker)
		handle := strings.TrimRight(parts[len(parts)-1], "/")
		if handle != "" && !isDigits(handle) {
			score++
		}
	}

	if score > 10 {
		score = 10
	}
	return score
}

// Completeness counts populated expected fields, 0-10: nine identity and
// narrative fields plus one point when at least half of the core skill
// subset is rated.
func Completeness(row roster.VolunteerRow, cat *catalog.Catalog) int {
	score := 0
	for _, field := range []string{
		row.FirstName,
		row.LastName,
		row.Email,
		row.JobTitle,
		row.Employer,
		row.MemberID,
		row.Experience,
		row.Interests,
		row.ProfileLink,
	} {
		if strings.TrimSpace(field) != "" {
			score++
		}
	}

	if len(cat.CoreSkills) > 0 {
		filled := 0
		for _, skill := range cat.CoreSkills {
			if strings.TrimSpace(row.Ratings[skill]) != "" {
				filled++
			}
		}
		if filled >= len(cat.CoreSkills)/2 {
			score++
		}
	}

	return score
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
