package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Skill pairs a catalog skill name with the keyword phrases that signal a
// project needs it.
type Skill struct {
	Name     string   `toml:"name"`
	Keywords []string `toml:"keywords"`
}

// PriorityIndicators holds the phrase sets used to label project priority.
// Tiers are checked in order: High first, then Medium, else Low.
type PriorityIndicators struct {
	High   []string `toml:"high"`
	Medium []string `toml:"medium"`
}

// ComplexityIndicators holds per-tier indicator words. The tier with the
// highest match count wins; ties and all-zero default to Medium.
type ComplexityIndicators struct {
	High   []string `toml:"high"`
	Medium []string `toml:"medium"`
	Low    []string `toml:"low"`
}

// ExperienceLevel maps substrings of the free-text experience field to an
// experience bonus. Levels are matched in order; the first hit wins.
type ExperienceLevel struct {
	Contains []string `toml:"contains"`
	Bonus    float64  `toml:"bonus"`
}

// InterestTerms drives the interest-alignment bonus. Primary and secondary
// bonuses are independent and additive.
type InterestTerms struct {
	Primary        []string `toml:"primary"`
	PrimaryBonus   float64  `toml:"primary_bonus"`
	Secondary      []string `toml:"secondary"`
	SecondaryBonus float64  `toml:"secondary_bonus"`
}

// LinkRules describes the profile-link platform for structural URL scoring.
// The linked page is never fetched.
type LinkRules struct {
	PlatformDomain string `toml:"platform_domain"`
	ProfilePath    string `toml:"profile_path"`
	PathMarker     string `toml:"path_marker"`
}

// Catalog is the versioned keyword configuration driving requirement
// extraction and match scoring. It is a first-class input so the keyword
// lists are independently testable and swappable.
type Catalog struct {
	Version    string               `toml:"version"`
	Skills     []Skill              `toml:"skills"`
	CoreSkills []string             `toml:"core_skills"`
	Priority   PriorityIndicators   `toml:"priority"`
	Complexity ComplexityIndicators `toml:"complexity"`
	Experience []ExperienceLevel    `toml:"experience"`
	// FallbackExperienceBonus applies when no level substring matches.
	FallbackExperienceBonus float64       `toml:"fallback_experience_bonus"`
	Interest                InterestTerms `toml:"interest"`
	Link                    LinkRules     `toml:"link"`
}

// SkillNames returns the skill names in catalog order. Iteration over this
// slice, not over maps, is what keeps runs deterministic.
func (c *Catalog) SkillNames() []string {
	names := make([]string, len(c.Skills))
	for i, s := range c.Skills {
		names[i] = s.Name
	}
	return names
}

// ExperienceBonus returns the bonus for a free-text experience field.
func (c *Catalog) ExperienceBonus(experience string) float64 {
	for _, level := range c.Experience {
		for _, sub := range level.Contains {
			if sub != "" && containsFold(experience, sub) {
				return level.Bonus
			}
		}
	}
	return c.FallbackExperienceBonus
}

// MaxExperienceBonus returns the highest configured experience bonus, used
// as the denominator contribution for the experience term.
func (c *Catalog) MaxExperienceBonus() float64 {
	max := c.FallbackExperienceBonus
	for _, level := range c.Experience {
		if level.Bonus > max {
			max = level.Bonus
		}
	}
	return max
}

// MaxInterestBonus returns the ceiling of the interest-alignment bonus.
func (c *Catalog) MaxInterestBonus() float64 {
	return c.Interest.PrimaryBonus + c.Interest.SecondaryBonus
}

func containsFold(text, sub string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(sub))
}

// Validate checks the catalog is usable for matching.
func (c *Catalog) Validate() error {
	var errs []error

	if len(c.Skills) == 0 {
		errs = append(errs, errors.New("catalog has no skills"))
	}

	seen := make(map[string]bool, len(c.Skills))
	for _, s := range c.Skills {
		if s.Name == "" {
			errs = append(errs, errors.New("catalog contains a skill with an empty name"))
			continue
		}
		if seen[s.Name] {
			errs = append(errs, fmt.Errorf("duplicate skill %q", s.Name))
		}
		seen[s.Name] = true
		if len(s.Keywords) == 0 {
			errs = append(errs, fmt.Errorf("skill %q has no keywords", s.Name))
		}
	}

	for _, core := range c.CoreSkills {
		if !seen[core] {
			errs = append(errs, fmt.Errorf("core skill %q is not in the skill list", core))
		}
	}

	if len(c.Experience) == 0 {
		errs = append(errs, errors.New("catalog has no experience levels"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
