package assign

import (
	"fmt"
	"strings"

	"github.com/pmi-sydney/pmdos-match/internal/catalog"
	"github.com/pmi-sydney/pmdos-match/internal/match"
)

// Rationale thresholds: a self-rating of 4+ counts as a strong skill, link
// quality 7+ and completeness 8+ are worth calling out.
const (
	strongSkillRating      = 4
	notableLinkQuality     = 7
	notableCompleteness    = 8
	maxRationaleAlignments = 2
)

// buildRationale explains one placement in plain language for the
// selection report.
func buildRationale(c match.Candidate, role int, cat *catalog.Catalog) string {
	var b strings.Builder
	fmt.Fprintf(&b, "PMP %d (%s) selected because: ", role, c.Volunteer.Name)

	var alignments []string
	for _, skill := range cat.Skills {
		required := c.Project.Skills[skill.Name]
		if required <= 0 {
			continue
		}
		rating := c.Volunteer.Skills[skill.Name]
		if rating >= strongSkillRating {
			alignments = append(alignments,
				fmt.Sprintf("%s (rated %g/5, required %d)", skill.Name, rating, required))
		}
		if len(alignments) == maxRationaleAlignments {
			break
		}
	}
	if len(alignments) > 0 {
		fmt.Fprintf(&b, "Strong skills in %s. ", strings.Join(alignments, "; "))
	}

	if cat.ExperienceBonus(c.Volunteer.Experience) == cat.MaxExperienceBonus() && c.Volunteer.Experience != "" {
		b.WriteString("Extensive experience (8+ years). ")
	}

	if strings.Contains(strings.ToLower(c.Volunteer.Interests), "non-profit") {
		b.WriteString("Interest in non-profit work. ")
	}

	if c.Volunteer.LinkQuality >= notableLinkQuality {
		b.WriteString("High-quality professional profile link. ")
	}
	if c.Volunteer.Completeness >= notableCompleteness {
		b.WriteString("Complete professional profile. ")
	}

	return strings.TrimSpace(b.String())
}
