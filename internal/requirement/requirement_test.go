package requirement

import (
	"strings"
	"testing"

	"github.com/pmi-sydney/pmdos-match/internal/catalog"
	"github.com/pmi-sydney/pmdos-match/internal/roster"
)

func TestExtractSkillWeights(t *testing.T) {
	cat := catalog.Default()

	row := roster.ProjectRow{
		Organization: "Hope Shelter",
		Initiative:   "Strategic Plan Refresh",
		Description:  "We need a strategic plan with a clear roadmap.",
		Outcomes:     "A strategy the board can execute.",
	}
	req := Extract(row, cat)

	// "strategic" x2, "strategy" x1, "planning"... plus the initiative-name
	// bonus pushes Strategic Planning to the cap.
	if got := req.Skills[catalog.SkillStrategicPlanning]; got != 10 {
		t.Errorf("Strategic Planning weight = %d, want 10", got)
	}
	if got := req.Skills[catalog.SkillEventsManagement]; got != 0 {
		t.Errorf("Events weight = %d, want 0", got)
	}
}

func TestExtractInitiativeBonus(t *testing.T) {
	cat := catalog.Default()

	// Keyword only in the initiative name: +2 for the occurrence in the
	// combined text plus the +5 initiative bonus.
	req := Extract(roster.ProjectRow{Initiative: "Fundraising gala"}, cat)
	if got := req.Skills[catalog.SkillEventsManagement]; got != 7 {
		t.Errorf("Events weight = %d, want 7", got)
	}
}

func TestExtractEmptyProject(t *testing.T) {
	cat := catalog.Default()
	req := Extract(roster.ProjectRow{Organization: "Quiet Org"}, cat)

	for _, skill := range cat.Skills {
		if req.Skills[skill.Name] != 0 {
			t.Errorf("skill %q weight = %d, want 0", skill.Name, req.Skills[skill.Name])
		}
	}
	if req.Priority != LevelLow {
		t.Errorf("Priority = %s, want Low", req.Priority)
	}
	if req.Complexity != LevelMedium {
		t.Errorf("Complexity = %s, want Medium", req.Complexity)
	}
}

// The catalog keeps the acronym keywords IT, ERP and NGO uppercase while
// extraction lowercases the project text, so they never match. Lowercasing
// them instead would substring-match ordinary words ("with", "interpret",
// "ongoing") and inflate weights on unrelated text.
func TestExtractAcronymKeywordsNeverMatch(t *testing.T) {
	cat := catalog.Default()

	req := Extract(roster.ProjectRow{
		Description: "We interpret ongoing quality initiatives with care",
	}, cat)

	for _, skill := range []string{
		catalog.SkillNonProfitWork,
		catalog.SkillTechnologyChange,
		catalog.SkillSoftwareSolutions,
	} {
		if got := req.Skills[skill]; got != 0 {
			t.Errorf("%s weight = %d, want 0", skill, got)
		}
	}
}

func TestKeywordWeightMonotonicity(t *testing.T) {
	cat := catalog.Default()

	base := roster.ProjectRow{Description: "We plan a fundraising event."}
	weight := Extract(base, cat).Skills[catalog.SkillEventsManagement]

	for i := 0; i < 6; i++ {
		base.Description += " Another event."
		next := Extract(base, cat).Skills[catalog.SkillEventsManagement]
		if next < weight {
			t.Fatalf("weight decreased from %d to %d after adding a keyword", weight, next)
		}
		if next > 10 {
			t.Fatalf("weight %d exceeds cap", next)
		}
		weight = next
	}
	if weight != 10 {
		t.Errorf("repeated keywords should reach the cap, got %d", weight)
	}
}

func TestPriorityLabel(t *testing.T) {
	cat := catalog.Default()

	tests := []struct {
		name        string
		description string
		want        Level
	}{
		{"high indicator", "This is urgent work for our 50th anniversary.", LevelHigh},
		{"high beats medium", "Urgent and important.", LevelHigh},
		{"medium indicator", "An important upgrade.", LevelMedium},
		{"no indicators", "We would like some help.", LevelLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := Extract(roster.ProjectRow{Description: tt.description}, cat)
			if req.Priority != tt.want {
				t.Errorf("Priority = %s, want %s", req.Priority, tt.want)
			}
		})
	}
}

func TestComplexityLabel(t *testing.T) {
	cat := catalog.Default()

	tests := []struct {
		name string
		text string
		want Level
	}{
		{"high wins on count", "A complex national effort with multiple streams.", LevelHigh},
		{"low wins on count", "Simple basic guidance.", LevelLow},
		{"tie defaults to medium", "A complex but simple ask.", LevelMedium},
		{"all zero defaults to medium", "Nothing indicative here.", LevelMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := Extract(roster.ProjectRow{Description: tt.text}, cat)
			if req.Complexity != tt.want {
				t.Errorf("Complexity(%q) = %s, want %s", tt.text, req.Complexity, tt.want)
			}
		})
	}
}

func TestTopSkills(t *testing.T) {
	cat := catalog.Default()
	req := Extract(roster.ProjectRow{
		Description: "An event with a project plan, timeline and milestones for the celebration.",
	}, cat)

	top := req.TopSkills(cat, 3)
	if len(top) == 0 || len(top) > 3 {
		t.Fatalf("TopSkills returned %d entries", len(top))
	}
	for i := 1; i < len(top); i++ {
		if top[i].Weight > top[i-1].Weight {
			t.Errorf("TopSkills not sorted: %+v", top)
		}
	}
	for _, ws := range top {
		if ws.Weight <= 0 {
			t.Errorf("TopSkills includes zero-weight skill %q", ws.Name)
		}
	}
}

func TestSignificantSkills(t *testing.T) {
	cat := catalog.Default()
	req := Extract(roster.ProjectRow{
		Description: strings.Repeat("strategic event integration analysis ", 3),
	}, cat)

	n := req.SignificantSkills(cat, 2)
	if n == 0 {
		t.Error("SignificantSkills = 0 for a keyword-rich description")
	}
}
