// Package assign places scored volunteers onto project teams. Two policies
// share the candidate ordering, employer-diversity bookkeeping and state
// record: Fixed caps every project at a hard team size, Flexible computes
// per-project capacity and guarantees every volunteer a placement while any
// project has room.
package assign

import (
	"github.com/pmi-sydney/pmdos-match/internal/catalog"
	"github.com/pmi-sydney/pmdos-match/internal/match"
	"github.com/pmi-sydney/pmdos-match/internal/profile"
	"github.com/pmi-sydney/pmdos-match/internal/requirement"
)

// Policy names an assignment strategy.
type Policy string

const (
	PolicyFixed    Policy = "fixed"
	PolicyFlexible Policy = "flexible"
)

// Options tunes the assignment policies. Zero values are replaced by
// DefaultOptions in Normalize.
type Options struct {
	// FixedCapacity is the hard team size of the fixed policy.
	FixedCapacity int
	// FlexibleMaxCapacity caps the computed capacity of the flexible policy.
	FlexibleMaxCapacity int
	// EnforceEmployerDiversity prefers distinct employers per team before
	// allowing colleagues onto the same project.
	EnforceEmployerDiversity bool
}

// DefaultOptions returns the event defaults: teams of two in fixed mode,
// flexible capacity 2-4, employer diversity on.
func DefaultOptions() Options {
	return Options{
		FixedCapacity:            2,
		FlexibleMaxCapacity:      4,
		EnforceEmployerDiversity: true,
	}
}

// Normalize fills unset numeric fields with defaults.
func (o Options) Normalize() Options {
	def := DefaultOptions()
	if o.FixedCapacity <= 0 {
		o.FixedCapacity = def.FixedCapacity
	}
	if o.FlexibleMaxCapacity <= 0 {
		o.FlexibleMaxCapacity = def.FlexibleMaxCapacity
	}
	return o
}

// Member is one volunteer placed on a team, with the score that placed
// them and a human-readable selection rationale.
type Member struct {
	Volunteer *profile.Profile
	Score     float64
	Rationale string
}

// Team is a project's assigned volunteers in assignment order. The order
// index becomes the "PMP n" role label in reports.
type Team struct {
	Project     *requirement.Requirement
	MinCapacity int
	MaxCapacity int
	Members     []Member
}

// Result is the outcome of one assignment run. Teams holds every project
// that received at least one volunteer, in project input order; Unassigned
// lists volunteers no policy could place.
type Result struct {
	Policy     Policy
	Teams      []Team
	Unassigned []*profile.Profile
}

// AssignedCount returns the number of placed volunteers.
func (r Result) AssignedCount() int {
	n := 0
	for _, t := range r.Teams {
		n += len(t.Members)
	}
	return n
}

// AverageScore returns the mean score across all placements, 0 when empty.
func (r Result) AverageScore() float64 {
	var sum float64
	n := 0
	for _, t := range r.Teams {
		for _, m := range t.Members {
			sum += m.Score
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// state is the assignment bookkeeping threaded through both policies.
type state struct {
	cat       *catalog.Catalog
	assigned  map[int]bool
	teams     []*teamState // project input order
	byProject map[int]*teamState
}

type teamState struct {
	project     *requirement.Requirement
	minCapacity int
	maxCapacity int
	members     []Member
	employers   map[string]bool
}

func newState(reqs []requirement.Requirement, cat *catalog.Catalog) *state {
	st := &state{
		cat:       cat,
		assigned:  make(map[int]bool),
		teams:     make([]*teamState, len(reqs)),
		byProject: make(map[int]*teamState, len(reqs)),
	}
	for i := range reqs {
		st.teams[i] = &teamState{
			project:   &reqs[i],
			employers: make(map[string]bool),
		}
		st.byProject[reqs[i].ID] = st.teams[i]
	}
	return st
}

func (ts *teamState) full() bool {
	return len(ts.members) >= ts.maxCapacity
}

func (ts *teamState) hasEmployer(key string) bool {
	return ts.employers[key]
}

// place appends a candidate to its team and marks the volunteer assigned.
func (st *state) place(c match.Candidate) {
	ts := st.byProject[c.Project.ID]
	role := len(ts.members) + 1
	ts.members = append(ts.members, Member{
		Volunteer: c.Volunteer,
		Score:     c.Score,
		Rationale: buildRationale(c, role, st.cat),
	})
	ts.employers[c.EmployerKey] = true
	st.assigned[c.Volunteer.ID] = true
}

// result snapshots the state into the output shape, collecting unplaced
// volunteers in input order.
func (st *state) result(policy Policy, profiles []profile.Profile) Result {
	res := Result{Policy: policy}
	for _, ts := range st.teams {
		if len(ts.members) == 0 {
			continue
		}
		res.Teams = append(res.Teams, Team{
			Project:     ts.project,
			MinCapacity: ts.minCapacity,
			MaxCapacity: ts.maxCapacity,
			Members:     ts.members,
		})
	}
	for i := range profiles {
		if !st.assigned[profiles[i].ID] {
			res.Unassigned = append(res.Unassigned, &profiles[i])
		}
	}
	return res
}
