package assign

import (
	"github.com/pmi-sydney/pmdos-match/internal/catalog"
	"github.com/pmi-sydney/pmdos-match/internal/match"
	"github.com/pmi-sydney/pmdos-match/internal/profile"
	"github.com/pmi-sydney/pmdos-match/internal/requirement"
)

// forcedPreferencePerSlot biases phase-3 forced placement toward
// under-filled teams: each free slot adds this much to the raw score.
const forcedPreferencePerSlot = 10.0

// Flexible runs the variable-capacity policy. Every project gets a
// computed capacity (2-4); three phases place volunteers:
//
//  1. minimum guarantee: each project, in input order, is filled to the
//     team-size floor, distinct employers first, then allowing colleagues;
//  2. capacity fill: remaining volunteers flow into teams with room,
//     deferring employer conflicts to a second sweep;
//  3. forced placement: each leftover volunteer goes to the project with
//     the best score adjusted by remaining free capacity.
//
// Placement is guaranteed while any project has room; once every team is
// at its computed maximum, leftover volunteers are reported in
// Result.Unassigned rather than forced over capacity.
func Flexible(profiles []profile.Profile, reqs []requirement.Requirement, cat *catalog.Catalog, opts Options) Result {
	opts = opts.Normalize()

	candidates := match.BuildCandidates(profiles, reqs, cat)
	st := newState(reqs, cat)
	for _, ts := range st.teams {
		ts.minCapacity, ts.maxCapacity = capacity(*ts.project, cat, opts.FlexibleMaxCapacity)
	}

	phaseMinimum(st, candidates, opts)
	phaseCapacityFill(st, candidates, opts)
	phaseForced(st, profiles, candidates)

	return st.result(PolicyFlexible, profiles)
}

// phaseMinimum fills each team, in project input order, up to the floor.
func phaseMinimum(st *state, candidates []match.Candidate, opts Options) {
	for _, ts := range st.teams {
		// Distinct employers first.
		for _, c := range candidates {
			if len(ts.members) >= ts.minCapacity {
				break
			}
			if c.Project.ID != ts.project.ID || st.assigned[c.Volunteer.ID] {
				continue
			}
			if opts.EnforceEmployerDiversity && ts.hasEmployer(c.EmployerKey) {
				continue
			}
			st.place(c)
		}

		// Still short: accept colleagues to reach the floor.
		for _, c := range candidates {
			if len(ts.members) >= ts.minCapacity {
				break
			}
			if c.Project.ID != ts.project.ID || st.assigned[c.Volunteer.ID] {
				continue
			}
			st.place(c)
		}
	}
}

// phaseCapacityFill spreads remaining volunteers into teams with spare
// room, best score first.
func phaseCapacityFill(st *state, candidates []match.Candidate, opts Options) {
	var deferred []match.Candidate

	for _, c := range candidates {
		ts := st.byProject[c.Project.ID]
		if st.assigned[c.Volunteer.ID] || ts.full() {
			continue
		}
		if opts.EnforceEmployerDiversity && ts.hasEmployer(c.EmployerKey) {
			deferred = append(deferred, c)
			continue
		}
		st.place(c)
	}

	for _, c := range deferred {
		ts := st.byProject[c.Project.ID]
		if st.assigned[c.Volunteer.ID] || ts.full() {
			continue
		}
		st.place(c)
	}
}

// phaseForced places each leftover volunteer into the team with the best
// adjusted score: raw match score plus forcedPreferencePerSlot for every
// free slot, so under-filled projects win even against a slightly better
// raw match. Teams already at their maximum are never exceeded.
func phaseForced(st *state, profiles []profile.Profile, candidates []match.Candidate) {
	// Score lookup for (volunteer, project) pairs.
	scores := make(map[int]map[int]match.Candidate, len(profiles))
	for _, c := range candidates {
		byProject, ok := scores[c.Volunteer.ID]
		if !ok {
			byProject = make(map[int]match.Candidate, len(st.teams))
			scores[c.Volunteer.ID] = byProject
		}
		byProject[c.Project.ID] = c
	}

	for i := range profiles {
		v := &profiles[i]
		if st.assigned[v.ID] {
			continue
		}

		var best *match.Candidate
		bestAdjusted := 0.0
		for _, ts := range st.teams {
			if ts.full() {
				continue
			}
			c, ok := scores[v.ID][ts.project.ID]
			if !ok {
				continue
			}
			free := float64(ts.maxCapacity - len(ts.members))
			adjusted := c.Score + free*forcedPreferencePerSlot
			if best == nil || adjusted > bestAdjusted {
				candidate := c
				best = &candidate
				bestAdjusted = adjusted
			}
		}

		// No team has room: the volunteer stays unassigned and is
		// surfaced in the result instead of being forced over capacity.
		if best != nil {
			st.place(*best)
		}
	}
}
