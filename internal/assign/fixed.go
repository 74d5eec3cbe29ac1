package assign

import (
	"github.com/pmi-sydney/pmdos-match/internal/catalog"
	"github.com/pmi-sydney/pmdos-match/internal/match"
	"github.com/pmi-sydney/pmdos-match/internal/profile"
	"github.com/pmi-sydney/pmdos-match/internal/requirement"
)

// Fixed runs the fixed-capacity policy: at most opts.FixedCapacity
// volunteers per project, each volunteer at most once, greedy over the
// sorted candidate list.
//
// Pass 1 honors employer diversity; pass 2 fills slots that pass 1 left
// open even when that puts colleagues on the same team. Volunteers can end
// up unassigned when every project fills first; that is accepted fixed-mode
// behavior, not a failure.
func Fixed(profiles []profile.Profile, reqs []requirement.Requirement, cat *catalog.Catalog, opts Options) Result {
	opts = opts.Normalize()

	candidates := match.BuildCandidates(profiles, reqs, cat)
	st := newState(reqs, cat)
	for _, ts := range st.teams {
		ts.minCapacity = opts.FixedCapacity
		ts.maxCapacity = opts.FixedCapacity
	}

	// Pass 1: distinct employers per team.
	for _, c := range candidates {
		ts := st.byProject[c.Project.ID]
		if st.assigned[c.Volunteer.ID] || ts.full() {
			continue
		}
		if opts.EnforceEmployerDiversity && ts.hasEmployer(c.EmployerKey) {
			continue
		}
		st.place(c)
	}

	// Pass 2: fill remaining slots regardless of employer.
	for _, c := range candidates {
		ts := st.byProject[c.Project.ID]
		if st.assigned[c.Volunteer.ID] || ts.full() {
			continue
		}
		st.place(c)
	}

	return st.result(PolicyFixed, profiles)
}
