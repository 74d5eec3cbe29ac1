// Package roster loads the two tabular inputs of a matching run: the
// volunteer registration table and the charity project table. Missing cells
// degrade to empty strings; missing required columns or an empty table are
// the one fatal condition (there is no sane default for them).
package roster

// VolunteerRow is one raw registration record. Ratings carries the raw cell
// per catalog skill name; parsing to numbers happens in the profile scorer.
type VolunteerRow struct {
	ID          int
	FirstName   string
	LastName    string
	Email       string
	Employer    string
	JobTitle    string
	MemberID    string
	ProfileLink string
	Experience  string
	Interests   string
	Ratings     map[string]string
}

// Name returns the volunteer's display name.
func (v VolunteerRow) Name() string {
	switch {
	case v.FirstName == "":
		return v.LastName
	case v.LastName == "":
		return v.FirstName
	default:
		return v.FirstName + " " + v.LastName
	}
}

// ProjectRow is one raw charity intake record.
type ProjectRow struct {
	ID           int
	Organization string
	Initiative   string
	Description  string
	Outcomes     string
	Benefits     string
	Expectations string
}
