package store

import "time"

// Run is one stored matching run.
type Run struct {
	ID           string    `json:"id"`
	Policy       string    `json:"policy"`
	Volunteers   int       `json:"volunteers"`
	Projects     int       `json:"projects"`
	Assigned     int       `json:"assigned"`
	Unassigned   int       `json:"unassigned"`
	AverageScore float64   `json:"average_score"`
	CreatedAt    time.Time `json:"created_at"`
}

// Assignment is one stored placement belonging to a run.
type Assignment struct {
	ID           int64   `json:"id"`
	RunID        string  `json:"run_id"`
	Organization string  `json:"organization"`
	Role         string  `json:"role"`
	Volunteer    string  `json:"volunteer"`
	Employer     string  `json:"employer,omitempty"`
	MatchScore   float64 `json:"match_score"`
	Rationale    string  `json:"rationale,omitempty"`
}
