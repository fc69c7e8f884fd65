package models

// Milestone is read-only reference data from the backend catalog.
type Milestone struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	AgeGroup    AgeGroup `json:"ageGroup"`
	Category    string   `json:"category,omitempty"`
}

// AppliesTo reports whether the milestone is shown for the child. Eligibility
// is an exact age-group match, no partial overlap.
func (m Milestone) AppliesTo(child Child) bool {
	return m.AgeGroup == child.AgeGroup
}

// EligibleMilestones filters the catalog down to the child's age group.
func EligibleMilestones(milestones []Milestone, child Child) []Milestone {
	var out []Milestone
	for _, m := range milestones {
		if m.AppliesTo(child) {
			out = append(out, m)
		}
	}
	return out
}
