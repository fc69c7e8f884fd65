package models

// ProgressCounts are the per-child submission counters shown on the parent
// dashboard.
type ProgressCounts struct {
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	Rejected  int `json:"rejected"`
	Total     int `json:"total"`
}

// ChildOverview is one child on the parent dashboard with the eligible
// milestones and their submission state.
type ChildOverview struct {
	Child      Child            `json:"child"`
	Milestones []MilestoneEntry `json:"milestones"`
	Progress   ProgressCounts   `json:"progress"`
}

type MilestoneEntry struct {
	Milestone Milestone        `json:"milestone"`
	Status    SubmissionStatus `json:"status"`
	Feedback  string           `json:"feedback,omitempty"`
}

type ParentDashboard struct {
	Children []ChildOverview `json:"children"`
}

// VolunteerStats are the counters behind the volunteer dashboard filter tabs.
type VolunteerStats struct {
	TotalPending     int `json:"totalPending"`
	TotalAccepted    int `json:"totalAccepted"`
	TotalRejected    int `json:"totalRejected"`
	TotalSubmissions int `json:"totalSubmissions"`
}

type VolunteerDashboard struct {
	PendingSubmissions []SubmissionDetail `json:"pendingSubmissions"`
	Stats              VolunteerStats     `json:"stats"`
}
