package models

import "time"

type SubmissionStatus string

const (
	StatusNotStarted SubmissionStatus = "not_started"
	StatusPending    SubmissionStatus = "pending"
	StatusAccepted   SubmissionStatus = "accepted"
	StatusRejected   SubmissionStatus = "rejected"
)

// IsTerminal reports whether the status allows no further transitions.
func (s SubmissionStatus) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// CanTransition enforces the one-way lifecycle
// not_started -> pending -> {accepted|rejected}.
func (s SubmissionStatus) CanTransition(to SubmissionStatus) bool {
	switch s {
	case StatusNotStarted:
		return to == StatusPending
	case StatusPending:
		return to == StatusAccepted || to == StatusRejected
	}
	return false
}

type Submission struct {
	ID          string           `json:"id"`
	ChildID     string           `json:"childId"`
	MilestoneID string           `json:"milestoneId"`
	MediaURL    string           `json:"mediaUrl,omitempty"`
	FileName    string           `json:"fileName,omitempty"`
	FileType    string           `json:"fileType,omitempty"`
	FileSize    int64            `json:"fileSize,omitempty"`
	Status      SubmissionStatus `json:"status"`
	Feedback    string           `json:"feedback,omitempty"`
	SubmittedAt time.Time        `json:"submittedAt"`
}

// SubmissionDetail is the volunteer-side listing entry with the joined child
// and milestone names.
type SubmissionDetail struct {
	Submission
	ChildName      string   `json:"childName"`
	MilestoneTitle string   `json:"milestoneTitle"`
	AgeGroup       AgeGroup `json:"ageGroup"`
	ParentName     string   `json:"parentName,omitempty"`
}

// MilestoneState is a milestone's progress for one child. The backend keeps no
// row for a milestone that was never submitted; the absent row is represented
// here explicitly instead of by a nil Submission scattered around callers.
type MilestoneState struct {
	Milestone  Milestone
	Submission *Submission
}

// Status returns the effective submission status, not_started when no
// submission exists yet.
func (s MilestoneState) Status() SubmissionStatus {
	if s.Submission == nil {
		return StatusNotStarted
	}
	return s.Submission.Status
}

// Reviewable reports whether a volunteer may still act on this milestone.
func (s MilestoneState) Reviewable() bool {
	return s.Status() == StatusPending
}
