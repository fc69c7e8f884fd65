package repositories

import (
	"context"

	"MilestoneTracker/models"
)

// ReviewDecision is the volunteer's verdict on a pending submission.
type ReviewDecision struct {
	Status      models.SubmissionStatus `json:"status"`
	Feedback    string                  `json:"feedback,omitempty"`
	VolunteerID string                  `json:"volunteerId"`
}

type SubmissionRepository interface {
	// SubmitWithURL is the synchronous URL-mode submission, no progress signal.
	SubmitWithURL(ctx context.Context, childID, milestoneID, mediaURL string) (models.Submission, error)

	// SubmitWithFile streams the file and reports progress on the returned
	// channel: zero or more UploadProgress events, then exactly one
	// UploadResult, then the channel is closed. Cancelling ctx tears the
	// upload down; no events are delivered afterwards.
	SubmitWithFile(ctx context.Context, childID, milestoneID string, file models.MediaFile) <-chan models.UploadEvent

	FindByStatus(ctx context.Context, status string) ([]models.SubmissionDetail, error)
	Review(ctx context.Context, submissionID string, decision ReviewDecision) (models.Submission, error)
}
