package mocks

import (
	"context"

	"MilestoneTracker/models"
	"MilestoneTracker/repositories"

	"github.com/stretchr/testify/mock"
)

type SubmissionRepository struct {
	mock.Mock
}

func (m *SubmissionRepository) SubmitWithURL(ctx context.Context, childID, milestoneID, mediaURL string) (models.Submission, error) {
	args := m.Called(ctx, childID, milestoneID, mediaURL)
	return args.Get(0).(models.Submission), args.Error(1)
}

func (m *SubmissionRepository) SubmitWithFile(ctx context.Context, childID, milestoneID string, file models.MediaFile) <-chan models.UploadEvent {
	args := m.Called(ctx, childID, milestoneID, file)
	return args.Get(0).(<-chan models.UploadEvent)
}

func (m *SubmissionRepository) FindByStatus(ctx context.Context, status string) ([]models.SubmissionDetail, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SubmissionDetail), args.Error(1)
}

func (m *SubmissionRepository) Review(ctx context.Context, submissionID string, decision repositories.ReviewDecision) (models.Submission, error) {
	args := m.Called(ctx, submissionID, decision)
	return args.Get(0).(models.Submission), args.Error(1)
}
