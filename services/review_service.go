package services

import (
	"context"
	"strings"
	"sync"

	"MilestoneTracker/models"
	"MilestoneTracker/repositories"

	"go.uber.org/zap"
)

// ReviewPhase tracks the volunteer review surface. Failed is transient: a
// failed confirm drops straight back to Deciding so the volunteer can retry.
type ReviewPhase int

const (
	ReviewIdle ReviewPhase = iota
	ReviewSelecting
	ReviewDeciding
	ReviewSubmitting
	ReviewResolved
)

func (p ReviewPhase) String() string {
	switch p {
	case ReviewIdle:
		return "idle"
	case ReviewSelecting:
		return "selecting"
	case ReviewDeciding:
		return "deciding"
	case ReviewSubmitting:
		return "submitting"
	case ReviewResolved:
		return "resolved"
	}
	return "unknown"
}

// ReviewService is the volunteer-side workflow: pick a pending submission,
// decide accept/reject and push the decision to the backend.
type ReviewService struct {
	SubmissionRepo repositories.SubmissionRepository
	DashboardRepo  repositories.DashboardRepository
	Session        models.Session
	Logger         *zap.Logger

	// OnRefresh receives the re-fetched volunteer dashboard and, when the
	// active filter is not "pending", the re-fetched filtered list. Optional.
	OnRefresh func(models.VolunteerDashboard, []models.SubmissionDetail)

	mu        sync.Mutex
	phase     ReviewPhase
	selected  models.SubmissionDetail
	decision  models.SubmissionStatus
	feedback  string
	filter    string
	lastError string
}

func NewReviewService(submissionRepo repositories.SubmissionRepository, dashboardRepo repositories.DashboardRepository, session models.Session, logger *zap.Logger) *ReviewService {
	return &ReviewService{
		SubmissionRepo: submissionRepo,
		DashboardRepo:  dashboardRepo,
		Session:        session,
		Logger:         logger,
		filter:         "pending",
	}
}

// Select opens the review surface for a submission. Terminal submissions are
// immutable, so anything other than pending is refused outright.
func (s *ReviewService) Select(submission models.SubmissionDetail) error {
	if !s.Session.IsVolunteer() {
		return ErrNotVolunteer
	}
	if submission.Status != models.StatusPending {
		return ErrNotReviewable
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == ReviewSubmitting {
		return ErrReviewInFlight
	}
	s.phase = ReviewSelecting
	s.selected = submission
	s.decision = ""
	s.feedback = ""
	s.lastError = ""
	return nil
}

// Decide records the verdict and feedback. Validation happens at Confirm so
// the volunteer can still edit the feedback afterwards.
func (s *ReviewService) Decide(decision models.SubmissionStatus, feedback string) error {
	if decision != models.StatusAccepted && decision != models.StatusRejected {
		return &ValidationError{Field: "status", Reason: "decision must be accepted or rejected"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != ReviewSelecting && s.phase != ReviewDeciding {
		return ErrNotReviewable
	}
	s.decision = decision
	s.feedback = feedback
	s.phase = ReviewDeciding
	return nil
}

// Confirm validates the decision and posts it. Rejections require non-empty
// feedback after trimming; that check never reaches the network.
func (s *ReviewService) Confirm(ctx context.Context) error {
	s.mu.Lock()
	if s.phase == ReviewSubmitting {
		s.mu.Unlock()
		return ErrReviewInFlight
	}
	if s.phase != ReviewDeciding || s.decision == "" {
		s.mu.Unlock()
		return ErrNothingToConfirm
	}

	feedback := strings.TrimSpace(s.feedback)
	if s.decision == models.StatusRejected && feedback == "" {
		s.mu.Unlock()
		return &ValidationError{Field: "feedback", Reason: "feedback is required when rejecting a submission"}
	}

	submissionID := s.selected.ID
	decision := repositories.ReviewDecision{
		Status:      s.decision,
		Feedback:    feedback,
		VolunteerID: s.Session.UserID,
	}
	filter := s.filter
	s.phase = ReviewSubmitting
	s.mu.Unlock()

	_, err := s.SubmissionRepo.Review(ctx, submissionID, decision)

	s.mu.Lock()
	if err != nil {
		// Transient failure: stay on the decision so the volunteer can retry.
		s.phase = ReviewDeciding
		s.lastError = err.Error()
		s.mu.Unlock()
		s.Logger.Warn("review failed", zap.String("submissionId", submissionID), zap.Error(err))
		return err
	}
	s.phase = ReviewResolved
	hook := s.OnRefresh
	s.mu.Unlock()

	s.Logger.Info("submission reviewed",
		zap.String("submissionId", submissionID),
		zap.String("status", string(decision.Status)))

	dashboard, err := s.DashboardRepo.VolunteerDashboard(ctx)
	if err != nil {
		s.Logger.Warn("volunteer dashboard refresh failed", zap.Error(err))
		return nil
	}
	var filtered []models.SubmissionDetail
	if filter != "pending" {
		if filtered, err = s.SubmissionRepo.FindByStatus(ctx, filter); err != nil {
			s.Logger.Warn("submission list refresh failed", zap.String("filter", filter), zap.Error(err))
			filtered = nil
		}
	}
	if hook != nil {
		hook(dashboard, filtered)
	}
	return nil
}

// SetFilter records the active list filter; after a confirmed review any
// non-pending filter is re-fetched alongside the dashboard.
func (s *ReviewService) SetFilter(filter string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = filter
}

func (s *ReviewService) Phase() ReviewPhase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

func (s *ReviewService) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}
