package services

import (
	"context"
	"strings"
	"sync"

	"MilestoneTracker/models"
	"MilestoneTracker/repositories"

	"go.uber.org/zap"
)

// SubmissionPhase is the submit surface's lifecycle state. A request is
// outstanding exactly while the phase is Uploading or Posting; the submit
// control stays disabled for the whole of that window.
type SubmissionPhase int

const (
	PhaseIdle SubmissionPhase = iota
	PhaseValidating
	PhaseUploading
	PhasePosting
	PhaseSucceeded
	PhaseFailed
)

func (p SubmissionPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseValidating:
		return "validating"
	case PhaseUploading:
		return "uploading"
	case PhasePosting:
		return "posting"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

// SubmissionService drives one parent's submit surface: stage media for a
// child/milestone pair, push it to the backend and propagate the outcome back
// to the dashboard.
type SubmissionService struct {
	SubmissionRepo repositories.SubmissionRepository
	DashboardRepo  repositories.DashboardRepository
	Session        models.Session
	Logger         *zap.Logger

	// OnProgress receives upload percentages while a file transfer is in
	// flight. Optional.
	OnProgress func(percent int)
	// OnRefresh receives the re-fetched dashboard after a successful submit.
	// Optional.
	OnRefresh func(models.ParentDashboard)

	mu         sync.Mutex
	open       bool
	generation uint64
	phase      SubmissionPhase
	child      models.Child
	milestone  models.Milestone
	staged     models.MediaInput
	progress   int
	lastError  string
}

func NewSubmissionService(submissionRepo repositories.SubmissionRepository, dashboardRepo repositories.DashboardRepository, session models.Session, logger *zap.Logger) *SubmissionService {
	return &SubmissionService{
		SubmissionRepo: submissionRepo,
		DashboardRepo:  dashboardRepo,
		Session:        session,
		Logger:         logger,
	}
}

// Open prepares the submit surface for a child/milestone pair. The milestone
// must match the child's age group and must not have been submitted before:
// pending submissions are already in review and terminal ones are final.
func (s *SubmissionService) Open(child models.Child, state models.MilestoneState) error {
	if !s.Session.IsParent() {
		return ErrNotParent
	}
	if !state.Milestone.AppliesTo(child) {
		return ErrAgeGroupMismatch
	}
	if state.Status() != models.StatusNotStarted {
		return ErrNotReviewable
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseUploading || s.phase == PhasePosting {
		return ErrSubmitInFlight
	}
	s.open = true
	s.generation++
	s.phase = PhaseIdle
	s.child = child
	s.milestone = state.Milestone
	s.staged = nil
	s.progress = 0
	s.lastError = ""
	return nil
}

// AttachFile validates the candidate file and stages it. A rejected file
// leaves the surface untouched; an accepted one replaces any staged URL so
// exactly one medium is ever staged.
func (s *SubmissionService) AttachFile(file models.MediaFile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return ErrNoSubmissionOpen
	}
	if s.phase == PhaseUploading || s.phase == PhasePosting {
		return ErrSubmitInFlight
	}

	s.phase = PhaseValidating
	if err := ValidateMediaFile(file); err != nil {
		s.phase = PhaseIdle
		return err
	}

	s.staged = file
	s.phase = PhaseIdle
	s.Logger.Info("file staged",
		zap.String("name", file.Name),
		zap.String("type", file.MIME),
		zap.String("size", models.FormatFileSize(file.Size)))
	return nil
}

// SetMediaURL stages an external URL, replacing any staged file. An empty
// value clears the staged URL.
func (s *SubmissionService) SetMediaURL(url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return ErrNoSubmissionOpen
	}
	if s.phase == PhaseUploading || s.phase == PhasePosting {
		return ErrSubmitInFlight
	}

	url = strings.TrimSpace(url)
	if url == "" {
		if _, ok := s.staged.(models.MediaURL); ok {
			s.staged = nil
		}
		return nil
	}
	s.staged = models.MediaURL(url)
	return nil
}

// CanSubmit reports whether the submit control is enabled.
func (s *SubmissionService) CanSubmit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open && s.staged != nil && s.phase != PhaseUploading && s.phase != PhasePosting
}

// Submit pushes the staged medium to the backend. On success the surface is
// closed, the dashboard is re-fetched and delivered through OnRefresh. On
// failure the staged input is preserved so the parent can retry without
// re-entering anything.
func (s *SubmissionService) Submit(ctx context.Context) error {
	s.mu.Lock()
	if !s.open {
		s.mu.Unlock()
		return ErrNoSubmissionOpen
	}
	if s.phase == PhaseUploading || s.phase == PhasePosting {
		s.mu.Unlock()
		return ErrSubmitInFlight
	}
	if s.staged == nil {
		s.mu.Unlock()
		return ErrNoMediaStaged
	}

	gen := s.generation
	staged := s.staged
	childID := s.child.ID
	milestoneID := s.milestone.ID
	s.progress = 0
	s.lastError = ""

	var err error
	switch media := staged.(type) {
	case models.MediaFile:
		s.phase = PhaseUploading
		s.mu.Unlock()
		err = s.submitFile(ctx, gen, childID, milestoneID, media)
	case models.MediaURL:
		s.phase = PhasePosting
		s.mu.Unlock()
		_, err = s.SubmissionRepo.SubmitWithURL(ctx, childID, milestoneID, string(media))
	}

	return s.finish(ctx, gen, err)
}

func (s *SubmissionService) submitFile(ctx context.Context, gen uint64, childID, milestoneID string, file models.MediaFile) error {
	events := s.SubmissionRepo.SubmitWithFile(ctx, childID, milestoneID, file)
	for ev := range events {
		switch ev := ev.(type) {
		case models.UploadProgress:
			s.reportProgress(gen, ev.Percent)
		case models.UploadResult:
			return ev.Err
		}
	}
	// Channel closed without a terminal event: the upload was torn down.
	return ctx.Err()
}

func (s *SubmissionService) reportProgress(gen uint64, percent int) {
	s.mu.Lock()
	if !s.open || s.generation != gen || percent <= s.progress {
		s.mu.Unlock()
		return
	}
	s.progress = percent
	hook := s.OnProgress
	s.mu.Unlock()
	if hook != nil {
		hook(percent)
	}
}

func (s *SubmissionService) finish(ctx context.Context, gen uint64, submitErr error) error {
	s.mu.Lock()
	if !s.open || s.generation != gen {
		// Surface was torn down while the request was in flight; drop the
		// stale outcome instead of mutating a reopened surface.
		s.mu.Unlock()
		return submitErr
	}

	if submitErr != nil {
		s.phase = PhaseFailed
		s.progress = 0
		s.lastError = submitErr.Error()
		s.mu.Unlock()
		s.Logger.Warn("submission failed", zap.Error(submitErr))
		return submitErr
	}

	s.phase = PhaseSucceeded
	s.staged = nil
	s.progress = 0
	s.open = false
	parentID := s.Session.UserID
	hook := s.OnRefresh
	s.mu.Unlock()

	s.Logger.Info("submission accepted for review", zap.String("parentId", parentID))

	dashboard, err := s.DashboardRepo.ParentDashboard(ctx, parentID)
	if err != nil {
		// The submission itself went through; a failed refresh only delays
		// the counters until the next fetch.
		s.Logger.Warn("dashboard refresh failed", zap.Error(err))
		return nil
	}
	if hook != nil {
		hook(dashboard)
	}
	return nil
}

// Close tears the surface down. Outcomes of requests still in flight are
// ignored once this returns.
func (s *SubmissionService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
	s.generation++
	s.phase = PhaseIdle
	s.staged = nil
	s.progress = 0
	s.lastError = ""
}

func (s *SubmissionService) Phase() SubmissionPhase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

func (s *SubmissionService) Progress() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress
}

func (s *SubmissionService) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// StagedMedia exposes the staged medium for tests and UI binding.
func (s *SubmissionService) StagedMedia() models.MediaInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.staged
}
