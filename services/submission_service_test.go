package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"MilestoneTracker/models"
	"MilestoneTracker/repositories/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

var (
	testParent = models.Session{UserID: "parent-1", Name: "Priya", Role: models.RoleParent}
	testChild  = models.Child{ID: "child-1", Name: "Aarav", AgeGroup: models.AgeGroup0To3, ParentID: "parent-1"}
	testMile   = models.Milestone{ID: "mile-1", Title: "Crawling", AgeGroup: models.AgeGroup0To3}
)

func newTestSubmissionService(subRepo *mocks.SubmissionRepository, dashRepo *mocks.DashboardRepository) *SubmissionService {
	return NewSubmissionService(subRepo, dashRepo, testParent, zap.NewNop())
}

func openSurface(t *testing.T, s *SubmissionService) {
	t.Helper()
	err := s.Open(testChild, models.MilestoneState{Milestone: testMile})
	assert.NoError(t, err)
}

func TestOpenRejectsAgeGroupMismatch(t *testing.T) {
	s := newTestSubmissionService(new(mocks.SubmissionRepository), new(mocks.DashboardRepository))

	older := models.Milestone{ID: "mile-9", Title: "Reading", AgeGroup: models.AgeGroup7To8}
	err := s.Open(testChild, models.MilestoneState{Milestone: older})
	assert.ErrorIs(t, err, ErrAgeGroupMismatch)
}

func TestOpenRejectsAlreadySubmittedMilestone(t *testing.T) {
	s := newTestSubmissionService(new(mocks.SubmissionRepository), new(mocks.DashboardRepository))

	pending := &models.Submission{ID: "sub-1", Status: models.StatusPending}
	err := s.Open(testChild, models.MilestoneState{Milestone: testMile, Submission: pending})
	assert.ErrorIs(t, err, ErrNotReviewable)

	accepted := &models.Submission{ID: "sub-2", Status: models.StatusAccepted}
	err = s.Open(testChild, models.MilestoneState{Milestone: testMile, Submission: accepted})
	assert.ErrorIs(t, err, ErrNotReviewable)
}

func TestOpenRequiresParentSession(t *testing.T) {
	s := NewSubmissionService(new(mocks.SubmissionRepository), new(mocks.DashboardRepository),
		models.Session{UserID: "vol-1", Role: models.RoleVolunteer}, zap.NewNop())

	err := s.Open(testChild, models.MilestoneState{Milestone: testMile})
	assert.ErrorIs(t, err, ErrNotParent)
}

func TestAttachFileRejectionLeavesSurfaceUntouched(t *testing.T) {
	s := newTestSubmissionService(new(mocks.SubmissionRepository), new(mocks.DashboardRepository))
	openSurface(t, s)

	err := s.AttachFile(models.MediaFile{Name: "doc.pdf", MIME: "application/pdf", Size: 1})
	assert.True(t, IsValidationError(err))
	assert.Nil(t, s.StagedMedia())
	assert.Equal(t, PhaseIdle, s.Phase())
	assert.False(t, s.CanSubmit())
}

func TestStagingFileClearsURLAndViceVersa(t *testing.T) {
	s := newTestSubmissionService(new(mocks.SubmissionRepository), new(mocks.DashboardRepository))
	openSurface(t, s)

	assert.NoError(t, s.SetMediaURL("https://example.com/clip.mp4"))
	assert.IsType(t, models.MediaURL(""), s.StagedMedia())

	file := models.MediaFile{Name: "clip.mp4", MIME: "video/mp4", Size: 2048, Content: strings.NewReader("data")}
	assert.NoError(t, s.AttachFile(file))
	assert.IsType(t, models.MediaFile{}, s.StagedMedia())

	assert.NoError(t, s.SetMediaURL("https://example.com/other.mp4"))
	assert.IsType(t, models.MediaURL(""), s.StagedMedia())
}

func TestSubmitRequiresStagedMedia(t *testing.T) {
	s := newTestSubmissionService(new(mocks.SubmissionRepository), new(mocks.DashboardRepository))
	openSurface(t, s)

	err := s.Submit(context.Background())
	assert.ErrorIs(t, err, ErrNoMediaStaged)
}

func TestSubmitURLModeSuccessClosesSurfaceAndRefreshes(t *testing.T) {
	subRepo := new(mocks.SubmissionRepository)
	dashRepo := new(mocks.DashboardRepository)
	s := newTestSubmissionService(subRepo, dashRepo)
	openSurface(t, s)

	subRepo.On("SubmitWithURL", mock.Anything, "child-1", "mile-1", "https://example.com/clip.mp4").
		Return(models.Submission{ID: "sub-1", Status: models.StatusPending}, nil)
	dashRepo.On("ParentDashboard", mock.Anything, "parent-1").
		Return(models.ParentDashboard{Children: []models.ChildOverview{{Child: testChild}}}, nil)

	refreshed := false
	s.OnRefresh = func(d models.ParentDashboard) {
		refreshed = true
		assert.Len(t, d.Children, 1)
	}

	assert.NoError(t, s.SetMediaURL("https://example.com/clip.mp4"))
	assert.NoError(t, s.Submit(context.Background()))

	assert.True(t, refreshed)
	assert.Nil(t, s.StagedMedia())
	assert.Equal(t, PhaseSucceeded, s.Phase())
	assert.False(t, s.CanSubmit()) // surface is closed
	subRepo.AssertExpectations(t)
	dashRepo.AssertExpectations(t)
}

func TestSubmitFailurePreservesStagedInput(t *testing.T) {
	subRepo := new(mocks.SubmissionRepository)
	dashRepo := new(mocks.DashboardRepository)
	s := newTestSubmissionService(subRepo, dashRepo)
	openSurface(t, s)

	transportErr := &TransportError{Message: "Network error. Please try again."}
	subRepo.On("SubmitWithURL", mock.Anything, "child-1", "mile-1", "https://example.com/clip.mp4").
		Return(models.Submission{}, transportErr)

	assert.NoError(t, s.SetMediaURL("https://example.com/clip.mp4"))
	err := s.Submit(context.Background())
	assert.Error(t, err)

	// Staged input survives so the parent can retry without re-entering it
	assert.Equal(t, models.MediaURL("https://example.com/clip.mp4"), s.StagedMedia())
	assert.Equal(t, PhaseFailed, s.Phase())
	assert.Equal(t, 0, s.Progress())
	assert.Equal(t, transportErr.Message, s.LastError())
	assert.True(t, s.CanSubmit())
	dashRepo.AssertNotCalled(t, "ParentDashboard", mock.Anything, mock.Anything)
}

func TestSubmitFileModeReportsMonotonicProgress(t *testing.T) {
	subRepo := new(mocks.SubmissionRepository)
	dashRepo := new(mocks.DashboardRepository)
	s := newTestSubmissionService(subRepo, dashRepo)
	openSurface(t, s)

	events := make(chan models.UploadEvent, 8)
	events <- models.UploadProgress{Percent: 25}
	events <- models.UploadProgress{Percent: 60}
	events <- models.UploadProgress{Percent: 100}
	events <- models.UploadResult{Submission: models.Submission{ID: "sub-1", Status: models.StatusPending}}
	close(events)
	var recv <-chan models.UploadEvent = events

	subRepo.On("SubmitWithFile", mock.Anything, "child-1", "mile-1", mock.AnythingOfType("models.MediaFile")).
		Return(recv)
	dashRepo.On("ParentDashboard", mock.Anything, "parent-1").Return(models.ParentDashboard{}, nil)

	var seen []int
	s.OnProgress = func(percent int) { seen = append(seen, percent) }

	file := models.MediaFile{Name: "clip.mp4", MIME: "video/mp4", Size: 2048, Content: strings.NewReader("data")}
	assert.NoError(t, s.AttachFile(file))
	assert.NoError(t, s.Submit(context.Background()))

	assert.Equal(t, []int{25, 60, 100}, seen)
	assert.Equal(t, PhaseSucceeded, s.Phase())
}

func TestSubmitFileModeTerminalError(t *testing.T) {
	subRepo := new(mocks.SubmissionRepository)
	dashRepo := new(mocks.DashboardRepository)
	s := newTestSubmissionService(subRepo, dashRepo)
	openSurface(t, s)

	events := make(chan models.UploadEvent, 2)
	events <- models.UploadProgress{Percent: 40}
	events <- models.UploadResult{Err: &TransportError{Message: "Failed to upload file"}}
	close(events)
	var recv <-chan models.UploadEvent = events

	subRepo.On("SubmitWithFile", mock.Anything, "child-1", "mile-1", mock.AnythingOfType("models.MediaFile")).
		Return(recv)

	file := models.MediaFile{Name: "clip.mp4", MIME: "video/mp4", Size: 2048, Content: strings.NewReader("data")}
	assert.NoError(t, s.AttachFile(file))

	err := s.Submit(context.Background())
	assert.Error(t, err)
	assert.Equal(t, PhaseFailed, s.Phase())
	assert.IsType(t, models.MediaFile{}, s.StagedMedia())
}

func TestSubmitGuardsAgainstConcurrentRequests(t *testing.T) {
	subRepo := new(mocks.SubmissionRepository)
	dashRepo := new(mocks.DashboardRepository)
	s := newTestSubmissionService(subRepo, dashRepo)
	openSurface(t, s)

	events := make(chan models.UploadEvent)
	var recv <-chan models.UploadEvent = events
	subRepo.On("SubmitWithFile", mock.Anything, "child-1", "mile-1", mock.AnythingOfType("models.MediaFile")).
		Return(recv)
	dashRepo.On("ParentDashboard", mock.Anything, "parent-1").Return(models.ParentDashboard{}, nil)

	file := models.MediaFile{Name: "clip.mp4", MIME: "video/mp4", Size: 2048, Content: strings.NewReader("data")}
	assert.NoError(t, s.AttachFile(file))

	done := make(chan error, 1)
	go func() { done <- s.Submit(context.Background()) }()

	// Wait until the upload is in flight, then try to double-submit
	for s.Phase() != PhaseUploading {
		time.Sleep(time.Millisecond)
	}
	assert.ErrorIs(t, s.Submit(context.Background()), ErrSubmitInFlight)
	assert.False(t, s.CanSubmit())

	events <- models.UploadResult{Submission: models.Submission{ID: "sub-1"}}
	close(events)
	assert.NoError(t, <-done)
}

func TestTeardownIgnoresLateOutcome(t *testing.T) {
	subRepo := new(mocks.SubmissionRepository)
	dashRepo := new(mocks.DashboardRepository)
	s := newTestSubmissionService(subRepo, dashRepo)
	openSurface(t, s)

	events := make(chan models.UploadEvent)
	var recv <-chan models.UploadEvent = events
	subRepo.On("SubmitWithFile", mock.Anything, "child-1", "mile-1", mock.AnythingOfType("models.MediaFile")).
		Return(recv)

	file := models.MediaFile{Name: "clip.mp4", MIME: "video/mp4", Size: 2048, Content: strings.NewReader("data")}
	assert.NoError(t, s.AttachFile(file))

	done := make(chan error, 1)
	go func() { done <- s.Submit(context.Background()) }()
	for s.Phase() != PhaseUploading {
		time.Sleep(time.Millisecond)
	}

	// View torn down while the upload is still in flight
	s.Close()

	events <- models.UploadResult{Err: errors.New("late failure")}
	close(events)
	<-done

	// The stale outcome must not resurface on the closed surface
	assert.Equal(t, PhaseIdle, s.Phase())
	assert.Empty(t, s.LastError())
	dashRepo.AssertNotCalled(t, "ParentDashboard", mock.Anything, mock.Anything)
}
