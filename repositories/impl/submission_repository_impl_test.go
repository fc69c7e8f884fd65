package impl

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"MilestoneTracker/models"
	"MilestoneTracker/repositories"
	"MilestoneTracker/services"
	"MilestoneTracker/stubserver"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, session models.Session) *APIClient {
	t.Helper()
	gin.SetMode(gin.TestMode)

	server, err := stubserver.NewServer(zap.NewNop())
	assert.NoError(t, err)
	ts := httptest.NewServer(server.Router())
	t.Cleanup(ts.Close)

	return NewAPIClient(ts.URL, session, 5*time.Second, zap.NewNop())
}

var (
	parentSession    = models.Session{UserID: "parent-1", Name: "Priya", Role: models.RoleParent}
	volunteerSession = models.Session{UserID: "vol-1", Name: "Rohan", Role: models.RoleVolunteer}
)

func registerChild(t *testing.T, client *APIClient) models.Child {
	t.Helper()
	child, err := NewChildRepository(client).Register(context.Background(),
		models.ChildRegistration{Name: "Aarav", DOB: "2023-04-12", Gender: "male"},
		parentSession.UserID, models.AgeGroup0To3)
	assert.NoError(t, err)
	assert.NotEmpty(t, child.ID)
	return child
}

func TestSubmitWithURLRoundTrip(t *testing.T) {
	client := newTestClient(t, parentSession)
	child := registerChild(t, client)
	repo := NewSubmissionRepository(client)
	ctx := context.Background()

	sub, err := repo.SubmitWithURL(ctx, child.ID, "m1", "https://example.com/crawl.mp4")
	assert.NoError(t, err)
	assert.Equal(t, models.StatusPending, sub.Status)
	assert.Equal(t, "https://example.com/crawl.mp4", sub.MediaURL)

	// Re-submitting the same pair while pending returns the same row
	again, err := repo.SubmitWithURL(ctx, child.ID, "m1", "https://example.com/crawl.mp4")
	assert.NoError(t, err)
	assert.Equal(t, sub.ID, again.ID)
}

func TestSubmitWithURLUnknownChild(t *testing.T) {
	client := newTestClient(t, parentSession)
	repo := NewSubmissionRepository(client)

	_, err := repo.SubmitWithURL(context.Background(), "nope", "m1", "https://example.com/x.mp4")
	var terr *services.TransportError
	assert.ErrorAs(t, err, &terr)
	assert.Equal(t, "child not found", terr.Message)
}

func TestSubmitWithFileRoundTrip(t *testing.T) {
	client := newTestClient(t, parentSession)
	child := registerChild(t, client)
	repo := NewSubmissionRepository(client)

	file := models.MediaFile{
		Name:    "crawl.jpg",
		MIME:    "image/jpeg",
		Size:    2048,
		Content: strings.NewReader(strings.Repeat("x", 2048)),
	}

	var progress []int
	var terminal *models.UploadResult
	for ev := range repo.SubmitWithFile(context.Background(), child.ID, "m1", file) {
		switch e := ev.(type) {
		case models.UploadProgress:
			progress = append(progress, e.Percent)
		case models.UploadResult:
			assert.Nil(t, terminal, "expected a single terminal event")
			terminal = &e
		}
	}

	assert.NotNil(t, terminal)
	assert.NoError(t, terminal.Err)
	assert.Equal(t, models.StatusPending, terminal.Submission.Status)
	assert.Equal(t, "crawl.jpg", terminal.Submission.FileName)
	assert.Equal(t, "image/jpeg", terminal.Submission.FileType)

	for i := 1; i < len(progress); i++ {
		assert.Greater(t, progress[i], progress[i-1])
	}
	if len(progress) > 0 {
		assert.LessOrEqual(t, progress[len(progress)-1], 100)
	}
}

func TestSubmitWithFileRejectedType(t *testing.T) {
	client := newTestClient(t, parentSession)
	child := registerChild(t, client)
	repo := NewSubmissionRepository(client)

	file := models.MediaFile{Name: "doc.pdf", MIME: "application/pdf", Size: 4, Content: strings.NewReader("data")}

	var terminal *models.UploadResult
	for ev := range repo.SubmitWithFile(context.Background(), child.ID, "m1", file) {
		if e, ok := ev.(models.UploadResult); ok {
			terminal = &e
		}
	}

	assert.NotNil(t, terminal)
	var terr *services.TransportError
	assert.ErrorAs(t, terminal.Err, &terr)
	assert.Contains(t, terr.Message, "unsupported type")
}

func TestReviewRoundTrip(t *testing.T) {
	client := newTestClient(t, parentSession)
	child := registerChild(t, client)
	repo := NewSubmissionRepository(client)
	ctx := context.Background()

	sub, err := repo.SubmitWithURL(ctx, child.ID, "m1", "https://example.com/crawl.mp4")
	assert.NoError(t, err)

	pending, err := repo.FindByStatus(ctx, "pending")
	assert.NoError(t, err)
	assert.Len(t, pending, 1)
	assert.Equal(t, "Aarav", pending[0].ChildName)
	assert.Equal(t, "Crawling", pending[0].MilestoneTitle)

	reviewed, err := repo.Review(ctx, sub.ID, repositories.ReviewDecision{
		Status:      models.StatusRejected,
		Feedback:    "Video does not show crawling",
		VolunteerID: volunteerSession.UserID,
	})
	assert.NoError(t, err)
	assert.Equal(t, models.StatusRejected, reviewed.Status)
	assert.Equal(t, "Video does not show crawling", reviewed.Feedback)

	rejected, err := repo.FindByStatus(ctx, "rejected")
	assert.NoError(t, err)
	assert.Len(t, rejected, 1)

	// Terminal states are final
	_, err = repo.Review(ctx, sub.ID, repositories.ReviewDecision{
		Status:      models.StatusAccepted,
		VolunteerID: volunteerSession.UserID,
	})
	assert.Error(t, err)

	// And the pair cannot be re-submitted once reviewed
	_, err = repo.SubmitWithURL(ctx, child.ID, "m1", "https://example.com/retry.mp4")
	var terr *services.TransportError
	assert.ErrorAs(t, err, &terr)
	assert.Contains(t, terr.Message, "already been reviewed")
}

func TestRejectWithoutFeedbackRefusedByBackend(t *testing.T) {
	client := newTestClient(t, parentSession)
	child := registerChild(t, client)
	repo := NewSubmissionRepository(client)
	ctx := context.Background()

	sub, err := repo.SubmitWithURL(ctx, child.ID, "m1", "https://example.com/crawl.mp4")
	assert.NoError(t, err)

	_, err = repo.Review(ctx, sub.ID, repositories.ReviewDecision{
		Status:      models.StatusRejected,
		VolunteerID: volunteerSession.UserID,
	})
	var terr *services.TransportError
	assert.ErrorAs(t, err, &terr)
	assert.Contains(t, terr.Message, "feedback is required")
}
