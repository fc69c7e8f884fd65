package impl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"MilestoneTracker/models"
	"MilestoneTracker/repositories"
	"MilestoneTracker/services"

	"go.uber.org/zap"
)

type SubmissionRepositoryImpl struct {
	Client *APIClient
}

func NewSubmissionRepository(client *APIClient) repositories.SubmissionRepository {
	return &SubmissionRepositoryImpl{Client: client}
}

type submitResponse struct {
	OK         bool              `json:"ok"`
	Submission models.Submission `json:"submission"`
}

func (r *SubmissionRepositoryImpl) SubmitWithURL(ctx context.Context, childID, milestoneID, mediaURL string) (models.Submission, error) {
	body := map[string]interface{}{
		"childId":     childID,
		"milestoneId": milestoneID,
		"mediaUrl":    nil,
	}
	if mediaURL != "" {
		body["mediaUrl"] = mediaURL
	}

	var resp submitResponse
	if err := r.Client.postJSON(ctx, "/api/parents/milestone/submit", body, &resp); err != nil {
		return models.Submission{}, err
	}
	return resp.Submission, nil
}

// SubmitWithFile uploads the staged file as multipart form data. Progress is
// measured on the request body as it is handed to the transport and reported
// as floor(sent*100/total). Events: zero or more UploadProgress, then exactly
// one UploadResult, then the channel closes. If ctx is cancelled (view
// teardown) no further events are delivered.
func (r *SubmissionRepositoryImpl) SubmitWithFile(ctx context.Context, childID, milestoneID string, file models.MediaFile) <-chan models.UploadEvent {
	events := make(chan models.UploadEvent, 8)

	go func() {
		defer close(events)

		submission, err := r.uploadFile(ctx, childID, milestoneID, file, func(percent int) {
			// Progress is informative only: drop it rather than stall the
			// transfer behind a slow consumer.
			select {
			case events <- models.UploadProgress{Percent: percent}:
			case <-ctx.Done():
			default:
			}
		})

		select {
		case events <- models.UploadResult{Submission: submission, Err: err}:
		case <-ctx.Done():
			// Torn down mid-flight; the stale outcome is dropped.
		}
	}()

	return events
}

func (r *SubmissionRepositoryImpl) uploadFile(ctx context.Context, childID, milestoneID string, file models.MediaFile, onProgress func(int)) (models.Submission, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	// CreateFormFile would stamp application/octet-stream; the backend
	// validates the declared media type, so build the part by hand.
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="media"; filename=%q`, file.Name))
	header.Set("Content-Type", file.MIME)
	part, err := w.CreatePart(header)
	if err != nil {
		return models.Submission{}, &services.TransportError{Message: services.GenericUploadMessage, Err: err}
	}
	if _, err := io.Copy(part, file.Content); err != nil {
		return models.Submission{}, &services.TransportError{Message: services.GenericUploadMessage, Err: err}
	}
	if err := w.WriteField("childId", childID); err != nil {
		return models.Submission{}, &services.TransportError{Message: services.GenericUploadMessage, Err: err}
	}
	if err := w.WriteField("milestoneId", milestoneID); err != nil {
		return models.Submission{}, &services.TransportError{Message: services.GenericUploadMessage, Err: err}
	}
	if err := w.Close(); err != nil {
		return models.Submission{}, &services.TransportError{Message: services.GenericUploadMessage, Err: err}
	}

	body := &progressReader{
		r:          &buf,
		total:      int64(buf.Len()),
		onProgress: onProgress,
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.Client.BaseURL+"/api/parents/milestone/submit-with-file", body)
	if err != nil {
		return models.Submission{}, &services.TransportError{Message: services.GenericUploadMessage, Err: err}
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.ContentLength = body.total

	resp, err := r.Client.HTTP.Do(req)
	if err != nil {
		r.Client.Logger.Warn("file upload failed", zap.String("file", file.Name), zap.Error(err))
		return models.Submission{}, &services.TransportError{Message: "Network error during upload. Please try again.", Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Submission{}, &services.TransportError{Message: services.GenericUploadMessage, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.Submission{}, decodeError(resp.StatusCode, data)
	}

	var parsed submitResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return models.Submission{}, &services.TransportError{Message: services.GenericUploadMessage, Err: err}
	}
	return parsed.Submission, nil
}

func (r *SubmissionRepositoryImpl) FindByStatus(ctx context.Context, status string) ([]models.SubmissionDetail, error) {
	if status == "" {
		status = "all"
	}
	var out []models.SubmissionDetail
	if err := r.Client.getJSON(ctx, fmt.Sprintf("/api/volunteers/submissions?status=%s", status), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SubmissionRepositoryImpl) Review(ctx context.Context, submissionID string, decision repositories.ReviewDecision) (models.Submission, error) {
	body := map[string]interface{}{
		"status":      decision.Status,
		"feedback":    nil,
		"volunteerId": decision.VolunteerID,
	}
	if decision.Feedback != "" {
		body["feedback"] = decision.Feedback
	}

	var resp submitResponse
	if err := r.Client.postJSON(ctx, fmt.Sprintf("/api/volunteers/submission/%s/review", submissionID), body, &resp); err != nil {
		return models.Submission{}, err
	}
	return resp.Submission, nil
}

// progressReader counts bytes as the transport consumes the request body and
// reports whole-percent steps, strictly increasing up to 100.
type progressReader struct {
	r           io.Reader
	total       int64
	sent        int64
	lastPercent int
	onProgress  func(int)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 && p.total > 0 {
		p.sent += int64(n)
		percent := int(p.sent * 100 / p.total)
		if percent > 100 {
			percent = 100
		}
		if percent > p.lastPercent {
			p.lastPercent = percent
			if p.onProgress != nil {
				p.onProgress(percent)
			}
		}
	}
	return n, err
}
