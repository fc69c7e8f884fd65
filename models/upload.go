package models

// UploadEvent is one message on a file upload's event channel: zero or more
// UploadProgress values while the transfer is in flight, then exactly one
// UploadResult, then the channel is closed.
type UploadEvent interface {
	uploadEvent()
}

// UploadProgress carries the percentage sent so far, 0-100, monotonically
// non-decreasing. Informative only; it may be dropped if the consumer lags.
type UploadProgress struct {
	Percent int
}

func (UploadProgress) uploadEvent() {}

// UploadResult is the single terminal outcome of an upload.
type UploadResult struct {
	Submission Submission
	Err        error
}

func (UploadResult) uploadEvent() {}
