package services

import (
	"errors"
	"fmt"
)

var (
	ErrNoMediaStaged     = errors.New("no media staged: attach a file or enter a media URL")
	ErrSubmitInFlight    = errors.New("a submission request is already in flight")
	ErrNotReviewable     = errors.New("only pending submissions can be reviewed")
	ErrNoSubmissionOpen  = errors.New("no submission surface is open")
	ErrAgeGroupMismatch  = errors.New("milestone does not apply to this child's age group")
	ErrNothingToConfirm  = errors.New("no decision selected")
	ErrReviewInFlight    = errors.New("a review request is already in flight")
	ErrNotParent         = errors.New("action requires a parent session")
	ErrNotVolunteer      = errors.New("action requires a volunteer session")
	GenericUploadMessage = "Upload failed. Please try again."
	GenericNetworkError  = "Network error. Please try again."
)

// ValidationError is a locally blocked input problem. It never reaches the
// network; the caller shows Reason inline and waits for corrected input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// TransportError is a failed backend call: network failure or a non-2xx
// response. Message is already human-readable; an unparsable body falls back
// to a generic message upstream.
type TransportError struct {
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	return e.Message
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
