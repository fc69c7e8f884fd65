package middlewares

import (
	"net/http"

	"MilestoneTracker/models"
)

// SessionTransport attaches the authenticated session identity to every
// outgoing request. Token issuance and verification live behind the external
// auth boundary; the engine only forwards what it was handed.
type SessionTransport struct {
	Session models.Session
	Base    http.RoundTripper
}

func (t *SessionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone per the RoundTripper contract: the original request must not be
	// mutated.
	r := req.Clone(req.Context())
	if t.Session.UserID != "" {
		r.Header.Set("X-User-Id", t.Session.UserID)
		r.Header.Set("X-User-Role", t.Session.Role)
	}
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(r)
}
