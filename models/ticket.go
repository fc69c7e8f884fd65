package models

import "time"

const (
	TicketOpen   = "open"
	TicketClosed = "closed"
)

// Ticket is a free-text support message from a parent. The backend sets the
// reply and the closed status together when a volunteer answers; the client
// treats them as co-occurring.
type Ticket struct {
	ID          string    `json:"id"`
	ParentID    string    `json:"parentId"`
	ParentName  string    `json:"parentName,omitempty"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	VolunteerID string    `json:"volunteerId,omitempty"`
	Reply       string    `json:"reply,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// HasVolunteerReply reports whether the ticket counts as answered.
func (t Ticket) HasVolunteerReply() bool {
	return t.Status == TicketClosed && t.VolunteerID != ""
}
