package services

import (
	"context"
	"sort"
	"strings"

	"MilestoneTracker/models"
	"MilestoneTracker/repositories"
	"MilestoneTracker/storage"

	"go.uber.org/zap"
)

// NotificationState is the derived badge state for the parent dashboard.
type NotificationState struct {
	Latest *models.Ticket
	Unread bool
}

// TicketService covers the support-ticket channel: parents open tickets,
// volunteers reply, and the parent side derives the "new reply" badge from
// the ticket list plus a persisted last-viewed marker.
type TicketService struct {
	TicketRepo repositories.TicketRepository
	Markers    storage.KeyValueStore
	Logger     *zap.Logger
}

func NewTicketService(ticketRepo repositories.TicketRepository, markers storage.KeyValueStore, logger *zap.Logger) *TicketService {
	return &TicketService{TicketRepo: ticketRepo, Markers: markers, Logger: logger}
}

// LatestVolunteerReply picks the newest answered ticket, or nil when none
// qualifies. Pure; repeated calls over the same list agree.
func LatestVolunteerReply(tickets []models.Ticket) *models.Ticket {
	var replies []models.Ticket
	for _, t := range tickets {
		if t.HasVolunteerReply() {
			replies = append(replies, t)
		}
	}
	if len(replies) == 0 {
		return nil
	}
	sort.Slice(replies, func(i, j int) bool {
		return replies[i].CreatedAt.After(replies[j].CreatedAt)
	})
	return &replies[0]
}

// OpenTickets filters the volunteer view down to tickets awaiting a reply.
func OpenTickets(tickets []models.Ticket) []models.Ticket {
	var open []models.Ticket
	for _, t := range tickets {
		if t.Status == models.TicketOpen {
			open = append(open, t)
		}
	}
	return open
}

// Notifications fetches the parent's tickets and derives the badge state:
// unread iff a latest reply exists and it is not the one recorded as viewed.
func (s *TicketService) Notifications(ctx context.Context, parentID string) (NotificationState, error) {
	tickets, err := s.TicketRepo.FindByParent(ctx, parentID)
	if err != nil {
		return NotificationState{}, err
	}

	latest := LatestVolunteerReply(tickets)
	if latest == nil {
		return NotificationState{}, nil
	}

	viewed, ok, err := s.Markers.Get(ctx, storage.KeyLastViewedReply)
	if err != nil {
		return NotificationState{}, err
	}
	return NotificationState{
		Latest: latest,
		Unread: !ok || viewed != latest.ID,
	}, nil
}

// MarkReplyViewed persists the reply as seen; the next derivation reports
// unread=false until a newer reply arrives.
func (s *TicketService) MarkReplyViewed(ctx context.Context, reply models.Ticket) error {
	return s.Markers.Set(ctx, storage.KeyLastViewedReply, reply.ID)
}

// CreateTicket opens a new ticket for the parent. The message is trimmed and
// must be non-empty.
func (s *TicketService) CreateTicket(ctx context.Context, session models.Session, message string) (models.Ticket, error) {
	if !session.IsParent() {
		return models.Ticket{}, ErrNotParent
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return models.Ticket{}, &ValidationError{Field: "message", Reason: "message must not be empty"}
	}

	ticket, err := s.TicketRepo.Create(ctx, session.UserID, message)
	if err != nil {
		return models.Ticket{}, err
	}
	s.Logger.Info("ticket created", zap.String("ticketId", ticket.ID))
	return ticket, nil
}

// ReplyToTicket posts a volunteer's answer; the backend closes the ticket and
// records the volunteer in the same step.
func (s *TicketService) ReplyToTicket(ctx context.Context, session models.Session, ticketID, reply string) (models.Ticket, error) {
	if !session.IsVolunteer() {
		return models.Ticket{}, ErrNotVolunteer
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return models.Ticket{}, &ValidationError{Field: "reply", Reason: "reply must not be empty"}
	}

	ticket, err := s.TicketRepo.Reply(ctx, ticketID, session.UserID, reply)
	if err != nil {
		return models.Ticket{}, err
	}
	s.Logger.Info("ticket replied", zap.String("ticketId", ticket.ID), zap.String("volunteerId", session.UserID))
	return ticket, nil
}
