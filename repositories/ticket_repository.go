package repositories

import (
	"context"

	"MilestoneTracker/models"
)

type TicketRepository interface {
	// FindByParent returns the parent's tickets; an empty parentID returns all
	// tickets (the volunteer view).
	FindByParent(ctx context.Context, parentID string) ([]models.Ticket, error)
	Create(ctx context.Context, parentID, message string) (models.Ticket, error)
	Reply(ctx context.Context, ticketID, volunteerID, reply string) (models.Ticket, error)
}
