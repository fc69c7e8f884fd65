package impl

import (
	"context"
	"fmt"
	"net/url"

	"MilestoneTracker/models"
	"MilestoneTracker/repositories"
)

type TicketRepositoryImpl struct {
	Client *APIClient
}

func NewTicketRepository(client *APIClient) repositories.TicketRepository {
	return &TicketRepositoryImpl{Client: client}
}

func (r *TicketRepositoryImpl) FindByParent(ctx context.Context, parentID string) ([]models.Ticket, error) {
	path := "/api/parents/tickets"
	if parentID != "" {
		path += "?parentId=" + url.QueryEscape(parentID)
	}
	var tickets []models.Ticket
	if err := r.Client.getJSON(ctx, path, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *TicketRepositoryImpl) Create(ctx context.Context, parentID, message string) (models.Ticket, error) {
	body := map[string]string{
		"parentId": parentID,
		"message":  message,
	}
	var ticket models.Ticket
	if err := r.Client.postJSON(ctx, "/api/parents/ticket", body, &ticket); err != nil {
		return models.Ticket{}, err
	}
	return ticket, nil
}

func (r *TicketRepositoryImpl) Reply(ctx context.Context, ticketID, volunteerID, reply string) (models.Ticket, error) {
	body := map[string]string{
		"reply":       reply,
		"volunteerId": volunteerID,
	}
	var ticket models.Ticket
	if err := r.Client.postJSON(ctx, fmt.Sprintf("/api/parents/tickets/%s/reply", ticketID), body, &ticket); err != nil {
		return models.Ticket{}, err
	}
	return ticket, nil
}
