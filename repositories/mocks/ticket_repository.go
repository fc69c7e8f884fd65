package mocks

import (
	"context"

	"MilestoneTracker/models"

	"github.com/stretchr/testify/mock"
)

type TicketRepository struct {
	mock.Mock
}

func (m *TicketRepository) FindByParent(ctx context.Context, parentID string) ([]models.Ticket, error) {
	args := m.Called(ctx, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ticket), args.Error(1)
}

func (m *TicketRepository) Create(ctx context.Context, parentID, message string) (models.Ticket, error) {
	args := m.Called(ctx, parentID, message)
	return args.Get(0).(models.Ticket), args.Error(1)
}

func (m *TicketRepository) Reply(ctx context.Context, ticketID, volunteerID, reply string) (models.Ticket, error) {
	args := m.Called(ctx, ticketID, volunteerID, reply)
	return args.Get(0).(models.Ticket), args.Error(1)
}
