package mocks

import (
	"context"

	"MilestoneTracker/models"

	"github.com/stretchr/testify/mock"
)

type MilestoneRepository struct {
	mock.Mock
}

func (m *MilestoneRepository) FindAll(ctx context.Context) ([]models.Milestone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Milestone), args.Error(1)
}
