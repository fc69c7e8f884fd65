package mocks

import (
	"context"

	"MilestoneTracker/models"

	"github.com/stretchr/testify/mock"
)

type DashboardRepository struct {
	mock.Mock
}

func (m *DashboardRepository) ParentDashboard(ctx context.Context, parentID string) (models.ParentDashboard, error) {
	args := m.Called(ctx, parentID)
	return args.Get(0).(models.ParentDashboard), args.Error(1)
}

func (m *DashboardRepository) VolunteerDashboard(ctx context.Context) (models.VolunteerDashboard, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.VolunteerDashboard), args.Error(1)
}
