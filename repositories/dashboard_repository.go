package repositories

import (
	"context"

	"MilestoneTracker/models"
)

type DashboardRepository interface {
	ParentDashboard(ctx context.Context, parentID string) (models.ParentDashboard, error)
	VolunteerDashboard(ctx context.Context) (models.VolunteerDashboard, error)
}
