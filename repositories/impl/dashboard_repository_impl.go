package impl

import (
	"context"
	"fmt"

	"MilestoneTracker/models"
	"MilestoneTracker/repositories"
)

type DashboardRepositoryImpl struct {
	Client *APIClient
}

func NewDashboardRepository(client *APIClient) repositories.DashboardRepository {
	return &DashboardRepositoryImpl{Client: client}
}

func (r *DashboardRepositoryImpl) ParentDashboard(ctx context.Context, parentID string) (models.ParentDashboard, error) {
	var dashboard models.ParentDashboard
	if err := r.Client.getJSON(ctx, fmt.Sprintf("/api/parents/dashboard/%s", parentID), &dashboard); err != nil {
		return models.ParentDashboard{}, err
	}
	return dashboard, nil
}

func (r *DashboardRepositoryImpl) VolunteerDashboard(ctx context.Context) (models.VolunteerDashboard, error) {
	var dashboard models.VolunteerDashboard
	if err := r.Client.getJSON(ctx, "/api/volunteers/dashboard", &dashboard); err != nil {
		return models.VolunteerDashboard{}, err
	}
	return dashboard, nil
}
