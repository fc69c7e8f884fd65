package impl

import (
	"context"

	"MilestoneTracker/models"
	"MilestoneTracker/repositories"
)

type MilestoneRepositoryImpl struct {
	Client *APIClient
}

func NewMilestoneRepository(client *APIClient) repositories.MilestoneRepository {
	return &MilestoneRepositoryImpl{Client: client}
}

func (r *MilestoneRepositoryImpl) FindAll(ctx context.Context) ([]models.Milestone, error) {
	var milestones []models.Milestone
	if err := r.Client.getJSON(ctx, "/api/milestones/milestones", &milestones); err != nil {
		return nil, err
	}
	return milestones, nil
}
