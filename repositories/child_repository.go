package repositories

import (
	"context"

	"MilestoneTracker/models"
)

type ChildRepository interface {
	Register(ctx context.Context, reg models.ChildRegistration, parentID string, ageGroup models.AgeGroup) (models.Child, error)
	FindByParent(ctx context.Context, parentID string) ([]models.Child, error)
}
