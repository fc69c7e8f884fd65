package repositories

import (
	"context"

	"MilestoneTracker/models"
)

type MilestoneRepository interface {
	FindAll(ctx context.Context) ([]models.Milestone, error)
}
