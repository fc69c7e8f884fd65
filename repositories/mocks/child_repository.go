package mocks

import (
	"context"

	"MilestoneTracker/models"

	"github.com/stretchr/testify/mock"
)

type ChildRepository struct {
	mock.Mock
}

func (m *ChildRepository) Register(ctx context.Context, reg models.ChildRegistration, parentID string, ageGroup models.AgeGroup) (models.Child, error) {
	args := m.Called(ctx, reg, parentID, ageGroup)
	return args.Get(0).(models.Child), args.Error(1)
}

func (m *ChildRepository) FindByParent(ctx context.Context, parentID string) ([]models.Child, error) {
	args := m.Called(ctx, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Child), args.Error(1)
}
