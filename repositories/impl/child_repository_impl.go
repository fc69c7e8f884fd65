package impl

import (
	"context"
	"fmt"

	"MilestoneTracker/models"
	"MilestoneTracker/repositories"
)

type ChildRepositoryImpl struct {
	Client *APIClient
}

func NewChildRepository(client *APIClient) repositories.ChildRepository {
	return &ChildRepositoryImpl{Client: client}
}

func (r *ChildRepositoryImpl) Register(ctx context.Context, reg models.ChildRegistration, parentID string, ageGroup models.AgeGroup) (models.Child, error) {
	body := map[string]interface{}{
		"name":              reg.Name,
		"dob":               reg.DOB,
		"gender":            reg.Gender,
		"medicalConditions": reg.MedicalConditions,
		"allergies":         reg.Allergies,
		"parentId":          parentID,
		"ageGroup":          ageGroup,
	}

	var child models.Child
	if err := r.Client.postJSON(ctx, "/api/parents/child/register", body, &child); err != nil {
		return models.Child{}, err
	}
	return child, nil
}

func (r *ChildRepositoryImpl) FindByParent(ctx context.Context, parentID string) ([]models.Child, error) {
	var children []models.Child
	if err := r.Client.getJSON(ctx, fmt.Sprintf("/api/milestones/children/%s", parentID), &children); err != nil {
		return nil, err
	}
	return children, nil
}
