package services

import (
	"context"
	"time"

	"MilestoneTracker/models"
	"MilestoneTracker/repositories"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const dobLayout = "2006-01-02"

// ChildService registers children. The age group is computed from the date of
// birth once here, at creation time, and sent along with the form; it is not
// recomputed as the child ages.
type ChildService struct {
	ChildRepo repositories.ChildRepository
	Validate  *validator.Validate
	Logger    *zap.Logger
	Now       func() time.Time
}

func NewChildService(childRepo repositories.ChildRepository, logger *zap.Logger) *ChildService {
	return &ChildService{
		ChildRepo: childRepo,
		Validate:  validator.New(),
		Logger:    logger,
		Now:       time.Now,
	}
}

func (s *ChildService) Register(ctx context.Context, session models.Session, reg models.ChildRegistration) (models.Child, error) {
	if !session.IsParent() {
		return models.Child{}, ErrNotParent
	}
	if err := s.Validate.Struct(reg); err != nil {
		return models.Child{}, &ValidationError{Field: "registration", Reason: err.Error()}
	}

	dob, err := time.Parse(dobLayout, reg.DOB)
	if err != nil {
		return models.Child{}, &ValidationError{Field: "dob", Reason: "date of birth must be YYYY-MM-DD"}
	}
	today := s.Now()
	if dob.After(today) {
		// The date picker caps at today; a future date here means a broken caller.
		return models.Child{}, &ValidationError{Field: "dob", Reason: "date of birth cannot be in the future"}
	}

	ageGroup := CalculateAgeGroup(dob, today)
	child, err := s.ChildRepo.Register(ctx, reg, session.UserID, ageGroup)
	if err != nil {
		return models.Child{}, err
	}

	s.Logger.Info("child registered",
		zap.String("childId", child.ID),
		zap.String("ageGroup", string(child.AgeGroup)))
	return child, nil
}

func (s *ChildService) Children(ctx context.Context, session models.Session) ([]models.Child, error) {
	if !session.IsParent() {
		return nil, ErrNotParent
	}
	return s.ChildRepo.FindByParent(ctx, session.UserID)
}
