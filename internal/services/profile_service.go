package services

import (
	"context"

	"github.com/PlanetPuffer/Large-Lifting-Model/internal/models"
	"github.com/PlanetPuffer/Large-Lifting-Model/internal/repository"
)

type userProfileStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, req repository.UpdateUserInput) (*models.User, error)
}

type healthProfileStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.HealthProfile, error)
	UpdatePartial(ctx context.Context, userID int64, req repository.UpdateHealthProfileInput) (*models.HealthProfile, error)
}

// ProfileService serves the combined user/health profile view. Health
// data lives and dies with its user and is only ever updated in place.
type ProfileService struct {
	userRepo   userProfileStore
	healthRepo healthProfileStore
}

func NewProfileService(userRepo userProfileStore, healthRepo healthProfileStore) *ProfileService {
	return &ProfileService{
		userRepo:   userRepo,
		healthRepo: healthRepo,
	}
}

func (s *ProfileService) GetProfile(ctx context.Context, userID int64) (*models.User, *models.HealthProfile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	health, err := s.healthRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return user, health, nil
}

type UpdateProfileInput struct {
	User   repository.UpdateUserInput
	Health repository.UpdateHealthProfileInput
}

// UpdateProfile applies a partial update to both halves of the profile
// and clears the user's first-login flag.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID int64, input UpdateProfileInput) (*models.User, *models.HealthProfile, error) {
	user, err := s.userRepo.UpdateProfile(ctx, userID, input.User)
	if err != nil {
		return nil, nil, err
	}
	health, err := s.healthRepo.UpdatePartial(ctx, userID, input.Health)
	if err != nil {
		return nil, nil, err
	}
	return user, health, nil
}
