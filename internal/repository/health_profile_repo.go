package repository

import (
	"context"
	"time"

	"github.com/PlanetPuffer/Large-Lifting-Model/internal/models"
)

type HealthProfileRepository struct {
	db DBTX
}

func NewHealthProfileRepository(db DBTX) *HealthProfileRepository {
	return &HealthProfileRepository{db: db}
}

// CreateEmpty inserts the all-null health profile that accompanies every
// new user. It is called inside the registration transaction.
func (r *HealthProfileRepository) CreateEmpty(ctx context.Context, userID int64) error {
	query := `INSERT INTO health_profiles (user_id) VALUES ($1)`
	_, err := r.db.Exec(ctx, query, userID)
	return err
}

func (r *HealthProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.HealthProfile, error) {
	query := `
		SELECT id, user_id, dob, gender, height_m, weight_kg, favourite_workout_type,
			   workout_experience, fitness_goal, injuries, other_considerations,
			   created_at, updated_at
		FROM health_profiles
		WHERE user_id = $1
	`
	var profile models.HealthProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.DOB,
		&profile.Gender,
		&profile.HeightM,
		&profile.WeightKG,
		&profile.FavouriteWorkoutType,
		&profile.WorkoutExperience,
		&profile.FitnessGoal,
		&profile.Injuries,
		&profile.OtherConsiderations,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

type UpdateHealthProfileInput struct {
	DOB                  *time.Time
	Gender               *models.Gender
	HeightM              *float64
	WeightKG             *float64
	FavouriteWorkoutType *models.FavouriteWorkoutType
	WorkoutExperience    *models.ExperienceLevel
	FitnessGoal          *string
	Injuries             *string
	OtherConsiderations  *string
}

func (r *HealthProfileRepository) UpdatePartial(ctx context.Context, userID int64, req UpdateHealthProfileInput) (*models.HealthProfile, error) {
	query := `
		UPDATE health_profiles
		SET dob = COALESCE($1, dob),
			gender = COALESCE($2, gender),
			height_m = COALESCE($3, height_m),
			weight_kg = COALESCE($4, weight_kg),
			favourite_workout_type = COALESCE($5, favourite_workout_type),
			workout_experience = COALESCE($6, workout_experience),
			fitness_goal = COALESCE($7, fitness_goal),
			injuries = COALESCE($8, injuries),
			other_considerations = COALESCE($9, other_considerations),
			updated_at = NOW()
		WHERE user_id = $10
		RETURNING id, user_id, dob, gender, height_m, weight_kg, favourite_workout_type,
				  workout_experience, fitness_goal, injuries, other_considerations,
				  created_at, updated_at
	`
	var profile models.HealthProfile
	err := r.db.QueryRow(ctx, query,
		req.DOB,
		req.Gender,
		req.HeightM,
		req.WeightKG,
		req.FavouriteWorkoutType,
		req.WorkoutExperience,
		req.FitnessGoal,
		req.Injuries,
		req.OtherConsiderations,
		userID,
	).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.DOB,
		&profile.Gender,
		&profile.HeightM,
		&profile.WeightKG,
		&profile.FavouriteWorkoutType,
		&profile.WorkoutExperience,
		&profile.FitnessGoal,
		&profile.Injuries,
		&profile.OtherConsiderations,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
