package repository

import (
	"context"
	"time"

	"github.com/PlanetPuffer/Large-Lifting-Model/internal/models"
)

type RecommendationRepository struct {
	db DBTX
}

func NewRecommendationRepository(db DBTX) *RecommendationRepository {
	return &RecommendationRepository{db: db}
}

// GetForDay returns the user's recommendation created on the given
// calendar day, or pgx.ErrNoRows. Uniqueness per day is enforced by
// lookup-before-create in the service, not by a constraint.
func (r *RecommendationRepository) GetForDay(ctx context.Context, userID int64, day time.Time) (*models.Recommendation, error) {
	query := `
		SELECT id, user_id, created_at, recommendation
		FROM recommendations
		WHERE user_id = $1 AND created_at::date = $2::date
		ORDER BY id DESC
		LIMIT 1
	`
	var rec models.Recommendation
	err := r.db.QueryRow(ctx, query, userID, day).
		Scan(&rec.ID, &rec.UserID, &rec.CreatedAt, &rec.Recommendation)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *RecommendationRepository) Create(ctx context.Context, userID int64, text string) (*models.Recommendation, error) {
	query := `
		INSERT INTO recommendations (user_id, recommendation)
		VALUES ($1, $2)
		RETURNING id, user_id, created_at, recommendation
	`
	var rec models.Recommendation
	err := r.db.QueryRow(ctx, query, userID, text).
		Scan(&rec.ID, &rec.UserID, &rec.CreatedAt, &rec.Recommendation)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
