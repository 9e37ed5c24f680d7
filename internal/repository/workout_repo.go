package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/PlanetPuffer/Large-Lifting-Model/internal/models"
)

const workoutColumns = `id, user_id, created_at, difficulty, workout_type, equipment_access,
	target_area, length_minutes, included_exercises, excluded_exercises,
	other_workout_considerations, llm_suggested_changes, llm_suggested_workout,
	workout_rating, workout_comments, actual_length`

type WorkoutRepository struct {
	db DBTX
}

func NewWorkoutRepository(db DBTX) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

// Create persists a freshly generated workout. The caller fills UserID,
// the request parameters and the initial one-element suggested-workout
// sequence; ID and CreatedAt are set from the returning row.
func (r *WorkoutRepository) Create(ctx context.Context, workout *models.Workout) error {
	query := `
		INSERT INTO workouts (user_id, difficulty, workout_type, equipment_access,
			target_area, length_minutes, included_exercises, excluded_exercises,
			other_workout_considerations, llm_suggested_changes, llm_suggested_workout)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`
	return r.db.QueryRow(ctx, query,
		workout.UserID,
		workout.Difficulty,
		workout.WorkoutType,
		workout.EquipmentAccess,
		workout.TargetArea,
		workout.Length,
		workout.IncludedExercises,
		workout.ExcludedExercises,
		workout.OtherWorkoutConsiderations,
		workout.SuggestedChanges,
		workout.SuggestedWorkouts,
	).Scan(&workout.ID, &workout.CreatedAt)
}

func (r *WorkoutRepository) GetForUser(ctx context.Context, userID, workoutID int64) (*models.Workout, error) {
	query := `SELECT ` + workoutColumns + ` FROM workouts WHERE id = $1 AND user_id = $2`
	row := r.db.QueryRow(ctx, query, workoutID, userID)
	return scanWorkout(row)
}

func (r *WorkoutRepository) ListByUser(ctx context.Context, userID int64) ([]models.Workout, error) {
	query := `SELECT ` + workoutColumns + ` FROM workouts WHERE user_id = $1 ORDER BY id DESC`
	return r.queryWorkouts(ctx, query, userID)
}

// ListRecent returns the newest workouts first, at most limit of them.
func (r *WorkoutRepository) ListRecent(ctx context.Context, userID int64, limit int) ([]models.Workout, error) {
	query := `SELECT ` + workoutColumns + ` FROM workouts WHERE user_id = $1 ORDER BY id DESC LIMIT $2`
	return r.queryWorkouts(ctx, query, userID, limit)
}

func (r *WorkoutRepository) CountByUser(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM workouts WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}

// AppendRevision appends one revision turn to both history sequences in a
// single statement. The cardinality guard makes the append optimistic: it
// only applies if no other revision landed since the caller loaded the
// record, in which case pgx.ErrNoRows is returned.
func (r *WorkoutRepository) AppendRevision(ctx context.Context, workoutID, userID int64, changeText, generatedText string, expectedWorkouts int) (*models.Workout, error) {
	query := `
		UPDATE workouts
		SET llm_suggested_changes = array_append(llm_suggested_changes, $3),
			llm_suggested_workout = array_append(llm_suggested_workout, $4)
		WHERE id = $1 AND user_id = $2 AND cardinality(llm_suggested_workout) = $5
		RETURNING ` + workoutColumns
	row := r.db.QueryRow(ctx, query, workoutID, userID, changeText, generatedText, expectedWorkouts)
	return scanWorkout(row)
}

type UpdateFeedbackInput struct {
	WorkoutRating   *int
	WorkoutComments *string
	ActualLength    *int
}

func (r *WorkoutRepository) UpdateFeedback(ctx context.Context, workoutID, userID int64, req UpdateFeedbackInput) (*models.Workout, error) {
	query := `
		UPDATE workouts
		SET workout_rating = COALESCE($3, workout_rating),
			workout_comments = COALESCE($4, workout_comments),
			actual_length = COALESCE($5, actual_length)
		WHERE id = $1 AND user_id = $2
		RETURNING ` + workoutColumns
	row := r.db.QueryRow(ctx, query, workoutID, userID, req.WorkoutRating, req.WorkoutComments, req.ActualLength)
	return scanWorkout(row)
}

func (r *WorkoutRepository) Delete(ctx context.Context, userID, workoutID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM workouts WHERE id = $1 AND user_id = $2`, workoutID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *WorkoutRepository) queryWorkouts(ctx context.Context, query string, args ...any) ([]models.Workout, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workouts := make([]models.Workout, 0)
	for rows.Next() {
		workout, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, *workout)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return workouts, nil
}

func scanWorkout(row pgx.Row) (*models.Workout, error) {
	var workout models.Workout
	err := row.Scan(
		&workout.ID,
		&workout.UserID,
		&workout.CreatedAt,
		&workout.Difficulty,
		&workout.WorkoutType,
		&workout.EquipmentAccess,
		&workout.TargetArea,
		&workout.Length,
		&workout.IncludedExercises,
		&workout.ExcludedExercises,
		&workout.OtherWorkoutConsiderations,
		&workout.SuggestedChanges,
		&workout.SuggestedWorkouts,
		&workout.WorkoutRating,
		&workout.WorkoutComments,
		&workout.ActualLength,
	)
	if err != nil {
		return nil, err
	}
	return &workout, nil
}
