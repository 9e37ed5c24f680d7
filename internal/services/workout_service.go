package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/PlanetPuffer/Large-Lifting-Model/internal/llm"
	"github.com/PlanetPuffer/Large-Lifting-Model/internal/models"
	"github.com/PlanetPuffer/Large-Lifting-Model/internal/prompt"
	"github.com/PlanetPuffer/Large-Lifting-Model/internal/repository"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrConflict         = errors.New("conflict")
	ErrGenerationFailed = errors.New("workout generation failed")
)

// PlaceholderRecommendation is returned, without being persisted, when a
// user asks for a daily recommendation before creating any workouts.
const PlaceholderRecommendation = `{"recommendation": "Try creating a workout to get started!", "parameters": {"length":"", "workout_type":"", "target_area":""}}`

// maxRecommendationHistory bounds how many recent workouts feed the daily
// recommendation prompt.
const maxRecommendationHistory = 3

type healthProfileReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.HealthProfile, error)
}

type workoutStore interface {
	Create(ctx context.Context, workout *models.Workout) error
	GetForUser(ctx context.Context, userID, workoutID int64) (*models.Workout, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Workout, error)
	ListRecent(ctx context.Context, userID int64, limit int) ([]models.Workout, error)
	CountByUser(ctx context.Context, userID int64) (int, error)
	AppendRevision(ctx context.Context, workoutID, userID int64, changeText, generatedText string, expectedWorkouts int) (*models.Workout, error)
	UpdateFeedback(ctx context.Context, workoutID, userID int64, req repository.UpdateFeedbackInput) (*models.Workout, error)
	Delete(ctx context.Context, userID, workoutID int64) error
}

type recommendationStore interface {
	GetForDay(ctx context.Context, userID int64, day time.Time) (*models.Recommendation, error)
	Create(ctx context.Context, userID int64, text string) (*models.Recommendation, error)
}

type generator interface {
	Complete(ctx context.Context, prompt string) (string, error)
	CompleteWithHistory(ctx context.Context, turns []llm.Turn, finalPrompt string) (string, error)
}

// WorkoutService orchestrates workout generation: it assembles prompts
// from request parameters and the requester's own health profile, calls
// the generation backend, and persists results. Generation failures abort
// the whole operation with nothing persisted.
type WorkoutService struct {
	healthRepo  healthProfileReader
	workoutRepo workoutStore
	recRepo     recommendationStore
	generator   generator
	now         func() time.Time
}

func NewWorkoutService(
	healthRepo healthProfileReader,
	workoutRepo workoutStore,
	recRepo recommendationStore,
	generator generator,
) *WorkoutService {
	return &WorkoutService{
		healthRepo:  healthRepo,
		workoutRepo: workoutRepo,
		recRepo:     recRepo,
		generator:   generator,
		now:         time.Now,
	}
}

type CreateWorkoutInput struct {
	Difficulty                 models.Difficulty
	WorkoutType                string
	EquipmentAccess            string
	TargetArea                 *string
	Length                     *int
	IncludedExercises          *string
	ExcludedExercises          *string
	OtherWorkoutConsiderations *string
}

func (s *WorkoutService) CreateWorkout(ctx context.Context, userID int64, input CreateWorkoutInput) (*models.Workout, error) {
	if !input.Difficulty.Valid() {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(input.WorkoutType) == "" || strings.TrimSpace(input.EquipmentAccess) == "" {
		return nil, ErrInvalidInput
	}

	workout := models.Workout{
		UserID:                     userID,
		Difficulty:                 input.Difficulty,
		WorkoutType:                input.WorkoutType,
		EquipmentAccess:            input.EquipmentAccess,
		TargetArea:                 input.TargetArea,
		Length:                     input.Length,
		IncludedExercises:          input.IncludedExercises,
		ExcludedExercises:          input.ExcludedExercises,
		OtherWorkoutConsiderations: input.OtherWorkoutConsiderations,
	}

	health, err := s.healthRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		// A user without a stored profile still gets a workout; the
		// health lines render empty.
		health = &models.HealthProfile{UserID: userID}
	}

	generated, err := s.generator.Complete(ctx, prompt.BuildCreationPrompt(workout, *health))
	if err != nil {
		return nil, errors.Join(ErrGenerationFailed, err)
	}

	workout.SuggestedChanges = []string{}
	workout.SuggestedWorkouts = []string{generated}

	if err := s.workoutRepo.Create(ctx, &workout); err != nil {
		return nil, err
	}
	return &workout, nil
}

// ReviseWorkout runs one revision turn: the stored history becomes the
// conversation seed and changeText is sent as the final prompt. Both
// history sequences are appended in one guarded statement, so a
// concurrent revision of the same workout surfaces as ErrConflict and a
// failed generation persists nothing.
func (s *WorkoutService) ReviseWorkout(ctx context.Context, userID, workoutID int64, changeText string) (*models.Workout, error) {
	changeText = strings.TrimSpace(changeText)
	if changeText == "" {
		return nil, ErrInvalidInput
	}

	workout, err := s.workoutRepo.GetForUser(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}

	turns, finalPrompt := prompt.BuildRevisionConversation(workout.SuggestedWorkouts, workout.SuggestedChanges, changeText)
	generated, err := s.generator.CompleteWithHistory(ctx, turns, finalPrompt)
	if err != nil {
		return nil, errors.Join(ErrGenerationFailed, err)
	}

	revised, err := s.workoutRepo.AppendRevision(ctx, workoutID, userID, changeText, generated, len(workout.SuggestedWorkouts))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return revised, nil
}

// DailyRecommendation returns today's recommendation, generating and
// persisting one from the user's latest workouts if none exists yet. A
// user with no workouts gets a fixed placeholder that is never stored.
func (s *WorkoutService) DailyRecommendation(ctx context.Context, userID int64) (*models.Recommendation, error) {
	today := s.now()

	existing, err := s.recRepo.GetForDay(ctx, userID, today)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	count, err := s.workoutRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return &models.Recommendation{UserID: userID, Recommendation: PlaceholderRecommendation}, nil
	}

	recent, err := s.workoutRepo.ListRecent(ctx, userID, min(count, maxRecommendationHistory))
	if err != nil {
		return nil, err
	}
	latest := make([]string, 0, len(recent))
	for i := range recent {
		latest = append(latest, recent[i].CurrentWorkout())
	}

	generated, err := s.generator.Complete(ctx, prompt.BuildRecommendationPrompt(latest))
	if err != nil {
		return nil, errors.Join(ErrGenerationFailed, err)
	}

	return s.recRepo.Create(ctx, userID, generated)
}

func (s *WorkoutService) ListWorkouts(ctx context.Context, userID int64) ([]models.Workout, error) {
	return s.workoutRepo.ListByUser(ctx, userID)
}

func (s *WorkoutService) GetWorkout(ctx context.Context, userID, workoutID int64) (*models.Workout, error) {
	return s.workoutRepo.GetForUser(ctx, userID, workoutID)
}

type WorkoutFeedbackInput struct {
	WorkoutRating   *int
	WorkoutComments *string
	ActualLength    *int
}

func (s *WorkoutService) UpdateFeedback(ctx context.Context, userID, workoutID int64, input WorkoutFeedbackInput) (*models.Workout, error) {
	if input.WorkoutRating != nil && (*input.WorkoutRating < 0 || *input.WorkoutRating > 5) {
		return nil, ErrInvalidInput
	}
	if input.ActualLength != nil && *input.ActualLength <= 0 {
		return nil, ErrInvalidInput
	}
	return s.workoutRepo.UpdateFeedback(ctx, workoutID, userID, repository.UpdateFeedbackInput{
		WorkoutRating:   input.WorkoutRating,
		WorkoutComments: input.WorkoutComments,
		ActualLength:    input.ActualLength,
	})
}

func (s *WorkoutService) DeleteWorkout(ctx context.Context, userID, workoutID int64) error {
	return s.workoutRepo.Delete(ctx, userID, workoutID)
}
