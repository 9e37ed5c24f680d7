package handlers

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/PlanetPuffer/Large-Lifting-Model/internal/models"
	"github.com/PlanetPuffer/Large-Lifting-Model/internal/services"
)

type workoutApplicationService interface {
	CreateWorkout(ctx context.Context, userID int64, input services.CreateWorkoutInput) (*models.Workout, error)
	ReviseWorkout(ctx context.Context, userID, workoutID int64, changeText string) (*models.Workout, error)
	ListWorkouts(ctx context.Context, userID int64) ([]models.Workout, error)
	GetWorkout(ctx context.Context, userID, workoutID int64) (*models.Workout, error)
	UpdateFeedback(ctx context.Context, userID, workoutID int64, input services.WorkoutFeedbackInput) (*models.Workout, error)
	DeleteWorkout(ctx context.Context, userID, workoutID int64) error
}

type WorkoutHandler struct {
	service workoutApplicationService
}

func NewWorkoutHandler(service workoutApplicationService) *WorkoutHandler {
	return &WorkoutHandler{service: service}
}

type createWorkoutRequest struct {
	Difficulty                 string  `json:"difficulty"`
	WorkoutType                string  `json:"workout_type"`
	EquipmentAccess            string  `json:"equipment_access"`
	TargetArea                 *string `json:"target_area"`
	Length                     *int    `json:"length"`
	IncludedExercises          *string `json:"included_exercises"`
	ExcludedExercises          *string `json:"excluded_exercises"`
	OtherWorkoutConsiderations *string `json:"other_workout_considerations"`
}

type reviseWorkoutRequest struct {
	Change string `json:"change"`
}

type workoutFeedbackRequest struct {
	WorkoutRating   *int    `json:"workout_rating"`
	WorkoutComments *string `json:"workout_comments"`
	ActualLength    *int    `json:"actual_length"`
}

func (h *WorkoutHandler) CreateWorkout(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req createWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if validationErr := validateCreateWorkoutRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	workout, err := h.service.CreateWorkout(c.Context(), userID, services.CreateWorkoutInput{
		Difficulty:                 models.Difficulty(req.Difficulty),
		WorkoutType:                req.WorkoutType,
		EquipmentAccess:            req.EquipmentAccess,
		TargetArea:                 req.TargetArea,
		Length:                     req.Length,
		IncludedExercises:          req.IncludedExercises,
		ExcludedExercises:          req.ExcludedExercises,
		OtherWorkoutConsiderations: req.OtherWorkoutConsiderations,
	})
	if err != nil {
		return mapWorkoutError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"workout": workout})
}

func (h *WorkoutHandler) ListWorkouts(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	workouts, err := h.service.ListWorkouts(c.Context(), userID)
	if err != nil {
		return mapWorkoutError(c, err)
	}

	return c.JSON(fiber.Map{"workouts": workouts})
}

func (h *WorkoutHandler) GetWorkout(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	workoutID, err := parseWorkoutID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid workout id"})
	}

	workout, err := h.service.GetWorkout(c.Context(), userID, workoutID)
	if err != nil {
		return mapWorkoutError(c, err)
	}

	return c.JSON(fiber.Map{"workout": workout})
}

func (h *WorkoutHandler) ReviseWorkout(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	workoutID, err := parseWorkoutID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid workout id"})
	}

	var req reviseWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if strings.TrimSpace(req.Change) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "change is required"})
	}

	workout, err := h.service.ReviseWorkout(c.Context(), userID, workoutID, req.Change)
	if err != nil {
		return mapWorkoutError(c, err)
	}

	return c.JSON(fiber.Map{"workout": workout})
}

func (h *WorkoutHandler) UpdateFeedback(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	workoutID, err := parseWorkoutID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid workout id"})
	}

	var req workoutFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	workout, err := h.service.UpdateFeedback(c.Context(), userID, workoutID, services.WorkoutFeedbackInput{
		WorkoutRating:   req.WorkoutRating,
		WorkoutComments: req.WorkoutComments,
		ActualLength:    req.ActualLength,
	})
	if err != nil {
		return mapWorkoutError(c, err)
	}

	return c.JSON(fiber.Map{"workout": workout})
}

func (h *WorkoutHandler) DeleteWorkout(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	workoutID, err := parseWorkoutID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid workout id"})
	}

	if err := h.service.DeleteWorkout(c.Context(), userID, workoutID); err != nil {
		return mapWorkoutError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Workout deleted successfully"})
}

func validateCreateWorkoutRequest(req createWorkoutRequest) string {
	if !models.Difficulty(req.Difficulty).Valid() {
		return "difficulty must be one of: Easy, Medium, Hard"
	}
	if strings.TrimSpace(req.WorkoutType) == "" {
		return "workout_type is required"
	}
	if strings.TrimSpace(req.EquipmentAccess) == "" {
		return "equipment_access is required"
	}
	if req.Length != nil && *req.Length <= 0 {
		return "length must be greater than 0"
	}
	return ""
}

func parseWorkoutID(c *fiber.Ctx) (int64, error) {
	workoutID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || workoutID <= 0 {
		return 0, errors.New("invalid workout id")
	}
	return workoutID, nil
}

func mapWorkoutError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	case errors.Is(err, services.ErrConflict):
		return c.Status(fiber.StatusConflict).
			JSON(fiber.Map{"error": "Workout was revised concurrently, reload and retry"})
	case errors.Is(err, services.ErrGenerationFailed):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Workout generation failed"})
	case errors.Is(err, pgx.ErrNoRows):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Workout not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to process workout request"})
	}
}
