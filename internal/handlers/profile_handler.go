package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/PlanetPuffer/Large-Lifting-Model/internal/models"
	"github.com/PlanetPuffer/Large-Lifting-Model/internal/repository"
	"github.com/PlanetPuffer/Large-Lifting-Model/internal/services"
)

type profileApplicationService interface {
	GetProfile(ctx context.Context, userID int64) (*models.User, *models.HealthProfile, error)
	UpdateProfile(ctx context.Context, userID int64, input services.UpdateProfileInput) (*models.User, *models.HealthProfile, error)
}

type ProfileHandler struct {
	service profileApplicationService
}

func NewProfileHandler(service profileApplicationService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

type profileResponse struct {
	FirstName  *string               `json:"first_name"`
	LastName   *string               `json:"last_name"`
	Email      string                `json:"email"`
	IsNew      bool                  `json:"is_new"`
	HealthData *models.HealthProfile `json:"health_data"`
}

type updateProfileRequest struct {
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	HealthData *struct {
		DOB                  *string  `json:"dob"`
		Gender               *string  `json:"gender"`
		Height               *float64 `json:"height"`
		Weight               *float64 `json:"weight"`
		FavouriteWorkoutType *string  `json:"favourite_workout_type"`
		WorkoutExperience    *string  `json:"workout_experience"`
		FitnessGoal          *string  `json:"fitness_goal"`
		Injuries             *string  `json:"injuries"`
		OtherConsiderations  *string  `json:"other_considerations"`
	} `json:"health_data"`
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	user, health, err := h.service.GetProfile(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch profile"})
	}

	return c.JSON(newProfileResponse(user, health))
}

func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	input, validationErr := buildProfileUpdate(req)
	if validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	user, health, err := h.service.UpdateProfile(c.Context(), userID, input)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	return c.JSON(newProfileResponse(user, health))
}

func newProfileResponse(user *models.User, health *models.HealthProfile) profileResponse {
	return profileResponse{
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Email:      user.Email,
		IsNew:      user.IsNew,
		HealthData: health,
	}
}

func buildProfileUpdate(req updateProfileRequest) (services.UpdateProfileInput, string) {
	input := services.UpdateProfileInput{
		User: repository.UpdateUserInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
		},
	}
	if req.HealthData == nil {
		return input, ""
	}

	data := req.HealthData
	health := repository.UpdateHealthProfileInput{
		HeightM:             data.Height,
		WeightKG:            data.Weight,
		FitnessGoal:         data.FitnessGoal,
		Injuries:            data.Injuries,
		OtherConsiderations: data.OtherConsiderations,
	}

	if data.DOB != nil {
		dob, err := time.Parse("2006-01-02", *data.DOB)
		if err != nil {
			return input, "dob must be formatted YYYY-MM-DD"
		}
		health.DOB = &dob
	}
	if data.Height != nil && *data.Height <= 0 {
		return input, "height must be greater than 0"
	}
	if data.Weight != nil && *data.Weight <= 0 {
		return input, "weight must be greater than 0"
	}
	if data.Gender != nil {
		gender := models.Gender(*data.Gender)
		if !gender.Valid() {
			return input, "gender must be one of: Male, Female, Other"
		}
		health.Gender = &gender
	}
	if data.FavouriteWorkoutType != nil {
		favourite := models.FavouriteWorkoutType(*data.FavouriteWorkoutType)
		if !favourite.Valid() {
			return input, "favourite_workout_type must be one of: Resistance Training, Cardio, Circuits, Crossfit, Yoga"
		}
		health.FavouriteWorkoutType = &favourite
	}
	if data.WorkoutExperience != nil {
		experience := models.ExperienceLevel(*data.WorkoutExperience)
		if !experience.Valid() {
			return input, "workout_experience must be one of: Beginner, Intermediate, Expert"
		}
		health.WorkoutExperience = &experience
	}

	input.Health = health
	return input, ""
}
