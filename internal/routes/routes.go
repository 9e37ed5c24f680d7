package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PlanetPuffer/Large-Lifting-Model/internal/config"
	"github.com/PlanetPuffer/Large-Lifting-Model/internal/handlers"
	"github.com/PlanetPuffer/Large-Lifting-Model/internal/llm"
	"github.com/PlanetPuffer/Large-Lifting-Model/internal/middleware"
	"github.com/PlanetPuffer/Large-Lifting-Model/internal/repository"
	"github.com/PlanetPuffer/Large-Lifting-Model/internal/services"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) {
	userRepo := repository.NewUserRepository(db)
	healthRepo := repository.NewHealthProfileRepository(db)
	workoutRepo := repository.NewWorkoutRepository(db)
	recommendationRepo := repository.NewRecommendationRepository(db)

	generationClient := llm.NewClient(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.LLMTimeout)

	authHandler := handlers.NewAuthHandler(db, userRepo, healthRepo, cfg.JWTSecret)
	profileService := services.NewProfileService(userRepo, healthRepo)
	profileHandler := handlers.NewProfileHandler(profileService)
	workoutService := services.NewWorkoutService(healthRepo, workoutRepo, recommendationRepo, generationClient)
	workoutHandler := handlers.NewWorkoutHandler(workoutService)
	recommendationHandler := handlers.NewRecommendationHandler(workoutService)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.AuthRequired(cfg.JWTSecret), authHandler.Me)

	authProtected := api.Group("/v1", middleware.AuthRequired(cfg.JWTSecret))

	authProtected.Get("/profile", profileHandler.GetProfile)
	authProtected.Put("/profile", profileHandler.UpdateProfile)

	workouts := authProtected.Group("/workouts")
	workouts.Post("", workoutHandler.CreateWorkout)
	workouts.Get("", workoutHandler.ListWorkouts)
	workouts.Get("/:id", workoutHandler.GetWorkout)
	workouts.Post("/:id/revisions", workoutHandler.ReviseWorkout)
	workouts.Patch("/:id", workoutHandler.UpdateFeedback)
	workouts.Delete("/:id", workoutHandler.DeleteWorkout)

	authProtected.Get("/recommendations/today", recommendationHandler.GetToday)
}
