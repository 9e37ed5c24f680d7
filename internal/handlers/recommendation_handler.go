package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/PlanetPuffer/Large-Lifting-Model/internal/models"
	"github.com/PlanetPuffer/Large-Lifting-Model/internal/services"
)

type recommendationApplicationService interface {
	DailyRecommendation(ctx context.Context, userID int64) (*models.Recommendation, error)
}

type RecommendationHandler struct {
	service recommendationApplicationService
}

func NewRecommendationHandler(service recommendationApplicationService) *RecommendationHandler {
	return &RecommendationHandler{service: service}
}

// GetToday returns today's recommendation, generating one on first
// request of the day.
func (h *RecommendationHandler) GetToday(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	recommendation, err := h.service.DailyRecommendation(c.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrGenerationFailed) {
			return c.Status(fiber.StatusBadGateway).
				JSON(fiber.Map{"error": "Recommendation generation failed"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch recommendation"})
	}

	return c.JSON(fiber.Map{"recommendation": recommendation})
}
