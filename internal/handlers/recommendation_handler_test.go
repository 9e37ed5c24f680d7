package handlers

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/PlanetPuffer/Large-Lifting-Model/internal/models"
	"github.com/PlanetPuffer/Large-Lifting-Model/internal/services"
)

type stubRecommendationService struct {
	result *models.Recommendation
	err    error
}

func (s *stubRecommendationService) DailyRecommendation(ctx context.Context, userID int64) (*models.Recommendation, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func newRecommendationTestApp(service *stubRecommendationService) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", "42")
		return c.Next()
	})
	app.Get("/api/v1/recommendations/today", NewRecommendationHandler(service).GetToday)
	return app
}

func TestGetTodayReturnsRecommendation(t *testing.T) {
	service := &stubRecommendationService{
		result: &models.Recommendation{ID: 3, UserID: 42, Recommendation: "do legs today"},
	}
	app := newRecommendationTestApp(service)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/recommendations/today", nil))
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	parsed := decodeBody(t, resp.Body)
	recommendation, ok := parsed["recommendation"].(map[string]any)
	if !ok {
		t.Fatalf("response missing recommendation object: %v", parsed)
	}
	if recommendation["recommendation"] != "do legs today" {
		t.Errorf("unexpected recommendation text: %v", recommendation)
	}
}

func TestGetTodayGenerationFailureMapsToBadGateway(t *testing.T) {
	service := &stubRecommendationService{err: services.ErrGenerationFailed}
	app := newRecommendationTestApp(service)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/recommendations/today", nil))
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadGateway {
		t.Errorf("expected 502, got %d", resp.StatusCode)
	}
}
