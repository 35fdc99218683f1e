package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"app/analytics"
	"app/config"
	"app/models"
)

// HandleHealth reports service liveness.
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"service": "Sales Analytics API",
		"version": "1.0.0",
	})
}

// AnalyticsHandler serves the payload variant: the caller posts its
// orders, products and customers and gets the derived analytics back.
type AnalyticsHandler struct {
	cfg    config.Config
	engine analytics.Engine
}

func NewAnalyticsHandler(cfg config.Config) *AnalyticsHandler {
	return &AnalyticsHandler{
		cfg:    cfg,
		engine: analytics.Engine{PeakHourMinOrders: cfg.PeakHourMinOrders},
	}
}

// HandleAnalyze runs the full insight feed over the posted data bundle.
func (h *AnalyticsHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req models.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	result := h.engine.Analyze(req.Orders, req.Products, req.Customers, time.Now())
	log.Printf("[ANALYZE] %d orders, %d products -> %d insights (%d records skipped)",
		len(req.Orders), len(req.Products), len(result.Insights), result.SkippedRecords)

	return c.JSON(models.AnalyzeResponse{
		Status:          "success",
		Insights:        result.Insights,
		Predictions:     result.Predictions,
		Recommendations: result.Recommendations,
		SkippedRecords:  result.SkippedRecords,
	})
}

// HandlePredict produces a single forecast over posted orders for the
// requested horizon (1, 7 or 30 days; defaults to 1).
func (h *AnalyticsHandler) HandlePredict(c *fiber.Ctx) error {
	var req models.PredictRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if req.DaysAhead <= 0 {
		req.DaysAhead = 1
	}

	var forecaster analytics.Forecaster
	forecast := forecaster.Predict(req.Orders, req.DaysAhead)

	return c.JSON(fiber.Map{
		"status":     "success",
		"days_ahead": req.DaysAhead,
		"forecast":   forecast,
	})
}
