package handlers

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"app/analytics"
	"app/store"
)

// MerchantAnalyticsHandler serves the DB-backed variant: each request
// runs a small fixed set of read-only queries and feeds the results to
// the engine. A data-source failure is reported as service-unavailable
// and never retried.
type MerchantAnalyticsHandler struct {
	store *store.Store
}

func NewMerchantAnalyticsHandler(st *store.Store) *MerchantAnalyticsHandler {
	return &MerchantAnalyticsHandler{store: st}
}

func dataSourceUnavailable(c *fiber.Ctx, tag string, err error) error {
	log.Printf("[%s] data source error: %v", tag, err)
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"success": false,
		"message": "Analytics data source unavailable",
	})
}

// HandleForecast forecasts daily revenue for an arbitrary horizon, with
// confidence derived from the variability of the historical series.
func (h *MerchantAnalyticsHandler) HandleForecast(c *fiber.Ctx) error {
	days := c.QueryInt("days", 7)
	if days <= 0 {
		days = 7
	}
	lookback := c.QueryInt("lookback", 90)
	if lookback <= 0 {
		lookback = 90
	}

	series, err := h.store.DailyRevenueSeries(context.Background(), lookback)
	if err != nil {
		return dataSourceUnavailable(c, "FORECAST", err)
	}

	forecaster := analytics.Forecaster{Strategy: analytics.VariationConfidence{}}
	forecast := forecaster.PredictSeries(series, days)

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"days_ahead":    days,
			"lookback_days": lookback,
			"forecast":      forecast,
		},
	})
}

// HandleTrend compares the two most recent equal-length revenue periods
// and classifies the change into the coarse bands.
func (h *MerchantAnalyticsHandler) HandleTrend(c *fiber.Ctx) error {
	days := c.QueryInt("days", 7)
	if days <= 0 {
		days = 7
	}

	now := time.Now()
	orders, err := h.store.OrdersSince(context.Background(), now.AddDate(0, 0, -2*days))
	if err != nil {
		return dataSourceUnavailable(c, "TREND", err)
	}

	report := analytics.ClassifyRevenueTrend(orders, days, now)
	return c.JSON(fiber.Map{"success": true, "data": report})
}

// HandleTopProducts ranks products by quantity sold over the lookback
// window.
func (h *MerchantAnalyticsHandler) HandleTopProducts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 5)
	if limit <= 0 {
		limit = 5
	}
	days := c.QueryInt("days", 30)
	if days <= 0 {
		days = 30
	}

	ctx := context.Background()
	orders, err := h.store.OrdersSince(ctx, time.Now().AddDate(0, 0, -days))
	if err != nil {
		return dataSourceUnavailable(c, "TOP PRODUCTS", err)
	}
	products, err := h.store.Products(ctx)
	if err != nil {
		return dataSourceUnavailable(c, "TOP PRODUCTS", err)
	}

	ranking := analytics.RankProducts(orders, products, limit)
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"top_products": ranking}})
}

// HandleSegments classifies customers by spend and purchase frequency
// over the lookback window.
func (h *MerchantAnalyticsHandler) HandleSegments(c *fiber.Ctx) error {
	days := c.QueryInt("days", 90)
	if days <= 0 {
		days = 90
	}

	stats, err := h.store.CustomerStatsSince(context.Background(), time.Now().AddDate(0, 0, -days))
	if err != nil {
		return dataSourceUnavailable(c, "SEGMENTS", err)
	}

	segments := analytics.SegmentCustomers(stats, days)
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"lookback_days": days, "segments": segments}})
}

// HandleTiming reports the revenue peaks by hour of day and day of
// week. Unlike the payload feed there is no minimum-order floor: the
// best present hour and day are always reported.
func (h *MerchantAnalyticsHandler) HandleTiming(c *fiber.Ctx) error {
	days := c.QueryInt("days", 30)
	if days <= 0 {
		days = 30
	}

	orders, err := h.store.OrdersSince(context.Background(), time.Now().AddDate(0, 0, -days))
	if err != nil {
		return dataSourceUnavailable(c, "TIMING", err)
	}

	return c.JSON(fiber.Map{"success": true, "data": analytics.AnalyzeOrderTiming(orders)})
}
