package routes

import (
	"github.com/gofiber/fiber/v2"

	"app/config"
	"app/handlers"
	"app/middleware"
	"app/store"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App, cfg config.Config, st *store.Store) {
	app.Get("/health", handlers.HandleHealth)

	api := app.Group("/api/v1")

	// --- Payload Analytics (caller supplies the data) ---
	h := handlers.NewAnalyticsHandler(cfg)
	payload := api.Group("/analytics")
	payload.Post("/analyze", h.HandleAnalyze)
	payload.Post("/predict", h.HandlePredict)
	payload.Post("/query", h.HandleQuery)

	// --- Merchant Analytics (DB-backed) ---
	mh := handlers.NewMerchantAnalyticsHandler(st)
	merchant := api.Group("/merchant/analytics", middleware.JWTAuth([]byte(cfg.JWTSecret)), middleware.MerchantRequired)
	merchant.Get("/forecast", mh.HandleForecast)
	merchant.Get("/trend", mh.HandleTrend)
	merchant.Get("/top-products", mh.HandleTopProducts)
	merchant.Get("/segments", mh.HandleSegments)
	merchant.Get("/timing", mh.HandleTiming)
}
