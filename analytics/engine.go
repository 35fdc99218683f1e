// Package analytics is the forecasting and insight-derivation engine:
// pure functions that turn order, product and customer records into
// forecasts, categorized insights and recommendations. Nothing in this
// package reads the clock, configuration or any external state; rules
// that compare periods against "now" take it as an argument.
package analytics

import (
	"fmt"
	"strings"
	"time"

	"app/models"
)

// Engine assembles the combined insight feed. The peak-hour floor is the
// only knob: the payload variant suppresses peak-hour insights below it.
type Engine struct {
	PeakHourMinOrders int
}

// AnalysisResult is the full output of one analyze pass.
type AnalysisResult struct {
	Insights        []models.Insight
	Predictions     models.Predictions
	Recommendations []models.Recommendation
	SkippedRecords  int
}

const (
	maxFeedInsights      = 10
	maxTopProductsInFeed = 2
	maxCustomerInsights  = 2
)

// Analyze runs every rule over the supplied records and assembles the
// insight feed, the standard-horizon predictions and the derived
// recommendations. Insight order is generation order: stock alerts,
// sales trend, best sellers, customer patterns.
func (e Engine) Analyze(orders []models.Order, products []models.Product, customers []models.Customer, now time.Time) AnalysisResult {
	var insights []models.Insight

	stockAlerts := AnalyzeStockLevels(products)
	insights = append(insights, stockAlerts...)

	trendInsights := AnalyzeSalesTrend(orders, now)
	insights = append(insights, trendInsights...)

	topProducts := TopProductInsights(orders, products, 3)
	if len(topProducts) > maxTopProductsInFeed {
		topProducts = topProducts[:maxTopProductsInFeed]
	}
	insights = append(insights, topProducts...)

	customerInsights := CustomerRetentionInsights(customers)
	customerInsights = append(customerInsights, PeakHourInsights(AnalyzeOrderTiming(orders), e.PeakHourMinOrders)...)
	if len(customerInsights) > maxCustomerInsights {
		customerInsights = customerInsights[:maxCustomerInsights]
	}
	insights = append(insights, customerInsights...)

	if len(insights) > maxFeedInsights {
		insights = insights[:maxFeedInsights]
	}

	var forecaster Forecaster
	predictions := models.Predictions{
		NextDay:   forecaster.Predict(orders, 1).Value,
		NextWeek:  forecaster.Predict(orders, 7).Value,
		NextMonth: forecaster.Predict(orders, 30).Value,
	}

	var recommendations []models.Recommendation
	if len(stockAlerts) > 0 {
		recommendations = append(recommendations, models.Recommendation{
			Type:     "restock",
			Action:   fmt.Sprintf("Restock %d produk dengan stok rendah", len(stockAlerts)),
			Priority: "high",
		})
	}
	for _, in := range trendInsights {
		if strings.Contains(in.Title, "Decline") {
			recommendations = append(recommendations, models.Recommendation{
				Type:     "promotion",
				Action:   "Lakukan promosi untuk meningkatkan penjualan",
				Priority: "high",
			})
			break
		}
	}

	return AnalysisResult{
		Insights:        insights,
		Predictions:     predictions,
		Recommendations: recommendations,
		SkippedRecords:  SkippedOrders(orders),
	}
}
