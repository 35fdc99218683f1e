package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"app/models"
)

var engineNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func engineFixture() ([]models.Order, []models.Product, []models.Customer) {
	orders := []models.Order{
		{ID: "prev", CreatedAt: engineNow.AddDate(0, 0, -10).Format(time.RFC3339), Total: 1000},
		{ID: "recent", CreatedAt: engineNow.AddDate(0, 0, -3).Format(time.RFC3339), Total: 1300, Items: []models.OrderItem{
			{ProductID: "p1", Quantity: 4},
		}},
	}
	products := []models.Product{
		{ID: "p1", Name: "Kopi Bubuk", Stock: models.Stock{Dus: 8}, IsActive: true},
	}
	customers := []models.Customer{
		{ID: "c1", OrdersCount: 1},
	}
	return orders, products, customers
}

func TestAnalyzeFeedOrderAndContent(t *testing.T) {
	orders, products, customers := engineFixture()
	engine := Engine{PeakHourMinOrders: 10}

	result := engine.Analyze(orders, products, customers, engineNow)

	// Generation order: stock alert, sales trend, best seller, customer
	// retention.
	assert.Len(t, result.Insights, 4)
	assert.Equal(t, "Stock Alert", result.Insights[0].Title)
	assert.Equal(t, "Sales Growth", result.Insights[1].Title)
	assert.Equal(t, "Best Seller", result.Insights[2].Title)
	assert.Equal(t, "Customer Retention", result.Insights[3].Title)

	assert.Len(t, result.Recommendations, 1)
	assert.Equal(t, "restock", result.Recommendations[0].Type)
	assert.Equal(t, "Restock 1 produk dengan stok rendah", result.Recommendations[0].Action)

	assert.GreaterOrEqual(t, result.Predictions.NextDay, 0)
	assert.GreaterOrEqual(t, result.Predictions.NextWeek, 0)
	assert.GreaterOrEqual(t, result.Predictions.NextMonth, 0)
	assert.Equal(t, 0, result.SkippedRecords)
}

func TestAnalyzeDeclineAddsPromotionRecommendation(t *testing.T) {
	orders := []models.Order{
		{ID: "prev", CreatedAt: engineNow.AddDate(0, 0, -10).Format(time.RFC3339), Total: 1000},
		{ID: "recent", CreatedAt: engineNow.AddDate(0, 0, -3).Format(time.RFC3339), Total: 500},
	}

	result := Engine{}.Analyze(orders, nil, nil, engineNow)

	var types []string
	for _, r := range result.Recommendations {
		types = append(types, r.Type)
	}
	assert.Contains(t, types, "promotion")
	assert.NotContains(t, types, "restock")
}

func TestAnalyzeEmptyInput(t *testing.T) {
	result := Engine{}.Analyze(nil, nil, nil, engineNow)

	assert.Empty(t, result.Insights)
	assert.Empty(t, result.Recommendations)
	assert.Equal(t, models.Predictions{}, result.Predictions)
	assert.Equal(t, 0, result.SkippedRecords)
}

func TestAnalyzeCountsSkippedRecords(t *testing.T) {
	orders := []models.Order{
		{ID: "ok", CreatedAt: engineNow.Format(time.RFC3339), Total: 100},
		{ID: "bad", CreatedAt: "last tuesday", Total: 100},
	}

	result := Engine{}.Analyze(orders, nil, nil, engineNow)
	assert.Equal(t, 1, result.SkippedRecords)
}

func TestAnalyzeCapsInsightFeed(t *testing.T) {
	var products []models.Product
	for i := 0; i < 15; i++ {
		products = append(products, models.Product{
			ID:       fmt.Sprintf("p%d", i),
			Name:     fmt.Sprintf("Produk %d", i),
			Stock:    models.Stock{Dus: 3},
			IsActive: true,
		})
	}

	result := Engine{}.Analyze(nil, products, nil, engineNow)
	assert.Len(t, result.Insights, 10)
}

func TestAnalyzeIdempotent(t *testing.T) {
	orders, products, customers := engineFixture()
	engine := Engine{PeakHourMinOrders: 10}

	first := engine.Analyze(orders, products, customers, engineNow)
	second := engine.Analyze(orders, products, customers, engineNow)
	assert.Equal(t, first, second)
}
