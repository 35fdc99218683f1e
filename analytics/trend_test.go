package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"app/models"
)

var trendNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

// twoPeriodOrders puts previousTotal 10 days back and recentTotal 3 days
// back, so they land in adjacent 7-day windows relative to trendNow.
func twoPeriodOrders(previousTotal, recentTotal float64) []models.Order {
	return []models.Order{
		{ID: "prev", CreatedAt: trendNow.AddDate(0, 0, -10).Format(time.RFC3339), Total: previousTotal},
		{ID: "recent", CreatedAt: trendNow.AddDate(0, 0, -3).Format(time.RFC3339), Total: recentTotal},
	}
}

func TestRevenueGrowth(t *testing.T) {
	recent, previous, growth, ok := RevenueGrowth(twoPeriodOrders(1000, 1060), 7, trendNow)
	assert.True(t, ok)
	assert.Equal(t, 1060.0, recent)
	assert.Equal(t, 1000.0, previous)
	assert.InDelta(t, 6.0, growth, 1e-9)
}

func TestRevenueGrowthUndefinedWithoutPreviousRevenue(t *testing.T) {
	orders := []models.Order{
		{CreatedAt: trendNow.AddDate(0, 0, -3).Format(time.RFC3339), Total: 500},
	}
	_, _, _, ok := RevenueGrowth(orders, 7, trendNow)
	assert.False(t, ok)
}

func TestAnalyzeSalesTrendSignificantGrowth(t *testing.T) {
	insights := AnalyzeSalesTrend(twoPeriodOrders(1000, 1060), trendNow)

	assert.Len(t, insights, 1)
	assert.Equal(t, "Sales Growth", insights[0].Title)
	assert.Equal(t, 88, insights[0].Confidence)
	assert.Equal(t, "medium", insights[0].Priority)
	assert.Equal(t, "maintain", insights[0].Action)
	assert.Contains(t, insights[0].Message, "6.0%")
}

func TestAnalyzeSalesTrendBelowSignificanceFloor(t *testing.T) {
	// 4% growth is noise, not an insight.
	insights := AnalyzeSalesTrend(twoPeriodOrders(1000, 1040), trendNow)
	assert.Empty(t, insights)
}

func TestAnalyzeSalesTrendDecline(t *testing.T) {
	insights := AnalyzeSalesTrend(twoPeriodOrders(1000, 900), trendNow)

	assert.Len(t, insights, 1)
	assert.Equal(t, "Sales Decline", insights[0].Title)
	assert.Equal(t, 85, insights[0].Confidence)
	assert.Equal(t, "high", insights[0].Priority)
	assert.Equal(t, "analyze", insights[0].Action)
}

func TestAnalyzeSalesTrendNoPreviousRevenue(t *testing.T) {
	orders := []models.Order{
		{CreatedAt: trendNow.AddDate(0, 0, -2).Format(time.RFC3339), Total: 99999},
	}
	assert.Empty(t, AnalyzeSalesTrend(orders, trendNow))
}

func TestAnalyzeSalesTrendIdempotent(t *testing.T) {
	orders := twoPeriodOrders(1000, 1300)
	assert.Equal(t, AnalyzeSalesTrend(orders, trendNow), AnalyzeSalesTrend(orders, trendNow))
}

func TestQuintileBands(t *testing.T) {
	cases := []struct {
		growth float64
		want   string
	}{
		{25, "naik_signifikan"},
		{20, "naik"},
		{15, "naik"},
		{10, "stabil"},
		{0, "stabil"},
		{-10, "stabil"},
		{-15, "turun"},
		{-20, "turun"},
		{-25, "turun_signifikan"},
	}

	for _, c := range cases {
		got := QuintileBands{}.Classify(c.growth)
		assert.Equal(t, c.want, got.Label, "growth %.0f%%", c.growth)
		assert.NotEmpty(t, got.Recommendation)
	}
}

func TestSignificanceBands(t *testing.T) {
	assert.Equal(t, "growth", SignificanceBands{}.Classify(5.1).Label)
	assert.Equal(t, "stable", SignificanceBands{}.Classify(5).Label)
	assert.Equal(t, "stable", SignificanceBands{}.Classify(-5).Label)
	assert.Equal(t, "decline", SignificanceBands{}.Classify(-5.1).Label)
}

func TestClassifyRevenueTrend(t *testing.T) {
	report := ClassifyRevenueTrend(twoPeriodOrders(1000, 1300), 7, trendNow)

	assert.Equal(t, "naik_signifikan", report.Label)
	assert.InDelta(t, 30.0, report.GrowthPercent, 1e-9)
	assert.Equal(t, 1300.0, report.RecentRevenue)
	assert.Equal(t, 1000.0, report.PreviousRevenue)
	assert.Equal(t, 7, report.PeriodDays)
}

func TestClassifyRevenueTrendWithoutHistory(t *testing.T) {
	report := ClassifyRevenueTrend(nil, 7, trendNow)

	assert.Equal(t, "stabil", report.Label)
	assert.Equal(t, 0.0, report.GrowthPercent)
}
