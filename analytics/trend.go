package analytics

import (
	"fmt"
	"math"
	"time"

	"app/models"
)

// RevenueGrowth sums revenue over the most recent periodDays and the
// adjacent periodDays before that, anchored at now, and returns the
// percentage change. ok is false when the previous period had no revenue,
// in which case growth is undefined and no conclusion should be drawn.
// now is injected so the comparison is testable.
func RevenueGrowth(orders []models.Order, periodDays int, now time.Time) (recent, previous, growthPct float64, ok bool) {
	periodStart := now.AddDate(0, 0, -periodDays)
	previousStart := now.AddDate(0, 0, -2*periodDays)

	for _, o := range orders {
		t, parsed := ParseOrderTime(o.CreatedAt)
		if !parsed {
			continue
		}
		total := o.Total
		if total < 0 {
			total = 0
		}
		switch {
		case !t.Before(periodStart):
			recent += total
		case !t.Before(previousStart) && t.Before(periodStart):
			previous += total
		}
	}

	if previous <= 0 {
		return recent, previous, 0, false
	}
	return recent, previous, (recent - previous) / previous * 100, true
}

// TrendClassification is the outcome of applying a banding strategy to a
// growth percentage.
type TrendClassification struct {
	Label          string
	GrowthPercent  float64
	Recommendation string
}

// TrendStrategy classifies a revenue growth percentage into a discrete
// band. The two implementations are deliberately kept as distinct, named
// strategies: they draw their boundaries differently and callers pick
// one by intent.
type TrendStrategy interface {
	Classify(growthPercent float64) TrendClassification
}

// SignificanceBands flags any change beyond a single significance
// threshold (default 5%). Used by the insight feed.
type SignificanceBands struct {
	Threshold float64
}

func (s SignificanceBands) threshold() float64 {
	if s.Threshold <= 0 {
		return 5
	}
	return s.Threshold
}

func (s SignificanceBands) Classify(growthPercent float64) TrendClassification {
	c := TrendClassification{GrowthPercent: growthPercent}
	switch {
	case growthPercent > s.threshold():
		c.Label = "growth"
		c.Recommendation = "maintain"
	case growthPercent < -s.threshold():
		c.Label = "decline"
		c.Recommendation = "analyze"
	default:
		c.Label = "stable"
	}
	return c
}

// QuintileBands uses the coarser ±10/±20 boundaries of the DB-backed
// trend report, with a fixed recommendation per band.
type QuintileBands struct{}

func (QuintileBands) Classify(growthPercent float64) TrendClassification {
	c := TrendClassification{GrowthPercent: growthPercent}
	switch {
	case growthPercent > 20:
		c.Label = "naik_signifikan"
		c.Recommendation = "Penjualan naik signifikan, pertahankan strategi dan amankan stok"
	case growthPercent > 10:
		c.Label = "naik"
		c.Recommendation = "Penjualan naik, pertahankan strategi saat ini"
	case growthPercent >= -10:
		c.Label = "stabil"
		c.Recommendation = "Penjualan stabil, coba promosi untuk mendorong pertumbuhan"
	case growthPercent >= -20:
		c.Label = "turun"
		c.Recommendation = "Penjualan menurun, evaluasi harga dan promosi"
	default:
		c.Label = "turun_signifikan"
		c.Recommendation = "Penjualan turun signifikan, perlu tindakan segera"
	}
	return c
}

// AnalyzeSalesTrend compares the last 7 days of revenue against the 7
// days before and emits a growth or decline insight when the change is
// significant.
func AnalyzeSalesTrend(orders []models.Order, now time.Time) []models.Insight {
	var insights []models.Insight

	_, _, growth, ok := RevenueGrowth(orders, 7, now)
	if !ok {
		return insights
	}

	switch (SignificanceBands{}).Classify(growth).Label {
	case "growth":
		insights = append(insights, models.Insight{
			Title:      "Sales Growth",
			Message:    fmt.Sprintf("Penjualan meningkat %.1f%% dari minggu lalu", math.Abs(growth)),
			Icon:       "arrow-up",
			Confidence: 88,
			Action:     "maintain",
			Priority:   "medium",
		})
	case "decline":
		insights = append(insights, models.Insight{
			Title:      "Sales Decline",
			Message:    fmt.Sprintf("Penjualan turun %.1f%% dari minggu lalu - perlu perhatian", math.Abs(growth)),
			Icon:       "arrow-down",
			Confidence: 85,
			Action:     "analyze",
			Priority:   "high",
		})
	}

	return insights
}

// ClassifyRevenueTrend builds the DB-backed trend report using the
// coarse bands. A period without previous revenue reports as stable with
// zero growth.
func ClassifyRevenueTrend(orders []models.Order, periodDays int, now time.Time) models.TrendReport {
	recent, previous, growth, ok := RevenueGrowth(orders, periodDays, now)

	c := QuintileBands{}.Classify(growth)
	if !ok {
		c = QuintileBands{}.Classify(0)
	}

	return models.TrendReport{
		Label:           c.Label,
		GrowthPercent:   c.GrowthPercent,
		RecentRevenue:   recent,
		PreviousRevenue: previous,
		PeriodDays:      periodDays,
		Recommendation:  c.Recommendation,
	}
}
