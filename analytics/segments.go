package analytics

import (
	"app/models"
)

// Segment thresholds, evaluated in precedence order: the VIP check wins
// before the premium OR-check, and everything else is regular.
const (
	vipMinOrderValue     = 500000
	vipMinFrequency      = 4
	premiumMinOrderValue = 300000
	premiumMinFrequency  = 2
)

// SegmentCustomers classifies each customer by average order value and
// monthly purchase frequency over the lookback window. Customers with a
// regular label but less than one order per month get the infrequent
// messaging while keeping the regular segment.
func SegmentCustomers(stats []models.CustomerStats, lookbackDays int) []models.CustomerSegment {
	months := float64(lookbackDays) / 30
	if months <= 0 {
		months = 1
	}

	segments := make([]models.CustomerSegment, 0, len(stats))
	for _, s := range stats {
		avgOrderValue := 0.0
		if s.TotalOrders > 0 {
			avgOrderValue = s.TotalRevenue / float64(s.TotalOrders)
		}
		frequency := float64(s.TotalOrders) / months

		seg := models.CustomerSegment{
			UserID:        s.UserID,
			AvgOrderValue: avgOrderValue,
			Frequency:     frequency,
		}
		switch {
		case avgOrderValue > vipMinOrderValue && frequency > vipMinFrequency:
			seg.Segment = "vip"
			seg.Recommendation = "Berikan akses eksklusif dan penawaran khusus untuk pelanggan VIP"
		case avgOrderValue > premiumMinOrderValue || frequency > premiumMinFrequency:
			seg.Segment = "premium"
			seg.Recommendation = "Tawarkan program membership untuk meningkatkan loyalitas"
		case frequency < 1:
			seg.Segment = "regular"
			seg.Recommendation = "Pelanggan jarang berbelanja, kirim pengingat dan promo"
		default:
			seg.Segment = "regular"
			seg.Recommendation = "Dorong pembelian berulang dengan promo rutin"
		}
		segments = append(segments, seg)
	}
	return segments
}

// CustomerRetentionInsights emits a retention warning when the average
// order count across the supplied customers is low.
func CustomerRetentionInsights(customers []models.Customer) []models.Insight {
	var insights []models.Insight
	if len(customers) == 0 {
		return insights
	}

	total := 0
	for _, c := range customers {
		total += c.OrdersCount
	}
	avgOrders := float64(total) / float64(len(customers))

	if avgOrders < 2 {
		insights = append(insights, models.Insight{
			Title:      "Customer Retention",
			Message:    "Tingkat retention pelanggan rendah. Pertimbangkan program loyalitas.",
			Icon:       "user-friends",
			Confidence: 80,
			Action:     "loyalty_program",
			Priority:   "medium",
		})
	}
	return insights
}
