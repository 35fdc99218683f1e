package analytics

import (
	"fmt"
	"sort"

	"app/models"
)

// RankProducts aggregates quantity sold per product across all order
// line items and returns the top limit products, best seller first.
// Ties keep first-encounter order; a ranked product id with no matching
// product record is skipped rather than failing.
func RankProducts(orders []models.Order, products []models.Product, limit int) []models.ProductSales {
	totals := make(map[string]int)
	var order []string

	for _, o := range orders {
		for _, item := range o.Items {
			if _, seen := totals[item.ProductID]; !seen {
				order = append(order, item.ProductID)
			}
			totals[item.ProductID] += item.Quantity
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return totals[order[i]] > totals[order[j]]
	})

	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	if limit > 0 && len(order) > limit {
		order = order[:limit]
	}

	var ranked []models.ProductSales
	for _, id := range order {
		p, found := byID[id]
		if !found {
			continue
		}
		ranked = append(ranked, models.ProductSales{
			ProductID: id,
			Name:      p.Name,
			Quantity:  totals[id],
		})
	}
	return ranked
}

// TopProductInsights wraps the ranking into best-seller insights for the
// combined feed.
func TopProductInsights(orders []models.Order, products []models.Product, limit int) []models.Insight {
	var insights []models.Insight
	for _, row := range RankProducts(orders, products, limit) {
		insights = append(insights, models.Insight{
			Title:      "Best Seller",
			Message:    fmt.Sprintf("%s adalah produk terlaris (%d terjual)", row.Name, row.Quantity),
			Icon:       "fire",
			Confidence: 90,
			Action:     "promote",
			Priority:   "medium",
		})
	}
	return insights
}
