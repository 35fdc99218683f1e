package analytics

import (
	"fmt"
	"strconv"
	"strings"

	"app/models"
)

// Per-unit restock floors. A dimension only triggers when its quantity
// is strictly positive and at or below the floor: a quantity of 0 means
// the product is not stocked in that unit, not that it ran out.
const (
	floorDus    = 10
	floorPack   = 20
	floorSatuan = 50
	floorBal    = 5
	floorKg     = 50
)

func formatQty(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// AnalyzeStockLevels flags products that are low on stock in any unit
// dimension, one aggregated insight per product.
func AnalyzeStockLevels(products []models.Product) []models.Insight {
	var alerts []models.Insight

	for _, p := range products {
		var issues []string
		check := func(label string, qty, floor float64) {
			if qty > 0 && qty <= floor {
				issues = append(issues, fmt.Sprintf("%s (%s)", label, formatQty(qty)))
			}
		}
		check("Dus", p.Stock.Dus, floorDus)
		check("Pack", p.Stock.Pack, floorPack)
		check("Satuan", p.Stock.Satuan, floorSatuan)
		check("Bal", p.Stock.Bal, floorBal)
		check("Kg", p.Stock.Kg, floorKg)

		if len(issues) > 0 {
			alerts = append(alerts, models.Insight{
				Title:      "Stock Alert",
				Message:    fmt.Sprintf("%s memiliki stok rendah: %s", p.Name, strings.Join(issues, ", ")),
				Icon:       "exclamation-triangle",
				Confidence: 95,
				Action:     "restock",
				Priority:   "high",
			})
		}
	}

	return alerts
}
