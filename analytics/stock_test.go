package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"app/models"
)

func TestAnalyzeStockLevelsDusFloor(t *testing.T) {
	cases := []struct {
		name    string
		dus     float64
		alerted bool
	}{
		{"zero means not stocked in that unit", 0, false},
		{"at the floor", 10, true},
		{"just above the floor", 11, false},
		{"low positive", 3, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			products := []models.Product{
				{ID: "p1", Name: "Mie Instan", Stock: models.Stock{Dus: c.dus}, IsActive: true},
			}
			alerts := AnalyzeStockLevels(products)
			if c.alerted {
				assert.Len(t, alerts, 1)
			} else {
				assert.Empty(t, alerts)
			}
		})
	}
}

func TestAnalyzeStockLevelsAggregatesDimensionsPerProduct(t *testing.T) {
	products := []models.Product{
		{ID: "p1", Name: "Gula Pasir", Stock: models.Stock{Dus: 8, Kg: 30, Pack: 100}, IsActive: true},
	}

	alerts := AnalyzeStockLevels(products)
	assert.Len(t, alerts, 1)
	assert.Equal(t, "Stock Alert", alerts[0].Title)
	assert.Contains(t, alerts[0].Message, "Gula Pasir memiliki stok rendah")
	assert.Contains(t, alerts[0].Message, "Dus (8)")
	assert.Contains(t, alerts[0].Message, "Kg (30)")
	assert.NotContains(t, alerts[0].Message, "Pack")
	assert.Equal(t, 95, alerts[0].Confidence)
	assert.Equal(t, "high", alerts[0].Priority)
	assert.Equal(t, "restock", alerts[0].Action)
}

func TestAnalyzeStockLevelsAllFloors(t *testing.T) {
	products := []models.Product{
		{ID: "p1", Name: "Beras", Stock: models.Stock{Dus: 10, Pack: 20, Satuan: 50, Bal: 5, Kg: 50}, IsActive: true},
	}

	alerts := AnalyzeStockLevels(products)
	assert.Len(t, alerts, 1)
	for _, label := range []string{"Dus (10)", "Pack (20)", "Satuan (50)", "Bal (5)", "Kg (50)"} {
		assert.Contains(t, alerts[0].Message, label)
	}
}

func TestAnalyzeStockLevelsHealthyStock(t *testing.T) {
	products := []models.Product{
		{ID: "p1", Name: "Minyak Goreng", Stock: models.Stock{Dus: 50, Pack: 80, Satuan: 200}, IsActive: true},
	}
	assert.Empty(t, AnalyzeStockLevels(products))
}
