package analytics

import (
	"fmt"
	"strings"

	"app/models"
)

// Keyword groups are evaluated in this fixed order; the first group with
// a hit claims the query even if later groups would also match.
var (
	productKeywords = []string{"produk", "product", "barang", "terlaris", "best"}
	salesKeywords   = []string{"penjualan", "sales", "revenue", "pendapatan"}
	stockKeywords   = []string{"stok", "stock", "tersedia", "available"}
)

const cannotAnswer = "Maaf, saya tidak bisa menjawab pertanyaan tersebut."

func containsAny(query string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(query, kw) {
			return true
		}
	}
	return false
}

// formatAmount renders an amount with thousands separators, no decimals.
func formatAmount(v float64) string {
	s := fmt.Sprintf("%.0f", v)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// AnswerQuery keyword-matches a free-text question and routes it to one
// canned computation over the supplied context.
func AnswerQuery(query string, orders []models.Order, products []models.Product) models.QueryAnswer {
	q := strings.ToLower(query)

	switch {
	case containsAny(q, productKeywords):
		answer := models.QueryAnswer{Answer: cannotAnswer, Confidence: 0, Matched: true}
		if best, found := bestSellingProduct(orders, products); found {
			answer.Answer = fmt.Sprintf("Produk terlaris adalah %s", best.Name)
			answer.Confidence = 85
		}
		return answer

	case containsAny(q, salesKeywords):
		total := 0.0
		for _, o := range orders {
			if o.Total > 0 {
				total += o.Total
			}
		}
		return models.QueryAnswer{
			Answer:     fmt.Sprintf("Total pendapatan: Rp %s dari %d pesanan", formatAmount(total), len(orders)),
			Confidence: 90,
			Matched:    true,
		}

	case containsAny(q, stockKeywords):
		low := 0
		for _, p := range products {
			if p.Stock.Dus < floorDus || p.Stock.Pack < floorPack {
				low++
			}
		}
		return models.QueryAnswer{
			Answer:     fmt.Sprintf("Ada %d produk dengan stok rendah", low),
			Confidence: 88,
			Matched:    true,
		}
	}

	return models.QueryAnswer{Answer: cannotAnswer, Confidence: 0, Matched: false}
}

// bestSellingProduct picks the product whose id appears on the most
// order line items. Ties keep the first product in supplied order.
func bestSellingProduct(orders []models.Order, products []models.Product) (models.Product, bool) {
	if len(products) == 0 {
		return models.Product{}, false
	}

	lineItems := make(map[string]int)
	for _, o := range orders {
		for _, item := range o.Items {
			lineItems[item.ProductID]++
		}
	}

	best := products[0]
	bestCount := lineItems[best.ID]
	for _, p := range products[1:] {
		if lineItems[p.ID] > bestCount {
			best = p
			bestCount = lineItems[p.ID]
		}
	}
	return best, true
}
