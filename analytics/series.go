package analytics

import (
	"time"

	"app/models"
)

// orderTimeFormats are tried in order when parsing order timestamps.
// Callers send RFC3339, Laravel-style datetimes, or bare dates.
var orderTimeFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseOrderTime parses an order timestamp. The second return value
// reports success; a record whose timestamp does not parse is skipped by
// every rule, never fatal.
func ParseOrderTime(s string) (time.Time, bool) {
	for _, layout := range orderTimeFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// dateOf truncates a timestamp to its calendar day in UTC.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SkippedOrders counts records whose created_at does not parse.
func SkippedOrders(orders []models.Order) int {
	skipped := 0
	for _, o := range orders {
		if _, ok := ParseOrderTime(o.CreatedAt); !ok {
			skipped++
		}
	}
	return skipped
}

// dailyBuckets groups orders into per-day totals over the trailing
// window, anchored at the most recent order date present in the data.
// The result is dense (missing days are 0), oldest first, and always
// exactly window long unless no record parses at all, in which case it
// is empty. The second return value is the number of skipped records.
func dailyBuckets(orders []models.Order, window int, value func(models.Order) float64) ([]float64, int) {
	byDay := make(map[time.Time]float64)
	var last time.Time
	skipped := 0

	for _, o := range orders {
		t, ok := ParseOrderTime(o.CreatedAt)
		if !ok {
			skipped++
			continue
		}
		d := dateOf(t)
		byDay[d] += value(o)
		if d.After(last) {
			last = d
		}
	}

	if len(byDay) == 0 || window <= 0 {
		return nil, skipped
	}

	seq := make([]float64, window)
	for i := 0; i < window; i++ {
		// seq is oldest-first: offset window-1 lands at index 0.
		seq[window-1-i] = byDay[last.AddDate(0, 0, -i)]
	}
	return seq, skipped
}

// DailyCounts buckets orders into a dense daily order-count sequence.
func DailyCounts(orders []models.Order, window int) ([]float64, int) {
	return dailyBuckets(orders, window, func(models.Order) float64 { return 1 })
}

// DailySums buckets orders into a dense daily revenue sequence.
// Negative totals from malformed upstream data are clamped to zero.
func DailySums(orders []models.Order, window int) ([]float64, int) {
	return dailyBuckets(orders, window, func(o models.Order) float64 {
		if o.Total < 0 {
			return 0
		}
		return o.Total
	})
}
