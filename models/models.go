package models

import (
	"github.com/golang-jwt/jwt/v4"
)

// JwtClaims carried in the Authorization bearer token.
type JwtClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// --- Core Records ---

// Order is a single sales transaction, either posted by the caller or
// loaded from the database. CreatedAt is kept as the raw wire timestamp;
// the analytics package parses it fail-soft and skips records it cannot
// read.
type Order struct {
	ID        string      `json:"id"`
	CreatedAt string      `json:"created_at"`
	Total     float64     `json:"total"`
	Status    string      `json:"status,omitempty"`
	Items     []OrderItem `json:"items,omitempty"`
}

// OrderItem is an individual line item within an Order.
type OrderItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Stock holds per-unit quantities for a product. Missing dimensions
// default to 0 when decoded.
type Stock struct {
	Dus    float64 `json:"dus"`
	Pack   float64 `json:"pack"`
	Satuan float64 `json:"satuan"`
	Bal    float64 `json:"bal"`
	Kg     float64 `json:"kg"`
}

// Product as supplied by the caller or loaded from the products table.
type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Stock    Stock  `json:"stock"`
	IsActive bool   `json:"is_active"`
}

// Customer aggregate used by the payload variant.
type Customer struct {
	ID          string `json:"id"`
	OrdersCount int    `json:"orders_count"`
}

// CustomerStats is the per-customer aggregate the segmentation rule
// consumes, derived from order history over a lookback window.
type CustomerStats struct {
	UserID       string  `json:"user_id"`
	TotalOrders  int     `json:"total_orders"`
	TotalRevenue float64 `json:"total_revenue"`
}

// --- Derived Outputs ---

// Insight is a single unit of derived knowledge. Ordering within an
// insight list is generation order, not a sort.
type Insight struct {
	Title      string `json:"title"`
	Message    string `json:"message"`
	Icon       string `json:"icon"`
	Confidence int    `json:"confidence"`
	Action     string `json:"action"`
	Priority   string `json:"priority"`
}

// Forecast is a point prediction for a horizon. Confidence is always a
// 0-100 score; ConfidenceLabel is additionally set when the forecast was
// produced with the variation-based strategy.
type Forecast struct {
	Value           int    `json:"value"`
	Confidence      int    `json:"confidence"`
	ConfidenceLabel string `json:"confidence_label,omitempty"`
}

// Recommendation is an actionable follow-up derived from the insight feed.
type Recommendation struct {
	Type     string `json:"type"`
	Action   string `json:"action"`
	Priority string `json:"priority"`
}

// Predictions bundles the three standard-horizon forecasts of the
// analyze feed.
type Predictions struct {
	NextDay   int `json:"next_day"`
	NextWeek  int `json:"next_week"`
	NextMonth int `json:"next_month"`
}

// ProductSales is one row of a best-seller ranking.
type ProductSales struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

// CustomerSegment is the segmentation result for one customer.
type CustomerSegment struct {
	UserID         string  `json:"user_id"`
	Segment        string  `json:"segment"`
	AvgOrderValue  float64 `json:"avg_order_value"`
	Frequency      float64 `json:"frequency"`
	Recommendation string  `json:"recommendation"`
}

// HourStat aggregates orders for one hour of the day.
type HourStat struct {
	Hour    int     `json:"hour"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// DayStat aggregates orders for one day of the week.
type DayStat struct {
	Day     string  `json:"day"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// TimingAnalysis reports revenue peaks by hour of day and day of week.
// Hours and Days are sorted descending by revenue.
type TimingAnalysis struct {
	Hours    []HourStat `json:"hours"`
	Days     []DayStat  `json:"days"`
	BestHour *HourStat  `json:"best_hour,omitempty"`
	BestDay  *DayStat   `json:"best_day,omitempty"`
}

// TrendReport is the two-period revenue comparison of the DB-backed
// trend endpoint.
type TrendReport struct {
	Label           string  `json:"label"`
	GrowthPercent   float64 `json:"growth_percent"`
	RecentRevenue   float64 `json:"recent_revenue"`
	PreviousRevenue float64 `json:"previous_revenue"`
	PeriodDays      int     `json:"period_days"`
	Recommendation  string  `json:"recommendation"`
}

// QueryAnswer is the result of the keyword-routed query rule. Matched
// reports whether any keyword group claimed the query; handlers use it
// to decide on the AI fallback.
type QueryAnswer struct {
	Answer     string `json:"answer"`
	Confidence int    `json:"confidence"`
	Matched    bool   `json:"-"`
}

// --- API Request/Response Structs ---

// AnalyzeRequest is the full data bundle posted to /analytics/analyze.
type AnalyzeRequest struct {
	Orders    []Order    `json:"orders"`
	Products  []Product  `json:"products"`
	Customers []Customer `json:"customers"`
}

// AnalyzeResponse mirrors the analyze feed of the original service.
type AnalyzeResponse struct {
	Status          string           `json:"status"`
	Insights        []Insight        `json:"insights"`
	Predictions     Predictions      `json:"predictions"`
	Recommendations []Recommendation `json:"recommendations"`
	SkippedRecords  int              `json:"skipped_records"`
}

// PredictRequest asks for a single forecast over posted orders.
type PredictRequest struct {
	Orders    []Order `json:"orders"`
	DaysAhead int     `json:"days_ahead"`
}

// QueryContext is the data bundle a free-text query is answered against.
type QueryContext struct {
	Orders   []Order   `json:"orders"`
	Products []Product `json:"products"`
}

// QueryRequest is the body of /analytics/query.
type QueryRequest struct {
	Query   string       `json:"query"`
	Context QueryContext `json:"context"`
}
