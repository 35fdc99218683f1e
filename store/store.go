// Package store issues the read-only queries that feed the analytics
// engine in the DB-backed variant. Every method is request-scoped: it
// borrows a connection from the pool for the duration of the call and
// nothing is cached between requests.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"app/models"
)

// countedStatuses are the order statuses that count toward analytics.
// Draft, cancelled and refunded orders are excluded everywhere.
var countedStatuses = []string{"completed", "ready-for-pickup", "confirmed", "processing"}

// Store wraps the connection pool. It is handed to handlers explicitly
// instead of living in package state.
type Store struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// OrdersSince loads counted orders created at or after since, line items
// attached.
func (s *Store) OrdersSince(ctx context.Context, since time.Time) ([]models.Order, error) {
	query := `
		SELECT id, created_at, COALESCE(total, 0), COALESCE(status, '')
		FROM orders
		WHERE created_at >= $1 AND status = ANY($2)
		ORDER BY created_at
	`
	rows, err := s.db.Query(ctx, query, since, countedStatuses)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	index := make(map[string]int)
	for rows.Next() {
		var o models.Order
		var createdAt time.Time
		if err := rows.Scan(&o.ID, &createdAt, &o.Total, &o.Status); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		o.CreatedAt = createdAt.Format(time.RFC3339)
		index[o.ID] = len(orders)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read orders: %w", err)
	}

	itemsQuery := `
		SELECT oi.order_id, oi.product_id, COALESCE(oi.quantity, 0)
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.created_at >= $1 AND o.status = ANY($2)
	`
	itemRows, err := s.db.Query(ctx, itemsQuery, since, countedStatuses)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var orderID string
		var item models.OrderItem
		if err := itemRows.Scan(&orderID, &item.ProductID, &item.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		if i, found := index[orderID]; found {
			orders[i].Items = append(orders[i].Items, item)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read order items: %w", err)
	}

	return orders, nil
}

// Products loads the active catalog with per-unit stock levels.
func (s *Store) Products(ctx context.Context) ([]models.Product, error) {
	query := `
		SELECT id, name, COALESCE(stock, '{}'::jsonb), is_active
		FROM products
		WHERE is_active = TRUE
		ORDER BY name
	`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		var stockJSON []byte
		if err := rows.Scan(&p.ID, &p.Name, &stockJSON, &p.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		if err := json.Unmarshal(stockJSON, &p.Stock); err != nil {
			// A product with unreadable stock data still ranks; it just
			// never raises a stock alert.
			p.Stock = models.Stock{}
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}
	return products, nil
}

// CustomerStatsSince aggregates order count and revenue per customer
// over the lookback window.
func (s *Store) CustomerStatsSince(ctx context.Context, since time.Time) ([]models.CustomerStats, error) {
	query := `
		SELECT COALESCE(user_id, ''), COUNT(*), COALESCE(SUM(total), 0)
		FROM orders
		WHERE created_at >= $1 AND status = ANY($2)
		GROUP BY user_id
		ORDER BY user_id
	`
	rows, err := s.db.Query(ctx, query, since, countedStatuses)
	if err != nil {
		return nil, fmt.Errorf("failed to query customer stats: %w", err)
	}
	defer rows.Close()

	var stats []models.CustomerStats
	for rows.Next() {
		var cs models.CustomerStats
		if err := rows.Scan(&cs.UserID, &cs.TotalOrders, &cs.TotalRevenue); err != nil {
			return nil, fmt.Errorf("failed to scan customer stats: %w", err)
		}
		stats = append(stats, cs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read customer stats: %w", err)
	}
	return stats, nil
}

// DailyRevenueSeries returns a dense daily revenue sequence for the
// trailing lookbackDays, oldest first, gaps filled with zero in SQL.
func (s *Store) DailyRevenueSeries(ctx context.Context, lookbackDays int) ([]float64, error) {
	query := `
		SELECT COALESCE(SUM(o.total), 0)
		FROM generate_series(CURRENT_DATE - ($1::int - 1), CURRENT_DATE, '1 day') AS d(day)
		LEFT JOIN orders o
			ON o.created_at::date = d.day::date AND o.status = ANY($2)
		GROUP BY d.day
		ORDER BY d.day
	`
	rows, err := s.db.Query(ctx, query, lookbackDays, countedStatuses)
	if err != nil {
		return nil, fmt.Errorf("failed to query revenue series: %w", err)
	}
	defer rows.Close()

	var series []float64
	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan revenue bucket: %w", err)
		}
		if v < 0 {
			v = 0
		}
		series = append(series, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read revenue series: %w", err)
	}
	return series, nil
}
