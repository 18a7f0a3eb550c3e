package repository

import (
	"context"
	"fmt"

	"github.com/gestaovendas/erp-representacao/internal/domain/order"
	"github.com/gestaovendas/erp-representacao/internal/domain/report"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReportRepository implementa a interface report.Repository. Todas as
// consultas são agregações SQL puras; nenhuma escrita.
type ReportRepository struct {
	db *pgxpool.Pool
}

// NewReportRepository cria uma nova instância de ReportRepository
func NewReportRepository(db *pgxpool.Pool) report.Repository {
	return &ReportRepository{db: db}
}

// SalesByRep implementa report.Repository.SalesByRep
func (r *ReportRepository) SalesByRep(ctx context.Context, f report.Filter) ([]report.SalesByRep, error) {
	rows, err := r.db.Query(ctx,
		`SELECT u.id, u.name, COUNT(o.id),
		        COALESCE(SUM(o.total_price), 0),
		        COALESCE(SUM(o.total_commission), 0)
		FROM orders o
		JOIN users u ON u.id = o.user_id
		WHERE ($1 = '' OR o.user_id::text = $1)
		  AND ($2::timestamptz IS NULL OR o.created_at >= $2)
		  AND ($3::timestamptz IS NULL OR o.created_at <= $3)
		GROUP BY u.id, u.name
		ORDER BY SUM(o.total_price) DESC`,
		f.UserID, f.From, f.To)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar vendas por vendedor: %w", err)
	}
	defer rows.Close()

	result := make([]report.SalesByRep, 0)
	for rows.Next() {
		var row report.SalesByRep
		if err := rows.Scan(&row.UserID, &row.UserName, &row.OrderCount,
			&row.Revenue, &row.Commission); err != nil {
			return nil, fmt.Errorf("erro ao ler vendas por vendedor: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return result, nil
}

// Commissions implementa report.Repository.Commissions. O detalhamento por
// marca expande a coluna JSONB de itens com jsonb_array_elements.
func (r *ReportRepository) Commissions(ctx context.Context, f report.Filter, byBrand bool) ([]report.CommissionRow, error) {
	var query string
	if byBrand {
		query = `SELECT u.id, u.name, COALESCE(item->>'brand', ''),
		        COALESCE(SUM((item->>'unit_price')::numeric * (item->>'quantity')::numeric * (1 - o.discount / 100)), 0),
		        COALESCE(SUM((item->>'commission_amount')::numeric), 0)
		FROM orders o
		JOIN users u ON u.id = o.user_id
		CROSS JOIN LATERAL jsonb_array_elements(o.items) AS item
		WHERE ($1 = '' OR o.user_id::text = $1)
		  AND ($2::timestamptz IS NULL OR o.created_at >= $2)
		  AND ($3::timestamptz IS NULL OR o.created_at <= $3)
		GROUP BY u.id, u.name, item->>'brand'
		ORDER BY u.name ASC, item->>'brand' ASC`
	} else {
		query = `SELECT u.id, u.name, '',
		        COALESCE(SUM(o.total_price), 0),
		        COALESCE(SUM(o.total_commission), 0)
		FROM orders o
		JOIN users u ON u.id = o.user_id
		WHERE ($1 = '' OR o.user_id::text = $1)
		  AND ($2::timestamptz IS NULL OR o.created_at >= $2)
		  AND ($3::timestamptz IS NULL OR o.created_at <= $3)
		GROUP BY u.id, u.name
		ORDER BY u.name ASC`
	}

	rows, err := r.db.Query(ctx, query, f.UserID, f.From, f.To)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar comissões: %w", err)
	}
	defer rows.Close()

	result := make([]report.CommissionRow, 0)
	for rows.Next() {
		var row report.CommissionRow
		if err := rows.Scan(&row.UserID, &row.UserName, &row.Brand,
			&row.Revenue, &row.Commission); err != nil {
			return nil, fmt.Errorf("erro ao ler comissões: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return result, nil
}

// Dashboard implementa report.Repository.Dashboard
func (r *ReportRepository) Dashboard(ctx context.Context) (*report.Dashboard, error) {
	var d report.Dashboard
	err := r.db.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM clients),
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM orders WHERE status = $1),
			(SELECT COALESCE(SUM(total_price), 0) FROM orders WHERE status = $2),
			(SELECT COUNT(*) FROM products WHERE stock <= min_stock)`,
		order.StatusOpen, order.StatusDelivered).Scan(
		&d.Clients, &d.Products, &d.Orders, &d.OpenOrders,
		&d.DeliveredRevenue, &d.LowStockProducts)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar painel: %w", err)
	}
	return &d, nil
}
