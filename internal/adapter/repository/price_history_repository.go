package repository

import (
	"context"
	"fmt"

	"github.com/gestaovendas/erp-representacao/internal/domain/purchase"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PriceHistoryRepository implementa a interface purchase.PriceHistoryRepository
type PriceHistoryRepository struct {
	db *pgxpool.Pool
}

// NewPriceHistoryRepository cria uma nova instância de PriceHistoryRepository
func NewPriceHistoryRepository(db *pgxpool.Pool) purchase.PriceHistoryRepository {
	return &PriceHistoryRepository{db: db}
}

// Append implementa purchase.PriceHistoryRepository.Append
func (r *PriceHistoryRepository) Append(ctx context.Context, h *purchase.PriceHistory) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO price_history (id, product_id, purchase_price, quantity, purchase_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		h.ID, h.ProductID, h.PurchasePrice, h.Quantity, h.PurchaseDate, h.CreatedAt)
	if err != nil {
		return fmt.Errorf("erro ao gravar histórico de preço: %w", err)
	}
	return nil
}

// ListByProduct implementa purchase.PriceHistoryRepository.ListByProduct
func (r *PriceHistoryRepository) ListByProduct(ctx context.Context, productID string) ([]*purchase.PriceHistory, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, product_id, purchase_price, quantity, purchase_date, created_at
		FROM price_history
		WHERE product_id = $1
		ORDER BY created_at DESC`,
		productID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar histórico de preços: %w", err)
	}
	defer rows.Close()

	history := make([]*purchase.PriceHistory, 0)
	for rows.Next() {
		var h purchase.PriceHistory
		if err := rows.Scan(&h.ID, &h.ProductID, &h.PurchasePrice, &h.Quantity,
			&h.PurchaseDate, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler histórico de preço: %w", err)
		}
		history = append(history, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return history, nil
}
