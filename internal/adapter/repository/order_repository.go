package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gestaovendas/erp-representacao/internal/domain/order"
	"github.com/gestaovendas/erp-representacao/internal/domain/product"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrOrderNotFound  = errors.New("pedido não encontrado")
	ErrOrderDelivered = errors.New("pedido entregue não pode ser removido")
)

// OrderRepository implementa a interface order.Repository. Os itens do pedido
// são gravados em uma coluna JSONB, de modo que criação e atualização são uma
// única instrução atômica.
type OrderRepository struct {
	db *pgxpool.Pool
}

// NewOrderRepository cria uma nova instância de OrderRepository
func NewOrderRepository(db *pgxpool.Pool) order.Repository {
	return &OrderRepository{db: db}
}

const orderColumns = `id, client_id, user_id, items, discount, total_price, total_commission, status, description, created_at, finished_at`

// Create implementa order.Repository.Create
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("erro ao converter itens para JSON: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO orders (id, client_id, user_id, items, discount, total_price,
			total_commission, status, description, created_at, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		o.ID, o.ClientID, o.UserID, items, o.Discount, o.TotalPrice,
		o.TotalCommission, o.Status, o.Description, o.CreatedAt, o.FinishedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar pedido: %w", err)
	}

	return nil
}

// FindByID implementa order.Repository.FindByID
func (r *OrderRepository) FindByID(ctx context.Context, id string) (*order.Order, error) {
	row := r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	return scanOrder(row)
}

// List implementa order.Repository.List
func (r *OrderRepository) List(ctx context.Context, status order.Status, clientID string, limit, offset int) ([]*order.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderColumns+`
		FROM orders
		WHERE ($1 = '' OR status = $1)
		  AND ($2 = '' OR client_id::text = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`,
		string(status), clientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar pedidos: %w", err)
	}
	defer rows.Close()

	return scanOrderRows(rows)
}

// FindBySeller implementa order.Repository.FindBySeller
func (r *OrderRepository) FindBySeller(ctx context.Context, userID string, limit, offset int) ([]*order.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderColumns+`
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar pedidos do vendedor: %w", err)
	}
	defer rows.Close()

	return scanOrderRows(rows)
}

// Update implementa order.Repository.Update
func (r *OrderRepository) Update(ctx context.Context, o *order.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("erro ao converter itens para JSON: %w", err)
	}

	result, err := r.db.Exec(ctx,
		`UPDATE orders SET
			client_id = $1, items = $2, discount = $3, total_price = $4,
			total_commission = $5, description = $6
		WHERE id = $7`,
		o.ClientID, items, o.Discount, o.TotalPrice, o.TotalCommission,
		o.Description, o.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar pedido: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// Finalize implementa order.Repository.Finalize. A transição de status e o
// abate de estoque de todos os itens acontecem em uma única transação: se
// qualquer item não tiver estoque, nada é gravado.
func (r *OrderRepository) Finalize(ctx context.Context, id string) (*order.Order, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	var o order.Order
	var itemsJSON []byte
	err = tx.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`,
		id).Scan(&o.ID, &o.ClientID, &o.UserID, &itemsJSON, &o.Discount,
		&o.TotalPrice, &o.TotalCommission, &o.Status, &o.Description,
		&o.CreatedAt, &o.FinishedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("erro ao buscar pedido: %w", err)
	}

	if o.Status != order.StatusOpen {
		return nil, order.ErrAlreadyDelivered
	}

	if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
		return nil, fmt.Errorf("erro ao converter itens: %w", err)
	}

	now := time.Now()
	_, err = tx.Exec(ctx,
		`UPDATE orders SET status = $1, finished_at = $2 WHERE id = $3`,
		order.StatusDelivered, now, id)
	if err != nil {
		return nil, fmt.Errorf("erro ao finalizar pedido: %w", err)
	}

	for _, item := range o.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			continue
		}

		result, err := tx.Exec(ctx,
			`UPDATE products SET stock = stock - $1, updated_at = NOW()
			WHERE id = $2 AND stock >= $1`,
			item.Quantity, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("erro ao abater estoque do produto %s: %w", item.ProductName, err)
		}

		if result.RowsAffected() == 0 {
			var available int
			findErr := tx.QueryRow(ctx,
				"SELECT stock FROM products WHERE id = $1", item.ProductID).Scan(&available)
			if findErr != nil {
				if errors.Is(findErr, pgx.ErrNoRows) {
					return nil, ErrProductNotFound
				}
				return nil, fmt.Errorf("erro ao buscar produto: %w", findErr)
			}
			return nil, &product.InsufficientStockError{
				ProductID:   item.ProductID,
				ProductName: item.ProductName,
				Available:   available,
				Requested:   item.Quantity,
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("erro ao fazer commit: %w", err)
	}

	o.Status = order.StatusDelivered
	o.FinishedAt = &now
	return &o, nil
}

// Delete implementa order.Repository.Delete. Apenas pedidos em aberto podem
// ser removidos.
func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM orders WHERE id = $1 AND status = $2`,
		id, order.StatusOpen)
	if err != nil {
		return fmt.Errorf("erro ao excluir pedido: %w", err)
	}

	if result.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx,
			"SELECT EXISTS(SELECT 1 FROM orders WHERE id = $1)", id).Scan(&exists); err != nil {
			return fmt.Errorf("erro ao verificar existência do pedido: %w", err)
		}
		if exists {
			return ErrOrderDelivered
		}
		return ErrOrderNotFound
	}

	return nil
}

// Count implementa order.Repository.Count
func (r *OrderRepository) Count(ctx context.Context, status order.Status, clientID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders
		WHERE ($1 = '' OR status = $1)
		  AND ($2 = '' OR client_id::text = $2)`,
		string(status), clientID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar pedidos: %w", err)
	}
	return count, nil
}

// StatsByClient implementa order.Repository.StatsByClient
func (r *OrderRepository) StatsByClient(ctx context.Context, clientID string) (*order.ClientStats, error) {
	stats := order.ClientStats{ClientID: clientID}
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE status = $2),
		        COALESCE(SUM(total_price), 0)
		FROM orders WHERE client_id = $1`,
		clientID, order.StatusDelivered).Scan(
		&stats.OrderCount, &stats.DeliveredCount, &stats.TotalValue)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar estatísticas do cliente: %w", err)
	}
	return &stats, nil
}

func scanOrder(row pgx.Row) (*order.Order, error) {
	var o order.Order
	var itemsJSON []byte

	err := row.Scan(&o.ID, &o.ClientID, &o.UserID, &itemsJSON, &o.Discount,
		&o.TotalPrice, &o.TotalCommission, &o.Status, &o.Description,
		&o.CreatedAt, &o.FinishedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("erro ao buscar pedido: %w", err)
	}

	if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
		return nil, fmt.Errorf("erro ao converter itens: %w", err)
	}

	return &o, nil
}

func scanOrderRows(rows pgx.Rows) ([]*order.Order, error) {
	orders := make([]*order.Order, 0)

	for rows.Next() {
		var o order.Order
		var itemsJSON []byte

		err := rows.Scan(&o.ID, &o.ClientID, &o.UserID, &itemsJSON, &o.Discount,
			&o.TotalPrice, &o.TotalCommission, &o.Status, &o.Description,
			&o.CreatedAt, &o.FinishedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler pedido: %w", err)
		}

		if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
			return nil, fmt.Errorf("erro ao converter itens: %w", err)
		}

		orders = append(orders, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return orders, nil
}
