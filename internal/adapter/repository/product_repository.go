package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gestaovendas/erp-representacao/internal/domain/product"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Erros específicos do repositório
var (
	ErrProductNotFound     = errors.New("produto não encontrado")
	ErrProductDuplicateKey = errors.New("produto com mesmo código ou subcódigo já existe")
)

// ProductRepository implementa a interface product.Repository
type ProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db *pgxpool.Pool) product.Repository {
	return &ProductRepository{db: db}
}

const productColumns = `id, name, COALESCE(product_code, ''), subcode, price, stock, brand, min_stock, created_at, updated_at`

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO products (id, name, product_code, subcode, price, stock, brand, min_stock, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.Name, p.ProductCode, p.Subcode, p.Price, p.Stock, p.Brand,
		p.MinStock, p.CreatedAt, p.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrProductDuplicateKey
		}
		return fmt.Errorf("erro ao criar produto: %w", err)
	}

	return nil
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	return scanProduct(row)
}

// FindByProductCode implementa product.Repository.FindByProductCode
func (r *ProductRepository) FindByProductCode(ctx context.Context, productCode string) (*product.Product, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE product_code = $1`, productCode)
	return scanProduct(row)
}

// FindBySubcode implementa product.Repository.FindBySubcode
func (r *ProductRepository) FindBySubcode(ctx context.Context, subcode string) (*product.Product, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE subcode = $1`, subcode)
	return scanProduct(row)
}

// List implementa product.Repository.List
func (r *ProductRepository) List(ctx context.Context, name, brand string, limit, offset int) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+`
		FROM products
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR brand = $2)
		ORDER BY name ASC
		LIMIT $3 OFFSET $4`,
		name, brand, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	return scanProductRows(rows)
}

// FindLowStock implementa product.Repository.FindLowStock
func (r *ProductRepository) FindLowStock(ctx context.Context) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+`
		FROM products
		WHERE stock <= min_stock
		ORDER BY stock ASC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos com estoque baixo: %w", err)
	}
	defer rows.Close()

	return scanProductRows(rows)
}

// Update implementa product.Repository.Update
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	result, err := r.db.Exec(ctx,
		`UPDATE products SET
			name = $1, product_code = NULLIF($2, ''), subcode = $3, price = $4,
			stock = $5, brand = $6, min_stock = $7, updated_at = $8
		WHERE id = $9`,
		p.Name, p.ProductCode, p.Subcode, p.Price, p.Stock, p.Brand,
		p.MinStock, p.UpdatedAt, p.ID)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrProductDuplicateKey
		}
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Delete implementa product.Repository.Delete
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir produto: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Count implementa product.Repository.Count
func (r *ProductRepository) Count(ctx context.Context, name, brand string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM products
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR brand = $2)`,
		name, brand).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar produtos: %w", err)
	}
	return count, nil
}

// DecrementStock implementa product.Repository.DecrementStock. O abate é uma
// única instrução condicional: duas requisições concorrentes nunca deixam o
// estoque negativo.
func (r *ProductRepository) DecrementStock(ctx context.Context, id string, quantity int) error {
	result, err := r.db.Exec(ctx,
		`UPDATE products SET stock = stock - $1, updated_at = NOW()
		WHERE id = $2 AND stock >= $1`,
		quantity, id)
	if err != nil {
		return fmt.Errorf("erro ao abater estoque: %w", err)
	}

	if result.RowsAffected() == 0 {
		p, findErr := r.FindByID(ctx, id)
		if findErr != nil {
			return findErr
		}
		return &product.InsufficientStockError{
			ProductID:   p.ID,
			ProductName: p.Name,
			Available:   p.Stock,
			Requested:   quantity,
		}
	}

	return nil
}

// IncrementStock implementa product.Repository.IncrementStock
func (r *ProductRepository) IncrementStock(ctx context.Context, id string, quantity int) error {
	result, err := r.db.Exec(ctx,
		`UPDATE products SET stock = stock + $1, updated_at = NOW() WHERE id = $2`,
		quantity, id)
	if err != nil {
		return fmt.Errorf("erro ao acrescentar estoque: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// UpdatePriceAndSubcode implementa product.Repository.UpdatePriceAndSubcode
func (r *ProductRepository) UpdatePriceAndSubcode(ctx context.Context, id string, price decimal.Decimal, subcode string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE products SET price = $1, subcode = $2, updated_at = NOW() WHERE id = $3`,
		price, subcode, id)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrProductDuplicateKey
		}
		return fmt.Errorf("erro ao atualizar preço do produto: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

func scanProduct(row pgx.Row) (*product.Product, error) {
	var p product.Product
	err := row.Scan(&p.ID, &p.Name, &p.ProductCode, &p.Subcode, &p.Price,
		&p.Stock, &p.Brand, &p.MinStock, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}
	return &p, nil
}

func scanProductRows(rows pgx.Rows) ([]*product.Product, error) {
	products := make([]*product.Product, 0)

	for rows.Next() {
		var p product.Product
		err := rows.Scan(&p.ID, &p.Name, &p.ProductCode, &p.Subcode, &p.Price,
			&p.Stock, &p.Brand, &p.MinStock, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler produto: %w", err)
		}
		products = append(products, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return products, nil
}
