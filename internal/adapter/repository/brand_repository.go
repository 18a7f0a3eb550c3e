package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gestaovendas/erp-representacao/internal/domain/brand"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrBrandNotFound     = errors.New("marca não encontrada")
	ErrBrandDuplicateKey = errors.New("marca com mesmo nome já existe")
)

// BrandRepository implementa a interface brand.Repository
type BrandRepository struct {
	db *pgxpool.Pool
}

// NewBrandRepository cria uma nova instância de BrandRepository
func NewBrandRepository(db *pgxpool.Pool) brand.Repository {
	return &BrandRepository{db: db}
}

// Create implementa brand.Repository.Create
func (r *BrandRepository) Create(ctx context.Context, b *brand.Brand) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO brands (id, name, commission_rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		b.ID, b.Name, b.CommissionRate, b.CreatedAt, b.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrBrandDuplicateKey
		}
		return fmt.Errorf("erro ao criar marca: %w", err)
	}

	return nil
}

// FindByID implementa brand.Repository.FindByID
func (r *BrandRepository) FindByID(ctx context.Context, id string) (*brand.Brand, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, commission_rate, created_at, updated_at FROM brands WHERE id = $1`, id)
	return scanBrand(row)
}

// FindByName implementa brand.Repository.FindByName
func (r *BrandRepository) FindByName(ctx context.Context, name string) (*brand.Brand, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, commission_rate, created_at, updated_at FROM brands WHERE name = $1`, name)
	return scanBrand(row)
}

// List implementa brand.Repository.List
func (r *BrandRepository) List(ctx context.Context) ([]*brand.Brand, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, commission_rate, created_at, updated_at FROM brands ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar marcas: %w", err)
	}
	defer rows.Close()

	brands := make([]*brand.Brand, 0)
	for rows.Next() {
		var b brand.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.CommissionRate, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler marca: %w", err)
		}
		brands = append(brands, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return brands, nil
}

// Update implementa brand.Repository.Update
func (r *BrandRepository) Update(ctx context.Context, b *brand.Brand) error {
	result, err := r.db.Exec(ctx,
		`UPDATE brands SET name = $1, commission_rate = $2, updated_at = $3 WHERE id = $4`,
		b.Name, b.CommissionRate, b.UpdatedAt, b.ID)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrBrandDuplicateKey
		}
		return fmt.Errorf("erro ao atualizar marca: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrBrandNotFound
	}

	return nil
}

// Delete implementa brand.Repository.Delete
func (r *BrandRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM brands WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir marca: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrBrandNotFound
	}

	return nil
}

func scanBrand(row pgx.Row) (*brand.Brand, error) {
	var b brand.Brand
	err := row.Scan(&b.ID, &b.Name, &b.CommissionRate, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBrandNotFound
		}
		return nil, fmt.Errorf("erro ao buscar marca: %w", err)
	}
	return &b, nil
}
