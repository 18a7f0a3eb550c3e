package product

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository define a interface para operações de repositório de produtos
type Repository interface {
	// Create cria um novo produto
	Create(ctx context.Context, p *Product) error

	// FindByID busca um produto pelo ID
	FindByID(ctx context.Context, id string) (*Product, error)

	// FindByProductCode busca um produto pelo código do fornecedor
	FindByProductCode(ctx context.Context, productCode string) (*Product, error)

	// FindBySubcode busca um produto pelo subcódigo interno
	FindBySubcode(ctx context.Context, subcode string) (*Product, error)

	// List lista os produtos com paginação, opcionalmente filtrando por nome e marca
	List(ctx context.Context, name, brand string, limit, offset int) ([]*Product, error)

	// FindLowStock lista os produtos com estoque igual ou abaixo do mínimo
	FindLowStock(ctx context.Context) ([]*Product, error)

	// Update atualiza os dados de um produto existente
	Update(ctx context.Context, p *Product) error

	// Delete remove um produto
	Delete(ctx context.Context, id string) error

	// Count conta os produtos cadastrados com os mesmos filtros de List
	Count(ctx context.Context, name, brand string) (int, error)

	// DecrementStock abate quantity do estoque do produto em uma única
	// instrução condicional; retorna erro de estoque insuficiente quando o
	// saldo não cobre a quantidade
	DecrementStock(ctx context.Context, id string, quantity int) error

	// IncrementStock acrescenta quantity ao estoque do produto
	IncrementStock(ctx context.Context, id string, quantity int) error

	// UpdatePriceAndSubcode sobrescreve preço e subcódigo (importação de compras)
	UpdatePriceAndSubcode(ctx context.Context, id string, price decimal.Decimal, subcode string) error
}
