package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName        = errors.New("nome não pode ser vazio")
	ErrEmptySubcode     = errors.New("subcódigo não pode ser vazio")
	ErrNegativePrice    = errors.New("preço não pode ser negativo")
	ErrNegativeStock    = errors.New("estoque não pode ser negativo")
	ErrNegativeMinStock = errors.New("estoque mínimo não pode ser negativo")
)

// Product representa um produto das marcas representadas
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	ProductCode string          `json:"product_code"` // Código do fornecedor
	Subcode     string          `json:"subcode"`      // Código interno único
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Brand       string          `json:"brand"`
	MinStock    int             `json:"min_stock"` // Limite para reposição
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewProduct cria um novo produto
func NewProduct(name, productCode, subcode string, price decimal.Decimal, stock int, brand string, minStock int) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if subcode == "" {
		return nil, ErrEmptySubcode
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}
	if stock < 0 {
		return nil, ErrNegativeStock
	}
	if minStock < 0 {
		return nil, ErrNegativeMinStock
	}

	now := time.Now()
	return &Product{
		ID:          uuid.New().String(),
		Name:        name,
		ProductCode: productCode,
		Subcode:     subcode,
		Price:       price,
		Stock:       stock,
		Brand:       brand,
		MinStock:    minStock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Update atualiza os dados do produto
func (p *Product) Update(name, productCode, subcode string, price decimal.Decimal, stock int, brand string, minStock int) error {
	if name == "" {
		return ErrEmptyName
	}
	if subcode == "" {
		return ErrEmptySubcode
	}
	if price.IsNegative() {
		return ErrNegativePrice
	}
	if stock < 0 {
		return ErrNegativeStock
	}
	if minStock < 0 {
		return ErrNegativeMinStock
	}

	p.Name = name
	p.ProductCode = productCode
	p.Subcode = subcode
	p.Price = price
	p.Stock = stock
	p.Brand = brand
	p.MinStock = minStock
	p.UpdatedAt = time.Now()

	return nil
}

// IsLowStock verifica se o produto está abaixo do estoque mínimo
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}
