package dto

import (
	"time"

	"github.com/gestaovendas/erp-representacao/internal/domain/product"
	"github.com/shopspring/decimal"
)

// ProductRequest representa os dados de um produto para criação ou atualização
type ProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	ProductCode string          `json:"product_code"`
	Subcode     string          `json:"subcode" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Brand       string          `json:"brand"`
	MinStock    int             `json:"min_stock"`
}

// ProductResponse representa a resposta com dados de um produto
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	ProductCode string          `json:"product_code"`
	Subcode     string          `json:"subcode"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Brand       string          `json:"brand"`
	MinStock    int             `json:"min_stock"`
	LowStock    bool            `json:"low_stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse representa a resposta com a lista de produtos paginada
type ProductListResponse struct {
	Data       []ProductResponse `json:"data"`
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// ToProductResponse converte um produto do domínio para DTO de resposta
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		ProductCode: p.ProductCode,
		Subcode:     p.Subcode,
		Price:       p.Price,
		Stock:       p.Stock,
		Brand:       p.Brand,
		MinStock:    p.MinStock,
		LowStock:    p.IsLowStock(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductListResponse converte uma lista de produtos do domínio para DTO de resposta paginada
func ToProductListResponse(products []*product.Product, totalCount, page, pageSize int) ProductListResponse {
	data := make([]ProductResponse, len(products))
	for i, p := range products {
		data[i] = ToProductResponse(p)
	}

	return ProductListResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}
}
