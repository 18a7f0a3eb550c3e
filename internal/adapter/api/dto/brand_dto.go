package dto

import (
	"time"

	"github.com/gestaovendas/erp-representacao/internal/domain/brand"
	"github.com/shopspring/decimal"
)

// BrandRequest representa os dados de uma marca para criação ou atualização
type BrandRequest struct {
	Name           string          `json:"name" binding:"required"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
}

// BrandResponse representa a resposta com dados de uma marca
type BrandResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// BrandListResponse representa a resposta com a lista de marcas
type BrandListResponse struct {
	Data       []BrandResponse `json:"data"`
	TotalCount int             `json:"total_count"`
}

// ToBrandResponse converte uma marca do domínio para DTO de resposta
func ToBrandResponse(b *brand.Brand) BrandResponse {
	return BrandResponse{
		ID:             b.ID,
		Name:           b.Name,
		CommissionRate: b.CommissionRate,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// ToBrandListResponse converte uma lista de marcas do domínio para DTO de resposta
func ToBrandListResponse(brands []*brand.Brand) BrandListResponse {
	data := make([]BrandResponse, len(brands))
	for i, b := range brands {
		data[i] = ToBrandResponse(b)
	}

	return BrandListResponse{
		Data:       data,
		TotalCount: len(data),
	}
}
