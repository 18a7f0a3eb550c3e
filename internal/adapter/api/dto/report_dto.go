package dto

import (
	"github.com/gestaovendas/erp-representacao/internal/domain/report"
	"github.com/shopspring/decimal"
)

// SalesByRepResponse resume as vendas de um vendedor
type SalesByRepResponse struct {
	UserID     string          `json:"user_id"`
	UserName   string          `json:"user_name"`
	OrderCount int             `json:"order_count"`
	Revenue    decimal.Decimal `json:"revenue"`
	Commission decimal.Decimal `json:"commission"`
}

// CommissionRowResponse é uma linha do relatório de comissões
type CommissionRowResponse struct {
	UserID     string          `json:"user_id"`
	UserName   string          `json:"user_name"`
	Brand      string          `json:"brand,omitempty"`
	Revenue    decimal.Decimal `json:"revenue"`
	Commission decimal.Decimal `json:"commission"`
}

// DashboardResponse reúne os contadores exibidos na tela inicial
type DashboardResponse struct {
	Clients          int             `json:"clients"`
	Products         int             `json:"products"`
	Orders           int             `json:"orders"`
	OpenOrders       int             `json:"open_orders"`
	DeliveredRevenue decimal.Decimal `json:"delivered_revenue"`
	LowStockProducts int             `json:"low_stock_products"`
}

// ToSalesByRepResponses converte o resumo de vendas por vendedor para DTO
func ToSalesByRepResponses(rows []report.SalesByRep) []SalesByRepResponse {
	data := make([]SalesByRepResponse, len(rows))
	for i, r := range rows {
		data[i] = SalesByRepResponse(r)
	}
	return data
}

// ToCommissionRowResponses converte as linhas de comissão para DTO
func ToCommissionRowResponses(rows []report.CommissionRow) []CommissionRowResponse {
	data := make([]CommissionRowResponse, len(rows))
	for i, r := range rows {
		data[i] = CommissionRowResponse(r)
	}
	return data
}

// ToDashboardResponse converte os contadores do painel para DTO
func ToDashboardResponse(d *report.Dashboard) DashboardResponse {
	return DashboardResponse(*d)
}
