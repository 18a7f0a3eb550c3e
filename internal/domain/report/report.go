package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Filter restringe os relatórios por período e, quando UserID é preenchido,
// aos pedidos de um único vendedor (visão do representante)
type Filter struct {
	From   *time.Time
	To     *time.Time
	UserID string
}

// SalesByRep resume as vendas de um vendedor
type SalesByRep struct {
	UserID     string          `json:"user_id"`
	UserName   string          `json:"user_name"`
	OrderCount int             `json:"order_count"`
	Revenue    decimal.Decimal `json:"revenue"`
	Commission decimal.Decimal `json:"commission"`
}

// CommissionRow é uma linha do relatório de comissões; Brand fica vazio
// quando o relatório não é detalhado por marca
type CommissionRow struct {
	UserID     string          `json:"user_id"`
	UserName   string          `json:"user_name"`
	Brand      string          `json:"brand,omitempty"`
	Revenue    decimal.Decimal `json:"revenue"`
	Commission decimal.Decimal `json:"commission"`
}

// Dashboard reúne os contadores exibidos na tela inicial
type Dashboard struct {
	Clients          int             `json:"clients"`
	Products         int             `json:"products"`
	Orders           int             `json:"orders"`
	OpenOrders       int             `json:"open_orders"`
	DeliveredRevenue decimal.Decimal `json:"delivered_revenue"`
	LowStockProducts int             `json:"low_stock_products"`
}

// Repository define as consultas agregadas de relatório. São projeções puras
// sobre pedidos/clientes/produtos; nenhuma escrita.
type Repository interface {
	// SalesByRep agrupa as vendas por vendedor
	SalesByRep(ctx context.Context, f Filter) ([]SalesByRep, error)

	// Commissions agrupa as comissões por vendedor e, opcionalmente, por marca
	Commissions(ctx context.Context, f Filter, byBrand bool) ([]CommissionRow, error)

	// Dashboard retorna os contadores gerais
	Dashboard(ctx context.Context) (*Dashboard, error)
}
