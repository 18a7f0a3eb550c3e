package dto

import (
	"time"

	"github.com/gestaovendas/erp-representacao/internal/domain/order"
	"github.com/shopspring/decimal"
)

// OrderItemRequest representa um item do pedido. Itens com product_id são
// resolvidos contra o catálogo e unit_price, quando informado, substitui o
// preço de tabela (preço negociado). Itens sem product_id são linhas avulsas:
// exigem product_name e unit_price e não abatem estoque na entrega.
type OrderItemRequest struct {
	ProductID   string           `json:"product_id"`
	ProductName string           `json:"product_name"`
	Brand       string           `json:"brand"`
	Quantity    int              `json:"quantity" binding:"required,gt=0"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
}

// OrderRequest representa os dados para criação de um pedido
type OrderRequest struct {
	ClientID    string             `json:"client_id" binding:"required"`
	Items       []OrderItemRequest `json:"items" binding:"required,min=1"`
	Discount    decimal.Decimal    `json:"discount"`
	Description string             `json:"description"`
}

// OrderUpdateRequest representa os dados para atualização de um pedido em aberto
type OrderUpdateRequest struct {
	Items       []OrderItemRequest `json:"items" binding:"required,min=1"`
	Discount    decimal.Decimal    `json:"discount"`
	Description string             `json:"description"`
}

// OrderStatusRequest representa a alteração de status de um pedido
type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderItemResponse representa um item do pedido na resposta
type OrderItemResponse struct {
	ProductID        string          `json:"product_id"`
	ProductName      string          `json:"product_name"`
	Brand            string          `json:"brand"`
	Quantity         int             `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	CommissionRate   decimal.Decimal `json:"commission_rate"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
}

// OrderResponse representa a resposta com dados de um pedido
type OrderResponse struct {
	ID              string              `json:"id"`
	ClientID        string              `json:"client_id"`
	UserID          string              `json:"user_id"`
	Items           []OrderItemResponse `json:"items"`
	Discount        decimal.Decimal     `json:"discount"`
	TotalPrice      decimal.Decimal     `json:"total_price"`
	TotalCommission decimal.Decimal     `json:"total_commission"`
	Status          string              `json:"status"`
	Description     string              `json:"description"`
	CreatedAt       time.Time           `json:"created_at"`
	FinishedAt      *time.Time          `json:"finished_at,omitempty"`
}

// OrderListResponse representa a resposta com a lista de pedidos paginada
type OrderListResponse struct {
	Data       []OrderResponse `json:"data"`
	TotalCount int             `json:"total_count"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

// ToOrderResponse converte um pedido do domínio para DTO de resposta
func ToOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			ProductID:        item.ProductID,
			ProductName:      item.ProductName,
			Brand:            item.Brand,
			Quantity:         item.Quantity,
			UnitPrice:        item.UnitPrice,
			Subtotal:         item.Subtotal(),
			CommissionRate:   item.CommissionRate,
			CommissionAmount: item.CommissionAmount,
		}
	}

	return OrderResponse{
		ID:              o.ID,
		ClientID:        o.ClientID,
		UserID:          o.UserID,
		Items:           items,
		Discount:        o.Discount,
		TotalPrice:      o.TotalPrice,
		TotalCommission: o.TotalCommission,
		Status:          string(o.Status),
		Description:     o.Description,
		CreatedAt:       o.CreatedAt,
		FinishedAt:      o.FinishedAt,
	}
}

// ToOrderListResponse converte uma lista de pedidos do domínio para DTO de resposta paginada
func ToOrderListResponse(orders []*order.Order, totalCount, page, pageSize int) OrderListResponse {
	data := make([]OrderResponse, len(orders))
	for i, o := range orders {
		data[i] = ToOrderResponse(o)
	}

	return OrderListResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}
}
