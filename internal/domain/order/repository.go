package order

import (
	"context"

	"github.com/shopspring/decimal"
)

// ClientStats resume os pedidos de um cliente
type ClientStats struct {
	ClientID       string          `json:"client_id"`
	OrderCount     int             `json:"order_count"`
	DeliveredCount int             `json:"delivered_count"`
	TotalValue     decimal.Decimal `json:"total_value"`
}

// Repository define a interface para operações de repositório de pedidos
type Repository interface {
	// Create grava um pedido em aberto com itens e totais já calculados.
	// A gravação é feita em uma única instrução (itens em coluna JSONB).
	Create(ctx context.Context, o *Order) error

	// FindByID busca um pedido pelo ID
	FindByID(ctx context.Context, id string) (*Order, error)

	// List lista os pedidos com paginação, opcionalmente filtrando por
	// status e cliente
	List(ctx context.Context, status Status, clientID string, limit, offset int) ([]*Order, error)

	// FindBySeller lista os pedidos de um vendedor
	FindBySeller(ctx context.Context, userID string, limit, offset int) ([]*Order, error)

	// Update substitui itens, desconto e totais de um pedido existente
	Update(ctx context.Context, o *Order) error

	// Finalize muda o status para Entregue, grava finished_at e abate o
	// estoque de cada item, tudo em uma única transação. Pedido já entregue
	// é rejeitado; estoque insuficiente desfaz a operação inteira.
	Finalize(ctx context.Context, id string) (*Order, error)

	// Delete remove um pedido ainda em aberto; pedidos entregues não podem
	// ser removidos
	Delete(ctx context.Context, id string) error

	// Count conta os pedidos com os mesmos filtros de List
	Count(ctx context.Context, status Status, clientID string) (int, error)

	// StatsByClient resume a quantidade e o valor dos pedidos de um cliente
	StatsByClient(ctx context.Context, clientID string) (*ClientStats, error)
}
