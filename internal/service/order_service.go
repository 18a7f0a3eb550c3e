package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gestaovendas/erp-representacao/internal/adapter/repository"
	"github.com/gestaovendas/erp-representacao/internal/domain/brand"
	"github.com/gestaovendas/erp-representacao/internal/domain/client"
	"github.com/gestaovendas/erp-representacao/internal/domain/order"
	"github.com/gestaovendas/erp-representacao/internal/domain/product"
	"github.com/gestaovendas/erp-representacao/internal/domain/user"
	"github.com/gestaovendas/erp-representacao/pkg/logger"
	"github.com/shopspring/decimal"
)

// Erros do serviço de pedidos
var (
	ErrClientNotFound    = errors.New("cliente não encontrado")
	ErrSellerNotFound    = errors.New("vendedor não encontrado")
	ErrItemNameRequired  = errors.New("item sem produto associado precisa de nome")
	ErrItemPriceRequired = errors.New("item sem produto associado precisa de preço")
)

// ItemInput representa um item de pedido informado pelo vendedor. Itens com
// ProductID são resolvidos contra o catálogo, com UnitPrice opcional como
// preço negociado; itens sem ProductID são linhas avulsas e trazem nome,
// marca e preço próprios. A taxa de comissão é sempre resolvida pela marca.
type ItemInput struct {
	ProductID   string
	ProductName string
	Brand       string
	Quantity    int
	UnitPrice   *decimal.Decimal
}

// OrderService monta e mantém pedidos. A taxa de comissão da marca é copiada
// para cada item na montagem; o abate de estoque acontece só na entrega.
type OrderService struct {
	orderRepo   order.Repository
	productRepo product.Repository
	brandRepo   brand.Repository
	clientRepo  client.Repository
	userRepo    user.Repository
	logger      logger.Logger
}

// NewOrderService cria uma nova instância de OrderService
func NewOrderService(orderRepo order.Repository, productRepo product.Repository,
	brandRepo brand.Repository, clientRepo client.Repository,
	userRepo user.Repository, logger logger.Logger) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		brandRepo:   brandRepo,
		clientRepo:  clientRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// Create monta um novo pedido em aberto. Valida cliente e vendedor, resolve
// cada item contra o cadastro de produtos e rejeita quantidades acima do
// estoque atual.
func (s *OrderService) Create(ctx context.Context, clientID, userID string, items []ItemInput, discount decimal.Decimal, description string) (*order.Order, error) {
	exists, err := s.clientRepo.Exists(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("erro ao verificar cliente: %w", err)
	}
	if !exists {
		return nil, ErrClientNotFound
	}

	exists, err = s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("erro ao verificar vendedor: %w", err)
	}
	if !exists {
		return nil, ErrSellerNotFound
	}

	orderItems, err := s.buildItems(ctx, items)
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(clientID, userID, orderItems, discount, description)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Create(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}

// Update substitui itens, desconto e descrição de um pedido em aberto,
// recalculando comissões e totais do zero. Pedidos entregues são imutáveis.
func (s *OrderService) Update(ctx context.Context, id string, items []ItemInput, discount decimal.Decimal, description string) (*order.Order, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !o.IsOpen() {
		return nil, order.ErrAlreadyDelivered
	}

	orderItems, err := s.buildItems(ctx, items)
	if err != nil {
		return nil, err
	}

	if err := o.Replace(orderItems, discount, description); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}

// Finalize marca o pedido como entregue e abate o estoque de todos os itens
// atomicamente. Estoque insuficiente em qualquer item desfaz a operação.
func (s *OrderService) Finalize(ctx context.Context, id string) (*order.Order, error) {
	o, err := s.orderRepo.Finalize(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("pedido entregue", "order_id", o.ID, "total", o.TotalPrice.String())
	return o, nil
}

// Delete remove um pedido ainda em aberto
func (s *OrderService) Delete(ctx context.Context, id string) error {
	return s.orderRepo.Delete(ctx, id)
}

// buildItems resolve cada entrada e copia a taxa de comissão da marca. Itens
// com produto associado validam o estoque e herdam nome, marca e preço do
// catálogo, salvo preço negociado; linhas avulsas usam os dados informados.
// Marca sem cadastro resulta em comissão zero, nunca em erro.
func (s *OrderService) buildItems(ctx context.Context, items []ItemInput) ([]order.Item, error) {
	orderItems := make([]order.Item, 0, len(items))
	for _, in := range items {
		if in.Quantity <= 0 {
			return nil, order.ErrInvalidQuantity
		}
		if in.UnitPrice != nil && in.UnitPrice.IsNegative() {
			return nil, product.ErrNegativePrice
		}

		name := in.ProductName
		brandName := in.Brand
		price := decimal.Zero
		if in.UnitPrice != nil {
			price = *in.UnitPrice
		}

		if in.ProductID != "" {
			p, err := s.productRepo.FindByID(ctx, in.ProductID)
			if err != nil {
				return nil, err
			}

			if p.Stock < in.Quantity {
				return nil, &product.InsufficientStockError{
					ProductID:   p.ID,
					ProductName: p.Name,
					Available:   p.Stock,
					Requested:   in.Quantity,
				}
			}

			name = p.Name
			brandName = p.Brand
			if in.UnitPrice == nil {
				price = p.Price
			}
		} else {
			if name == "" {
				return nil, ErrItemNameRequired
			}
			if in.UnitPrice == nil {
				return nil, ErrItemPriceRequired
			}
		}

		rate := decimal.Zero
		if brandName != "" {
			b, err := s.brandRepo.FindByName(ctx, brandName)
			if err != nil {
				if !errors.Is(err, repository.ErrBrandNotFound) {
					s.logger.Warn("erro ao buscar marca, comissão será zero", "brand", brandName, "error", err)
				}
			} else {
				rate = b.CommissionRate
			}
		}

		orderItems = append(orderItems, order.Item{
			ProductID:      in.ProductID,
			ProductName:    name,
			Brand:          brandName,
			Quantity:       in.Quantity,
			UnitPrice:      price,
			CommissionRate: rate,
		})
	}

	return orderItems, nil
}
