package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gestaovendas/erp-representacao/internal/adapter/repository"
	"github.com/gestaovendas/erp-representacao/internal/domain/product"
	"github.com/gestaovendas/erp-representacao/internal/domain/purchase"
	"github.com/gestaovendas/erp-representacao/pkg/logger"
)

// PurchaseService grava os itens de uma importação de compra revisada,
// atualizando o cadastro de produtos, o estoque e o histórico de preços.
type PurchaseService struct {
	productRepo product.Repository
	historyRepo purchase.PriceHistoryRepository
	logger      logger.Logger
}

// NewPurchaseService cria uma nova instância de PurchaseService
func NewPurchaseService(productRepo product.Repository,
	historyRepo purchase.PriceHistoryRepository, logger logger.Logger) *PurchaseService {
	return &PurchaseService{
		productRepo: productRepo,
		historyRepo: historyRepo,
		logger:      logger,
	}
}

// Confirm grava um lote de itens importados. Subcódigos duplicados dentro do
// lote, ou já pertencentes a um produto diferente do alvo do item, rejeitam a
// importação inteira antes de qualquer escrita; depois disso, a falha de um
// item não interrompe os demais e é acumulada no resultado.
func (s *PurchaseService) Confirm(ctx context.Context, items []purchase.ImportItem) (*purchase.ImportResult, error) {
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if item.Subcode == "" {
			continue
		}
		if seen[item.Subcode] {
			return nil, fmt.Errorf("%w: %s", purchase.ErrSubcodeConflict, item.Subcode)
		}
		seen[item.Subcode] = true

		owner, err := s.productRepo.FindBySubcode(ctx, item.Subcode)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				continue
			}
			return nil, fmt.Errorf("erro ao verificar subcódigo: %w", err)
		}
		if item.ProductID != "" && item.ProductID != owner.ID {
			return nil, fmt.Errorf("%w: %s", purchase.ErrSubcodeConflict, item.Subcode)
		}
	}

	result := &purchase.ImportResult{}
	now := time.Now()

	for _, item := range items {
		if err := s.applyItem(ctx, item, now, result); err != nil {
			s.logger.Warn("item de importação rejeitado", "subcode", item.Subcode, "error", err)
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", itemLabel(item), err))
		}
	}

	s.logger.Info("importação de compra gravada",
		"created", result.Created, "updated", result.Updated, "errors", len(result.Errors))
	return result, nil
}

// applyItem grava um único item importado: atualiza o produto associado ou
// cria um novo, soma a quantidade ao estoque e acrescenta o histórico de preço.
func (s *PurchaseService) applyItem(ctx context.Context, item purchase.ImportItem, now time.Time, result *purchase.ImportResult) error {
	if item.Subcode == "" {
		return purchase.ErrEmptySubcode
	}
	if item.Quantity < 0 {
		return purchase.ErrNegativeQuantity
	}

	p, err := s.resolveProduct(ctx, item)
	if err != nil {
		return err
	}

	if p == nil {
		created, err := product.NewProduct(item.Name, item.Code, item.Subcode,
			item.Price, item.Quantity, item.Category, 0)
		if err != nil {
			return err
		}
		if err := s.productRepo.Create(ctx, created); err != nil {
			if errors.Is(err, repository.ErrProductDuplicateKey) {
				return purchase.ErrSubcodeConflict
			}
			return err
		}
		result.Created++

		return s.historyRepo.Append(ctx, purchase.NewPriceHistory(created.ID, item.Price, item.Quantity, now))
	}

	// O subcódigo informado não pode pertencer a outro produto
	if p.Subcode != item.Subcode {
		other, err := s.productRepo.FindBySubcode(ctx, item.Subcode)
		if err != nil && !errors.Is(err, repository.ErrProductNotFound) {
			return err
		}
		if other != nil && other.ID != p.ID {
			return purchase.ErrSubcodeConflict
		}
	}

	priceChanged := !p.Price.Equal(item.Price)

	if err := s.productRepo.UpdatePriceAndSubcode(ctx, p.ID, item.Price, item.Subcode); err != nil {
		return err
	}

	if item.Quantity > 0 {
		if err := s.productRepo.IncrementStock(ctx, p.ID, item.Quantity); err != nil {
			return err
		}
	}
	result.Updated++

	if priceChanged || item.Quantity > 0 {
		return s.historyRepo.Append(ctx, purchase.NewPriceHistory(p.ID, item.Price, item.Quantity, now))
	}

	return nil
}

// resolveProduct localiza o produto alvo de um item importado: pelo ID quando
// o usuário associou na revisão, senão pelo subcódigo e por fim pelo código do
// fornecedor. Retorna nil quando nenhum produto corresponde.
func (s *PurchaseService) resolveProduct(ctx context.Context, item purchase.ImportItem) (*product.Product, error) {
	if item.ProductID != "" {
		return s.productRepo.FindByID(ctx, item.ProductID)
	}

	p, err := s.productRepo.FindBySubcode(ctx, item.Subcode)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, repository.ErrProductNotFound) {
		return nil, err
	}

	if item.Code != "" {
		p, err = s.productRepo.FindByProductCode(ctx, item.Code)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, repository.ErrProductNotFound) {
			return nil, err
		}
	}

	return nil, nil
}

// History lista o histórico de preços de compra de um produto
func (s *PurchaseService) History(ctx context.Context, productID string) ([]*purchase.PriceHistory, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, err
	}
	return s.historyRepo.ListByProduct(ctx, productID)
}

func itemLabel(item purchase.ImportItem) string {
	if item.Subcode != "" {
		return item.Subcode
	}
	if item.Code != "" {
		return item.Code
	}
	return item.Name
}
