package purchase

import (
	"context"
)

// PriceHistoryRepository define a interface para o histórico de preços
type PriceHistoryRepository interface {
	// Append acrescenta um registro ao histórico (o histórico nunca é alterado)
	Append(ctx context.Context, h *PriceHistory) error

	// ListByProduct lista o histórico de um produto, do mais recente ao mais antigo
	ListByProduct(ctx context.Context, productID string) ([]*PriceHistory, error)
}
