package purchase

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptySubcode     = errors.New("item importado sem subcódigo")
	ErrSubcodeConflict  = errors.New("subcódigo já utilizado por outro produto")
	ErrNegativeQuantity = errors.New("quantidade importada não pode ser negativa")
)

// PriceHistory é um registro imutável do preço de compra de um produto.
// Uma linha é acrescentada sempre que uma importação altera o preço ou o
// estoque de um produto; linhas nunca são editadas.
type PriceHistory struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Quantity      int             `json:"quantity"`
	PurchaseDate  time.Time       `json:"purchase_date"`
	CreatedAt     time.Time       `json:"created_at"`
}

// NewPriceHistory cria um novo registro de histórico de preço
func NewPriceHistory(productID string, purchasePrice decimal.Decimal, quantity int, purchaseDate time.Time) *PriceHistory {
	return &PriceHistory{
		ID:            uuid.New().String(),
		ProductID:     productID,
		PurchasePrice: purchasePrice,
		Quantity:      quantity,
		PurchaseDate:  purchaseDate,
		CreatedAt:     time.Now(),
	}
}

// ImportItem é um item extraído de um PDF ou CSV de compra, já revisado pelo
// usuário. ProductID é preenchido quando o item foi associado a um produto
// existente durante a revisão.
type ImportItem struct {
	ProductID string          `json:"product_id,omitempty"`
	Code      string          `json:"code"`    // Código do fornecedor
	Name      string          `json:"name"`    // Descrição do produto
	Price     decimal.Decimal `json:"price"`   // Preço de compra
	Quantity  int             `json:"quantity"`
	Subcode   string          `json:"subcode"` // Código interno, obrigatório e único
	Category  string          `json:"category,omitempty"`
}

// ImportResult totaliza o resultado da gravação de uma importação. Falhas de
// itens individuais são acumuladas em Errors e não interrompem o lote.
type ImportResult struct {
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Errors  []string `json:"errors,omitempty"`
}
