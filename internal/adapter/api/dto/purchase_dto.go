package dto

import (
	"time"

	"github.com/gestaovendas/erp-representacao/internal/domain/purchase"
	"github.com/shopspring/decimal"
)

// ImportItemDTO representa um item extraído de um PDF ou CSV de compra. O
// mesmo formato é devolvido pela extração e aceito na confirmação, depois da
// revisão do usuário.
type ImportItemDTO struct {
	ProductID string          `json:"product_id,omitempty"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Subcode   string          `json:"subcode"`
	Category  string          `json:"category,omitempty"`
}

// ImportExtractionResponse representa a lista de itens extraída de um arquivo,
// para revisão antes da gravação
type ImportExtractionResponse struct {
	Items []ImportItemDTO `json:"items"`
}

// ImportConfirmRequest representa o lote revisado a ser gravado
type ImportConfirmRequest struct {
	Items []ImportItemDTO `json:"items" binding:"required,min=1"`
}

// ImportResultResponse totaliza o resultado da gravação de uma importação
type ImportResultResponse struct {
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Errors  []string `json:"errors,omitempty"`
}

// PriceHistoryResponse representa um registro do histórico de preços de compra
type PriceHistoryResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Quantity      int             `json:"quantity"`
	PurchaseDate  time.Time       `json:"purchase_date"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ToImportItemDTOs converte itens de importação do domínio para DTO
func ToImportItemDTOs(items []purchase.ImportItem) []ImportItemDTO {
	data := make([]ImportItemDTO, len(items))
	for i, item := range items {
		data[i] = ImportItemDTO(item)
	}
	return data
}

// ToImportItems converte itens de importação do DTO para o domínio
func ToImportItems(items []ImportItemDTO) []purchase.ImportItem {
	data := make([]purchase.ImportItem, len(items))
	for i, item := range items {
		data[i] = purchase.ImportItem(item)
	}
	return data
}

// ToImportResultResponse converte o resultado da importação para DTO
func ToImportResultResponse(result *purchase.ImportResult) ImportResultResponse {
	return ImportResultResponse{
		Created: result.Created,
		Updated: result.Updated,
		Errors:  result.Errors,
	}
}

// ToPriceHistoryResponses converte o histórico de preços para DTO
func ToPriceHistoryResponses(history []*purchase.PriceHistory) []PriceHistoryResponse {
	data := make([]PriceHistoryResponse, len(history))
	for i, h := range history {
		data[i] = PriceHistoryResponse{
			ID:            h.ID,
			ProductID:     h.ProductID,
			PurchasePrice: h.PurchasePrice,
			Quantity:      h.Quantity,
			PurchaseDate:  h.PurchaseDate,
			CreatedAt:     h.CreatedAt,
		}
	}
	return data
}
