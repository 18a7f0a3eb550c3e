package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyClientID    = errors.New("cliente não informado")
	ErrEmptyUserID      = errors.New("vendedor não informado")
	ErrNoItems          = errors.New("pedido deve ter ao menos um item")
	ErrInvalidDiscount  = errors.New("desconto deve estar entre 0 e 100")
	ErrInvalidQuantity  = errors.New("quantidade deve ser maior que zero")
	ErrAlreadyDelivered = errors.New("pedido já foi entregue")
)

// Status representa o estado do pedido
type Status string

const (
	StatusOpen      Status = "Em aberto"
	StatusDelivered Status = "Entregue"
)

var (
	one        = decimal.NewFromInt(1)
	oneHundred = decimal.NewFromInt(100)
)

// Item representa um item do pedido. A taxa de comissão da marca é copiada
// para o item no momento da criação do pedido e não é recalculada depois.
type Item struct {
	ProductID        string          `json:"product_id"`
	ProductName      string          `json:"product_name"`
	Brand            string          `json:"brand"`
	Quantity         int             `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	CommissionRate   decimal.Decimal `json:"commission_rate"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
}

// Subtotal retorna o valor bruto do item (preço unitário × quantidade)
func (i Item) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order representa um pedido de venda. Os totais são derivados dos itens e do
// desconto; nunca são gravados de forma independente do recálculo.
type Order struct {
	ID              string          `json:"id"`
	ClientID        string          `json:"client_id"`
	UserID          string          `json:"user_id"` // Vendedor responsável
	Items           []Item          `json:"items"`
	Discount        decimal.Decimal `json:"discount"` // Percentual 0-100
	TotalPrice      decimal.Decimal `json:"total_price"`
	TotalCommission decimal.Decimal `json:"total_commission"`
	Status          Status          `json:"status"`
	Description     string          `json:"description"`
	CreatedAt       time.Time       `json:"created_at"`
	FinishedAt      *time.Time      `json:"finished_at,omitempty"`
}

// NewOrder cria um novo pedido em aberto. As comissões e os totais são
// calculados a partir dos itens e do desconto informados.
func NewOrder(clientID, userID string, items []Item, discount decimal.Decimal, description string) (*Order, error) {
	if err := Validate(clientID, userID, items, discount); err != nil {
		return nil, err
	}

	o := &Order{
		ID:          uuid.New().String(),
		ClientID:    clientID,
		UserID:      userID,
		Items:       items,
		Discount:    discount,
		Status:      StatusOpen,
		Description: description,
		CreatedAt:   time.Now(),
	}
	o.TotalPrice, o.TotalCommission = ComputeTotals(o.Items, o.Discount)
	return o, nil
}

// Validate verifica os campos obrigatórios de um pedido
func Validate(clientID, userID string, items []Item, discount decimal.Decimal) error {
	if clientID == "" {
		return ErrEmptyClientID
	}
	if userID == "" {
		return ErrEmptyUserID
	}
	if len(items) == 0 {
		return ErrNoItems
	}
	if discount.IsNegative() || discount.GreaterThan(oneHundred) {
		return ErrInvalidDiscount
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return ErrInvalidQuantity
		}
	}
	return nil
}

// ComputeTotals calcula o total do pedido e a comissão total a partir dos
// itens e do desconto, preenchendo CommissionAmount em cada item.
//
// Para cada item: subtotal = preço × quantidade; o valor após o desconto é
// subtotal × (1 − desconto/100); a comissão é esse valor × taxa/100,
// arredondada para 2 casas. O total do pedido é a soma dos subtotais com o
// desconto aplicado, também em 2 casas.
func ComputeTotals(items []Item, discount decimal.Decimal) (totalPrice, totalCommission decimal.Decimal) {
	factor := one.Sub(discount.Div(oneHundred))

	subtotal := decimal.Zero
	totalCommission = decimal.Zero
	for i := range items {
		itemSubtotal := items[i].Subtotal()
		subtotal = subtotal.Add(itemSubtotal)

		afterDiscount := itemSubtotal.Mul(factor)
		items[i].CommissionAmount = afterDiscount.Mul(items[i].CommissionRate).Div(oneHundred).Round(2)
		totalCommission = totalCommission.Add(items[i].CommissionAmount)
	}

	totalPrice = subtotal.Mul(factor).Round(2)
	return totalPrice, totalCommission
}

// Replace substitui itens e desconto do pedido, recalculando os totais do zero
func (o *Order) Replace(items []Item, discount decimal.Decimal, description string) error {
	if err := Validate(o.ClientID, o.UserID, items, discount); err != nil {
		return err
	}
	o.Items = items
	o.Discount = discount
	o.Description = description
	o.TotalPrice, o.TotalCommission = ComputeTotals(o.Items, o.Discount)
	return nil
}

// IsOpen verifica se o pedido ainda está em aberto
func (o *Order) IsOpen() bool {
	return o.Status == StatusOpen
}
