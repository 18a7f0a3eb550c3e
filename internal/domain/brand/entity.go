package brand

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName             = errors.New("nome da marca não pode ser vazio")
	ErrInvalidCommissionRate = errors.New("taxa de comissão deve estar entre 0 e 100")
)

var oneHundred = decimal.NewFromInt(100)

// Brand representa uma marca representada, com sua taxa de comissão.
// A taxa é copiada para o item do pedido no momento da criação; alterações
// posteriores não recalculam comissões já registradas.
type Brand struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	CommissionRate decimal.Decimal `json:"commission_rate"` // Percentual 0-100
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// NewBrand cria uma nova marca
func NewBrand(name string, commissionRate decimal.Decimal) (*Brand, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if commissionRate.IsNegative() || commissionRate.GreaterThan(oneHundred) {
		return nil, ErrInvalidCommissionRate
	}

	now := time.Now()
	return &Brand{
		ID:             uuid.New().String(),
		Name:           name,
		CommissionRate: commissionRate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// Update atualiza os dados da marca
func (b *Brand) Update(name string, commissionRate decimal.Decimal) error {
	if name == "" {
		return ErrEmptyName
	}
	if commissionRate.IsNegative() || commissionRate.GreaterThan(oneHundred) {
		return ErrInvalidCommissionRate
	}

	b.Name = name
	b.CommissionRate = commissionRate
	b.UpdatedAt = time.Now()

	return nil
}
