package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name           string
		items          []Item
		discount       string
		wantTotal      string
		wantCommission string
	}{
		{
			name: "pedido com desconto e comissão",
			items: []Item{
				{Quantity: 2, UnitPrice: dec("100"), CommissionRate: dec("6")},
			},
			discount:       "10",
			wantTotal:      "180",
			wantCommission: "10.8",
		},
		{
			name: "sem desconto",
			items: []Item{
				{Quantity: 3, UnitPrice: dec("50"), CommissionRate: dec("10")},
			},
			discount:       "0",
			wantTotal:      "150",
			wantCommission: "15",
		},
		{
			name: "vários itens com taxas diferentes",
			items: []Item{
				{Quantity: 1, UnitPrice: dec("200"), CommissionRate: dec("5")},
				{Quantity: 4, UnitPrice: dec("25"), CommissionRate: dec("8")},
			},
			discount:       "20",
			wantTotal:      "240",
			wantCommission: "14.4",
		},
		{
			name: "comissão zero quando marca não tem taxa",
			items: []Item{
				{Quantity: 2, UnitPrice: dec("30"), CommissionRate: decimal.Zero},
			},
			discount:       "0",
			wantTotal:      "60",
			wantCommission: "0",
		},
		{
			name: "arredondamento em duas casas",
			items: []Item{
				{Quantity: 3, UnitPrice: dec("9.99"), CommissionRate: dec("7.5")},
			},
			discount:       "5",
			wantTotal:      "28.47",
			wantCommission: "2.14",
		},
		{
			name: "desconto total zera o pedido",
			items: []Item{
				{Quantity: 2, UnitPrice: dec("100"), CommissionRate: dec("6")},
			},
			discount:       "100",
			wantTotal:      "0",
			wantCommission: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, commission := ComputeTotals(tt.items, dec(tt.discount))

			assert.True(t, total.Equal(dec(tt.wantTotal)),
				"total esperado %s, obtido %s", tt.wantTotal, total)
			assert.True(t, commission.Equal(dec(tt.wantCommission)),
				"comissão esperada %s, obtida %s", tt.wantCommission, commission)
		})
	}
}

func TestComputeTotalsPreencheComissaoDosItens(t *testing.T) {
	items := []Item{
		{Quantity: 2, UnitPrice: dec("100"), CommissionRate: dec("6")},
		{Quantity: 1, UnitPrice: dec("50"), CommissionRate: dec("10")},
	}

	_, commission := ComputeTotals(items, dec("10"))

	assert.True(t, items[0].CommissionAmount.Equal(dec("10.8")))
	assert.True(t, items[1].CommissionAmount.Equal(dec("4.5")))
	assert.True(t, commission.Equal(dec("15.3")))
}

func TestNewOrder(t *testing.T) {
	items := []Item{
		{ProductID: "p1", Quantity: 2, UnitPrice: dec("100"), CommissionRate: dec("6")},
	}

	o, err := NewOrder("client-1", "user-1", items, dec("10"), "entrega na loja")
	require.NoError(t, err)

	assert.NotEmpty(t, o.ID)
	assert.Equal(t, StatusOpen, o.Status)
	assert.Equal(t, "client-1", o.ClientID)
	assert.Equal(t, "user-1", o.UserID)
	assert.True(t, o.TotalPrice.Equal(dec("180")))
	assert.True(t, o.TotalCommission.Equal(dec("10.8")))
	assert.Nil(t, o.FinishedAt)
	assert.True(t, o.IsOpen())
}

func TestNewOrderValidacao(t *testing.T) {
	items := []Item{{ProductID: "p1", Quantity: 1, UnitPrice: dec("10")}}

	tests := []struct {
		name     string
		clientID string
		userID   string
		items    []Item
		discount string
		wantErr  error
	}{
		{"sem cliente", "", "u1", items, "0", ErrEmptyClientID},
		{"sem vendedor", "c1", "", items, "0", ErrEmptyUserID},
		{"sem itens", "c1", "u1", nil, "0", ErrNoItems},
		{"desconto negativo", "c1", "u1", items, "-1", ErrInvalidDiscount},
		{"desconto acima de 100", "c1", "u1", items, "101", ErrInvalidDiscount},
		{"quantidade zero", "c1", "u1", []Item{{ProductID: "p1", Quantity: 0}}, "0", ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewOrder(tt.clientID, tt.userID, tt.items, dec(tt.discount), "")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReplaceRecalculaTotais(t *testing.T) {
	o, err := NewOrder("c1", "u1",
		[]Item{{ProductID: "p1", Quantity: 2, UnitPrice: dec("100"), CommissionRate: dec("6")}},
		dec("10"), "")
	require.NoError(t, err)

	err = o.Replace(
		[]Item{{ProductID: "p2", Quantity: 1, UnitPrice: dec("40"), CommissionRate: dec("5")}},
		dec("0"), "pedido revisado")
	require.NoError(t, err)

	assert.True(t, o.TotalPrice.Equal(dec("40")))
	assert.True(t, o.TotalCommission.Equal(dec("2")))
	assert.Equal(t, "pedido revisado", o.Description)
	assert.Len(t, o.Items, 1)
}

func TestReplaceRejeitaItensInvalidos(t *testing.T) {
	o, err := NewOrder("c1", "u1",
		[]Item{{ProductID: "p1", Quantity: 1, UnitPrice: dec("10")}},
		dec("0"), "")
	require.NoError(t, err)

	err = o.Replace(nil, dec("0"), "")
	assert.ErrorIs(t, err, ErrNoItems)

	// Pedido original intacto
	assert.Len(t, o.Items, 1)
}

func TestItemSubtotal(t *testing.T) {
	item := Item{Quantity: 3, UnitPrice: dec("12.5")}
	assert.True(t, item.Subtotal().Equal(dec("37.5")))
}
