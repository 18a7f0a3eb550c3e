package service

import (
	"context"
	"testing"

	"github.com/gestaovendas/erp-representacao/internal/adapter/repository"
	"github.com/gestaovendas/erp-representacao/internal/domain/brand"
	"github.com/gestaovendas/erp-representacao/internal/domain/order"
	"github.com/gestaovendas/erp-representacao/internal/domain/product"
	"github.com/gestaovendas/erp-representacao/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newOrderServiceFixture(products []*product.Product, brands []*brand.Brand) (*OrderService, *fakeOrderRepo) {
	orderRepo := newFakeOrderRepo()
	svc := NewOrderService(
		orderRepo,
		newFakeProductRepo(products...),
		newFakeBrandRepo(brands...),
		newFakeClientRepo("c1"),
		newFakeUserRepo("u1"),
		logger.NewNopLogger(),
	)
	return svc, orderRepo
}

func TestOrderCreateCopiaComissaoDaMarca(t *testing.T) {
	p := &product.Product{ID: "p1", Name: "Parafuso", Subcode: "S1", Price: dec("100"), Stock: 10, Brand: "Alfa"}
	b := &brand.Brand{ID: "b1", Name: "Alfa", CommissionRate: dec("6")}

	svc, orderRepo := newOrderServiceFixture([]*product.Product{p}, []*brand.Brand{b})

	o, err := svc.Create(context.Background(), "c1", "u1",
		[]ItemInput{{ProductID: "p1", Quantity: 2}}, dec("10"), "pedido de teste")
	require.NoError(t, err)

	require.Len(t, o.Items, 1)
	assert.Equal(t, "Parafuso", o.Items[0].ProductName)
	assert.Equal(t, "Alfa", o.Items[0].Brand)
	assert.True(t, o.Items[0].CommissionRate.Equal(dec("6")))
	assert.True(t, o.Items[0].UnitPrice.Equal(dec("100")))

	// 2 × 100 com 10% de desconto: total 180, comissão 6% sobre 180
	assert.True(t, o.TotalPrice.Equal(dec("180")), "total %s", o.TotalPrice)
	assert.True(t, o.TotalCommission.Equal(dec("10.8")), "comissão %s", o.TotalCommission)
	assert.Equal(t, order.StatusOpen, o.Status)

	stored, err := orderRepo.FindByID(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, o, stored)
}

func TestOrderCreateMarcaSemCadastroZeraComissao(t *testing.T) {
	p := &product.Product{ID: "p1", Name: "Parafuso", Subcode: "S1", Price: dec("50"), Stock: 10, Brand: "Inexistente"}

	svc, _ := newOrderServiceFixture([]*product.Product{p}, nil)

	o, err := svc.Create(context.Background(), "c1", "u1",
		[]ItemInput{{ProductID: "p1", Quantity: 1}}, decimal.Zero, "")
	require.NoError(t, err)

	assert.True(t, o.Items[0].CommissionRate.IsZero())
	assert.True(t, o.TotalCommission.IsZero())
}

func TestOrderCreateEstoqueInsuficiente(t *testing.T) {
	p := &product.Product{ID: "p1", Name: "Parafuso", Subcode: "S1", Price: dec("10"), Stock: 3, Brand: ""}

	svc, _ := newOrderServiceFixture([]*product.Product{p}, nil)

	_, err := svc.Create(context.Background(), "c1", "u1",
		[]ItemInput{{ProductID: "p1", Quantity: 5}}, decimal.Zero, "")

	var stockErr *product.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 3, stockErr.Available)
	assert.Equal(t, 5, stockErr.Requested)
}

func TestOrderCreateValidacoes(t *testing.T) {
	p := &product.Product{ID: "p1", Name: "Parafuso", Subcode: "S1", Price: dec("10"), Stock: 10}
	svc, _ := newOrderServiceFixture([]*product.Product{p}, nil)
	ctx := context.Background()
	items := []ItemInput{{ProductID: "p1", Quantity: 1}}

	_, err := svc.Create(ctx, "desconhecido", "u1", items, decimal.Zero, "")
	assert.ErrorIs(t, err, ErrClientNotFound)

	_, err = svc.Create(ctx, "c1", "desconhecido", items, decimal.Zero, "")
	assert.ErrorIs(t, err, ErrSellerNotFound)

	_, err = svc.Create(ctx, "c1", "u1", []ItemInput{{ProductID: "sumiu", Quantity: 1}}, decimal.Zero, "")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)

	_, err = svc.Create(ctx, "c1", "u1", []ItemInput{{ProductID: "p1", Quantity: 0}}, decimal.Zero, "")
	assert.ErrorIs(t, err, order.ErrInvalidQuantity)
}

func TestOrderCreatePrecoNegociado(t *testing.T) {
	p := &product.Product{ID: "p1", Name: "Parafuso", Subcode: "S1", Price: dec("100"), Stock: 10, Brand: "Alfa"}
	b := &brand.Brand{ID: "b1", Name: "Alfa", CommissionRate: dec("6")}

	svc, _ := newOrderServiceFixture([]*product.Product{p}, []*brand.Brand{b})

	negotiated := dec("80")
	o, err := svc.Create(context.Background(), "c1", "u1",
		[]ItemInput{{ProductID: "p1", Quantity: 2, UnitPrice: &negotiated}}, decimal.Zero, "")
	require.NoError(t, err)

	// O preço negociado substitui o de tabela; comissão acompanha
	assert.True(t, o.Items[0].UnitPrice.Equal(dec("80")))
	assert.True(t, o.TotalPrice.Equal(dec("160")), "total %s", o.TotalPrice)
	assert.True(t, o.TotalCommission.Equal(dec("9.6")), "comissão %s", o.TotalCommission)
}

func TestOrderCreateLinhaAvulsa(t *testing.T) {
	b := &brand.Brand{ID: "b1", Name: "Beta", CommissionRate: dec("5")}

	svc, _ := newOrderServiceFixture(nil, []*brand.Brand{b})

	price := dec("40")
	o, err := svc.Create(context.Background(), "c1", "u1",
		[]ItemInput{{ProductName: "Item sob encomenda", Brand: "Beta", Quantity: 3, UnitPrice: &price}},
		decimal.Zero, "")
	require.NoError(t, err)

	require.Len(t, o.Items, 1)
	assert.Empty(t, o.Items[0].ProductID)
	assert.Equal(t, "Item sob encomenda", o.Items[0].ProductName)
	assert.True(t, o.Items[0].CommissionRate.Equal(dec("5")))
	assert.True(t, o.TotalPrice.Equal(dec("120")), "total %s", o.TotalPrice)
}

func TestOrderCreateLinhaAvulsaIncompleta(t *testing.T) {
	svc, _ := newOrderServiceFixture(nil, nil)
	ctx := context.Background()
	price := dec("10")

	_, err := svc.Create(ctx, "c1", "u1",
		[]ItemInput{{Quantity: 1, UnitPrice: &price}}, decimal.Zero, "")
	assert.ErrorIs(t, err, ErrItemNameRequired)

	_, err = svc.Create(ctx, "c1", "u1",
		[]ItemInput{{ProductName: "Sem preço", Quantity: 1}}, decimal.Zero, "")
	assert.ErrorIs(t, err, ErrItemPriceRequired)

	negative := dec("-1")
	_, err = svc.Create(ctx, "c1", "u1",
		[]ItemInput{{ProductName: "Preço negativo", Quantity: 1, UnitPrice: &negative}}, decimal.Zero, "")
	assert.ErrorIs(t, err, product.ErrNegativePrice)
}

func TestOrderUpdateRecalculaTotais(t *testing.T) {
	p1 := &product.Product{ID: "p1", Name: "Parafuso", Subcode: "S1", Price: dec("100"), Stock: 10}
	p2 := &product.Product{ID: "p2", Name: "Porca", Subcode: "S2", Price: dec("20"), Stock: 10}

	svc, _ := newOrderServiceFixture([]*product.Product{p1, p2}, nil)
	ctx := context.Background()

	o, err := svc.Create(ctx, "c1", "u1", []ItemInput{{ProductID: "p1", Quantity: 1}}, decimal.Zero, "")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, o.ID, []ItemInput{{ProductID: "p2", Quantity: 3}}, dec("50"), "revisado")
	require.NoError(t, err)

	require.Len(t, updated.Items, 1)
	assert.Equal(t, "p2", updated.Items[0].ProductID)
	assert.True(t, updated.TotalPrice.Equal(dec("30")), "total %s", updated.TotalPrice)
	assert.Equal(t, "revisado", updated.Description)
}

func TestOrderUpdatePedidoEntregue(t *testing.T) {
	p := &product.Product{ID: "p1", Name: "Parafuso", Subcode: "S1", Price: dec("10"), Stock: 10}

	svc, orderRepo := newOrderServiceFixture([]*product.Product{p}, nil)
	ctx := context.Background()

	o, err := svc.Create(ctx, "c1", "u1", []ItemInput{{ProductID: "p1", Quantity: 1}}, decimal.Zero, "")
	require.NoError(t, err)

	_, err = orderRepo.Finalize(ctx, o.ID)
	require.NoError(t, err)

	_, err = svc.Update(ctx, o.ID, []ItemInput{{ProductID: "p1", Quantity: 2}}, decimal.Zero, "")
	assert.ErrorIs(t, err, order.ErrAlreadyDelivered)
}

func TestOrderFinalize(t *testing.T) {
	p := &product.Product{ID: "p1", Name: "Parafuso", Subcode: "S1", Price: dec("10"), Stock: 10}

	svc, _ := newOrderServiceFixture([]*product.Product{p}, nil)
	ctx := context.Background()

	o, err := svc.Create(ctx, "c1", "u1", []ItemInput{{ProductID: "p1", Quantity: 1}}, decimal.Zero, "")
	require.NoError(t, err)

	delivered, err := svc.Finalize(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusDelivered, delivered.Status)

	// Segunda entrega do mesmo pedido é rejeitada
	_, err = svc.Finalize(ctx, o.ID)
	assert.ErrorIs(t, err, order.ErrAlreadyDelivered)
}

func TestOrderFinalizeNaoEncontrado(t *testing.T) {
	svc, _ := newOrderServiceFixture(nil, nil)

	_, err := svc.Finalize(context.Background(), "sumiu")
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}
