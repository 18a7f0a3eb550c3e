package service

import (
	"context"
	"testing"

	"github.com/gestaovendas/erp-representacao/internal/adapter/repository"
	"github.com/gestaovendas/erp-representacao/internal/domain/product"
	"github.com/gestaovendas/erp-representacao/internal/domain/purchase"
	"github.com/gestaovendas/erp-representacao/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPurchaseServiceFixture(products ...*product.Product) (*PurchaseService, *fakeProductRepo, *fakeHistoryRepo) {
	productRepo := newFakeProductRepo(products...)
	historyRepo := &fakeHistoryRepo{}
	svc := NewPurchaseService(productRepo, historyRepo, logger.NewNopLogger())
	return svc, productRepo, historyRepo
}

func TestPurchaseConfirmCriaProdutoNovo(t *testing.T) {
	svc, productRepo, historyRepo := newPurchaseServiceFixture()

	result, err := svc.Confirm(context.Background(), []purchase.ImportItem{
		{Code: "A100", Name: "Parafuso sextavado", Price: dec("12.50"), Quantity: 30, Subcode: "S-01"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Created)
	assert.Zero(t, result.Updated)
	assert.Empty(t, result.Errors)

	p, err := productRepo.FindBySubcode(context.Background(), "S-01")
	require.NoError(t, err)
	assert.Equal(t, "Parafuso sextavado", p.Name)
	assert.Equal(t, "A100", p.ProductCode)
	assert.Equal(t, 30, p.Stock)
	assert.True(t, p.Price.Equal(dec("12.50")))

	require.Len(t, historyRepo.entries, 1)
	assert.Equal(t, p.ID, historyRepo.entries[0].ProductID)
	assert.Equal(t, 30, historyRepo.entries[0].Quantity)
}

func TestPurchaseConfirmAtualizaProdutoExistente(t *testing.T) {
	existing := &product.Product{ID: "p1", Name: "Porca M8", ProductCode: "A200", Subcode: "S-02", Price: dec("0.70"), Stock: 100}
	svc, productRepo, historyRepo := newPurchaseServiceFixture(existing)

	result, err := svc.Confirm(context.Background(), []purchase.ImportItem{
		{Code: "A200", Name: "Porca M8", Price: dec("0.80"), Quantity: 50, Subcode: "S-02"},
	})
	require.NoError(t, err)

	assert.Zero(t, result.Created)
	assert.Equal(t, 1, result.Updated)

	p, err := productRepo.FindByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 150, p.Stock)
	assert.True(t, p.Price.Equal(dec("0.80")))

	require.Len(t, historyRepo.entries, 1)
	assert.True(t, historyRepo.entries[0].PurchasePrice.Equal(dec("0.80")))
}

func TestPurchaseConfirmAssociaPorProductID(t *testing.T) {
	existing := &product.Product{ID: "p1", Name: "Arruela", ProductCode: "A300", Subcode: "ANTIGO", Price: dec("1.00"), Stock: 10}
	svc, productRepo, _ := newPurchaseServiceFixture(existing)

	// Associação feita na revisão troca o subcódigo do produto
	result, err := svc.Confirm(context.Background(), []purchase.ImportItem{
		{ProductID: "p1", Code: "X1", Name: "Arruela lisa", Price: dec("1.10"), Quantity: 5, Subcode: "NOVO"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Updated)

	p, err := productRepo.FindByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "NOVO", p.Subcode)
	assert.Equal(t, 15, p.Stock)
}

func TestPurchaseConfirmSubcodigoDuplicadoNoLote(t *testing.T) {
	svc, productRepo, historyRepo := newPurchaseServiceFixture()

	_, err := svc.Confirm(context.Background(), []purchase.ImportItem{
		{Code: "A1", Name: "Item um", Price: dec("1"), Quantity: 1, Subcode: "S-01"},
		{Code: "A2", Name: "Item dois", Price: dec("2"), Quantity: 1, Subcode: "S-01"},
	})
	require.ErrorIs(t, err, purchase.ErrSubcodeConflict)

	// Nada foi gravado
	_, err = productRepo.FindBySubcode(context.Background(), "S-01")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
	assert.Empty(t, historyRepo.entries)
}

func TestPurchaseConfirmSubcodigoDeOutroProdutoRejeitaLote(t *testing.T) {
	p1 := &product.Product{ID: "p1", Name: "Produto um", Subcode: "S-01", Price: dec("1"), Stock: 1}
	p2 := &product.Product{ID: "p2", Name: "Produto dois", Subcode: "S-02", Price: dec("2"), Stock: 1}
	svc, productRepo, historyRepo := newPurchaseServiceFixture(p1, p2)
	ctx := context.Background()

	// O primeiro item é válido; o segundo tenta usar o subcódigo de p1 em p2
	_, err := svc.Confirm(ctx, []purchase.ImportItem{
		{Code: "N1", Name: "Item novo", Price: dec("5"), Quantity: 2, Subcode: "S-NOVO"},
		{ProductID: "p2", Name: "Produto dois", Price: dec("2"), Quantity: 1, Subcode: "S-01"},
	})
	require.ErrorIs(t, err, purchase.ErrSubcodeConflict)

	// O lote inteiro foi rejeitado antes de qualquer escrita
	_, err = productRepo.FindBySubcode(ctx, "S-NOVO")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)

	p, err := productRepo.FindByID(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, "S-02", p.Subcode)
	assert.Equal(t, 1, p.Stock)
	assert.Empty(t, historyRepo.entries)
}

func TestPurchaseConfirmAcumulaErrosSemInterromper(t *testing.T) {
	svc, _, _ := newPurchaseServiceFixture()

	result, err := svc.Confirm(context.Background(), []purchase.ImportItem{
		{Code: "A1", Name: "Sem subcódigo", Price: dec("1"), Quantity: 1},
		{Code: "A2", Name: "Quantidade negativa", Price: dec("1"), Quantity: -1, Subcode: "S-02"},
		{Code: "A3", Name: "Válido", Price: dec("1"), Quantity: 1, Subcode: "S-03"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Created)
	assert.Len(t, result.Errors, 2)
}

func TestPurchaseConfirmSemMudancaNaoGravaHistorico(t *testing.T) {
	existing := &product.Product{ID: "p1", Name: "Porca", Subcode: "S-01", Price: dec("0.80"), Stock: 100}
	svc, _, historyRepo := newPurchaseServiceFixture(existing)

	// Mesmo preço e quantidade zero: nada a registrar no histórico
	result, err := svc.Confirm(context.Background(), []purchase.ImportItem{
		{Name: "Porca", Price: dec("0.80"), Quantity: 0, Subcode: "S-01"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Updated)
	assert.Empty(t, historyRepo.entries)
}

func TestPurchaseHistory(t *testing.T) {
	existing := &product.Product{ID: "p1", Name: "Porca", Subcode: "S-01", Price: dec("0.70"), Stock: 10}
	svc, _, _ := newPurchaseServiceFixture(existing)
	ctx := context.Background()

	_, err := svc.Confirm(ctx, []purchase.ImportItem{
		{Name: "Porca", Price: dec("0.80"), Quantity: 20, Subcode: "S-01"},
	})
	require.NoError(t, err)

	history, err := svc.History(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.True(t, history[0].PurchasePrice.Equal(dec("0.80")))
}

func TestPurchaseHistoryProdutoNaoEncontrado(t *testing.T) {
	svc, _, _ := newPurchaseServiceFixture()

	_, err := svc.History(context.Background(), "sumiu")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}
