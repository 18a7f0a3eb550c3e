package service

import (
	"context"
	"testing"
	"time"

	"github.com/gestaovendas/erp-representacao/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportRepo struct {
	lastFilter  report.Filter
	lastByBrand bool
}

func (r *fakeReportRepo) SalesByRep(_ context.Context, f report.Filter) ([]report.SalesByRep, error) {
	r.lastFilter = f
	return []report.SalesByRep{}, nil
}

func (r *fakeReportRepo) Commissions(_ context.Context, f report.Filter, byBrand bool) ([]report.CommissionRow, error) {
	r.lastFilter = f
	r.lastByBrand = byBrand
	return []report.CommissionRow{}, nil
}

func (r *fakeReportRepo) Dashboard(_ context.Context) (*report.Dashboard, error) {
	return &report.Dashboard{Clients: 3, OpenOrders: 2}, nil
}

func TestReportVendedorEnxergaApenasOsProprios(t *testing.T) {
	repo := &fakeReportRepo{}
	svc := NewReportService(repo)

	// Pedir os números de outro vendedor não escapa do escopo
	_, err := svc.SalesByRep(context.Background(), report.Filter{UserID: "outro"}, "u1", "vendedor")
	require.NoError(t, err)
	assert.Equal(t, "u1", repo.lastFilter.UserID)

	_, err = svc.Commissions(context.Background(), report.Filter{}, true, "u1", "vendedor")
	require.NoError(t, err)
	assert.Equal(t, "u1", repo.lastFilter.UserID)
	assert.True(t, repo.lastByBrand)
}

func TestReportAdminEGerenteEnxergamTodos(t *testing.T) {
	repo := &fakeReportRepo{}
	svc := NewReportService(repo)

	_, err := svc.SalesByRep(context.Background(), report.Filter{}, "admin-1", "admin")
	require.NoError(t, err)
	assert.Empty(t, repo.lastFilter.UserID)

	_, err = svc.SalesByRep(context.Background(), report.Filter{UserID: "u2"}, "gerente-1", "manager")
	require.NoError(t, err)
	assert.Equal(t, "u2", repo.lastFilter.UserID)
}

func TestReportFiltroDePeriodoPreservado(t *testing.T) {
	repo := &fakeReportRepo{}
	svc := NewReportService(repo)

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	_, err := svc.SalesByRep(context.Background(), report.Filter{From: &from, To: &to}, "u1", "vendedor")
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter.From)
	require.NotNil(t, repo.lastFilter.To)
	assert.True(t, repo.lastFilter.From.Equal(from))
	assert.True(t, repo.lastFilter.To.Equal(to))
}

func TestReportDashboard(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{})

	d, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, d.Clients)
	assert.Equal(t, 2, d.OpenOrders)
}
