package service

import (
	"context"

	"github.com/gestaovendas/erp-representacao/internal/domain/report"
	"github.com/gestaovendas/erp-representacao/internal/domain/user"
)

// ReportService aplica o escopo de visibilidade sobre as consultas de
// relatório: administradores e gerentes enxergam todos os vendedores,
// representantes enxergam apenas os próprios números.
type ReportService struct {
	reportRepo report.Repository
}

// NewReportService cria uma nova instância de ReportService
func NewReportService(reportRepo report.Repository) *ReportService {
	return &ReportService{reportRepo: reportRepo}
}

// scope restringe o filtro ao próprio usuário quando o papel não tem visão
// geral da carteira
func scope(f report.Filter, requesterID, requesterRole string) report.Filter {
	switch user.Role(requesterRole) {
	case user.RoleAdmin, user.RoleManager:
		return f
	default:
		f.UserID = requesterID
		return f
	}
}

// SalesByRep retorna o resumo de vendas por vendedor
func (s *ReportService) SalesByRep(ctx context.Context, f report.Filter, requesterID, requesterRole string) ([]report.SalesByRep, error) {
	return s.reportRepo.SalesByRep(ctx, scope(f, requesterID, requesterRole))
}

// Commissions retorna o relatório de comissões, opcionalmente detalhado por marca
func (s *ReportService) Commissions(ctx context.Context, f report.Filter, byBrand bool, requesterID, requesterRole string) ([]report.CommissionRow, error) {
	return s.reportRepo.Commissions(ctx, scope(f, requesterID, requesterRole), byBrand)
}

// Dashboard retorna os contadores gerais da tela inicial
func (s *ReportService) Dashboard(ctx context.Context) (*report.Dashboard, error) {
	return s.reportRepo.Dashboard(ctx)
}
