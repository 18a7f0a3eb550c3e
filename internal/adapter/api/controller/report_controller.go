package controller

import (
	"net/http"
	"time"

	"github.com/gestaovendas/erp-representacao/internal/adapter/api/dto"
	"github.com/gestaovendas/erp-representacao/internal/domain/report"
	"github.com/gestaovendas/erp-representacao/internal/service"
	"github.com/gestaovendas/erp-representacao/pkg/auth"
	"github.com/gestaovendas/erp-representacao/pkg/logger"
	"github.com/gin-gonic/gin"
)

// ReportController gerencia as requisições de relatórios
type ReportController struct {
	reportService *service.ReportService
	logger        logger.Logger
}

// NewReportController cria uma nova instância de ReportController
func NewReportController(reportService *service.ReportService, logger logger.Logger) *ReportController {
	return &ReportController{
		reportService: reportService,
		logger:        logger,
	}
}

// parseFilter monta o filtro de período e vendedor a partir da query string.
// Datas aceitas nos formatos 2006-01-02 e RFC 3339.
func parseFilter(ctx *gin.Context) (report.Filter, error) {
	var f report.Filter
	f.UserID = ctx.Query("user_id")

	if raw := ctx.Query("from"); raw != "" {
		from, err := parseDate(raw)
		if err != nil {
			return f, err
		}
		f.From = &from
	}
	if raw := ctx.Query("to"); raw != "" {
		to, err := parseDate(raw)
		if err != nil {
			return f, err
		}
		f.To = &to
	}

	return f, nil
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

// SalesByRep retorna o resumo de vendas por vendedor
// @Summary Vendas por vendedor
// @Description Retorna faturamento, comissão e quantidade de pedidos por vendedor. Representantes enxergam apenas os próprios números.
// @Tags reports
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param from query string false "Data inicial (2006-01-02)"
// @Param to query string false "Data final (2006-01-02)"
// @Param user_id query string false "Filtro por vendedor (admin e gerente)"
// @Success 200 {array} dto.SalesByRepResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/sales [get]
func (c *ReportController) SalesByRep(ctx *gin.Context) {
	f, err := parseFilter(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "data inválida", err.Error()))
		return
	}

	userID, _, _, role := auth.CurrentUser(ctx)

	rows, err := c.reportService.SalesByRep(ctx, f, userID, role)
	if err != nil {
		c.logger.Error("erro ao consultar vendas por vendedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao consultar relatório", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSalesByRepResponses(rows))
}

// Commissions retorna o relatório de comissões
// @Summary Relatório de comissões
// @Description Retorna as comissões por vendedor, opcionalmente detalhadas por marca
// @Tags reports
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param from query string false "Data inicial (2006-01-02)"
// @Param to query string false "Data final (2006-01-02)"
// @Param user_id query string false "Filtro por vendedor (admin e gerente)"
// @Param by_brand query bool false "Detalhar por marca"
// @Success 200 {array} dto.CommissionRowResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/commissions [get]
func (c *ReportController) Commissions(ctx *gin.Context) {
	f, err := parseFilter(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "data inválida", err.Error()))
		return
	}

	byBrand := ctx.Query("by_brand") == "true"
	userID, _, _, role := auth.CurrentUser(ctx)

	rows, err := c.reportService.Commissions(ctx, f, byBrand, userID, role)
	if err != nil {
		c.logger.Error("erro ao consultar comissões", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao consultar relatório", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCommissionRowResponses(rows))
}

// Dashboard retorna os contadores da tela inicial
// @Summary Painel
// @Description Retorna os contadores gerais de clientes, produtos e pedidos
// @Tags reports
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/dashboard [get]
func (c *ReportController) Dashboard(ctx *gin.Context) {
	d, err := c.reportService.Dashboard(ctx)
	if err != nil {
		c.logger.Error("erro ao consultar painel", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao consultar painel", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(d))
}
