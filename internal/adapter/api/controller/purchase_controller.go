package controller

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gestaovendas/erp-representacao/internal/adapter/api/dto"
	"github.com/gestaovendas/erp-representacao/internal/adapter/repository"
	"github.com/gestaovendas/erp-representacao/internal/domain/purchase"
	"github.com/gestaovendas/erp-representacao/internal/importer"
	"github.com/gestaovendas/erp-representacao/internal/service"
	"github.com/gestaovendas/erp-representacao/pkg/logger"
	"github.com/gin-gonic/gin"
)

// PurchaseController gerencia as requisições de importação de compras
type PurchaseController struct {
	purchaseService *service.PurchaseService
	pdfExtractor    *importer.PDFExtractor
	maxUploadBytes  int64
	logger          logger.Logger
}

// NewPurchaseController cria uma nova instância de PurchaseController
func NewPurchaseController(purchaseService *service.PurchaseService,
	pdfExtractor *importer.PDFExtractor, maxUploadBytes int64, logger logger.Logger) *PurchaseController {
	return &PurchaseController{
		purchaseService: purchaseService,
		pdfExtractor:    pdfExtractor,
		maxUploadBytes:  maxUploadBytes,
		logger:          logger,
	}
}

// readUpload lê o arquivo enviado no campo multipart indicado, limitado ao
// tamanho máximo configurado e à extensão esperada
func (c *PurchaseController) readUpload(ctx *gin.Context, field, extension string) ([]byte, bool) {
	fileHeader, err := ctx.FormFile(field)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "arquivo não enviado", err.Error()))
		return nil, false
	}

	if fileHeader.Size > c.maxUploadBytes {
		ctx.JSON(http.StatusRequestEntityTooLarge, dto.NewErrorResponse(
			http.StatusRequestEntityTooLarge, "arquivo excede o tamanho máximo permitido", ""))
		return nil, false
	}

	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), extension) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			http.StatusBadRequest, "tipo de arquivo inválido", "esperado "+extension))
		return nil, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao abrir arquivo", err.Error()))
		return nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, c.maxUploadBytes+1))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao ler arquivo", err.Error()))
		return nil, false
	}
	if int64(len(data)) > c.maxUploadBytes {
		ctx.JSON(http.StatusRequestEntityTooLarge, dto.NewErrorResponse(
			http.StatusRequestEntityTooLarge, "arquivo excede o tamanho máximo permitido", ""))
		return nil, false
	}

	return data, true
}

// UploadPDF extrai itens de uma nota de compra em PDF
// @Summary Importar PDF de compra
// @Description Extrai os itens de uma nota de compra em PDF para revisão antes da gravação
// @Tags purchases
// @Accept multipart/form-data
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param purchasePdf formData file true "Nota de compra em PDF"
// @Success 200 {object} dto.ImportExtractionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 413 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /purchases/upload-pdf [post]
func (c *PurchaseController) UploadPDF(ctx *gin.Context) {
	data, ok := c.readUpload(ctx, "purchasePdf", ".pdf")
	if !ok {
		return
	}

	items, err := c.pdfExtractor.Extract(ctx, data)
	if err != nil {
		c.logger.Error("erro ao extrair itens do PDF", "error", err)
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(
			http.StatusUnprocessableEntity, "não foi possível extrair itens do PDF", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ImportExtractionResponse{Items: dto.ToImportItemDTOs(items)})
}

// UploadCSV extrai itens de um CSV de produtos
// @Summary Importar CSV de produtos
// @Description Extrai os itens de um CSV de produtos para revisão antes da gravação
// @Tags purchases
// @Accept multipart/form-data
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param productsCsv formData file true "CSV de produtos"
// @Success 200 {object} dto.ImportExtractionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 413 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /purchases/upload-csv [post]
func (c *PurchaseController) UploadCSV(ctx *gin.Context) {
	data, ok := c.readUpload(ctx, "productsCsv", ".csv")
	if !ok {
		return
	}

	items, err := importer.ParseCSV(data)
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(
			http.StatusUnprocessableEntity, "não foi possível interpretar o CSV", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ImportExtractionResponse{Items: dto.ToImportItemDTOs(items)})
}

// Confirm grava um lote de itens importados já revisados
// @Summary Confirmar importação
// @Description Grava o lote revisado, atualizando produtos, estoque e histórico de preços
// @Tags purchases
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param items body dto.ImportConfirmRequest true "Itens revisados"
// @Success 200 {object} dto.ImportResultResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /purchases/finalize [post]
func (c *PurchaseController) Confirm(ctx *gin.Context) {
	var req dto.ImportConfirmRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	result, err := c.purchaseService.Confirm(ctx, dto.ToImportItems(req.Items))
	if err != nil {
		if errors.Is(err, purchase.ErrSubcodeConflict) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "subcódigo em conflito", err.Error()))
			return
		}
		c.logger.Error("erro ao gravar importação", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gravar importação", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToImportResultResponse(result))
}

// History retorna o histórico de preços de compra de um produto
// @Summary Histórico de preços
// @Description Retorna o histórico de preços de compra de um produto, do mais recente ao mais antigo
// @Tags purchases
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param productId path string true "ID do produto"
// @Success 200 {array} dto.PriceHistoryResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /purchases/history/{productId} [get]
func (c *PurchaseController) History(ctx *gin.Context) {
	id := ctx.Param("productId")

	history, err := c.purchaseService.History(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao consultar histórico de preços", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao consultar histórico", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPriceHistoryResponses(history))
}
