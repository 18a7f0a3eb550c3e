package controller

import (
	"errors"
	"net/http"

	"github.com/gestaovendas/erp-representacao/internal/adapter/api/dto"
	"github.com/gestaovendas/erp-representacao/internal/adapter/repository"
	branddomain "github.com/gestaovendas/erp-representacao/internal/domain/brand"
	"github.com/gestaovendas/erp-representacao/pkg/logger"
	"github.com/gin-gonic/gin"
)

// BrandController gerencia as requisições relacionadas a marcas
type BrandController struct {
	brandRepo branddomain.Repository
	logger    logger.Logger
}

// NewBrandController cria uma nova instância de BrandController
func NewBrandController(brandRepo branddomain.Repository, logger logger.Logger) *BrandController {
	return &BrandController{
		brandRepo: brandRepo,
		logger:    logger,
	}
}

// Create cria uma nova marca
// @Summary Criar marca
// @Description Cria uma nova marca representada com sua taxa de comissão
// @Tags brands
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param brand body dto.BrandRequest true "Dados da marca"
// @Success 201 {object} dto.BrandResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /brands [post]
func (c *BrandController) Create(ctx *gin.Context) {
	var req dto.BrandRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	brand, err := branddomain.NewBrand(req.Name, req.CommissionRate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar marca", err.Error()))
		return
	}

	if err := c.brandRepo.Create(ctx, brand); err != nil {
		if errors.Is(err, repository.ErrBrandDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "marca já cadastrada", err.Error()))
			return
		}
		c.logger.Error("erro ao criar marca no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar marca", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBrandResponse(brand))
}

// Get retorna uma marca pelo ID
// @Summary Buscar marca
// @Description Retorna os dados de uma marca pelo ID
// @Tags brands
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da marca"
// @Success 200 {object} dto.BrandResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /brands/{id} [get]
func (c *BrandController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	brand, err := c.brandRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "marca não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar marca", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar marca", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBrandResponse(brand))
}

// List retorna todas as marcas
// @Summary Listar marcas
// @Description Retorna todas as marcas representadas em ordem alfabética
// @Tags brands
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.BrandListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /brands [get]
func (c *BrandController) List(ctx *gin.Context) {
	brands, err := c.brandRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao listar marcas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar marcas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBrandListResponse(brands))
}

// Update atualiza uma marca
// @Summary Atualizar marca
// @Description Atualiza o nome e a taxa de comissão de uma marca. Comissões de pedidos já criados não são recalculadas.
// @Tags brands
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da marca"
// @Param brand body dto.BrandRequest true "Dados da marca"
// @Success 200 {object} dto.BrandResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /brands/{id} [put]
func (c *BrandController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.BrandRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	brand, err := c.brandRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "marca não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar marca", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar marca", err.Error()))
		return
	}

	if err := brand.Update(req.Name, req.CommissionRate); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar marca", err.Error()))
		return
	}

	if err := c.brandRepo.Update(ctx, brand); err != nil {
		if errors.Is(err, repository.ErrBrandDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "marca já cadastrada", err.Error()))
			return
		}
		c.logger.Error("erro ao atualizar marca no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar marca", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBrandResponse(brand))
}

// Delete remove uma marca
// @Summary Excluir marca
// @Description Remove uma marca representada
// @Tags brands
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da marca"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /brands/{id} [delete]
func (c *BrandController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.brandRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "marca não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao excluir marca", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao excluir marca", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("marca removida com sucesso", nil))
}
