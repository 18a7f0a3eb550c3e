package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gestaovendas/erp-representacao/internal/adapter/api/dto"
	"github.com/gestaovendas/erp-representacao/internal/adapter/repository"
	productdomain "github.com/gestaovendas/erp-representacao/internal/domain/product"
	"github.com/gestaovendas/erp-representacao/pkg/logger"
	"github.com/gin-gonic/gin"
)

// ProductController gerencia as requisições relacionadas a produtos
type ProductController struct {
	productRepo productdomain.Repository
	logger      logger.Logger
}

// NewProductController cria uma nova instância de ProductController
func NewProductController(productRepo productdomain.Repository, logger logger.Logger) *ProductController {
	return &ProductController{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Create cria um novo produto
// @Summary Criar produto
// @Description Cria um novo produto no catálogo
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	product, err := productdomain.NewProduct(req.Name, req.ProductCode, req.Subcode,
		req.Price, req.Stock, req.Brand, req.MinStock)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar produto", err.Error()))
		return
	}

	if err := c.productRepo.Create(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "código ou subcódigo já cadastrado", err.Error()))
			return
		}
		c.logger.Error("erro ao criar produto no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// Search busca produtos por nome
// @Summary Buscar produtos
// @Description Busca produtos por nome
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param q query string true "Texto da busca"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} dto.ProductListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/search [get]
func (c *ProductController) Search(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	pagination := dto.GetPagination(page, size)

	query := ctx.Query("q")

	products, err := c.productRepo.List(ctx, query, "", pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao buscar produtos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products, len(products), pagination.Page, pagination.PageSize))
}

// Get retorna um produto pelo ID
// @Summary Buscar produto
// @Description Retorna os dados de um produto pelo ID
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [get]
func (c *ProductController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	product, err := c.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// List retorna a lista de produtos
// @Summary Listar produtos
// @Description Retorna a lista de produtos paginada, com filtros opcionais por nome e marca
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Param name query string false "Filtro por nome"
// @Param brand query string false "Filtro por marca"
// @Success 200 {object} dto.ProductListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [get]
func (c *ProductController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	pagination := dto.GetPagination(page, size)

	name := ctx.Query("name")
	brand := ctx.Query("brand")

	products, err := c.productRepo.List(ctx, name, brand, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar produtos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar produtos", err.Error()))
		return
	}

	total, err := c.productRepo.Count(ctx, name, brand)
	if err != nil {
		c.logger.Error("erro ao contar produtos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products, total, pagination.Page, pagination.PageSize))
}

// LowStock retorna os produtos abaixo do estoque mínimo
// @Summary Produtos com estoque baixo
// @Description Retorna os produtos com estoque igual ou abaixo do mínimo configurado
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.ProductListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/low-stock [get]
func (c *ProductController) LowStock(ctx *gin.Context) {
	products, err := c.productRepo.FindLowStock(ctx)
	if err != nil {
		c.logger.Error("erro ao listar produtos com estoque baixo", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products, len(products), 1, len(products)))
}

// Update atualiza um produto
// @Summary Atualizar produto
// @Description Atualiza os dados de um produto
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /products/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	product, err := c.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
		return
	}

	if err := product.Update(req.Name, req.ProductCode, req.Subcode, req.Price,
		req.Stock, req.Brand, req.MinStock); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar produto", err.Error()))
		return
	}

	if err := c.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "código ou subcódigo já cadastrado", err.Error()))
			return
		}
		c.logger.Error("erro ao atualizar produto no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// Delete remove um produto
// @Summary Excluir produto
// @Description Remove um produto do catálogo
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [delete]
func (c *ProductController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao excluir produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao excluir produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("produto removido com sucesso", nil))
}
