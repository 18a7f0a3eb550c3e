package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gestaovendas/erp-representacao/internal/adapter/api/dto"
	"github.com/gestaovendas/erp-representacao/internal/adapter/repository"
	orderdomain "github.com/gestaovendas/erp-representacao/internal/domain/order"
	"github.com/gestaovendas/erp-representacao/internal/domain/product"
	"github.com/gestaovendas/erp-representacao/internal/domain/user"
	"github.com/gestaovendas/erp-representacao/internal/service"
	"github.com/gestaovendas/erp-representacao/pkg/auth"
	"github.com/gestaovendas/erp-representacao/pkg/logger"
	"github.com/gin-gonic/gin"
)

// OrderController gerencia as requisições relacionadas a pedidos
type OrderController struct {
	orderService *service.OrderService
	orderRepo    orderdomain.Repository
	logger       logger.Logger
}

// NewOrderController cria uma nova instância de OrderController
func NewOrderController(orderService *service.OrderService, orderRepo orderdomain.Repository, logger logger.Logger) *OrderController {
	return &OrderController{
		orderService: orderService,
		orderRepo:    orderRepo,
		logger:       logger,
	}
}

// Create cria um novo pedido
// @Summary Criar pedido
// @Description Cria um novo pedido em aberto para o vendedor autenticado
// @Tags orders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param order body dto.OrderRequest true "Dados do pedido"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /orders [post]
func (c *OrderController) Create(ctx *gin.Context) {
	var req dto.OrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	userID, _, _, _ := auth.CurrentUser(ctx)

	o, err := c.orderService.Create(ctx, req.ClientID, userID, toItemInputs(req.Items), req.Discount, req.Description)
	if err != nil {
		c.respondOrderError(ctx, err, "erro ao criar pedido")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToOrderResponse(o))
}

// Get retorna um pedido pelo ID
// @Summary Buscar pedido
// @Description Retorna os dados de um pedido pelo ID
// @Tags orders
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do pedido"
// @Success 200 {object} dto.OrderResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /orders/{id} [get]
func (c *OrderController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	o, err := c.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "pedido não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar pedido", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar pedido", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderResponse(o))
}

// List retorna a lista de pedidos
// @Summary Listar pedidos
// @Description Retorna a lista de pedidos paginada, com filtros opcionais por status e cliente
// @Tags orders
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Param status query string false "Filtro por status (Em aberto ou Entregue)"
// @Param client_id query string false "Filtro por cliente"
// @Success 200 {object} dto.OrderListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders [get]
func (c *OrderController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	pagination := dto.GetPagination(page, size)

	status := orderdomain.Status(ctx.Query("status"))
	clientID := ctx.Query("client_id")

	orders, err := c.orderRepo.List(ctx, status, clientID, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar pedidos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar pedidos", err.Error()))
		return
	}

	total, err := c.orderRepo.Count(ctx, status, clientID)
	if err != nil {
		c.logger.Error("erro ao contar pedidos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar pedidos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderListResponse(orders, total, pagination.Page, pagination.PageSize))
}

// Mine retorna os pedidos do vendedor autenticado
// @Summary Meus pedidos
// @Description Retorna os pedidos do vendedor autenticado
// @Tags orders
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} dto.OrderListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders/mine [get]
func (c *OrderController) Mine(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	pagination := dto.GetPagination(page, size)

	userID, _, _, _ := auth.CurrentUser(ctx)

	orders, err := c.orderRepo.FindBySeller(ctx, userID, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar pedidos do vendedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar pedidos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderListResponse(orders, len(orders), pagination.Page, pagination.PageSize))
}

// BySeller retorna os pedidos de um vendedor
// @Summary Pedidos por vendedor
// @Description Retorna os pedidos de um vendedor; representantes só consultam os próprios pedidos
// @Tags orders
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param userId path string true "ID do vendedor"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} dto.OrderListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /orders/seller/{userId} [get]
func (c *OrderController) BySeller(ctx *gin.Context) {
	sellerID := ctx.Param("userId")

	requesterID, _, _, role := auth.CurrentUser(ctx)
	if role != string(user.RoleAdmin) && role != string(user.RoleManager) && requesterID != sellerID {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "acesso restrito aos próprios pedidos", ""))
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	pagination := dto.GetPagination(page, size)

	orders, err := c.orderRepo.FindBySeller(ctx, sellerID, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar pedidos do vendedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar pedidos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderListResponse(orders, len(orders), pagination.Page, pagination.PageSize))
}

// ClientStats retorna o resumo de pedidos de um cliente
// @Summary Estatísticas de pedidos por cliente
// @Description Retorna a quantidade e o valor total dos pedidos de um cliente
// @Tags orders
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param clientId path string true "ID do cliente"
// @Success 200 {object} dto.ClientStatsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /orders/stats/{clientId} [get]
func (c *OrderController) ClientStats(ctx *gin.Context) {
	clientID := ctx.Param("clientId")

	stats, err := c.orderRepo.StatsByClient(ctx, clientID)
	if err != nil {
		c.logger.Error("erro ao consultar estatísticas do cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao consultar estatísticas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientStatsResponse(stats))
}

// Update atualiza um pedido em aberto
// @Summary Atualizar pedido
// @Description Substitui itens, desconto e descrição de um pedido em aberto, recalculando os totais
// @Tags orders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do pedido"
// @Param order body dto.OrderUpdateRequest true "Dados do pedido"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /orders/{id} [put]
func (c *OrderController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.OrderUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	o, err := c.orderService.Update(ctx, id, toItemInputs(req.Items), req.Discount, req.Description)
	if err != nil {
		c.respondOrderError(ctx, err, "erro ao atualizar pedido")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderResponse(o))
}

// Finalize marca um pedido como entregue
// @Summary Entregar pedido
// @Description Marca o pedido como entregue e abate o estoque de todos os itens atomicamente
// @Tags orders
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do pedido"
// @Success 200 {object} dto.OrderResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /orders/{id}/finalize [put]
func (c *OrderController) Finalize(ctx *gin.Context) {
	id := ctx.Param("id")

	o, err := c.orderService.Finalize(ctx, id)
	if err != nil {
		c.respondOrderError(ctx, err, "erro ao entregar pedido")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderResponse(o))
}

// UpdateStatus altera o status de um pedido
// @Summary Alterar status do pedido
// @Description Marca o pedido como entregue; pedidos entregues não voltam a ficar em aberto
// @Tags orders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do pedido"
// @Param status body dto.OrderStatusRequest true "Novo status"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /orders/{id}/status [put]
func (c *OrderController) UpdateStatus(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.OrderStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if orderdomain.Status(req.Status) != orderdomain.StatusDelivered {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "status inválido",
			"a única transição permitida é para \"Entregue\""))
		return
	}

	o, err := c.orderService.Finalize(ctx, id)
	if err != nil {
		c.respondOrderError(ctx, err, "erro ao alterar status do pedido")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderResponse(o))
}

// Delete remove um pedido em aberto
// @Summary Excluir pedido
// @Description Remove um pedido ainda em aberto; pedidos entregues não podem ser removidos
// @Tags orders
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do pedido"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /orders/{id} [delete]
func (c *OrderController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.orderService.Delete(ctx, id); err != nil {
		c.respondOrderError(ctx, err, "erro ao excluir pedido")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("pedido removido com sucesso", nil))
}

// respondOrderError mapeia os erros de negócio de pedidos para códigos HTTP
func (c *OrderController) respondOrderError(ctx *gin.Context, err error, message string) {
	var stockErr *product.InsufficientStockError

	switch {
	case errors.Is(err, repository.ErrOrderNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "pedido não encontrado", err.Error()))
	case errors.Is(err, repository.ErrProductNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", err.Error()))
	case errors.Is(err, service.ErrClientNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", err.Error()))
	case errors.Is(err, service.ErrSellerNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "vendedor não encontrado", err.Error()))
	case errors.Is(err, orderdomain.ErrAlreadyDelivered),
		errors.Is(err, repository.ErrOrderDelivered):
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "pedido já foi entregue", err.Error()))
	case errors.As(err, &stockErr):
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "estoque insuficiente", err.Error()))
	case errors.Is(err, orderdomain.ErrEmptyClientID),
		errors.Is(err, orderdomain.ErrNoItems),
		errors.Is(err, orderdomain.ErrInvalidDiscount),
		errors.Is(err, orderdomain.ErrInvalidQuantity),
		errors.Is(err, product.ErrNegativePrice),
		errors.Is(err, service.ErrItemNameRequired),
		errors.Is(err, service.ErrItemPriceRequired):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, message, err.Error()))
	default:
		c.logger.Error(message, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, message, err.Error()))
	}
}

func toItemInputs(items []dto.OrderItemRequest) []service.ItemInput {
	inputs := make([]service.ItemInput, len(items))
	for i, item := range items {
		inputs[i] = service.ItemInput{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Brand:       item.Brand,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}
	return inputs
}
