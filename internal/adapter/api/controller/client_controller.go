package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gestaovendas/erp-representacao/internal/adapter/api/dto"
	"github.com/gestaovendas/erp-representacao/internal/adapter/repository"
	clientdomain "github.com/gestaovendas/erp-representacao/internal/domain/client"
	orderdomain "github.com/gestaovendas/erp-representacao/internal/domain/order"
	"github.com/gestaovendas/erp-representacao/pkg/cnpjlookup"
	"github.com/gestaovendas/erp-representacao/pkg/logger"
	"github.com/gin-gonic/gin"
)

// ClientController gerencia as requisições relacionadas a clientes
type ClientController struct {
	clientRepo clientdomain.Repository
	orderRepo  orderdomain.Repository
	cnpjClient *cnpjlookup.Client
	logger     logger.Logger
}

// NewClientController cria uma nova instância de ClientController
func NewClientController(clientRepo clientdomain.Repository, orderRepo orderdomain.Repository,
	cnpjClient *cnpjlookup.Client, logger logger.Logger) *ClientController {
	return &ClientController{
		clientRepo: clientRepo,
		orderRepo:  orderRepo,
		cnpjClient: cnpjClient,
		logger:     logger,
	}
}

// Create cria um novo cliente
// @Summary Criar cliente
// @Description Cria um novo cliente no sistema
// @Tags clients
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param client body dto.ClientRequest true "Dados do cliente"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients [post]
func (c *ClientController) Create(ctx *gin.Context) {
	var req dto.ClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	client, err := clientdomain.NewClient(req.CompanyName, req.ContactPerson, req.Phone,
		req.Region, req.CNPJ, req.Email)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar cliente", err.Error()))
		return
	}

	if err := c.clientRepo.Create(ctx, client); err != nil {
		if errors.Is(err, repository.ErrClientDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "cliente já cadastrado", err.Error()))
			return
		}
		c.logger.Error("erro ao criar cliente no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToClientResponse(client))
}

// Get retorna um cliente pelo ID
// @Summary Buscar cliente
// @Description Retorna os dados de um cliente pelo ID
// @Tags clients
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.ClientResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients/{id} [get]
func (c *ClientController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	client, err := c.clientRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// List retorna a lista de clientes
// @Summary Listar clientes
// @Description Retorna a lista de clientes paginada, com filtro opcional por região ou busca textual
// @Tags clients
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Param region query string false "Filtro por região"
// @Param search query string false "Busca por razão social, contato ou CNPJ"
// @Success 200 {object} dto.ClientListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients [get]
func (c *ClientController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	pagination := dto.GetPagination(page, size)

	region := ctx.Query("region")
	search := ctx.Query("search")

	var clients []*clientdomain.Client
	var err error
	if search != "" {
		clients, err = c.clientRepo.Search(ctx, search, pagination.PageSize, pagination.Offset())
	} else {
		clients, err = c.clientRepo.List(ctx, region, pagination.PageSize, pagination.Offset())
	}
	if err != nil {
		c.logger.Error("erro ao listar clientes", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar clientes", err.Error()))
		return
	}

	total, err := c.clientRepo.Count(ctx, region)
	if err != nil {
		c.logger.Error("erro ao contar clientes", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar clientes", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientListResponse(clients, total, pagination.Page, pagination.PageSize))
}

// Search busca clientes por texto livre
// @Summary Buscar clientes
// @Description Busca clientes por razão social, contato ou CNPJ
// @Tags clients
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param q query string true "Texto da busca"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} dto.ClientListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients/search [get]
func (c *ClientController) Search(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	pagination := dto.GetPagination(page, size)

	query := ctx.Query("q")

	clients, err := c.clientRepo.Search(ctx, query, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao buscar clientes", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar clientes", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientListResponse(clients, len(clients), pagination.Page, pagination.PageSize))
}

// Update atualiza um cliente
// @Summary Atualizar cliente
// @Description Atualiza os dados de um cliente
// @Tags clients
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Param client body dto.ClientRequest true "Dados do cliente"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /clients/{id} [put]
func (c *ClientController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.ClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	client, err := c.clientRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar cliente", err.Error()))
		return
	}

	if err := client.Update(req.CompanyName, req.ContactPerson, req.Phone, req.Region, req.CNPJ, req.Email); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar cliente", err.Error()))
		return
	}

	if err := c.clientRepo.Update(ctx, client); err != nil {
		if errors.Is(err, repository.ErrClientDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "cliente já cadastrado", err.Error()))
			return
		}
		c.logger.Error("erro ao atualizar cliente no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// Delete remove um cliente
// @Summary Excluir cliente
// @Description Remove um cliente sem pedidos associados
// @Tags clients
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /clients/{id} [delete]
func (c *ClientController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.clientRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrClientNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", err.Error()))
		case errors.Is(err, repository.ErrClientHasOrders):
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "cliente possui pedidos e não pode ser removido", err.Error()))
		default:
			c.logger.Error("erro ao excluir cliente", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao excluir cliente", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("cliente removido com sucesso", nil))
}

// Stats retorna o resumo de pedidos de um cliente
// @Summary Estatísticas do cliente
// @Description Retorna a quantidade e o valor total dos pedidos de um cliente
// @Tags clients
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.ClientStatsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /clients/{id}/stats [get]
func (c *ClientController) Stats(ctx *gin.Context) {
	id := ctx.Param("id")

	exists, err := c.clientRepo.Exists(ctx, id)
	if err != nil {
		c.logger.Error("erro ao verificar cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao verificar cliente", err.Error()))
		return
	}
	if !exists {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", ""))
		return
	}

	stats, err := c.orderRepo.StatsByClient(ctx, id)
	if err != nil {
		c.logger.Error("erro ao consultar estatísticas do cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao consultar estatísticas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientStatsResponse(stats))
}

// LookupCNPJ consulta os dados cadastrais de um CNPJ
// @Summary Consultar CNPJ
// @Description Consulta os dados cadastrais de um CNPJ para pré-preencher o cadastro
// @Tags clients
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param cnpj path string true "CNPJ com ou sem máscara"
// @Success 200 {object} dto.CNPJLookupResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /clients/cnpj/{cnpj} [get]
func (c *ClientController) LookupCNPJ(ctx *gin.Context) {
	cnpj := ctx.Param("cnpj")

	info, err := c.cnpjClient.Lookup(ctx, cnpj)
	if err != nil {
		switch {
		case errors.Is(err, cnpjlookup.ErrInvalidCNPJ):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "CNPJ inválido", err.Error()))
		case errors.Is(err, cnpjlookup.ErrCNPJNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "CNPJ não encontrado", err.Error()))
		default:
			c.logger.Error("erro ao consultar CNPJ", "error", err)
			ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "erro ao consultar CNPJ", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.CNPJLookupResponse{
		CNPJ:        info.CNPJ,
		CompanyName: info.CompanyName,
		TradeName:   info.TradeName,
		Phone:       info.Phone,
		Email:       info.Email,
		City:        info.City,
		State:       info.State,
	})
}
