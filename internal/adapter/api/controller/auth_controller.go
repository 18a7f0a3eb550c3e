package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gestaovendas/erp-representacao/internal/adapter/api/dto"
	"github.com/gestaovendas/erp-representacao/internal/adapter/repository"
	userdomain "github.com/gestaovendas/erp-representacao/internal/domain/user"
	"github.com/gestaovendas/erp-representacao/pkg/auth"
	"github.com/gestaovendas/erp-representacao/pkg/logger"
	"github.com/gin-gonic/gin"
)

// AuthController gerencia as requisições de autenticação
type AuthController struct {
	userRepo        userdomain.Repository
	jwtService      *auth.JWTService
	expirationHours int
	logger          logger.Logger
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(userRepo userdomain.Repository, jwtService *auth.JWTService, expirationHours int, logger logger.Logger) *AuthController {
	return &AuthController{
		userRepo:        userRepo,
		jwtService:      jwtService,
		expirationHours: expirationHours,
		logger:          logger,
	}
}

// Login autentica um usuário
// @Summary Login
// @Description Autentica um usuário e retorna um token JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credenciais"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	u, err := c.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "credenciais inválidas", ""))
			return
		}
		c.logger.Error("erro ao buscar usuário para login", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao autenticar", err.Error()))
		return
	}

	if !u.CheckPassword(req.Password) {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "credenciais inválidas", ""))
		return
	}

	if !u.IsActive() {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "usuário inativo", ""))
		return
	}

	token, err := c.jwtService.GenerateToken(u)
	if err != nil {
		c.logger.Error("erro ao gerar token", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar token", err.Error()))
		return
	}

	if err := c.userRepo.UpdateLastLogin(ctx, u.ID); err != nil {
		c.logger.Warn("erro ao registrar último login", "user_id", u.ID, "error", err)
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		User:        dto.ToUserResponse(u),
		AccessToken: token,
		ExpiresAt:   time.Now().Add(time.Duration(c.expirationHours) * time.Hour),
	})
}

// Refresh renova um token JWT
// @Summary Renovar token
// @Description Renova um token JWT válido ou recém-expirado
// @Tags auth
// @Accept json
// @Produce json
// @Param token body dto.RefreshTokenRequest true "Token atual"
// @Success 200 {object} dto.RefreshTokenResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/refresh [post]
func (c *AuthController) Refresh(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	token, err := c.jwtService.RefreshToken(req.Token)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "token inválido", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.RefreshTokenResponse{
		AccessToken: token,
		ExpiresAt:   time.Now().Add(time.Duration(c.expirationHours) * time.Hour),
	})
}

// Register cria um novo usuário
// @Summary Criar usuário
// @Description Cria um novo usuário do sistema (somente administradores)
// @Tags auth
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param user body dto.RegisterRequest true "Dados do usuário"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /auth/users [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	u, err := userdomain.NewUser(req.Name, req.Email, req.Password, userdomain.Role(req.Role))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar usuário", err.Error()))
		return
	}

	if err := c.userRepo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrUserDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "email já cadastrado", err.Error()))
			return
		}
		c.logger.Error("erro ao criar usuário no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar usuário", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUserResponse(u))
}

// ListUsers retorna a lista de usuários do sistema
// @Summary Listar usuários
// @Description Retorna a lista de usuários paginada (somente administradores)
// @Tags auth
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} []dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /auth/users [get]
func (c *AuthController) ListUsers(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	pagination := dto.GetPagination(page, size)

	users, err := c.userRepo.List(ctx, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar usuários", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar usuários", err.Error()))
		return
	}

	responses := make([]dto.UserResponse, len(users))
	for i, u := range users {
		responses[i] = dto.ToUserResponse(u)
	}

	ctx.JSON(http.StatusOK, responses)
}

// Me retorna o usuário autenticado
// @Summary Usuário atual
// @Description Retorna os dados do usuário autenticado
// @Tags auth
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	userID, _, _, _ := auth.CurrentUser(ctx)

	u, err := c.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "usuário não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar usuário autenticado", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar usuário", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}
