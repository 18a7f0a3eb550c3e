package route

import (
	"github.com/gestaovendas/erp-representacao/internal/adapter/api/controller"
	"github.com/gestaovendas/erp-representacao/internal/domain/user"
	"github.com/gestaovendas/erp-representacao/pkg/auth"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registra as rotas de autenticação
func RegisterAuthRoutes(r *gin.RouterGroup, jwtService *auth.JWTService, authController *controller.AuthController) {
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/login", authController.Login)
		authRoutes.POST("/refresh", authController.Refresh)
	}

	protected := r.Group("/auth")
	protected.Use(auth.JWTAuthMiddleware(jwtService))
	{
		protected.GET("/me", authController.Me)

		admin := protected.Group("/users")
		admin.Use(auth.RoleAuthMiddleware(string(user.RoleAdmin)))
		{
			admin.GET("", authController.ListUsers)
			admin.POST("", authController.Register)
		}
	}
}
