package route

import (
	"github.com/gestaovendas/erp-representacao/internal/adapter/api/controller"
	"github.com/gestaovendas/erp-representacao/pkg/auth"
	"github.com/gin-gonic/gin"
)

// RegisterClientRoutes registra as rotas do módulo de clientes
func RegisterClientRoutes(r *gin.RouterGroup, jwtService *auth.JWTService, clientController *controller.ClientController) {
	clients := r.Group("/clients")
	clients.Use(auth.JWTAuthMiddleware(jwtService))
	{
		clients.POST("", clientController.Create)
		clients.GET("", clientController.List)
		clients.GET("/search", clientController.Search)
		clients.GET("/cnpj/:cnpj", clientController.LookupCNPJ)
		clients.GET("/:id", clientController.Get)
		clients.GET("/:id/stats", clientController.Stats)
		clients.PUT("/:id", clientController.Update)
		clients.DELETE("/:id", clientController.Delete)
	}
}
