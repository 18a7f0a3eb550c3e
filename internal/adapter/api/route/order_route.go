package route

import (
	"github.com/gestaovendas/erp-representacao/internal/adapter/api/controller"
	"github.com/gestaovendas/erp-representacao/internal/domain/user"
	"github.com/gestaovendas/erp-representacao/pkg/auth"
	"github.com/gin-gonic/gin"
)

// RegisterOrderRoutes registra as rotas do módulo de pedidos
func RegisterOrderRoutes(r *gin.RouterGroup, jwtService *auth.JWTService, orderController *controller.OrderController) {
	orders := r.Group("/orders")
	orders.Use(auth.JWTAuthMiddleware(jwtService))
	{
		orders.POST("", orderController.Create)
		orders.GET("", orderController.List)
		orders.GET("/mine", orderController.Mine)
		orders.GET("/seller/:userId", orderController.BySeller)
		orders.GET("/stats/:clientId", orderController.ClientStats)
		orders.GET("/:id", orderController.Get)
		orders.PUT("/:id", orderController.Update)
		orders.PUT("/:id/status", orderController.UpdateStatus)
		orders.PUT("/:id/finalize", orderController.Finalize)
		orders.DELETE("/:id",
			auth.RoleAuthMiddleware(string(user.RoleAdmin)),
			orderController.Delete)
	}
}
