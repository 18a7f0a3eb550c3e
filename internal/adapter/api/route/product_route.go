package route

import (
	"github.com/gestaovendas/erp-representacao/internal/adapter/api/controller"
	"github.com/gestaovendas/erp-representacao/internal/domain/user"
	"github.com/gestaovendas/erp-representacao/pkg/auth"
	"github.com/gin-gonic/gin"
)

// RegisterProductRoutes registra as rotas do módulo de produtos
func RegisterProductRoutes(r *gin.RouterGroup, jwtService *auth.JWTService, productController *controller.ProductController) {
	products := r.Group("/products")
	products.Use(auth.JWTAuthMiddleware(jwtService))
	{
		products.POST("", productController.Create)
		products.GET("", productController.List)
		products.GET("/search", productController.Search)
		products.GET("/low-stock", productController.LowStock)
		products.GET("/:id", productController.Get)
		products.PUT("/:id", productController.Update)
		products.DELETE("/:id",
			auth.RoleAuthMiddleware(string(user.RoleAdmin)),
			productController.Delete)
	}
}
