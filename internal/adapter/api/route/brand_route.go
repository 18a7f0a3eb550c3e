package route

import (
	"github.com/gestaovendas/erp-representacao/internal/adapter/api/controller"
	"github.com/gestaovendas/erp-representacao/internal/domain/user"
	"github.com/gestaovendas/erp-representacao/pkg/auth"
	"github.com/gin-gonic/gin"
)

// RegisterBrandRoutes registra as rotas do módulo de marcas. A taxa de
// comissão das marcas só pode ser alterada por administradores.
func RegisterBrandRoutes(r *gin.RouterGroup, jwtService *auth.JWTService, brandController *controller.BrandController) {
	brands := r.Group("/brands")
	brands.Use(auth.JWTAuthMiddleware(jwtService))
	{
		brands.GET("", brandController.List)
		brands.GET("/:id", brandController.Get)

		admin := brands.Group("")
		admin.Use(auth.RoleAuthMiddleware(string(user.RoleAdmin)))
		{
			admin.POST("", brandController.Create)
			admin.PUT("/:id", brandController.Update)
			admin.DELETE("/:id", brandController.Delete)
		}
	}
}
