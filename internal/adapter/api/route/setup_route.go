package route

import (
	"net/http"

	"github.com/gestaovendas/erp-representacao/internal/adapter/api/controller"
	"github.com/gestaovendas/erp-representacao/pkg/auth"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Controllers reúne os controllers registrados nas rotas
type Controllers struct {
	Auth     *controller.AuthController
	Client   *controller.ClientController
	Product  *controller.ProductController
	Brand    *controller.BrandController
	Order    *controller.OrderController
	Report   *controller.ReportController
	Purchase *controller.PurchaseController
}

// SetupRoutes registra todas as rotas da API sob /api/v1
func SetupRoutes(router *gin.Engine, jwtService *auth.JWTService, c Controllers) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")

	api.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	RegisterAuthRoutes(api, jwtService, c.Auth)
	RegisterClientRoutes(api, jwtService, c.Client)
	RegisterProductRoutes(api, jwtService, c.Product)
	RegisterBrandRoutes(api, jwtService, c.Brand)
	RegisterOrderRoutes(api, jwtService, c.Order)
	RegisterReportRoutes(api, jwtService, c.Report)
	RegisterPurchaseRoutes(api, jwtService, c.Purchase)
}
