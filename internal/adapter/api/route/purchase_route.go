package route

import (
	"github.com/gestaovendas/erp-representacao/internal/adapter/api/controller"
	"github.com/gestaovendas/erp-representacao/pkg/auth"
	"github.com/gin-gonic/gin"
)

// RegisterPurchaseRoutes registra as rotas de importação de compras
func RegisterPurchaseRoutes(r *gin.RouterGroup, jwtService *auth.JWTService, purchaseController *controller.PurchaseController) {
	purchases := r.Group("/purchases")
	purchases.Use(auth.JWTAuthMiddleware(jwtService))
	{
		purchases.POST("/upload-pdf", purchaseController.UploadPDF)
		purchases.POST("/upload-csv", purchaseController.UploadCSV)
		purchases.POST("/finalize", purchaseController.Confirm)
		purchases.GET("/history/:productId", purchaseController.History)
	}
}
