package route

import (
	"github.com/gestaovendas/erp-representacao/internal/adapter/api/controller"
	"github.com/gestaovendas/erp-representacao/pkg/auth"
	"github.com/gin-gonic/gin"
)

// RegisterReportRoutes registra as rotas de relatórios
func RegisterReportRoutes(r *gin.RouterGroup, jwtService *auth.JWTService, reportController *controller.ReportController) {
	reports := r.Group("/reports")
	reports.Use(auth.JWTAuthMiddleware(jwtService))
	{
		reports.GET("/sales", reportController.SalesByRep)
		reports.GET("/commissions", reportController.Commissions)
		reports.GET("/dashboard", reportController.Dashboard)
	}
}
