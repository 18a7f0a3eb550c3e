package main

import (
	"github.com/gestaovendas/erp-representacao/internal/adapter/api/controller"
	"github.com/gestaovendas/erp-representacao/internal/adapter/api/route"
	"github.com/gestaovendas/erp-representacao/internal/adapter/repository"
	"github.com/gestaovendas/erp-representacao/internal/importer"
	"github.com/gestaovendas/erp-representacao/internal/infrastructure/config"
	"github.com/gestaovendas/erp-representacao/internal/infrastructure/database"
	"github.com/gestaovendas/erp-representacao/internal/service"
	"github.com/gestaovendas/erp-representacao/pkg/auth"
	"github.com/gestaovendas/erp-representacao/pkg/cnpjlookup"
	"github.com/gestaovendas/erp-representacao/pkg/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	_ "github.com/gestaovendas/erp-representacao/docs"
)

// App representa a aplicação e suas dependências
type App struct {
	cfg    *config.Config
	router *gin.Engine
	db     *pgxpool.Pool
	logger logger.Logger
}

// NewApp cria uma nova instância do aplicativo com todas as dependências
func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	db, err := database.NewPostgresPool(&cfg.Database)
	if err != nil {
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.ExpirationHours)
	if err != nil {
		db.Close()
		return nil, err
	}

	// Repositórios
	clientRepo := repository.NewClientRepository(db)
	productRepo := repository.NewProductRepository(db)
	brandRepo := repository.NewBrandRepository(db)
	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	historyRepo := repository.NewPriceHistoryRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Serviços
	orderService := service.NewOrderService(orderRepo, productRepo, brandRepo, clientRepo, userRepo, log)
	purchaseService := service.NewPurchaseService(productRepo, historyRepo, log)
	reportService := service.NewReportService(reportRepo)
	pdfExtractor := importer.NewPDFExtractor(cfg.OpenAI.APIKey, cfg.OpenAI.Models, log)
	cnpjClient := cnpjlookup.NewClient()

	// Controllers
	controllers := route.Controllers{
		Auth:     controller.NewAuthController(userRepo, jwtService, cfg.JWT.ExpirationHours, log),
		Client:   controller.NewClientController(clientRepo, orderRepo, cnpjClient, log),
		Product:  controller.NewProductController(productRepo, log),
		Brand:    controller.NewBrandController(brandRepo, log),
		Order:    controller.NewOrderController(orderService, orderRepo, log),
		Report:   controller.NewReportController(reportService, log),
		Purchase: controller.NewPurchaseController(purchaseService, pdfExtractor, cfg.Upload.MaxSizeBytes, log),
	}

	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	route.SetupRoutes(router, jwtService, controllers)

	return &App{
		cfg:    cfg,
		router: router,
		db:     db,
		logger: log,
	}, nil
}

// Run inicia o servidor HTTP
func (a *App) Run() error {
	a.logger.Info("servidor iniciado", "port", a.cfg.Server.Port)
	return a.router.Run(":" + a.cfg.Server.Port)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
