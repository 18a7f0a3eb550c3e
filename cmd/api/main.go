package main

import (
	"log"

	"github.com/gestaovendas/erp-representacao/internal/infrastructure/config"
	"github.com/gestaovendas/erp-representacao/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Erro ao carregar configuração: %v", err)
	}

	appLogger := logger.NewLogger()

	app, err := NewApp(cfg, appLogger)
	if err != nil {
		appLogger.Error("erro ao inicializar aplicação", "error", err)
		log.Fatalf("Erro ao inicializar aplicação: %v", err)
	}
	defer app.Close()

	if err := app.Run(); err != nil {
		appLogger.Error("erro ao executar servidor", "error", err)
		log.Fatalf("Erro ao executar servidor: %v", err)
	}
}
