package main

import (
	"flag"
	"log"

	"github.com/gestaovendas/erp-representacao/internal/infrastructure/config"
	"github.com/gestaovendas/erp-representacao/internal/infrastructure/database"
	"github.com/joho/godotenv"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	path := flag.String("path", "migrations", "diretório com os arquivos de migração")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Erro ao carregar configuração: %v", err)
	}

	if err := database.RunMigrations(&cfg.Database, *path); err != nil {
		log.Fatalf("Erro ao executar migrações: %v", err)
	}

	log.Println("Migrações executadas com sucesso!")
}
