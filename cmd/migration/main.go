package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"
	"github.com/stockpro/stockpro-api/internal/infrastructure/database"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	path := flag.String("path", "migrations", "diretório com os arquivos de migração")
	down := flag.Bool("down", false, "desfaz a última migração em vez de aplicar as pendentes")
	flag.Parse()

	if *down {
		if err := database.RollbackMigration(*path); err != nil {
			log.Fatalf("Erro ao desfazer migração: %v", err)
		}
		log.Println("Migração desfeita com sucesso!")
		return
	}

	if err := database.RunMigrations(*path); err != nil {
		log.Fatalf("Erro ao executar migrações: %v", err)
	}

	log.Println("Migrações executadas com sucesso!")
}
