package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/stockpro/stockpro-api/internal/adapter/repository"
	"github.com/stockpro/stockpro-api/internal/domain/debt"
	"github.com/stockpro/stockpro-api/internal/domain/note"
	"github.com/stockpro/stockpro-api/internal/domain/product"
	"github.com/stockpro/stockpro-api/internal/domain/user"
	"github.com/stockpro/stockpro-api/internal/infrastructure/database"
)

type seedUser struct {
	name     string
	email    string
	password string
	role     user.Role
}

type seedProduct struct {
	name        string
	category    string
	buyPrice    float64
	sellPrice   float64
	quantity    int
	minQuantity int
}

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	db, err := database.NewPostgresDB()
	if err != nil {
		log.Fatalf("Erro ao conectar com o banco de dados: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	debtRepo := repository.NewDebtRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	// Usuários iniciais
	users := []seedUser{
		{"Administrador", "admin@stockpro.com", "admin123", user.RoleAdmin},
		{"Gerente Silva", "gerente@stockpro.com", "gerente123", user.RoleGerente},
		{"João Funcionário", "funcionario@stockpro.com", "func123", user.RoleFuncionario},
	}

	var gerenteID string
	for _, su := range users {
		exists, err := userRepo.ExistsByEmail(ctx, su.email)
		if err != nil {
			log.Fatalf("Erro ao verificar usuário %s: %v", su.email, err)
		}
		if exists {
			log.Printf("Usuário %s já existe, pulando", su.email)
			continue
		}

		u, err := user.NewUser(su.name, su.email, su.password, su.role)
		if err != nil {
			log.Fatalf("Erro ao criar usuário %s: %v", su.email, err)
		}
		if err := userRepo.Create(ctx, u); err != nil {
			log.Fatalf("Erro ao salvar usuário %s: %v", su.email, err)
		}
		if su.role == user.RoleGerente {
			gerenteID = u.ID
		}
		log.Printf("Usuário criado: %s (%s)", su.email, su.role)
	}

	// Produtos iniciais
	products := []seedProduct{
		{"Arroz 5kg", "Alimentos", 15.0, 22.0, 100, 20},
		{"Feijão 1kg", "Alimentos", 8.0, 12.0, 80, 15},
		{"Óleo de Soja 900ml", "Alimentos", 6.5, 9.5, 50, 10},
		{"Açúcar 1kg", "Alimentos", 4.0, 6.5, 60, 15},
		{"Farinha de Trigo 1kg", "Alimentos", 3.5, 5.5, 45, 10},
		{"Detergente 500ml", "Limpeza", 2.0, 3.5, 3, 10},
		{"Sabão em Pó 1kg", "Limpeza", 8.0, 12.0, 30, 8},
		{"Água Sanitária 1L", "Limpeza", 3.0, 5.0, 5, 10},
		{"Refrigerante 2L", "Bebidas", 5.0, 8.0, 40, 12},
		{"Água Mineral 500ml", "Bebidas", 1.0, 2.5, 200, 50},
	}

	for _, sp := range products {
		p, err := product.NewProduct(sp.name, sp.category, sp.buyPrice, sp.sellPrice, sp.quantity, sp.minQuantity)
		if err != nil {
			log.Fatalf("Erro ao criar produto %s: %v", sp.name, err)
		}
		if err := productRepo.Create(ctx, p); err != nil {
			log.Fatalf("Erro ao salvar produto %s: %v", sp.name, err)
		}
	}
	log.Printf("%d produtos criados", len(products))

	// Dívidas de exemplo
	d1, err := debt.NewDebt("Maria Santos", 500.0, "Compras do mês de janeiro")
	if err != nil {
		log.Fatalf("Erro ao criar dívida: %v", err)
	}
	if err := debtRepo.Create(ctx, d1); err != nil {
		log.Fatalf("Erro ao salvar dívida: %v", err)
	}
	if _, _, err := debtRepo.AddPayment(ctx, d1.ID, 100.0, "Primeiro pagamento"); err != nil {
		log.Fatalf("Erro ao registrar pagamento: %v", err)
	}
	if _, _, err := debtRepo.AddPayment(ctx, d1.ID, 100.0, "Segundo pagamento"); err != nil {
		log.Fatalf("Erro ao registrar pagamento: %v", err)
	}

	d2, err := debt.NewDebt("Pedro Oliveira", 250.0, "Material de construção")
	if err != nil {
		log.Fatalf("Erro ao criar dívida: %v", err)
	}
	if err := debtRepo.Create(ctx, d2); err != nil {
		log.Fatalf("Erro ao salvar dívida: %v", err)
	}
	log.Println("Dívidas criadas")

	// Anotação de exemplo
	if gerenteID != "" {
		n, err := note.NewNote(gerenteID, "", "Reunião com fornecedor",
			"Agendar reunião com fornecedor de alimentos para próxima semana. Negociar novos preços.")
		if err != nil {
			log.Fatalf("Erro ao criar anotação: %v", err)
		}
		if err := noteRepo.Create(ctx, n); err != nil {
			log.Fatalf("Erro ao salvar anotação: %v", err)
		}
		log.Println("Anotação criada")
	}

	log.Println("Seed concluído com sucesso!")
}
