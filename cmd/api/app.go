package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/stockpro/stockpro-api/docs"
	"github.com/stockpro/stockpro-api/internal/adapter/api/controller"
	"github.com/stockpro/stockpro-api/internal/adapter/api/route"
	"github.com/stockpro/stockpro-api/internal/adapter/repository"
	"github.com/stockpro/stockpro-api/internal/infrastructure/database"
	"github.com/stockpro/stockpro-api/pkg/logger"
)

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	logger logger.Logger
	close  func()
}

// NewApp cria uma nova instância do aplicativo
func NewApp() *App {
	l := logger.NewLogger()

	// Configurar banco de dados
	db, err := database.NewPostgresDB()
	if err != nil {
		log.Fatalf("Erro ao conectar com o banco de dados: %v", err)
	}

	// Criar repositórios
	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	debtRepo := repository.NewDebtRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	userRepo := repository.NewUserRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Criar controllers
	authController := controller.NewAuthController(userRepo, l)
	productController := controller.NewProductController(productRepo, l)
	saleController := controller.NewSaleController(saleRepo, l)
	purchaseController := controller.NewPurchaseController(purchaseRepo, l)
	orderController := controller.NewOrderController(orderRepo, l)
	debtController := controller.NewDebtController(debtRepo, l)
	noteController := controller.NewNoteController(noteRepo, l)
	userController := controller.NewUserController(userRepo, l)
	reportController := controller.NewReportController(reportRepo, l)

	// Configurar router
	router := gin.Default()

	// Configurar CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	// Documentação Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Configurar rotas da API
	api := router.Group("/api/v1")
	route.SetupAuthRoutes(api, authController)
	route.SetupProductRoutes(api, productController)
	route.SetupSaleRoutes(api, saleController)
	route.SetupPurchaseRoutes(api, purchaseController)
	route.SetupOrderRoutes(api, orderController)
	route.SetupDebtRoutes(api, debtController)
	route.SetupNoteRoutes(api, noteController)
	route.SetupUserRoutes(api, userController)
	route.SetupReportRoutes(api, reportController)

	return &App{
		router: router,
		logger: l,
		close:  db.Close,
	}
}

// Start inicia o servidor HTTP
func (a *App) Start() {
	defer a.close()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.logger.Info("iniciando servidor", "port", port)
	if err := a.router.Run(":" + port); err != nil {
		log.Fatalf("Erro ao iniciar o servidor: %v", err)
	}
}
