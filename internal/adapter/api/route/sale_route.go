package route

import (
	"github.com/gin-gonic/gin"
	"github.com/stockpro/stockpro-api/internal/adapter/api/controller"
	"github.com/stockpro/stockpro-api/pkg/auth"
)

// SetupSaleRoutes configura as rotas para o módulo de vendas
func SetupSaleRoutes(router *gin.RouterGroup, saleController *controller.SaleController) {
	saleRouter := router.Group("/sales")
	{
		// Qualquer usuário autenticado pode registrar e consultar vendas
		saleRouter.Use(auth.JWTAuthMiddleware())

		saleRouter.POST("", saleController.Create)
		saleRouter.GET("", saleController.List)
	}
}
