package route

import (
	"github.com/gin-gonic/gin"
	"github.com/stockpro/stockpro-api/internal/adapter/api/controller"
	"github.com/stockpro/stockpro-api/pkg/auth"
)

// SetupPurchaseRoutes configura as rotas para o módulo de compras
func SetupPurchaseRoutes(router *gin.RouterGroup, purchaseController *controller.PurchaseController) {
	purchaseRouter := router.Group("/purchases")
	{
		// Qualquer usuário autenticado pode registrar e consultar compras
		purchaseRouter.Use(auth.JWTAuthMiddleware())

		purchaseRouter.POST("", purchaseController.Create)
		purchaseRouter.GET("", purchaseController.List)
	}
}
