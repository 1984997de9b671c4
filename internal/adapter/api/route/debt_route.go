package route

import (
	"github.com/gin-gonic/gin"
	"github.com/stockpro/stockpro-api/internal/adapter/api/controller"
	"github.com/stockpro/stockpro-api/internal/domain/user"
	"github.com/stockpro/stockpro-api/pkg/auth"
)

// SetupDebtRoutes configura as rotas para o módulo de dívidas e pagamentos
func SetupDebtRoutes(router *gin.RouterGroup, debtController *controller.DebtController) {
	managerRoles := auth.RoleAuthMiddleware(string(user.RoleAdmin), string(user.RoleGerente))

	debtRouter := router.Group("/debts")
	{
		// Dívidas são visíveis apenas para gerentes e administradores
		debtRouter.Use(auth.JWTAuthMiddleware())
		debtRouter.Use(managerRoles)
		{
			debtRouter.POST("", debtController.Create)
			debtRouter.GET("", debtController.List)
			debtRouter.GET("/:id", debtController.Get)
		}
	}

	paymentRouter := router.Group("/payments")
	{
		paymentRouter.Use(auth.JWTAuthMiddleware())
		paymentRouter.Use(managerRoles)
		{
			paymentRouter.POST("", debtController.CreatePayment)
		}
	}
}
