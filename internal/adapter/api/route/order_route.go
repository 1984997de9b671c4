package route

import (
	"github.com/gin-gonic/gin"
	"github.com/stockpro/stockpro-api/internal/adapter/api/controller"
	"github.com/stockpro/stockpro-api/internal/domain/user"
	"github.com/stockpro/stockpro-api/pkg/auth"
)

// SetupOrderRoutes configura as rotas para o módulo de encomendas
func SetupOrderRoutes(router *gin.RouterGroup, orderController *controller.OrderController) {
	orderRouter := router.Group("/orders")
	{
		orderRouter.Use(auth.JWTAuthMiddleware())

		// Criação e consulta liberadas para qualquer usuário autenticado;
		// funcionários veem apenas as próprias encomendas
		orderRouter.POST("", orderController.Create)
		orderRouter.GET("", orderController.List)
		orderRouter.GET("/:id", orderController.Get)

		// Mudança de status é restrita a gerentes e administradores
		orderRouter.PUT("/:id/status",
			auth.RoleAuthMiddleware(string(user.RoleAdmin), string(user.RoleGerente)),
			orderController.UpdateStatus)

		// Edição completa e remoção são restritas a administradores
		adminOnly := auth.RoleAuthMiddleware(string(user.RoleAdmin))
		orderRouter.PUT("/:id", adminOnly, orderController.Update)
		orderRouter.DELETE("/:id", adminOnly, orderController.Delete)
	}
}
