package route

import (
	"github.com/gin-gonic/gin"
	"github.com/stockpro/stockpro-api/internal/adapter/api/controller"
	"github.com/stockpro/stockpro-api/internal/domain/user"
	"github.com/stockpro/stockpro-api/pkg/auth"
)

// SetupProductRoutes configura as rotas para o módulo de produtos
func SetupProductRoutes(router *gin.RouterGroup, productController *controller.ProductController) {
	productRouter := router.Group("/products")
	{
		productRouter.Use(auth.JWTAuthMiddleware())

		// Leitura é liberada para qualquer usuário autenticado
		productRouter.GET("", productController.List)
		productRouter.GET("/:id", productController.Get)

		// Escrita é restrita a administradores e gerentes
		writeRoles := auth.RoleAuthMiddleware(string(user.RoleAdmin), string(user.RoleGerente))
		productRouter.POST("", writeRoles, productController.Create)
		productRouter.PUT("/:id", writeRoles, productController.Update)
		productRouter.DELETE("/:id", writeRoles, productController.Delete)
	}
}
