package route

import (
	"github.com/gin-gonic/gin"
	"github.com/stockpro/stockpro-api/internal/adapter/api/controller"
	"github.com/stockpro/stockpro-api/internal/domain/user"
	"github.com/stockpro/stockpro-api/pkg/auth"
)

// SetupUserRoutes configura as rotas para o módulo de usuários
func SetupUserRoutes(router *gin.RouterGroup, userController *controller.UserController) {
	userRouter := router.Group("/users")
	{
		// Gestão de usuários é restrita a administradores
		userRouter.Use(auth.JWTAuthMiddleware())
		userRouter.Use(auth.RoleAuthMiddleware(string(user.RoleAdmin)))
		{
			userRouter.GET("", userController.List)
			userRouter.PUT("/:id", userController.Update)
		}
	}
}
