package route

import (
	"github.com/gin-gonic/gin"
	"github.com/stockpro/stockpro-api/internal/adapter/api/controller"
	"github.com/stockpro/stockpro-api/pkg/auth"
)

// SetupAuthRoutes configura as rotas para autenticação
func SetupAuthRoutes(router *gin.RouterGroup, authController *controller.AuthController) {
	authRouter := router.Group("/auth")
	{
		// Rotas públicas
		authRouter.POST("/login", authController.Login)
		authRouter.POST("/register", authController.Register)

		// Rota para obter informações do usuário logado (requer autenticação)
		authRouter.GET("/me", auth.JWTAuthMiddleware(), authController.Me)
	}
}
