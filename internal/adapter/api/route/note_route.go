package route

import (
	"github.com/gin-gonic/gin"
	"github.com/stockpro/stockpro-api/internal/adapter/api/controller"
	"github.com/stockpro/stockpro-api/pkg/auth"
)

// SetupNoteRoutes configura as rotas para o módulo de anotações
func SetupNoteRoutes(router *gin.RouterGroup, noteController *controller.NoteController) {
	noteRouter := router.Group("/notes")
	{
		// A posse é verificada no controller: funcionários só listam e
		// removem as próprias anotações
		noteRouter.Use(auth.JWTAuthMiddleware())

		noteRouter.POST("", noteController.Create)
		noteRouter.GET("", noteController.List)
		noteRouter.DELETE("/:id", noteController.Delete)
	}
}
