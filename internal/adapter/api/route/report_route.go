package route

import (
	"github.com/gin-gonic/gin"
	"github.com/stockpro/stockpro-api/internal/adapter/api/controller"
	"github.com/stockpro/stockpro-api/internal/domain/user"
	"github.com/stockpro/stockpro-api/pkg/auth"
)

// SetupReportRoutes configura as rotas para o módulo de relatórios
func SetupReportRoutes(router *gin.RouterGroup, reportController *controller.ReportController) {
	reportRouter := router.Group("/reports")
	{
		// Relatórios são restritos a gerentes e administradores
		reportRouter.Use(auth.JWTAuthMiddleware())
		reportRouter.Use(auth.RoleAuthMiddleware(string(user.RoleAdmin), string(user.RoleGerente)))
		{
			reportRouter.GET("", reportController.Get)
		}
	}
}
