package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stockpro/stockpro-api/internal/adapter/api/dto"
	reportdomain "github.com/stockpro/stockpro-api/internal/domain/report"
	"github.com/stockpro/stockpro-api/pkg/logger"
)

// ReportController gerencia as requisições de relatórios
type ReportController struct {
	reportRepo reportdomain.Repository
	logger     logger.Logger
}

// NewReportController cria uma nova instância de ReportController
func NewReportController(reportRepo reportdomain.Repository, logger logger.Logger) *ReportController {
	return &ReportController{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

// Get retorna o relatório consolidado
// @Summary Relatório consolidado
// @Description Retorna os indicadores de estoque, vendas, compras, encomendas e dívidas
// @Tags reports
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} report.Report
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports [get]
func (c *ReportController) Get(ctx *gin.Context) {
	r, err := c.reportRepo.Generate(ctx)
	if err != nil {
		c.logger.Error("erro ao gerar relatório", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar relatório", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, r)
}
