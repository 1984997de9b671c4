package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stockpro/stockpro-api/internal/adapter/api/dto"
	"github.com/stockpro/stockpro-api/internal/adapter/repository"
	saledomain "github.com/stockpro/stockpro-api/internal/domain/sale"
	"github.com/stockpro/stockpro-api/pkg/auth"
	"github.com/stockpro/stockpro-api/pkg/logger"
)

// SaleController gerencia as requisições relacionadas a vendas
type SaleController struct {
	saleRepo saledomain.Repository
	logger   logger.Logger
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(saleRepo saledomain.Repository, logger logger.Logger) *SaleController {
	return &SaleController{
		saleRepo: saleRepo,
		logger:   logger,
	}
}

// Create registra uma venda
// @Summary Registrar venda
// @Description Valida o estoque, baixa a quantidade dos produtos e registra a venda em uma única transação
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param sale body dto.SaleRequest true "Itens da venda"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [post]
func (c *SaleController) Create(ctx *gin.Context) {
	var req dto.SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	userID, _, _, _ := auth.GetCurrentUser(ctx)

	s, err := c.saleRepo.Create(ctx, userID, dto.ToSaleItemInputs(req.Items), req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", err.Error()))
		case errors.Is(err, repository.ErrInsufficientStock):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "estoque insuficiente", err.Error()))
		default:
			c.logger.Error("erro ao registrar venda", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao registrar venda", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(s))
}

// List retorna as vendas
// @Summary Listar vendas
// @Description Retorna as vendas mais recentes primeiro, com filtro opcional por dia
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param date query string false "Dia no formato YYYY-MM-DD"
// @Success 200 {array} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	var date time.Time

	if dateStr := ctx.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "data inválida", "use o formato YYYY-MM-DD"))
			return
		}
		date = parsed
	}

	sales, err := c.saleRepo.List(ctx, date)
	if err != nil {
		c.logger.Error("erro ao listar vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(sales))
}
