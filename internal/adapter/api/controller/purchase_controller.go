package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stockpro/stockpro-api/internal/adapter/api/dto"
	"github.com/stockpro/stockpro-api/internal/adapter/repository"
	purchasedomain "github.com/stockpro/stockpro-api/internal/domain/purchase"
	"github.com/stockpro/stockpro-api/pkg/auth"
	"github.com/stockpro/stockpro-api/pkg/logger"
)

// PurchaseController gerencia as requisições relacionadas a compras
type PurchaseController struct {
	purchaseRepo purchasedomain.Repository
	logger       logger.Logger
}

// NewPurchaseController cria uma nova instância de PurchaseController
func NewPurchaseController(purchaseRepo purchasedomain.Repository, logger logger.Logger) *PurchaseController {
	return &PurchaseController{
		purchaseRepo: purchaseRepo,
		logger:       logger,
	}
}

// Create registra uma compra
// @Summary Registrar compra
// @Description Registra uma compra com itens de estoque e/ou itens livres; itens de estoque incrementam a quantidade do produto
// @Tags purchases
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param purchase body dto.PurchaseRequest true "Itens da compra"
// @Success 201 {object} dto.PurchaseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /purchases [post]
func (c *PurchaseController) Create(ctx *gin.Context) {
	var req dto.PurchaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if len(req.Items)+len(req.FreeItems) == 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", "adicione pelo menos um item à compra"))
		return
	}

	items := make([]purchasedomain.Item, 0, len(req.Items)+len(req.FreeItems))
	for _, it := range req.Items {
		item, err := purchasedomain.NewStockItem(it.ProductID, it.Quantity, it.UnitPrice)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "item inválido", err.Error()))
			return
		}
		items = append(items, *item)
	}
	for _, it := range req.FreeItems {
		item, err := purchasedomain.NewFreeItem(it.Description, it.Quantity, it.UnitPrice)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "item inválido", err.Error()))
			return
		}
		items = append(items, *item)
	}

	userID, _, _, _ := auth.GetCurrentUser(ctx)

	p, err := purchasedomain.NewPurchase(userID, items, req.Notes)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar compra", err.Error()))
		return
	}

	saved, err := c.purchaseRepo.Create(ctx, p)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao registrar compra", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao registrar compra", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPurchaseResponse(saved))
}

// List retorna as compras
// @Summary Listar compras
// @Description Retorna as compras mais recentes primeiro, com filtro opcional por dia
// @Tags purchases
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param date query string false "Dia no formato YYYY-MM-DD"
// @Success 200 {array} dto.PurchaseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /purchases [get]
func (c *PurchaseController) List(ctx *gin.Context) {
	var date time.Time

	if dateStr := ctx.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "data inválida", "use o formato YYYY-MM-DD"))
			return
		}
		date = parsed
	}

	purchases, err := c.purchaseRepo.List(ctx, date)
	if err != nil {
		c.logger.Error("erro ao listar compras", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar compras", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPurchaseListResponse(purchases))
}
