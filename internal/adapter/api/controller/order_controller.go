package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stockpro/stockpro-api/internal/adapter/api/dto"
	"github.com/stockpro/stockpro-api/internal/adapter/repository"
	orderdomain "github.com/stockpro/stockpro-api/internal/domain/order"
	"github.com/stockpro/stockpro-api/internal/domain/user"
	"github.com/stockpro/stockpro-api/pkg/auth"
	"github.com/stockpro/stockpro-api/pkg/logger"
)

// OrderController gerencia as requisições relacionadas a encomendas
type OrderController struct {
	orderRepo orderdomain.Repository
	logger    logger.Logger
}

// NewOrderController cria uma nova instância de OrderController
func NewOrderController(orderRepo orderdomain.Repository, logger logger.Logger) *OrderController {
	return &OrderController{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// buildOrderChildren monta itens e imagens do domínio a partir da requisição
func buildOrderChildren(req dto.OrderRequest) ([]orderdomain.Item, []orderdomain.Image, error) {
	items := make([]orderdomain.Item, 0, len(req.Items))
	for _, it := range req.Items {
		item, err := orderdomain.NewItem(it.ProductID, it.Quantity, it.UnitPrice)
		if err != nil {
			return nil, nil, err
		}
		items = append(items, *item)
	}

	images := make([]orderdomain.Image, 0, len(req.Images))
	for _, url := range req.Images {
		img, err := orderdomain.NewImage(url)
		if err != nil {
			return nil, nil, err
		}
		images = append(images, *img)
	}

	return items, images, nil
}

// Create cria uma encomenda
// @Summary Criar encomenda
// @Description Cria uma encomenda com status PENDENTE, somando o total dos itens
// @Tags orders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param order body dto.OrderRequest true "Dados da encomenda"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders [post]
func (c *OrderController) Create(ctx *gin.Context) {
	var req dto.OrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	items, images, err := buildOrderChildren(req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	userID, _, _, _ := auth.GetCurrentUser(ctx)

	o := orderdomain.NewOrder(userID, items, images, req.Notes, req.ClientName, req.ClientPhone, req.Description)

	if err := c.orderRepo.Create(ctx, o); err != nil {
		c.logger.Error("erro ao criar encomenda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao criar encomenda", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToOrderResponse(o))
}

// List retorna as encomendas
// @Summary Listar encomendas
// @Description Retorna as encomendas mais recentes primeiro; funcionários veem apenas as próprias
// @Tags orders
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param status query string false "Filtro por status"
// @Success 200 {array} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders [get]
func (c *OrderController) List(ctx *gin.Context) {
	var status orderdomain.Status
	if statusStr := ctx.Query("status"); statusStr != "" {
		status = orderdomain.Status(statusStr)
		if !orderdomain.IsValidStatus(status) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "status inválido", ""))
			return
		}
	}

	userID, _, _, role := auth.GetCurrentUser(ctx)

	// Funcionários veem apenas as próprias encomendas
	filterUserID := ""
	if role == string(user.RoleFuncionario) {
		filterUserID = userID
	}

	orders, err := c.orderRepo.List(ctx, filterUserID, status)
	if err != nil {
		c.logger.Error("erro ao listar encomendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar encomendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderListResponse(orders))
}

// Get retorna uma encomenda pelo ID
// @Summary Buscar encomenda
// @Description Retorna os dados de uma encomenda com itens e imagens
// @Tags orders
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da encomenda"
// @Success 200 {object} dto.OrderResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders/{id} [get]
func (c *OrderController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	o, err := c.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "encomenda não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar encomenda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderResponse(o))
}

// UpdateStatus muda o status de uma encomenda
// @Summary Atualizar status da encomenda
// @Description Muda o status; a entrada em CONCLUIDA baixa o estoque dos itens uma única vez
// @Tags orders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da encomenda"
// @Param status body dto.OrderStatusRequest true "Novo status"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders/{id}/status [put]
func (c *OrderController) UpdateStatus(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.OrderStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	o, err := c.orderRepo.UpdateStatus(ctx, id, orderdomain.Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrOrderNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "encomenda não encontrada", ""))
		case errors.Is(err, repository.ErrProductNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", err.Error()))
		case errors.Is(err, repository.ErrInsufficientStock):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "estoque insuficiente", err.Error()))
		default:
			c.logger.Error("erro ao atualizar status da encomenda", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar status", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderResponse(o))
}

// Update atualiza uma encomenda
// @Summary Atualizar encomenda
// @Description Atualiza os dados da encomenda, substituindo itens e imagens
// @Tags orders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da encomenda"
// @Param order body dto.OrderRequest true "Dados da encomenda"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders/{id} [put]
func (c *OrderController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.OrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	o, err := c.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "encomenda não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar encomenda", err.Error()))
		return
	}

	items, images, err := buildOrderChildren(req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	o.Notes = req.Notes
	o.ClientName = req.ClientName
	o.ClientPhone = req.ClientPhone
	o.Description = req.Description
	o.Items = items
	o.Images = images
	o.Total = 0
	for i := range o.Items {
		o.Items[i].OrderID = o.ID
		o.Total += o.Items[i].Total
	}
	for i := range o.Images {
		o.Images[i].OrderID = o.ID
	}

	if err := c.orderRepo.Update(ctx, o); err != nil {
		c.logger.Error("erro ao atualizar encomenda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar encomenda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderResponse(o))
}

// Delete remove uma encomenda
// @Summary Remover encomenda
// @Description Remove uma encomenda com seus itens e imagens
// @Tags orders
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da encomenda"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders/{id} [delete]
func (c *OrderController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.orderRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "encomenda não encontrada", ""))
			return
		}
		c.logger.Error("erro ao remover encomenda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover encomenda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("encomenda removida", nil))
}
