package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stockpro/stockpro-api/internal/adapter/api/dto"
	"github.com/stockpro/stockpro-api/internal/adapter/repository"
	debtdomain "github.com/stockpro/stockpro-api/internal/domain/debt"
	"github.com/stockpro/stockpro-api/pkg/logger"
)

// DebtController gerencia as requisições relacionadas a dívidas e pagamentos
type DebtController struct {
	debtRepo debtdomain.Repository
	logger   logger.Logger
}

// NewDebtController cria uma nova instância de DebtController
func NewDebtController(debtRepo debtdomain.Repository, logger logger.Logger) *DebtController {
	return &DebtController{
		debtRepo: debtRepo,
		logger:   logger,
	}
}

// Create registra uma dívida
// @Summary Registrar dívida
// @Description Cria uma dívida com o saldo restante igual ao valor total
// @Tags debts
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param debt body dto.DebtRequest true "Dados da dívida"
// @Success 201 {object} dto.DebtResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /debts [post]
func (c *DebtController) Create(ctx *gin.Context) {
	var req dto.DebtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	d, err := debtdomain.NewDebt(req.ClientName, req.TotalAmount, req.Description)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar dívida", err.Error()))
		return
	}

	if err := c.debtRepo.Create(ctx, d); err != nil {
		c.logger.Error("erro ao registrar dívida", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao registrar dívida", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDebtResponse(d))
}

// List retorna as dívidas
// @Summary Listar dívidas
// @Description Retorna as dívidas mais recentes primeiro, com seus pagamentos
// @Tags debts
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.DebtResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /debts [get]
func (c *DebtController) List(ctx *gin.Context) {
	debts, err := c.debtRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao listar dívidas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar dívidas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtListResponse(debts))
}

// Get retorna uma dívida pelo ID
// @Summary Buscar dívida
// @Description Retorna os dados de uma dívida com seus pagamentos
// @Tags debts
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da dívida"
// @Success 200 {object} dto.DebtResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /debts/{id} [get]
func (c *DebtController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	d, err := c.debtRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDebtNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "dívida não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar dívida", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtResponse(d))
}

// CreatePayment registra um pagamento de dívida
// @Summary Registrar pagamento
// @Description Aplica um pagamento à dívida, limitado ao saldo restante
// @Tags payments
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param payment body dto.PaymentRequest true "Dados do pagamento"
// @Success 201 {object} dto.PaymentResultResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /payments [post]
func (c *DebtController) CreatePayment(ctx *gin.Context) {
	var req dto.PaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	payment, d, err := c.debtRepo.AddPayment(ctx, req.DebtID, req.Amount, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDebtNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "dívida não encontrada", ""))
		case errors.Is(err, repository.ErrAmountExceedsBalance):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "valor excede o saldo restante", err.Error()))
		default:
			c.logger.Error("erro ao registrar pagamento", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao registrar pagamento", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusCreated, dto.PaymentResultResponse{
		Payment: dto.ToPaymentResponse(payment),
		Debt:    dto.ToDebtResponse(d),
	})
}
