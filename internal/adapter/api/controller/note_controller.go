package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stockpro/stockpro-api/internal/adapter/api/dto"
	"github.com/stockpro/stockpro-api/internal/adapter/repository"
	notedomain "github.com/stockpro/stockpro-api/internal/domain/note"
	"github.com/stockpro/stockpro-api/internal/domain/user"
	"github.com/stockpro/stockpro-api/pkg/auth"
	"github.com/stockpro/stockpro-api/pkg/logger"
)

// NoteController gerencia as requisições relacionadas a anotações
type NoteController struct {
	noteRepo notedomain.Repository
	logger   logger.Logger
}

// NewNoteController cria uma nova instância de NoteController
func NewNoteController(noteRepo notedomain.Repository, logger logger.Logger) *NoteController {
	return &NoteController{
		noteRepo: noteRepo,
		logger:   logger,
	}
}

// Create cria uma anotação
// @Summary Criar anotação
// @Description Cria uma anotação, opcionalmente vinculada a uma encomenda
// @Tags notes
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param note body dto.NoteRequest true "Dados da anotação"
// @Success 201 {object} dto.NoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notes [post]
func (c *NoteController) Create(ctx *gin.Context) {
	var req dto.NoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	userID, _, _, _ := auth.GetCurrentUser(ctx)

	n, err := notedomain.NewNote(userID, req.OrderID, req.Title, req.Content)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar anotação", err.Error()))
		return
	}

	if err := c.noteRepo.Create(ctx, n); err != nil {
		c.logger.Error("erro ao criar anotação", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao criar anotação", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToNoteResponse(n))
}

// List retorna as anotações
// @Summary Listar anotações
// @Description Retorna as anotações mais recentes primeiro; funcionários veem apenas as próprias
// @Tags notes
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.NoteResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notes [get]
func (c *NoteController) List(ctx *gin.Context) {
	userID, _, _, role := auth.GetCurrentUser(ctx)

	// Funcionários veem apenas as próprias anotações
	filterUserID := ""
	if role == string(user.RoleFuncionario) {
		filterUserID = userID
	}

	notes, err := c.noteRepo.List(ctx, filterUserID)
	if err != nil {
		c.logger.Error("erro ao listar anotações", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar anotações", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNoteListResponse(notes))
}

// Delete remove uma anotação
// @Summary Remover anotação
// @Description Remove uma anotação; funcionários só podem remover as próprias
// @Tags notes
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da anotação"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notes/{id} [delete]
func (c *NoteController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	n, err := c.noteRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "anotação não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar anotação", err.Error()))
		return
	}

	userID, _, _, role := auth.GetCurrentUser(ctx)
	if role == string(user.RoleFuncionario) && !n.IsOwnedBy(userID) {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "Acesso negado", "Você só pode remover as próprias anotações"))
		return
	}

	if err := c.noteRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "anotação não encontrada", ""))
			return
		}
		c.logger.Error("erro ao remover anotação", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover anotação", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("anotação removida", nil))
}
