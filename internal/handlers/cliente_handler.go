package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/barbeariamendes/barbearia-api/internal/audit"
	domain "github.com/barbeariamendes/barbearia-api/internal/domain/cliente"
	"github.com/barbeariamendes/barbearia-api/internal/httperr"
	"github.com/barbeariamendes/barbearia-api/internal/middleware"
	"github.com/barbeariamendes/barbearia-api/internal/models"
)

type ClienteHandler struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   zerolog.Logger
}

func NewClienteHandler(repo domain.Repository, auditDisp *audit.Dispatcher, log zerolog.Logger) *ClienteHandler {
	return &ClienteHandler{repo: repo, audit: auditDisp, log: log}
}

type ClienteRequest struct {
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
	Email    string `json:"email"`
}

func (h *ClienteHandler) List(c *gin.Context) {
	clientes, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Str("op", "list_clientes").Msg("query failed")
		httperr.Internal(c)
		return
	}

	if clientes == nil {
		clientes = []models.Cliente{}
	}
	c.JSON(http.StatusOK, clientes)
}

func (h *ClienteHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	cl, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Cliente não encontrado")
			return
		}
		h.log.Error().Err(err).Str("op", "get_cliente").Msg("query failed")
		httperr.Internal(c)
		return
	}

	c.JSON(http.StatusOK, cl)
}

func (h *ClienteHandler) Create(c *gin.Context) {
	var req ClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Nome == "" {
		httperr.BadRequest(c, "Nome é obrigatório")
		return
	}

	cl := models.Cliente{
		Nome:     req.Nome,
		Telefone: req.Telefone,
		Email:    req.Email,
	}

	if err := h.repo.Create(c.Request.Context(), &cl); err != nil {
		h.log.Error().Err(err).Str("op", "create_cliente").Msg("insert failed")
		httperr.Internal(c)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   middleware.UserIDFromContext(c),
		Action:   "cliente_created",
		Entity:   "cliente",
		EntityID: &cl.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"id":         cl.ID,
		"nome":       cl.Nome,
		"telefone":   cl.Telefone,
		"email":      cl.Email,
		"created_at": cl.CreatedAt,
		"updated_at": cl.UpdatedAt,
		"message":    "Cliente criado com sucesso",
	})
}

func (h *ClienteHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Nome == "" {
		httperr.BadRequest(c, "Nome é obrigatório")
		return
	}

	cl := models.Cliente{
		Nome:     req.Nome,
		Telefone: req.Telefone,
		Email:    req.Email,
	}

	if err := h.repo.Update(c.Request.Context(), id, &cl); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Cliente não encontrado")
			return
		}
		h.log.Error().Err(err).Str("op", "update_cliente").Msg("update failed")
		httperr.Internal(c)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   middleware.UserIDFromContext(c),
		Action:   "cliente_updated",
		Entity:   "cliente",
		EntityID: &id,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Cliente atualizado com sucesso"})
}

func (h *ClienteHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Cliente não encontrado")
			return
		}
		h.log.Error().Err(err).Str("op", "delete_cliente").Msg("delete failed")
		httperr.Internal(c)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   middleware.UserIDFromContext(c),
		Action:   "cliente_deleted",
		Entity:   "cliente",
		EntityID: &id,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Cliente deletado com sucesso"})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "ID inválido")
		return 0, false
	}
	return uint(id), true
}
