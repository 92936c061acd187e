package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/barbeariamendes/barbearia-api/internal/audit"
	domain "github.com/barbeariamendes/barbearia-api/internal/domain/agendamento"
	"github.com/barbeariamendes/barbearia-api/internal/httperr"
	"github.com/barbeariamendes/barbearia-api/internal/middleware"
	"github.com/barbeariamendes/barbearia-api/internal/models"
	"github.com/barbeariamendes/barbearia-api/internal/timezone"
)

type AgendamentoHandler struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	log      zerolog.Logger
	timezone string
}

func NewAgendamentoHandler(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
	log zerolog.Logger,
	tz string,
) *AgendamentoHandler {
	return &AgendamentoHandler{
		repo:     repo,
		audit:    auditDisp,
		log:      log,
		timezone: tz,
	}
}

type AgendamentoRequest struct {
	ClienteID   *uint    `json:"cliente_id"`
	ClienteNome string   `json:"cliente_nome"`
	Servico     string   `json:"servico"`
	Data        string   `json:"data"`
	Hora        string   `json:"hora"`
	Status      string   `json:"status"`
	Preco       *float64 `json:"preco"`
	Observacoes string   `json:"observacoes"`
}

func (r *AgendamentoRequest) valid() bool {
	return r.ClienteNome != "" && r.Servico != "" && r.Data != "" && r.Hora != ""
}

// ======================================================
// LIST (?data= & ?status=, igualdade exata)
// ======================================================
func (h *AgendamentoHandler) List(c *gin.Context) {
	filter := domain.Filter{
		Data:   c.Query("data"),
		Status: c.Query("status"),
	}

	ags, err := h.repo.List(c.Request.Context(), filter)
	if err != nil {
		h.log.Error().Err(err).Str("op", "list_agendamentos").Msg("query failed")
		httperr.Internal(c)
		return
	}

	if ags == nil {
		ags = []models.Agendamento{}
	}
	c.JSON(http.StatusOK, ags)
}

// ======================================================
// HOJE
// ======================================================
func (h *AgendamentoHandler) ListToday(c *gin.Context) {
	hoje := timezone.DateKey(timezone.NowIn(h.timezone))

	ags, err := h.repo.ListForDate(c.Request.Context(), hoje)
	if err != nil {
		h.log.Error().Err(err).Str("op", "list_agendamentos_hoje").Msg("query failed")
		httperr.Internal(c)
		return
	}

	if ags == nil {
		ags = []models.Agendamento{}
	}
	c.JSON(http.StatusOK, ags)
}

func (h *AgendamentoHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ag, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Agendamento não encontrado")
			return
		}
		h.log.Error().Err(err).Str("op", "get_agendamento").Msg("query failed")
		httperr.Internal(c)
		return
	}

	c.JSON(http.StatusOK, ag)
}

// ======================================================
// CREATE — rota pública de intake, sem auth
// ======================================================
func (h *AgendamentoHandler) Create(c *gin.Context) {
	var req AgendamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.valid() {
		httperr.BadRequest(c, "Cliente, serviço, data e hora são obrigatórios")
		return
	}

	ag := models.Agendamento{
		ClienteID:   req.ClienteID,
		ClienteNome: req.ClienteNome,
		Servico:     req.Servico,
		Data:        req.Data,
		Hora:        req.Hora,
		Status:      req.Status,
		Preco:       req.Preco,
		Observacoes: req.Observacoes,
	}

	if err := h.repo.Create(c.Request.Context(), &ag); err != nil {
		h.log.Error().Err(err).Str("op", "create_agendamento").Msg("insert failed")
		httperr.Internal(c)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   middleware.UserIDFromContext(c),
		Action:   "agendamento_created",
		Entity:   "agendamento",
		EntityID: &ag.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"id":           ag.ID,
		"cliente_id":   ag.ClienteID,
		"cliente_nome": ag.ClienteNome,
		"servico":      ag.Servico,
		"data":         ag.Data,
		"hora":         ag.Hora,
		"status":       ag.Status,
		"preco":        ag.Preco,
		"observacoes":  ag.Observacoes,
		"created_at":   ag.CreatedAt,
		"updated_at":   ag.UpdatedAt,
		"message":      "Agendamento criado com sucesso",
	})
}

func (h *AgendamentoHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req AgendamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.valid() {
		httperr.BadRequest(c, "Cliente, serviço, data e hora são obrigatórios")
		return
	}

	ag := models.Agendamento{
		ClienteNome: req.ClienteNome,
		Servico:     req.Servico,
		Data:        req.Data,
		Hora:        req.Hora,
		Status:      req.Status,
		Preco:       req.Preco,
		Observacoes: req.Observacoes,
	}

	if err := h.repo.Update(c.Request.Context(), id, &ag); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Agendamento não encontrado")
			return
		}
		h.log.Error().Err(err).Str("op", "update_agendamento").Msg("update failed")
		httperr.Internal(c)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   middleware.UserIDFromContext(c),
		Action:   "agendamento_updated",
		Entity:   "agendamento",
		EntityID: &id,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Agendamento atualizado com sucesso"})
}

func (h *AgendamentoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Agendamento não encontrado")
			return
		}
		h.log.Error().Err(err).Str("op", "delete_agendamento").Msg("delete failed")
		httperr.Internal(c)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   middleware.UserIDFromContext(c),
		Action:   "agendamento_deleted",
		Entity:   "agendamento",
		EntityID: &id,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Agendamento deletado com sucesso"})
}
