package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/barbeariamendes/barbearia-api/internal/audit"
	"github.com/barbeariamendes/barbearia-api/internal/cache"
	domain "github.com/barbeariamendes/barbearia-api/internal/domain/agendamento"
	"github.com/barbeariamendes/barbearia-api/internal/httperr"
	"github.com/barbeariamendes/barbearia-api/internal/models"
	"github.com/barbeariamendes/barbearia-api/internal/timezone"
	ucRelatorio "github.com/barbeariamendes/barbearia-api/internal/usecase/relatorio"
)

const dashboardTTL = 30 * time.Second

type RelatorioHandler struct {
	dashboard *ucRelatorio.Dashboard
	mensal    *ucRelatorio.Mensal
	repo      domain.Repository
	cache     *cache.Cache
	audit     *audit.Dispatcher
	log       zerolog.Logger
	timezone  string
}

func NewRelatorioHandler(
	dashboard *ucRelatorio.Dashboard,
	mensal *ucRelatorio.Mensal,
	repo domain.Repository,
	snapshots *cache.Cache,
	auditDisp *audit.Dispatcher,
	log zerolog.Logger,
	tz string,
) *RelatorioHandler {
	return &RelatorioHandler{
		dashboard: dashboard,
		mensal:    mensal,
		repo:      repo,
		cache:     snapshots,
		audit:     auditDisp,
		log:       log,
		timezone:  tz,
	}
}

// ======================================================
// DASHBOARD
// ======================================================
func (h *RelatorioHandler) Dashboard(c *gin.Context) {
	now := timezone.NowIn(h.timezone)
	hoje := timezone.DateKey(now)
	mes := timezone.MonthKey(now)

	ctx := c.Request.Context()
	key := "dashboard:" + hoje

	var cached ucRelatorio.DashboardOutput
	if h.cache.GetJSON(ctx, key, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	out, err := h.dashboard.Execute(ctx, hoje, mes)
	if err != nil {
		h.log.Error().Err(err).Str("op", "dashboard").Msg("aggregation failed")
		httperr.Internal(c)
		return
	}

	h.cache.SetJSON(ctx, key, out, dashboardTTL)

	c.JSON(http.StatusOK, out)
}

// ======================================================
// RELATÓRIO MENSAL (?mes=&ano=)
// ======================================================
func (h *RelatorioHandler) Mensal(c *gin.Context) {
	atual := timezone.MonthKey(timezone.NowIn(h.timezone))
	mesKey := ucRelatorio.MonthKey(c.Query("mes"), c.Query("ano"), atual)

	out, err := h.mensal.Execute(c.Request.Context(), mesKey)
	if err != nil {
		h.log.Error().Err(err).Str("op", "relatorio_mensal").Msg("aggregation failed")
		httperr.Internal(c)
		return
	}

	c.JSON(http.StatusOK, out)
}

// ======================================================
// WEBHOOK N8N — rota pública de automação
// ======================================================

type N8NRequest struct {
	Tipo     string `json:"tipo"`
	Cliente  string `json:"cliente"`
	Telefone string `json:"telefone"`
	Servico  string `json:"servico"`
	Data     string `json:"data"`
	Hora     string `json:"hora"`
}

func (h *RelatorioHandler) N8NWebhook(c *gin.Context) {
	var req N8NRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Tipo de operação não suportado")
		return
	}

	if req.Tipo != "novo_agendamento" {
		httperr.BadRequest(c, "Tipo de operação não suportado")
		return
	}

	if req.Cliente == "" || req.Servico == "" || req.Data == "" || req.Hora == "" {
		httperr.BadRequest(c, "Dados incompletos para agendamento")
		return
	}

	ag := models.Agendamento{
		ClienteNome: req.Cliente,
		Servico:     req.Servico,
		Data:        req.Data,
		Hora:        req.Hora,
		Status:      string(domain.StatusPendente),
	}

	if err := h.repo.Create(c.Request.Context(), &ag); err != nil {
		h.log.Error().Err(err).Str("op", "n8n_webhook").Msg("insert failed")
		httperr.Internal(c)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "agendamento_created",
		Entity:   "agendamento",
		EntityID: &ag.ID,
		Metadata: gin.H{"source": "n8n", "telefone": req.Telefone},
	})

	c.JSON(http.StatusOK, gin.H{
		"id":      ag.ID,
		"message": "Agendamento criado com sucesso via N8N",
	})
}
