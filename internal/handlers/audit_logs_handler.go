package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/barbeariamendes/barbearia-api/internal/httperr"
	"github.com/barbeariamendes/barbearia-api/internal/models"
)

type AuditLogsHandler struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewAuditLogsHandler(db *gorm.DB, log zerolog.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{db: db, log: log}
}

const auditListMaxLimit = 200

// List devolve os registros mais recentes primeiro; limit padrão 50,
// teto 200.
func (h *AuditLogsHandler) List(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	if limit > auditListMaxLimit {
		limit = auditListMaxLimit
	}

	q := h.db.WithContext(c.Request.Context())

	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}
	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		h.log.Error().Err(err).Str("op", "list_audit_logs").Msg("query failed")
		httperr.Internal(c)
		return
	}

	if logs == nil {
		logs = []models.AuditLog{}
	}
	c.JSON(http.StatusOK, logs)
}
