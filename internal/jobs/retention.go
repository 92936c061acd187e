package jobs

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/barbeariamendes/barbearia-api/internal/models"
)

const auditRetention = 90 * 24 * time.Hour

type Retention struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewRetention(db *gorm.DB, log zerolog.Logger) *Retention {
	return &Retention{db: db, log: log}
}

// Start agenda a varredura diária de logs de auditoria antigos.
func (r *Retention) Start() *cron.Cron {
	c := cron.New()

	c.AddFunc("10 3 * * *", r.sweep)

	c.Start()
	r.log.Info().Msg("retention scheduler started")
	return c
}

func (r *Retention) sweep() {
	cutoff := time.Now().Add(-auditRetention)

	res := r.db.Where("created_at < ?", cutoff).Delete(&models.AuditLog{})
	if res.Error != nil {
		r.log.Error().Err(res.Error).Msg("audit retention sweep failed")
		return
	}

	if res.RowsAffected > 0 {
		r.log.Info().Int64("removed", res.RowsAffected).Msg("audit logs pruned")
	}
}
