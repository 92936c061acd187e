package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/barbeariamendes/barbearia-api/internal/audit"
	"github.com/barbeariamendes/barbearia-api/internal/cache"
	"github.com/barbeariamendes/barbearia-api/internal/config"
	"github.com/barbeariamendes/barbearia-api/internal/handlers"
	infraRepo "github.com/barbeariamendes/barbearia-api/internal/infra/repository"
	"github.com/barbeariamendes/barbearia-api/internal/middleware"
	ucRelatorio "github.com/barbeariamendes/barbearia-api/internal/usecase/relatorio"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log zerolog.Logger,
	snapshots *cache.Cache,
) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	agendamentoRepo := infraRepo.NewAgendamentoGormRepository(db)
	clienteRepo := infraRepo.NewClienteGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// 🧠 USE CASES — RELATÓRIOS
	// ======================================================
	dashboardUC := ucRelatorio.NewDashboard(agendamentoRepo)
	mensalUC := ucRelatorio.NewMensal(agendamentoRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, log)
	clienteHandler := handlers.NewClienteHandler(clienteRepo, auditDispatcher, log)
	agendamentoHandler := handlers.NewAgendamentoHandler(agendamentoRepo, auditDispatcher, log, cfg.Timezone)
	relatorioHandler := handlers.NewRelatorioHandler(
		dashboardUC,
		mensalUC,
		agendamentoRepo,
		snapshots,
		auditDispatcher,
		log,
		cfg.Timezone,
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(db, log)
	spaHandler := handlers.NewSPAHandler(cfg.StaticDir)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🌐 PÚBLICAS (intake + automação)
		// ------------------------------
		api.POST("/agendamentos", agendamentoHandler.Create)
		api.POST("/relatorios/n8n", relatorioHandler.N8NWebhook)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/clientes", clienteHandler.List)
			secured.GET("/clientes/:id", clienteHandler.Get)
			secured.POST("/clientes", clienteHandler.Create)
			secured.PUT("/clientes/:id", clienteHandler.Update)
			secured.DELETE("/clientes/:id", clienteHandler.Delete)

			secured.GET("/agendamentos", agendamentoHandler.List)
			secured.GET("/agendamentos/hoje", agendamentoHandler.ListToday)
			secured.GET("/agendamentos/:id", agendamentoHandler.Get)
			secured.PUT("/agendamentos/:id", agendamentoHandler.Update)
			secured.DELETE("/agendamentos/:id", agendamentoHandler.Delete)

			secured.GET("/relatorios/dashboard", relatorioHandler.Dashboard)
			secured.GET("/relatorios/mensal", relatorioHandler.Mensal)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}

	// ======================================================
	// 🌍 SPA (qualquer rota fora de /api)
	// ======================================================
	r.NoRoute(spaHandler.Serve)
}
