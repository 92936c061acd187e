package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/barbeariamendes/barbearia-api/internal/cache"
	"github.com/barbeariamendes/barbearia-api/internal/config"
	dbpkg "github.com/barbeariamendes/barbearia-api/internal/db"
	"github.com/barbeariamendes/barbearia-api/internal/jobs"
	"github.com/barbeariamendes/barbearia-api/internal/logging"
	"github.com/barbeariamendes/barbearia-api/internal/middleware"
	"github.com/barbeariamendes/barbearia-api/internal/routes"
)

func main() {

	log := logging.New("barbearia-api")

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found")
	}

	cfg := config.Load()
	if cfg.UsingFallbackSecret() {
		log.Warn().Msg("JWT_SECRET not set, using insecure fallback — set it in production")
	}

	db := dbpkg.NewDB(cfg)
	snapshots := cache.New(cfg.RedisURL, log)

	retention := jobs.NewRetention(db, log)
	retention.Start()

	r := gin.Default()

	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	r.Use(middleware.RequestLogger(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log, snapshots)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
