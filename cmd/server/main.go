package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/inkstream/internal/config"
	"github.com/inkstream/internal/db"
	"github.com/inkstream/internal/handler"
	"github.com/inkstream/internal/router"
	"github.com/inkstream/internal/service"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	logger := log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	if err := db.Init(cfg.DatabasePath); err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize database")
	}

	if err := db.EnsureAdmin(cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName); err != nil {
		logger.Fatal().Err(err).Msg("failed to seed admin account")
	}

	contact := service.NewContactService(cfg.SMTPHost, cfg.SMTPPort, cfg.MailAddress, cfg.MailPassword, logger)
	api := handler.NewAPI(db.DB, contact)

	r := router.Setup(api, cfg.SessionSecret, "web/template/*.html", logger)
	logger.Info().Str("addr", cfg.ListenAddr).Msg("starting server")
	if err := r.Run(cfg.ListenAddr); err != nil {
		logger.Fatal().Err(err).Msg("failed to run server")
	}
}
