package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"fasthands/config"
	"fasthands/network"
	"fasthands/room"
)

func main() {
	cfg := config.Load()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	gin.SetMode(gin.ReleaseMode)

	manager := room.NewManager()
	router := network.NewRouter(manager)

	log.Info().Str("addr", cfg.Addr).Msg("starting fasthands server")
	if err := router.Run(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
