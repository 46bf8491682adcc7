package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	httpapi "hangman-party/internal/api/http"
	"hangman-party/internal/api/ws"
	"hangman-party/internal/config"
	"hangman-party/internal/logger"
	"hangman-party/internal/session"
	"hangman-party/internal/store"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogPretty)
	gin.SetMode(cfg.GinMode)

	mem := store.NewMemoryStore()
	hub := ws.NewHub(nil, cfg.Transport, cfg.FrontendOrigin, log.With().Str("component", "ws").Logger())
	manager := session.NewManager(mem, hub, session.SystemScheduler{}, cfg.Game, log.With().Str("component", "session").Logger())
	hub.SetDispatcher(manager)

	r := httpapi.NewRouter(httpapi.RouterDeps{
		Rooms:          manager,
		Counter:        mem,
		WS:             hub.HandleWS,
		FrontendOrigin: cfg.FrontendOrigin,
		PublicURL:      cfg.PublicURL,
		Log:            log.With().Str("component", "http").Logger(),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	hub.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
