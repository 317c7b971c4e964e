package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"takesix/internal/bot"
	"takesix/internal/config"
	"takesix/internal/ports/ws"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	if cfg.BotsEnabled {
		if err := bot.LoadIdentities(cfg.BotIdentities); err != nil {
			logger.Warn("could not load bot identities, using fallback pool", zap.Error(err))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := ws.NewServer(cfg, logger)
	go server.Run(ctx)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", server.HandleWS)

	httpServer := &http.Server{Addr: cfg.Addr, Handler: mux}
	go func() {
		<-ctx.Done()
		httpServer.Close()
	}()

	logger.Info("listening", zap.String("addr", cfg.Addr))
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
