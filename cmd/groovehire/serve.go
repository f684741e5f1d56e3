package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/groovehire/backend/internal/handler"
	"github.com/groovehire/backend/internal/model/profile"
	"github.com/groovehire/backend/internal/model/provider"
	"github.com/groovehire/backend/internal/service/chat"
	"github.com/groovehire/backend/internal/service/messaging"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := setup()
	if err != nil {
		return errors.Wrap(err, "load configuration")
	}

	sim, err := loadSimulator(cfg.Chat.RulesFile)
	if err != nil {
		return err
	}

	chatSvc := chat.NewService(chat.Options{
		ReplyDelay: cfg.Chat.ReplyDelay,
		Replier:    sim,
	})

	profiles, err := profile.NewSQLite(cfg.Storage.ProfileDBPath)
	if err != nil {
		return errors.Wrap(err, "open profile store")
	}
	defer func() {
		if err := profiles.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close profile store")
		}
	}()

	router := handler.NewRouter(handler.Dependencies{
		Chat:      chatSvc,
		Providers: provider.NewMemoryStore(provider.Seed()),
		Profiles:  profiles,
		Linker: messaging.Linker{
			Number:   cfg.Messaging.WhatsAppNumber,
			Greeting: cfg.Messaging.Greeting,
		},
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	// Shutdown neither cancels streaming requests nor tracks hijacked
	// websockets; closing the conversations ends both.
	srv.RegisterOnShutdown(chatSvc.Close)

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		log.Info().
			Str("addr", cfg.Server.Addr).
			Dur("reply_delay", cfg.Chat.ReplyDelay).
			Msg("GrooveHire backend listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "listen")
		}
		return nil
	})

	eg.Go(func() error {
		<-egCtx.Done()
		log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("server shutdown incomplete")
		}

		chatSvc.Drain()
		log.Info().Int("conversations", chatSvc.Count()).Msg("shutdown complete")
		return nil
	})

	return eg.Wait()
}
