// Package main wires the HTTP server for the kudos service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"radya-hi5/config"
	"radya-hi5/internal/auth"
	"radya-hi5/internal/notifier"
	"radya-hi5/internal/repository"
	"radya-hi5/internal/roster"
	"radya-hi5/internal/transport/http/middleware"
	"radya-hi5/internal/transport/http/server/handlers-fiber"
	"radya-hi5/internal/usecase"
	"radya-hi5/internal/usecase/domain"
	"radya-hi5/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	dir, err := roster.Load(cfg.Roster.MembersFile, cfg.Roster.EmailsFile)
	if err != nil {
		log.Errorw("roster load error", "error", err)
		return
	}
	catalog, err := roster.LoadValues(cfg.Roster.ValuesFile)
	if err != nil {
		log.Errorw("values load error", "error", err)
		return
	}
	log.Infow("roster loaded", "members", dir.Len(), "values", len(catalog.All()))

	repo, err := repository.New(ctx, "postgres", log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	mailer, closeMailer := newNotifier(log, cfg.Mail)
	defer closeMailer()

	uc := usecase.New(log, ctx, repo, dir, catalog, mailer, domain.Options{
		Timeout:         cfg.HTTP.RequestTimeout,
		MessageMaxLen:   cfg.Kudos.MessageMaxLen,
		MailTimeout:     cfg.Mail.Timeout,
		MailConcurrency: cfg.Mail.Concurrency,
		AppURL:          cfg.Mail.AppURL,
	})
	tokens := auth.NewTokenProvider(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.Audience, cfg.Auth.TokenTTL)

	// kudos creation waits for mail delivery, so writes get the mail budget on top
	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout + cfg.Mail.Timeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	h := handlers_fiber.NewHandler(log, uc)
	handlers_fiber.RegisterRoutes(serv, h, middleware.Auth(tokens, uc, log))

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}

func newNotifier(log *zap.SugaredLogger, cfg config.MailConfig) (notifier.Notifier, func()) {
	if cfg.APIKey == "" {
		log.Warnw("mail.api_key is empty, emails will only be logged")
		return notifier.NewLogNotifier(log), func() {}
	}
	r := notifier.NewResend(log, notifier.ResendConfig{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		From:    cfg.From,
		Timeout: cfg.Timeout,
	})
	return r, r.Close
}
