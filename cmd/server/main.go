package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	assignmentrepo "nio-menu/backend/internal/assignment/repository"
	"nio-menu/backend/internal/audit"
	auditrepo "nio-menu/backend/internal/audit/repository"
	authzservice "nio-menu/backend/internal/authz/service"
	"nio-menu/backend/internal/config"
	"nio-menu/backend/internal/db"
	formatrepo "nio-menu/backend/internal/format/repository"
	personnelrepo "nio-menu/backend/internal/personnel/repository"
	"nio-menu/backend/internal/phone"
	linkrepo "nio-menu/backend/internal/phonelink/repository"
	linkservice "nio-menu/backend/internal/phonelink/service"
	rolemenurepo "nio-menu/backend/internal/rolemenu/repository"
	"nio-menu/backend/internal/server"
	"nio-menu/backend/internal/sms"
	oteltel "nio-menu/backend/internal/telemetry/otel"

	assignmenthandler "nio-menu/backend/internal/assignment/handler"
	audithandler "nio-menu/backend/internal/audit/handler"
	authzhandler "nio-menu/backend/internal/authz/handler"
	formathandler "nio-menu/backend/internal/format/handler"
	healthhandler "nio-menu/backend/internal/health/handler"
	linkhandler "nio-menu/backend/internal/phonelink/handler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	providers, err := oteltel.NewProviders(context.Background(), cfg.OTLPEndpoint, cfg.ServiceName, cfg.OTLPInsecure)
	if err != nil {
		logger.Fatal("telemetry", zap.Error(err))
	}
	providers.SetGlobal()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = providers.Shutdown(ctx)
	}()

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("db", zap.Error(err))
	}
	defer conn.Close()

	normalizer := phone.NewNormalizer(cfg.CountryPrefix)

	links := linkrepo.NewPostgresRepository(conn)
	personnel := personnelrepo.NewPostgresRepository(conn)
	catalog := rolemenurepo.NewPostgresRepository(conn)
	auditor := audit.NewLogger(auditrepo.NewPostgresRepository(conn), logger)
	formats := formatrepo.NewPostgresRepository(conn)
	assignments := assignmentrepo.NewPostgresRepository(conn)

	var sender linkservice.CodeSender
	if !cfg.OTPReturnToClient {
		sender = sms.NewSMSLocalClient(cfg.SMSLocalAPIKey, cfg.SMSLocalBaseURL, cfg.SMSLocalSender)
	}
	linkSvc := linkservice.NewLinkService(links, personnel, sender, normalizer, cfg.OTPReturnToClient)
	resolver := authzservice.NewResolver(links, personnel, catalog, auditor, normalizer)

	router := server.NewRouter(cfg, logger, server.Handlers{
		Health:     healthhandler.NewHandler(cfg.ServiceName),
		Link:       linkhandler.NewHandler(linkSvc),
		Authz:      authzhandler.NewHandler(resolver),
		Audit:      audithandler.NewHandler(auditor),
		Format:     formathandler.NewHandler(formats),
		Assignment: assignmenthandler.NewHandler(assignments),
	})

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
	logger.Info("HTTP server stopped")
}
