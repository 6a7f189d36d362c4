package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"upsc_portal/internal/api"
	"upsc_portal/internal/api/handler"
	"upsc_portal/internal/api/middleware"
	"upsc_portal/internal/app/service"
	"upsc_portal/internal/common/security"
	"upsc_portal/internal/domain/repository"
	"upsc_portal/internal/platform/config"
	"upsc_portal/internal/platform/database"
	"upsc_portal/internal/platform/tokenstore"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

func main() {
	// 1. Configuration
	cfg := config.Load()

	// 2. Logger
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// 3. Database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("could not connect to database", zap.Error(err))
	}
	defer db.Close()
	log.Info("database connected")

	// 4. Redis
	rdb, err := tokenstore.Connect(context.Background(), cfg)
	if err != nil {
		log.Fatal("could not connect to redis", zap.Error(err))
	}
	defer rdb.Close()
	log.Info("redis connected")

	// 5. Token issuing and stores
	issuer := security.NewTokenIssuer(cfg.JWTSecret)
	tokens := tokenstore.NewRedisTokenStore(rdb, issuer)
	resetTokens := tokenstore.NewRedisResetTokenStore(rdb, cfg.ResetTokenTTL)

	// 6. Repositories
	userRepo := repository.NewPgUserRepository(db)
	adminRepo := repository.NewPgAdminRepository(db)
	articleRepo := repository.NewPgArticleRepository(db)
	datedRepo := repository.NewPgDatedArticleRepository(db)
	contactRepo := repository.NewPgContactRepository(db)

	// 7. Services
	validate := validator.New()
	userService := service.NewUserService(userRepo, tokens, validate, log)
	adminService := service.NewAdminService(adminRepo, tokens, validate, log)
	articleService := service.NewArticleService(articleRepo, validate, log)
	datedService := service.NewDatedArticleService(datedRepo, validate, log, time.Local)
	contactService := service.NewContactService(contactRepo, validate, log)
	resetService := service.NewResetService(userRepo, resetTokens, log)

	// 8. Router & HTTP server
	auth := middleware.NewAuth(tokens, adminRepo)
	router := api.NewRouter(
		log,
		issuer,
		auth,
		handler.NewUserHandler(userService, resetService),
		handler.NewAdminHandler(adminService),
		handler.NewArticleHandler(articleService),
		handler.NewDatedArticleHandler(datedService),
		handler.NewContactHandler(contactService),
	)

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 9. Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info("server starting", zap.String("port", cfg.APIPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("could not listen", zap.Error(err))
		}
	}()

	<-stop

	log.Info("shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server shutdown failed", zap.Error(err))
	}
	log.Info("server stopped gracefully")
}
