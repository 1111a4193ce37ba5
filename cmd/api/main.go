package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/client-portal-api/internal/config"
	"github.com/client-portal-api/internal/infrastructure/postgres"
	"github.com/client-portal-api/internal/infrastructure/postgres/migrations"
	"github.com/client-portal-api/internal/infrastructure/smtp"
	transporthttp "github.com/client-portal-api/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	ctx := context.Background()
	pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer pool.Close()

	if err := migrations.Run(ctx, cfg.DatabaseURL); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	// Idle keep-alive query against the store, independent of request
	// traffic; stopped with the server.
	keepAliveCtx, stopKeepAlive := context.WithCancel(ctx)
	defer stopKeepAlive()
	go postgres.KeepAlive(keepAliveCtx, pool, cfg.DBKeepAlive)

	deps := &transporthttp.Deps{
		ClientRepo:       postgres.NewClientRepo(pool),
		VerificationRepo: postgres.NewVerificationRepo(pool),
		SessionRepo:      postgres.NewSessionRepo(pool),
		AgreementRepo:    postgres.NewAgreementRepo(pool),
		Transactor:       postgres.NewTransactor(pool),
		Mailer:           smtp.NewMailer(cfg),
		DB:               pool,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	stopKeepAlive()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
