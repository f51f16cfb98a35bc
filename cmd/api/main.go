package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/apexforge/studio-backend/config"
	"github.com/apexforge/studio-backend/internal/bootstrap"
	"github.com/apexforge/studio-backend/internal/notify"
)

const serviceName = "ApexForge Studio"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.OpenStore(ctx, cfg.Store)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer store.Close()
	log.Printf("store driver=%s ready", cfg.Store.Driver)

	if cfg.Notify.ResendAPIKey == "" {
		log.Println("Warning: RESEND_API_KEY is not set, inquiry notifications are disabled")
	}
	services := bootstrap.NewServices(cfg, store, notify.New(cfg.Notify.ResendAPIKey))

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		CORSOrigins: cfg.CORS.AllowedOrigins,
		Store:       store,
		Services:    services,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("%s listening on :%s (env=%s)", serviceName, cfg.Server.Port, cfg.App.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	if err := services.Inquiries.Wait(shutCtx); err != nil {
		log.Printf("pending notifications abandoned: %v", err)
	}
}
