package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"hotelreservation/internal/app"
	"hotelreservation/internal/config"
	"hotelreservation/internal/metrics"
	"hotelreservation/internal/modules/auth"
	"hotelreservation/internal/modules/payment"
	"hotelreservation/internal/modules/reservation"
	jwtsvc "hotelreservation/internal/pkg/jwt"
	"hotelreservation/internal/server"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if err := cfg.ValidateAPI(); err != nil {
		log.Fatalf("config error: %v", err)
	}
	if cfg.IsProdLike() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var m *metrics.Metrics
	opts := app.Options{
		Payments: payment.NewSimulator(log.Printf),
	}
	if cfg.API.MetricsEnabled {
		m = metrics.New()
		opts.Metrics = m
	}

	desk, err := app.Open(ctx, cfg, opts)
	if err != nil {
		log.Fatalf("open desk: %v", err)
	}
	defer desk.Close()

	j := jwtsvc.New(cfg.API.JWTSecret, cfg.API.JWTAccessTTL)
	reservationHandler := reservation.NewHandler(desk.Service)

	r := server.NewRouter(server.Deps{
		Auth:        auth.NewHandler(auth.NewService(cfg.API.OperatorPasswordHash, j)),
		Reservation: reservationHandler,
		JWT:         j,
		Metrics:     m,
		CORSOrigins: cfg.API.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.API.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("http desk listening addr=%s", cfg.API.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down http desk")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}

	reservationHandler.Lock()
	defer reservationHandler.Unlock()
	if err := desk.Service.Save(shutdownCtx); err != nil {
		log.Printf("ledger_save_failed error=%q", err.Error())
		return
	}
	log.Printf("ledger_saved bookings=%d", len(desk.Service.ListAll()))
}
