package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"hotelreservation/internal/app"
	"hotelreservation/internal/config"
	"hotelreservation/internal/console"
	"hotelreservation/internal/modules/payment"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx := context.Background()
	payments := payment.NewSimulator(func(format string, args ...interface{}) {
		fmt.Fprintf(os.Stdout, format+"\n", args...)
	})

	desk, err := app.Open(ctx, cfg, app.Options{Payments: payments})
	if err != nil {
		log.Fatalf("open desk: %v", err)
	}
	defer desk.Close()

	c := console.New(desk.Service, os.Stdin, os.Stdout)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sig
		log.Printf("signal received: %s, saving ledger", s)
		code := 0
		if err := c.Shutdown(ctx); err != nil {
			code = 1
		}
		_ = desk.Close()
		os.Exit(code)
	}()

	if err := c.Run(ctx); err != nil {
		_ = desk.Close()
		os.Exit(1)
	}
}
