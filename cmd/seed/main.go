package main

import (
	"context"
	"flag"
	"log"

	"hotelreservation/internal/app"
	"hotelreservation/internal/config"
	"hotelreservation/internal/modules/reservation"
)

var demoBookings = []reservation.BookRequest{
	{CustomerName: "Ali Raza", CNIC: "3520212345671", Type: "Standard", Date: "15-06-2025"},
	{CustomerName: "Sara Khan", CNIC: "4210198765432", Type: "Deluxe", Date: "20-06-2025"},
	{CustomerName: "Usman Tariq", CNIC: "6110155512343", Type: "Suite", Date: "01-07-2025"},
	{CustomerName: "Ali Raza", CNIC: "3520212345671", Type: "Deluxe", Date: "12-08-2025"},
}

func main() {
	force := flag.Bool("force", false, "replace an existing non-empty ledger")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx := context.Background()
	desk, err := app.Open(ctx, cfg, app.Options{})
	if err != nil {
		log.Fatalf("open desk: %v", err)
	}
	defer desk.Close()

	if n := len(desk.Service.ListAll()); n > 0 {
		if !*force {
			log.Fatalf("ledger already has %d bookings, rerun with -force to replace them", n)
		}
		log.Printf("Clearing %d existing bookings...", n)
		desk.Service.Clear()
	}

	log.Println("Creating demo bookings...")
	for _, req := range demoBookings {
		b, err := desk.Service.Book(ctx, req)
		if err != nil {
			log.Fatalf("seed booking for %s: %v", req.CustomerName, err)
		}
		log.Printf("  %s", b)
	}

	if err := desk.Service.Save(ctx); err != nil {
		log.Fatalf("save ledger: %v", err)
	}
	log.Printf("Seed completed: store=%s bookings=%d", cfg.StoreTarget(), len(desk.Service.ListAll()))
}
