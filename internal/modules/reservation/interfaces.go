package reservation

import (
	"context"

	"hotelreservation/internal/domain"
)

// Store persists the whole ledger. Load returns an empty list and no error
// when nothing has been saved yet; any other failure is returned as an error.
type Store interface {
	Load(ctx context.Context) ([]domain.Booking, error)
	Save(ctx context.Context, bookings []domain.Booking) error
}

// PaymentProcessor is told about every successful booking.
type PaymentProcessor interface {
	Process(ctx context.Context, amount float64)
}

// Recorder receives ledger events for metrics.
type Recorder interface {
	BookingCreated(roomType string)
	BookingRejected(reason string)
	BookingCancelled(roomType string)
	LedgerSize(n int)
}
