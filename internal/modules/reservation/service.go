package reservation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"

	"hotelreservation/internal/domain"
	"hotelreservation/internal/modules/inventory"
	"hotelreservation/internal/pkg/validator"
)

// Service owns the room inventory and the booking ledger. Every method runs
// to completion on the caller's goroutine; it is not safe for concurrent use.
type Service struct {
	rooms    *inventory.Inventory
	bookings []domain.Booking
	store    Store
	payments PaymentProcessor
	metrics  Recorder
	autosave bool
}

func NewService(rooms *inventory.Inventory, store Store, payments PaymentProcessor, metrics Recorder) *Service {
	return &Service{
		rooms:    rooms,
		bookings: make([]domain.Booking, 0),
		store:    store,
		payments: payments,
		metrics:  metrics,
	}
}

// EnableAutosave makes Book and Cancel save the ledger after each change.
func (s *Service) EnableAutosave() {
	s.autosave = true
}

// Book reserves the first free room of the requested type. Nothing is
// mutated unless the whole request succeeds. With autosave on, a failed save
// is reported as ErrPersistenceWrite alongside the completed booking.
func (s *Service) Book(ctx context.Context, req BookRequest) (domain.Booking, error) {
	if err := validateBookRequest(req); err != nil {
		s.rejected(err)
		return domain.Booking{}, err
	}

	room, err := s.rooms.FindFirstAvailableByType(req.Type)
	if err != nil {
		s.rejected(ErrNoRoomAvailable)
		t, _ := domain.ParseRoomType(req.Type)
		return domain.Booking{}, fmt.Errorf("%w of type %s", ErrNoRoomAvailable, t)
	}

	s.rooms.MarkBooked(room.RoomNumber, req.Date)
	b := domain.Booking{
		CustomerName: req.CustomerName,
		CNIC:         req.CNIC,
		RoomNumber:   room.RoomNumber,
		Type:         string(room.Type),
		Date:         req.Date,
		Price:        room.Price,
	}
	s.bookings = append(s.bookings, b)

	if s.payments != nil {
		s.payments.Process(ctx, room.Price)
	}
	if s.metrics != nil {
		s.metrics.BookingCreated(b.Type)
		s.metrics.LedgerSize(len(s.bookings))
	}

	return b, s.saveAfterChange(ctx)
}

// Cancel removes the first booking whose customer name matches ignoring case.
// Only that one booking is removed even if the name has several.
func (s *Service) Cancel(ctx context.Context, customerName string) (domain.Booking, error) {
	if customerName == "" {
		return domain.Booking{}, ErrInvalidName
	}

	for i, b := range s.bookings {
		if !strings.EqualFold(b.CustomerName, customerName) {
			continue
		}
		s.bookings = slices.Delete(s.bookings, i, i+1)
		s.releaseRoom(b.RoomNumber)

		if s.metrics != nil {
			s.metrics.BookingCancelled(b.Type)
			s.metrics.LedgerSize(len(s.bookings))
		}
		return b, s.saveAfterChange(ctx)
	}

	return domain.Booking{}, ErrNotFound
}

// releaseRoom frees a room unless another booking still points at it.
func (s *Service) releaseRoom(number int) {
	for _, other := range s.bookings {
		if other.RoomNumber == number {
			s.rooms.MarkBooked(number, other.Date)
			return
		}
	}
	s.rooms.MarkAvailable(number)
}

func (s *Service) ListAll() []domain.Booking {
	out := make([]domain.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

func (s *Service) ListByCNIC(cnic string) []domain.Booking {
	out := make([]domain.Booking, 0)
	for _, b := range s.bookings {
		if b.CNIC == cnic {
			out = append(out, b)
		}
	}
	return out
}

// History is ListByCNIC for the desk: an empty result is ErrNotFound.
func (s *Service) History(cnic string) ([]domain.Booking, error) {
	out := s.ListByCNIC(cnic)
	if len(out) == 0 {
		return out, ErrNotFound
	}
	return out, nil
}

func (s *Service) Rooms() []domain.Room {
	return s.rooms.Rooms()
}

func (s *Service) Available() []domain.Room {
	return s.rooms.ListAvailable()
}

func (s *Service) FilterByPrice(minInput, maxInput string) ([]domain.Room, error) {
	return s.rooms.ListByPriceRange(minInput, maxInput)
}

// Load replaces the ledger with the stored bookings and rebuilds room
// availability from them. It never fails: a missing store starts an empty
// ledger, an unreadable or corrupt one is logged and also starts empty.
// Bookings for rooms outside the catalog are kept but do not touch inventory.
func (s *Service) Load(ctx context.Context) int {
	loaded, err := s.store.Load(ctx)
	if err != nil {
		log.Printf("ledger_load_failed action=start_empty error=%q", err.Error())
		loaded = nil
	}

	s.bookings = make([]domain.Booking, 0, len(loaded))
	s.bookings = append(s.bookings, loaded...)

	s.rooms.Reset()
	for _, b := range s.bookings {
		if !s.rooms.MarkBooked(b.RoomNumber, b.Date) {
			log.Printf("ledger_unknown_room room=%d customer=%q", b.RoomNumber, b.CustomerName)
		}
	}

	if s.metrics != nil {
		s.metrics.LedgerSize(len(s.bookings))
	}
	return len(s.bookings)
}

// Clear drops every booking and frees every room. It does not save.
func (s *Service) Clear() {
	s.bookings = make([]domain.Booking, 0)
	s.rooms.Reset()
	if s.metrics != nil {
		s.metrics.LedgerSize(0)
	}
}

// Save overwrites the stored ledger with the in-memory one.
func (s *Service) Save(ctx context.Context) error {
	if err := s.store.Save(ctx, s.ListAll()); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistenceWrite, err)
	}
	return nil
}

func (s *Service) saveAfterChange(ctx context.Context) error {
	if !s.autosave {
		return nil
	}
	return s.Save(ctx)
}

func (s *Service) rejected(err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.BookingRejected(reasonOf(err))
}

func validateBookRequest(req BookRequest) error {
	errs := validator.Validate(req)
	if errs == nil {
		return nil
	}
	// reported in the order the desk asks for the fields
	switch {
	case errs["CustomerName"] != "":
		return ErrInvalidName
	case errs["CNIC"] != "":
		return ErrInvalidCNIC
	case errs["Date"] != "":
		return ErrInvalidDate
	default:
		return ErrInvalidType
	}
}

func reasonOf(err error) string {
	switch {
	case errors.Is(err, ErrInvalidName):
		return "invalid_name"
	case errors.Is(err, ErrInvalidCNIC):
		return "invalid_cnic"
	case errors.Is(err, ErrInvalidDate):
		return "invalid_date"
	case errors.Is(err, ErrInvalidType):
		return "invalid_type"
	case errors.Is(err, ErrNoRoomAvailable):
		return "no_room_available"
	default:
		return "other"
	}
}
