package reservation

import (
	"errors"
	"strconv"
	"strings"

	"hotelreservation/internal/domain"
)

// Report titles shown above each listing.
const (
	TitleAvailableRooms = "Available Rooms"
	TitleAllBookings    = "All Bookings"
	TitleHistory        = "Booking History"
	TitlePriceRange     = "Rooms in Price Range"
)

func RoomReport(title string, rooms []domain.Room) string {
	var b strings.Builder
	writeHeader(&b, title)
	for _, r := range rooms {
		b.WriteString(r.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func BookingReport(title string, bookings []domain.Booking) string {
	var b strings.Builder
	writeHeader(&b, title)
	for _, bk := range bookings {
		b.WriteString(bk.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func writeHeader(b *strings.Builder, title string) {
	b.WriteString("--- ")
	b.WriteString(title)
	b.WriteString(" ---\n")
}

func BookedMessage(b domain.Booking) string {
	return "Room " + strconv.Itoa(b.RoomNumber) + " booked successfully!"
}

func CancelledMessage(b domain.Booking) string {
	return "Booking for room " + strconv.Itoa(b.RoomNumber) + " cancelled."
}

// Message turns a desk error into the line shown to the operator.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidName):
		return "Invalid name."
	case errors.Is(err, ErrInvalidCNIC):
		return "Invalid CNIC."
	case errors.Is(err, ErrInvalidDate):
		return "Invalid date format."
	case errors.Is(err, ErrInvalidType):
		return "Invalid room type."
	case errors.Is(err, ErrNoRoomAvailable):
		msg := err.Error()
		return strings.ToUpper(msg[:1]) + msg[1:]
	case errors.Is(err, ErrNotFound):
		return "No booking found under this name."
	case errors.Is(err, ErrInvalidInput):
		return "Invalid input for price range."
	case errors.Is(err, ErrPersistenceWrite):
		return "Failed to save bookings."
	default:
		return err.Error()
	}
}
