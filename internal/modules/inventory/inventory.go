package inventory

import (
	"math"
	"strconv"
	"strings"

	"hotelreservation/internal/domain"
)

// DefaultCatalog is the fixed room list the desk starts with.
func DefaultCatalog() []domain.Room {
	return []domain.Room{
		{RoomNumber: 101, Type: domain.RoomStandard, Price: 5000},
		{RoomNumber: 102, Type: domain.RoomStandard, Price: 5000},
		{RoomNumber: 201, Type: domain.RoomDeluxe, Price: 8000},
		{RoomNumber: 202, Type: domain.RoomDeluxe, Price: 8000},
		{RoomNumber: 301, Type: domain.RoomSuite, Price: 12000},
		{RoomNumber: 302, Type: domain.RoomSuite, Price: 12000},
	}
}

// Inventory owns the room catalog. It is not safe for concurrent use.
type Inventory struct {
	rooms []domain.Room
}

func New() *Inventory {
	return NewWithRooms(DefaultCatalog())
}

// NewWithRooms builds an inventory over a custom catalog. Rooms start available.
func NewWithRooms(rooms []domain.Room) *Inventory {
	inv := &Inventory{rooms: make([]domain.Room, len(rooms))}
	copy(inv.rooms, rooms)
	inv.Reset()
	return inv
}

// Rooms returns a snapshot of the whole catalog, booked rooms included.
func (inv *Inventory) Rooms() []domain.Room {
	out := make([]domain.Room, len(inv.rooms))
	copy(out, inv.rooms)
	return out
}

func (inv *Inventory) Room(number int) (domain.Room, bool) {
	if i := inv.indexOf(number); i >= 0 {
		return inv.rooms[i], true
	}
	return domain.Room{}, false
}

func (inv *Inventory) ListAvailable() []domain.Room {
	out := make([]domain.Room, 0, len(inv.rooms))
	for _, r := range inv.rooms {
		if !r.IsBooked {
			out = append(out, r)
		}
	}
	return out
}

// ListByPriceRange parses both bounds and returns the free rooms priced in [min, max].
// min > max is not an error, it simply matches nothing.
func (inv *Inventory) ListByPriceRange(minInput, maxInput string) ([]domain.Room, error) {
	lo, err := parsePrice(minInput)
	if err != nil {
		return nil, err
	}
	hi, err := parsePrice(maxInput)
	if err != nil {
		return nil, err
	}
	return inv.ListByPrice(lo, hi), nil
}

func (inv *Inventory) ListByPrice(lo, hi float64) []domain.Room {
	out := make([]domain.Room, 0)
	for _, r := range inv.rooms {
		if !r.IsBooked && r.Price >= lo && r.Price <= hi {
			out = append(out, r)
		}
	}
	return out
}

func (inv *Inventory) FindFirstAvailableByType(t string) (domain.Room, error) {
	t = strings.TrimSpace(t)
	for _, r := range inv.rooms {
		if !r.IsBooked && strings.EqualFold(string(r.Type), t) {
			return r, nil
		}
	}
	return domain.Room{}, ErrNotFound
}

// MarkBooked flags a room as booked for date. Unknown room numbers are
// ignored; the result reports whether a room was updated.
func (inv *Inventory) MarkBooked(number int, date string) bool {
	i := inv.indexOf(number)
	if i < 0 {
		return false
	}
	inv.rooms[i].IsBooked = true
	inv.rooms[i].BookingDate = date
	return true
}

// MarkAvailable frees a room. Unknown room numbers are ignored.
func (inv *Inventory) MarkAvailable(number int) bool {
	i := inv.indexOf(number)
	if i < 0 {
		return false
	}
	inv.rooms[i].IsBooked = false
	inv.rooms[i].BookingDate = ""
	return true
}

// Reset marks every room available.
func (inv *Inventory) Reset() {
	for i := range inv.rooms {
		inv.rooms[i].IsBooked = false
		inv.rooms[i].BookingDate = ""
	}
}

func (inv *Inventory) indexOf(number int) int {
	for i := range inv.rooms {
		if inv.rooms[i].RoomNumber == number {
			return i
		}
	}
	return -1
}

func parsePrice(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidInput
	}
	return v, nil
}
