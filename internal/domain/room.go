package domain

import (
	"strconv"
	"strings"
)

type RoomType string

const (
	RoomStandard RoomType = "Standard"
	RoomDeluxe   RoomType = "Deluxe"
	RoomSuite    RoomType = "Suite"
)

// RoomTypes lists the catalog types in the order the desk offers them.
var RoomTypes = []RoomType{RoomStandard, RoomDeluxe, RoomSuite}

// ParseRoomType matches s against the catalog types ignoring case.
func ParseRoomType(s string) (RoomType, bool) {
	s = strings.TrimSpace(s)
	for _, t := range RoomTypes {
		if strings.EqualFold(string(t), s) {
			return t, true
		}
	}
	return "", false
}

type Room struct {
	RoomNumber  int      `json:"room_number"`
	Type        RoomType `json:"type"`
	Price       float64  `json:"price"`
	IsBooked    bool     `json:"is_booked"`
	BookingDate string   `json:"booking_date,omitempty"`
}

func (r Room) String() string {
	s := "Room " + strconv.Itoa(r.RoomNumber) + " - " + string(r.Type) + " - PKR " + FormatPrice(r.Price)
	if r.IsBooked {
		s += " (Booked)"
	}
	return s
}

// FormatPrice renders an amount with at least one fractional digit: 5000 -> "5000.0".
func FormatPrice(p float64) string {
	s := strconv.FormatFloat(p, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
