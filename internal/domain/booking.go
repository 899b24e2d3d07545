package domain

import "strconv"

// Booking is one active reservation. Type and Price are copied from the room
// when the booking is made and are not updated afterwards.
type Booking struct {
	CustomerName string  `json:"customer_name"`
	CNIC         string  `json:"cnic"`
	RoomNumber   int     `json:"room_number"`
	Type         string  `json:"type"`
	Date         string  `json:"date"`
	Price        float64 `json:"price"`
}

func (b Booking) String() string {
	return b.CustomerName + " (CNIC: " + b.CNIC + ") - Room " + strconv.Itoa(b.RoomNumber) +
		" (" + b.Type + ") on " + b.Date + " - PKR " + FormatPrice(b.Price)
}
