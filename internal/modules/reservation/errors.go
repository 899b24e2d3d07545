package reservation

import (
	"errors"

	"hotelreservation/internal/modules/inventory"
)

var (
	ErrInvalidName      = errors.New("invalid customer name")
	ErrInvalidCNIC      = errors.New("invalid cnic")
	ErrInvalidDate      = errors.New("invalid date format")
	ErrInvalidType      = errors.New("invalid room type")
	ErrNoRoomAvailable  = errors.New("no available rooms")
	ErrNotFound         = errors.New("booking not found")
	ErrPersistenceWrite = errors.New("failed to save bookings")

	ErrInvalidInput = inventory.ErrInvalidInput
)
