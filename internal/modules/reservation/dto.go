package reservation

import "strings"

type BookRequest struct {
	CustomerName string `json:"customer_name" validate:"required,utf8"`
	CNIC         string `json:"cnic" validate:"cnic"`
	Type         string `json:"type" validate:"roomtype"`
	Date         string `json:"date" validate:"ddmmyyyy"`
}

type CancelRequest struct {
	CustomerName string `json:"customer_name"`
}

// trimmed strips surrounding whitespace from every field, matching what the
// terminal desk does with each input line.
func (r BookRequest) trimmed() BookRequest {
	return BookRequest{
		CustomerName: strings.TrimSpace(r.CustomerName),
		CNIC:         strings.TrimSpace(r.CNIC),
		Type:         strings.TrimSpace(r.Type),
		Date:         strings.TrimSpace(r.Date),
	}
}
