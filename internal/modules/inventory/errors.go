package inventory

import "errors"

var (
	ErrNotFound     = errors.New("room not found")
	ErrInvalidInput = errors.New("invalid price range")
)
