package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrMissingFields    = errors.New("all fields are required")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrInvalidDateOrder = errors.New("check-in date must be before check-out date")
	ErrMissingQuery     = errors.New("term or date query parameter is required")
	ErrMissingEmail     = errors.New("email is required")
	ErrInvalidRoomCount = errors.New("rooms must be a positive integer")
	ErrDuplicateHotel   = errors.New("hotel name already exists")
)

// DateOrderError carries both supplied date strings so the caller can echo
// them back in the rejection message.
type DateOrderError struct {
	CheckIn, CheckOut string
}

func (e *DateOrderError) Error() string {
	return fmt.Sprintf("check-in date %s must be before check-out date %s", e.CheckIn, e.CheckOut)
}

func (e *DateOrderError) Is(target error) bool { return target == ErrInvalidDateOrder }

// Reads and deletes report a missing booking as two distinct kinds: lookups
// and deletes map to different HTTP statuses. Both carry the requested id.

type LookupNotFoundError struct{ ID int64 }

func (e *LookupNotFoundError) Error() string {
	return fmt.Sprintf("booking with ID: %d was not found", e.ID)
}

func (e *LookupNotFoundError) Is(target error) bool { return target == ErrNotFound }

type DeleteNotFoundError struct{ ID int64 }

func (e *DeleteNotFoundError) Error() string {
	return fmt.Sprintf("booking with ID: %d was not found", e.ID)
}

func (e *DeleteNotFoundError) Is(target error) bool { return target == ErrNotFound }
