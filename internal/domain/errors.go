package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSlotNotFound    = errors.New("slot not found")
	ErrBlockNotFound   = errors.New("schedule block not found")
	ErrVariantNotFound = errors.New("variant not found")
	ErrRentalNotFound  = errors.New("rental not found")
)

var (
	ErrSlotExists       = errors.New("slot already exists at this time")
	ErrSlotBlocked      = errors.New("slot overlaps a blocked period")
	ErrSlotTaken        = errors.New("slot is already booked")
	ErrRentalCompleted  = errors.New("rental is completed and can no longer change")
	ErrCrossOwnerMixing = errors.New("variant belongs to another owner")
)

var (
	ErrInvalidRange = errors.New("end must be after start")
	ErrValidation   = errors.New("validation error")
)

// ErrTxTimeout means the update transaction exceeded its time bound and was
// rolled back. Unlike a plain conflict, callers should re-fetch before
// retrying.
var ErrTxTimeout = errors.New("rental update timed out")

// ErrVariantConflict is the match target for ConflictError.
var ErrVariantConflict = errors.New("variant date conflict")

// ConflictError reports a rental date overlap, carrying the SKU of the
// variant that blocks the requested range so callers can show exactly
// which selection must change.
type ConflictError struct {
	SKU string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("variant %s is already rented for the requested dates", e.SKU)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrVariantConflict
}
