package domain

import "time"

// VariantProduct is a rentable size/color instance of a product. The
// IsAvailable/IsRented pair is a denormalized cache of whether any active
// rental currently holds the variant; only the rental update transaction
// may flip it.
type VariantProduct struct {
	ID          string `json:"id"`
	OwnerID     string `json:"owner_id"`
	SKU         string `json:"sku"`
	IsAvailable bool   `json:"is_available"`
	IsRented    bool   `json:"is_rented"`
}

// VariantHold is an active (non-completed) rental's claim on a variant,
// the candidate row a date-conflict check runs against.
type VariantHold struct {
	RentalID  string
	SKU       string
	StartDate time.Time
	EndDate   time.Time
}

type AvailabilityResult struct {
	IsAvailable    bool   `json:"is_available"`
	ConflictingSKU string `json:"conflicting_sku,omitempty"`
}
