package domain

import (
	"fmt"
	"time"
)

type RentalStatus string

const (
	RentalStatusUnpaid    RentalStatus = "UNPAID"
	RentalStatusPaid      RentalStatus = "PAID"
	RentalStatusOverdue   RentalStatus = "OVERDUE"
	RentalStatusCompleted RentalStatus = "COMPLETED"
)

func (s RentalStatus) Valid() bool {
	switch s {
	case RentalStatusUnpaid, RentalStatusPaid, RentalStatusOverdue, RentalStatusCompleted:
		return true
	}
	return false
}

// CanTransition reports whether a rental may move between statuses.
// COMPLETED is terminal.
func CanTransition(from, to RentalStatus) bool {
	if from == to {
		return true
	}
	return from != RentalStatusCompleted
}

type TrackingKind string

const (
	TrackingKindOngoing   TrackingKind = "ONGOING"
	TrackingKindOverdue   TrackingKind = "OVERDUE"
	TrackingKindCompleted TrackingKind = "COMPLETED"
)

// TrackingKindFor returns the audit event kind recorded when a rental
// enters the given status. ok=false means the status records nothing.
func TrackingKindFor(s RentalStatus) (TrackingKind, bool) {
	switch s {
	case RentalStatusUnpaid, RentalStatusPaid:
		return TrackingKindOngoing, true
	case RentalStatusOverdue:
		return TrackingKindOverdue, true
	case RentalStatusCompleted:
		return TrackingKindCompleted, true
	}
	return "", false
}

type Rental struct {
	ID             string       `json:"id"`
	OwnerID        string       `json:"owner_id"`
	UserID         string       `json:"user_id"`
	StartDate      time.Time    `json:"start_date"`
	EndDate        time.Time    `json:"end_date"`
	Status         RentalStatus `json:"status"`
	AdditionalInfo string       `json:"additional_info"`
	Items          []RentalItem `json:"items"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// VariantIDs returns the ids of the variants currently held by the rental.
func (r *Rental) VariantIDs() []string {
	ids := make([]string, 0, len(r.Items))
	for _, it := range r.Items {
		ids = append(ids, it.VariantProductID)
	}
	return ids
}

type RentalItem struct {
	ID               string `json:"id"`
	RentalID         string `json:"rental_id"`
	VariantProductID string `json:"variant_product_id"`
	SKU              string `json:"sku"`
}

type TrackingEvent struct {
	ID        string       `json:"id"`
	RentalID  string       `json:"rental_id"`
	Kind      TrackingKind `json:"kind"`
	CreatedAt time.Time    `json:"created_at"`
}

// RentalPatch is a partial rental edit. Nil fields are left untouched.
// A nil VariantIDs leaves the variant set alone; an empty non-nil slice
// releases every variant.
type RentalPatch struct {
	Status         *RentalStatus
	StartDate      *time.Time
	EndDate        *time.Time
	AdditionalInfo *string
	VariantIDs     []string
}

// RentalUpdate is the outcome of an applied patch. PrevStatus lets callers
// tell whether the update was a status transition.
type RentalUpdate struct {
	Rental     *Rental
	PrevStatus RentalStatus
}

// RentalUpdatePlan is the fully resolved outcome of a patch: final field
// values, the variant-set diff, which variants need an availability
// re-check, and whether the change appends a tracking event. It decides
// everything; storage only executes it.
type RentalUpdatePlan struct {
	StartDate      time.Time
	EndDate        time.Time
	Status         RentalStatus
	AdditionalInfo string
	RangeChanged   bool

	ToAdd    []string
	ToRemove []string
	// ToCheck lists the variants whose availability must be re-validated
	// over [StartDate, EndDate] before any write: every addition, plus
	// every kept variant when the range moved. Empty when the rental ends
	// up COMPLETED, since its hold blocks nobody.
	ToCheck []string
	// ToRelease lists held variants whose rented flags may be cleared
	// because the rental is completing. The flags mirror active holds, so
	// the release is still conditional on no other active rental holding
	// the variant.
	ToRelease []string

	TrackingKind   TrackingKind
	AppendTracking bool
}

// PlanRentalUpdate validates a patch against the rental's current state and
// resolves it into a plan.
func PlanRentalUpdate(rental *Rental, patch RentalPatch) (*RentalUpdatePlan, error) {
	newStart, newEnd := rental.StartDate, rental.EndDate
	if patch.StartDate != nil {
		newStart = *patch.StartDate
	}
	if patch.EndDate != nil {
		newEnd = *patch.EndDate
	}
	if !newEnd.After(newStart) {
		return nil, ErrInvalidRange
	}
	rangeChanged := !newStart.Equal(rental.StartDate) || !newEnd.Equal(rental.EndDate)

	prevStatus := rental.Status
	newStatus := prevStatus
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, *patch.Status)
		}
		if !CanTransition(prevStatus, *patch.Status) {
			return nil, ErrRentalCompleted
		}
		newStatus = *patch.Status
	}

	current := rental.VariantIDs()
	var toAdd, toRemove []string
	if patch.VariantIDs != nil {
		toAdd, toRemove = DiffVariantSets(current, NormalizeVariantIDs(patch.VariantIDs))
	}
	if len(toAdd)+len(toRemove) > 0 && prevStatus == RentalStatusCompleted {
		return nil, ErrRentalCompleted
	}

	removed := make(map[string]struct{}, len(toRemove))
	for _, id := range toRemove {
		removed[id] = struct{}{}
	}
	kept := make([]string, 0, len(current))
	for _, id := range current {
		if _, ok := removed[id]; !ok {
			kept = append(kept, id)
		}
	}

	newInfo := rental.AdditionalInfo
	if patch.AdditionalInfo != nil {
		newInfo = *patch.AdditionalInfo
	}

	plan := &RentalUpdatePlan{
		StartDate:      newStart,
		EndDate:        newEnd,
		Status:         newStatus,
		AdditionalInfo: newInfo,
		RangeChanged:   rangeChanged,
		ToAdd:          toAdd,
		ToRemove:       toRemove,
	}

	if newStatus != RentalStatusCompleted {
		plan.ToCheck = append([]string{}, toAdd...)
		if rangeChanged {
			plan.ToCheck = append(plan.ToCheck, kept...)
		}
	} else if prevStatus != RentalStatusCompleted {
		plan.ToRelease = append(append([]string{}, toAdd...), kept...)
	}

	if newStatus != prevStatus {
		if kind, ok := TrackingKindFor(newStatus); ok {
			plan.TrackingKind = kind
			plan.AppendTracking = true
		}
	}

	return plan, nil
}

// NormalizeVariantIDs de-duplicates ids, preserving first-seen order.
func NormalizeVariantIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// DiffVariantSets splits a desired variant set against the current one.
// Both inputs are treated as sets; order is preserved from the inputs.
func DiffVariantSets(current, want []string) (toAdd, toRemove []string) {
	cur := make(map[string]struct{}, len(current))
	for _, id := range current {
		cur[id] = struct{}{}
	}
	wanted := make(map[string]struct{}, len(want))
	for _, id := range want {
		wanted[id] = struct{}{}
		if _, ok := cur[id]; !ok {
			toAdd = append(toAdd, id)
		}
	}
	for _, id := range current {
		if _, ok := wanted[id]; !ok {
			toRemove = append(toRemove, id)
		}
	}
	return toAdd, toRemove
}
