package domain

import "time"

// Boundary selects how interval endpoints are compared.
type Boundary int

const (
	// BoundaryOpen: touching endpoints do not conflict. A slot ending
	// exactly when a blocked period starts is bookable.
	BoundaryOpen Boundary = iota
	// BoundaryClosed: a shared endpoint is a conflict. Two rentals of the
	// same variant meeting on the same calendar day collide.
	BoundaryClosed
)

// Overlaps reports whether intervals [aStart, aEnd] and [bStart, bEnd]
// intersect under the given boundary semantics. This is the only place in
// the codebase that compares interval endpoints; every conflict check must
// go through it.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time, boundary Boundary) bool {
	if boundary == BoundaryClosed {
		return !aStart.After(bEnd) && !aEnd.Before(bStart)
	}
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
