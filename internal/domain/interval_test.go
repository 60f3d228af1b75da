package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return ts
}

func TestOverlaps_OpenTouchingEndpointsDoNotConflict(t *testing.T) {
	blockStart := mustTime(t, "2025-03-01T09:00:00Z")
	blockEnd := mustTime(t, "2025-03-01T11:00:00Z")

	// slot ends exactly when the block starts
	assert.False(t, Overlaps(
		mustTime(t, "2025-03-01T08:00:00Z"), blockStart,
		blockStart, blockEnd,
		BoundaryOpen,
	))

	// slot starts exactly when the block ends
	assert.False(t, Overlaps(
		blockEnd, mustTime(t, "2025-03-01T12:00:00Z"),
		blockStart, blockEnd,
		BoundaryOpen,
	))

	// slot inside the block
	assert.True(t, Overlaps(
		mustTime(t, "2025-03-01T09:30:00Z"), mustTime(t, "2025-03-01T10:30:00Z"),
		blockStart, blockEnd,
		BoundaryOpen,
	))
}

func TestOverlaps_ClosedTouchingEndpointsConflict(t *testing.T) {
	// two rentals sharing a single calendar day must collide
	aStart := mustTime(t, "2025-03-01T00:00:00Z")
	aEnd := mustTime(t, "2025-03-05T00:00:00Z")

	assert.True(t, Overlaps(
		aEnd, mustTime(t, "2025-03-08T00:00:00Z"),
		aStart, aEnd,
		BoundaryClosed,
	))

	assert.True(t, Overlaps(
		mustTime(t, "2025-02-20T00:00:00Z"), aStart,
		aStart, aEnd,
		BoundaryClosed,
	))
}

func TestOverlaps_Disjoint(t *testing.T) {
	for _, boundary := range []Boundary{BoundaryOpen, BoundaryClosed} {
		assert.False(t, Overlaps(
			mustTime(t, "2025-03-01T00:00:00Z"), mustTime(t, "2025-03-02T00:00:00Z"),
			mustTime(t, "2025-03-10T00:00:00Z"), mustTime(t, "2025-03-12T00:00:00Z"),
			boundary,
		))
	}
}

func TestOverlaps_Containment(t *testing.T) {
	outerStart := mustTime(t, "2025-03-01T00:00:00Z")
	outerEnd := mustTime(t, "2025-03-31T00:00:00Z")
	innerStart := mustTime(t, "2025-03-10T00:00:00Z")
	innerEnd := mustTime(t, "2025-03-12T00:00:00Z")

	for _, boundary := range []Boundary{BoundaryOpen, BoundaryClosed} {
		assert.True(t, Overlaps(outerStart, outerEnd, innerStart, innerEnd, boundary))
		assert.True(t, Overlaps(innerStart, innerEnd, outerStart, outerEnd, boundary))
	}
}

func TestOverlaps_Symmetric(t *testing.T) {
	pairs := [][4]time.Time{
		{
			mustTime(t, "2025-03-01T00:00:00Z"), mustTime(t, "2025-03-05T00:00:00Z"),
			mustTime(t, "2025-03-04T00:00:00Z"), mustTime(t, "2025-03-08T00:00:00Z"),
		},
		{
			mustTime(t, "2025-03-01T00:00:00Z"), mustTime(t, "2025-03-05T00:00:00Z"),
			mustTime(t, "2025-03-05T00:00:00Z"), mustTime(t, "2025-03-08T00:00:00Z"),
		},
		{
			mustTime(t, "2025-03-01T00:00:00Z"), mustTime(t, "2025-03-02T00:00:00Z"),
			mustTime(t, "2025-03-06T00:00:00Z"), mustTime(t, "2025-03-08T00:00:00Z"),
		},
	}

	for _, p := range pairs {
		for _, boundary := range []Boundary{BoundaryOpen, BoundaryClosed} {
			assert.Equal(t,
				Overlaps(p[0], p[1], p[2], p[3], boundary),
				Overlaps(p[2], p[3], p[0], p[1], boundary),
			)
		}
	}
}
