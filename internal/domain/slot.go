package domain

import "time"

type FittingSlot struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"owner_id"`
	StartTime       time.Time `json:"start_time"`
	DurationMinutes int       `json:"duration_minutes"`
	IsBooked        bool      `json:"is_booked"`
	IsAutoConfirm   bool      `json:"is_auto_confirm"`
	CreatedAt       time.Time `json:"created_at"`
}

// End returns the moment the fitting ends.
func (s *FittingSlot) End() time.Time {
	return s.StartTime.Add(time.Duration(s.DurationMinutes) * time.Minute)
}

// SlotWindow bounds a slot listing by start time.
type SlotWindow struct {
	From time.Time
	To   time.Time
}

type CreateSlotInput struct {
	OwnerID       string
	StartTime     time.Time
	IsAutoConfirm bool
}
