package domain

import "time"

// ScheduleBlock is an owner-defined blackout interval. It has no relation
// to any slot or booking; it only suppresses fitting slots that overlap it.
type ScheduleBlock struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Description string    `json:"description"`
}

type CreateBlockInput struct {
	OwnerID     string
	StartTime   time.Time
	EndTime     time.Time
	Description string
}
