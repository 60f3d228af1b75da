package dto

import (
	"time"

	"github.com/westerlund126/onrent-sub000/internal/domain"
)

type SlotResponse struct {
	ID              string `json:"id"`
	OwnerID         string `json:"owner_id"`
	StartTime       string `json:"start_time"`
	DurationMinutes int    `json:"duration_minutes"`
	IsBooked        bool   `json:"is_booked"`
	IsAutoConfirm   bool   `json:"is_auto_confirm"`
	CreatedAt       string `json:"created_at"`
}

type BlockResponse struct {
	ID          string `json:"id"`
	OwnerID     string `json:"owner_id"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Description string `json:"description"`
}

type VariantResponse struct {
	ID          string `json:"id"`
	OwnerID     string `json:"owner_id"`
	SKU         string `json:"sku"`
	IsAvailable bool   `json:"is_available"`
	IsRented    bool   `json:"is_rented"`
}

type AvailabilityResponse struct {
	IsAvailable    bool   `json:"is_available"`
	ConflictingSKU string `json:"conflicting_sku,omitempty"`
}

type RentalItemResponse struct {
	ID               string `json:"id"`
	VariantProductID string `json:"variant_product_id"`
	SKU              string `json:"sku"`
}

type TrackingEventResponse struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	CreatedAt string `json:"created_at"`
}

type RentalResponse struct {
	ID             string                  `json:"id"`
	OwnerID        string                  `json:"owner_id"`
	UserID         string                  `json:"user_id"`
	StartDate      string                  `json:"start_date"`
	EndDate        string                  `json:"end_date"`
	Status         string                  `json:"status"`
	AdditionalInfo string                  `json:"additional_info"`
	Items          []RentalItemResponse    `json:"items"`
	Tracking       []TrackingEventResponse `json:"tracking,omitempty"`
	CreatedAt      string                  `json:"created_at"`
	UpdatedAt      string                  `json:"updated_at"`
}

type ErrorResponse struct {
	Error          string `json:"error"`
	ConflictingSKU string `json:"conflicting_sku,omitempty"`
}

func ToSlotResponse(s *domain.FittingSlot) SlotResponse {
	return SlotResponse{
		ID:              s.ID,
		OwnerID:         s.OwnerID,
		StartTime:       s.StartTime.Format(time.RFC3339),
		DurationMinutes: s.DurationMinutes,
		IsBooked:        s.IsBooked,
		IsAutoConfirm:   s.IsAutoConfirm,
		CreatedAt:       s.CreatedAt.Format(time.RFC3339),
	}
}

func ToBlockResponse(b *domain.ScheduleBlock) BlockResponse {
	return BlockResponse{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		StartTime:   b.StartTime.Format(time.RFC3339),
		EndTime:     b.EndTime.Format(time.RFC3339),
		Description: b.Description,
	}
}

func ToVariantResponse(v *domain.VariantProduct) VariantResponse {
	return VariantResponse{
		ID:          v.ID,
		OwnerID:     v.OwnerID,
		SKU:         v.SKU,
		IsAvailable: v.IsAvailable,
		IsRented:    v.IsRented,
	}
}

func ToAvailabilityResponse(r *domain.AvailabilityResult) AvailabilityResponse {
	return AvailabilityResponse{
		IsAvailable:    r.IsAvailable,
		ConflictingSKU: r.ConflictingSKU,
	}
}

func ToRentalResponse(r *domain.Rental, tracking []*domain.TrackingEvent) RentalResponse {
	items := make([]RentalItemResponse, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, RentalItemResponse{
			ID:               it.ID,
			VariantProductID: it.VariantProductID,
			SKU:              it.SKU,
		})
	}

	events := make([]TrackingEventResponse, 0, len(tracking))
	for _, e := range tracking {
		events = append(events, TrackingEventResponse{
			ID:        e.ID,
			Kind:      string(e.Kind),
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
		})
	}

	return RentalResponse{
		ID:             r.ID,
		OwnerID:        r.OwnerID,
		UserID:         r.UserID,
		StartDate:      r.StartDate.Format(time.RFC3339),
		EndDate:        r.EndDate.Format(time.RFC3339),
		Status:         string(r.Status),
		AdditionalInfo: r.AdditionalInfo,
		Items:          items,
		Tracking:       events,
		CreatedAt:      r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      r.UpdatedAt.Format(time.RFC3339),
	}
}
