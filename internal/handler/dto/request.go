package dto

type CreateSlotRequest struct {
	StartTime     string `json:"start_time" binding:"required"`
	IsAutoConfirm bool   `json:"is_auto_confirm"`
}

type CreateBlockRequest struct {
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	Description string `json:"description"`
}

// UpdateRentalRequest is a partial edit: absent fields stay untouched.
// variant_ids omitted leaves the variant set alone; an empty array
// releases every variant.
type UpdateRentalRequest struct {
	OwnerID        string   `json:"owner_id" binding:"required,uuid"`
	Status         *string  `json:"status"`
	StartDate      *string  `json:"start_date"`
	EndDate        *string  `json:"end_date"`
	AdditionalInfo *string  `json:"additional_info"`
	VariantIDs     []string `json:"variant_ids"`
}
