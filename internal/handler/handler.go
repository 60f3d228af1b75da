package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/westerlund126/onrent-sub000/internal/domain"
	"github.com/westerlund126/onrent-sub000/internal/handler/dto"
)

type SlotSvc interface {
	ListAvailable(ctx context.Context, ownerID string, window domain.SlotWindow, availableOnly bool) ([]*domain.FittingSlot, error)
	CreateSlot(ctx context.Context, input domain.CreateSlotInput) (*domain.FittingSlot, error)
	ClaimSlot(ctx context.Context, slotID string) (*domain.FittingSlot, error)
	CreateBlock(ctx context.Context, input domain.CreateBlockInput) (*domain.ScheduleBlock, error)
	ListBlocks(ctx context.Context, ownerID string) ([]*domain.ScheduleBlock, error)
	DeleteBlock(ctx context.Context, ownerID, blockID string) error
}

type RentalSvc interface {
	CheckAvailability(ctx context.Context, variantID string, start, end time.Time, excludeRentalID string) (*domain.AvailabilityResult, error)
	ApplyUpdate(ctx context.Context, rentalID, ownerID string, patch domain.RentalPatch) (*domain.Rental, error)
	GetByID(ctx context.Context, rentalID, ownerID string) (*domain.Rental, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Rental, error)
	ListTrackingEvents(ctx context.Context, rentalID, ownerID string) ([]*domain.TrackingEvent, error)
	ListVariants(ctx context.Context, ownerID string) ([]*domain.VariantProduct, error)
}

type Handler struct {
	slotService   SlotSvc
	rentalService RentalSvc
}

func NewHandler(slotService SlotSvc, rentalService RentalSvc) *Handler {
	return &Handler{
		slotService:   slotService,
		rentalService: rentalService,
	}
}

// Slots

func (h *Handler) ListSlots(c *ginext.Context) {
	ownerID := c.Param("id")
	if _, err := uuid.Parse(ownerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid owner id"})
		return
	}

	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid from, expected RFC3339"})
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid to, expected RFC3339"})
		return
	}

	availableOnly := false
	if v := c.Query("available_only"); v != "" {
		availableOnly, err = strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid available_only"})
			return
		}
	}

	slots, err := h.slotService.ListAvailable(
		c.Request.Context(), ownerID,
		domain.SlotWindow{From: from, To: to},
		availableOnly,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SlotResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, dto.ToSlotResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateSlot(c *ginext.Context) {
	ownerID := c.Param("id")
	if _, err := uuid.Parse(ownerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid owner id"})
		return
	}

	var req dto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_time format, expected RFC3339"})
		return
	}

	slot, err := h.slotService.CreateSlot(c.Request.Context(), domain.CreateSlotInput{
		OwnerID:       ownerID,
		StartTime:     startTime,
		IsAutoConfirm: req.IsAutoConfirm,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSlotResponse(slot))
}

func (h *Handler) ClaimSlot(c *ginext.Context) {
	slotID := c.Param("id")
	if _, err := uuid.Parse(slotID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid slot id"})
		return
	}

	slot, err := h.slotService.ClaimSlot(c.Request.Context(), slotID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSlotResponse(slot))
}

// Schedule blocks

func (h *Handler) CreateBlock(c *ginext.Context) {
	ownerID := c.Param("id")
	if _, err := uuid.Parse(ownerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid owner id"})
		return
	}

	var req dto.CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_time format, expected RFC3339"})
		return
	}
	endTime, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_time format, expected RFC3339"})
		return
	}

	block, err := h.slotService.CreateBlock(c.Request.Context(), domain.CreateBlockInput{
		OwnerID:     ownerID,
		StartTime:   startTime,
		EndTime:     endTime,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBlockResponse(block))
}

func (h *Handler) ListBlocks(c *ginext.Context) {
	ownerID := c.Param("id")
	if _, err := uuid.Parse(ownerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid owner id"})
		return
	}

	blocks, err := h.slotService.ListBlocks(c.Request.Context(), ownerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BlockResponse, 0, len(blocks))
	for _, b := range blocks {
		resp = append(resp, dto.ToBlockResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeleteBlock(c *ginext.Context) {
	ownerID := c.Param("id")
	blockID := c.Param("blockId")
	if _, err := uuid.Parse(ownerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid owner id"})
		return
	}
	if _, err := uuid.Parse(blockID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid block id"})
		return
	}

	if err := h.slotService.DeleteBlock(c.Request.Context(), ownerID, blockID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Variants

func (h *Handler) CheckVariantAvailability(c *ginext.Context) {
	variantID := c.Param("id")
	if _, err := uuid.Parse(variantID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid variant id"})
		return
	}

	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start, expected RFC3339"})
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end, expected RFC3339"})
		return
	}

	excludeRentalID := c.Query("exclude_rental_id")
	if excludeRentalID != "" {
		if _, err = uuid.Parse(excludeRentalID); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid exclude_rental_id"})
			return
		}
	}

	res, err := h.rentalService.CheckAvailability(c.Request.Context(), variantID, start, end, excludeRentalID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(res))
}

func (h *Handler) ListOwnerVariants(c *ginext.Context) {
	ownerID := c.Param("id")
	if _, err := uuid.Parse(ownerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid owner id"})
		return
	}

	variants, err := h.rentalService.ListVariants(c.Request.Context(), ownerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.VariantResponse, 0, len(variants))
	for _, v := range variants {
		resp = append(resp, dto.ToVariantResponse(v))
	}

	c.JSON(http.StatusOK, resp)
}

// Rentals

func (h *Handler) UpdateRental(c *ginext.Context) {
	rentalID := c.Param("id")
	if _, err := uuid.Parse(rentalID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid rental id"})
		return
	}

	var req dto.UpdateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	patch := domain.RentalPatch{
		AdditionalInfo: req.AdditionalInfo,
		VariantIDs:     req.VariantIDs,
	}
	if req.Status != nil {
		status := domain.RentalStatus(*req.Status)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid status"})
			return
		}
		patch.Status = &status
	}
	if req.StartDate != nil {
		start, err := time.Parse(time.RFC3339, *req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_date format, expected RFC3339"})
			return
		}
		patch.StartDate = &start
	}
	if req.EndDate != nil {
		end, err := time.Parse(time.RFC3339, *req.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_date format, expected RFC3339"})
			return
		}
		patch.EndDate = &end
	}

	rental, err := h.rentalService.ApplyUpdate(c.Request.Context(), rentalID, req.OwnerID, patch)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRentalResponse(rental, nil))
}

func (h *Handler) GetRental(c *ginext.Context) {
	rentalID := c.Param("id")
	if _, err := uuid.Parse(rentalID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid rental id"})
		return
	}

	ownerID := c.Query("owner_id")
	if _, err := uuid.Parse(ownerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid owner_id"})
		return
	}

	rental, err := h.rentalService.GetByID(c.Request.Context(), rentalID, ownerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	tracking, err := h.rentalService.ListTrackingEvents(c.Request.Context(), rentalID, ownerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRentalResponse(rental, tracking))
}

func (h *Handler) ListOwnerRentals(c *ginext.Context) {
	ownerID := c.Param("id")
	if _, err := uuid.Parse(ownerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid owner id"})
		return
	}

	rentals, err := h.rentalService.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RentalResponse, 0, len(rentals))
	for _, r := range rentals {
		resp = append(resp, dto.ToRentalResponse(r, nil))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Error:          conflict.Error(),
			ConflictingSKU: conflict.SKU,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrSlotNotFound),
		errors.Is(err, domain.ErrBlockNotFound),
		errors.Is(err, domain.ErrVariantNotFound),
		errors.Is(err, domain.ErrRentalNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlotExists),
		errors.Is(err, domain.ErrSlotBlocked),
		errors.Is(err, domain.ErrSlotTaken),
		errors.Is(err, domain.ErrRentalCompleted),
		errors.Is(err, domain.ErrCrossOwnerMixing):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidRange),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrTxTimeout):
		c.JSON(http.StatusGatewayTimeout, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
