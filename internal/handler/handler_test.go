package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/westerlund126/onrent-sub000/internal/domain"
	"github.com/westerlund126/onrent-sub000/internal/handler/dto"
	hmocks "github.com/westerlund126/onrent-sub000/internal/handler/mocks"
)

func setupRouter(t *testing.T) (*hmocks.MockSlotSvc, *hmocks.MockRentalSvc, http.Handler) {
	t.Helper()
	slotSvc := hmocks.NewMockSlotSvc(t)
	rentalSvc := hmocks.NewMockRentalSvc(t)

	h := NewHandler(slotSvc, rentalSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/owners/:id/slots", h.ListSlots)
		api.POST("/owners/:id/slots", h.CreateSlot)
		api.POST("/slots/:id/claim", h.ClaimSlot)
		api.GET("/owners/:id/blocks", h.ListBlocks)
		api.POST("/owners/:id/blocks", h.CreateBlock)
		api.DELETE("/owners/:id/blocks/:blockId", h.DeleteBlock)
		api.GET("/variants/:id/availability", h.CheckVariantAvailability)
		api.GET("/owners/:id/variants", h.ListOwnerVariants)
		api.PATCH("/rentals/:id", h.UpdateRental)
		api.GET("/rentals/:id", h.GetRental)
		api.GET("/owners/:id/rentals", h.ListOwnerRentals)
	}

	return slotSvc, rentalSvc, r
}

// --- Slots ---

func TestHandler_ListSlots_Success(t *testing.T) {
	slotSvc, _, r := setupRouter(t)

	ownerID := uuid.New().String()
	slots := []*domain.FittingSlot{
		{ID: uuid.New().String(), OwnerID: ownerID, StartTime: time.Now(), DurationMinutes: 60},
		{ID: uuid.New().String(), OwnerID: ownerID, StartTime: time.Now().Add(time.Hour), DurationMinutes: 60},
	}

	slotSvc.EXPECT().ListAvailable(mock.Anything, ownerID, mock.Anything, true).
		Return(slots, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/owners/"+ownerID+"/slots?from=2025-03-01T00:00:00Z&to=2025-03-02T00:00:00Z&available_only=true", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.SlotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_ListSlots_InvalidOwnerID(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/owners/not-a-uuid/slots?from=2025-03-01T00:00:00Z&to=2025-03-02T00:00:00Z", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListSlots_MissingWindow(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/owners/"+uuid.New().String()+"/slots", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateSlot_Success(t *testing.T) {
	slotSvc, _, r := setupRouter(t)

	ownerID := uuid.New().String()
	slot := &domain.FittingSlot{
		ID:              uuid.New().String(),
		OwnerID:         ownerID,
		StartTime:       time.Now(),
		DurationMinutes: 60,
		CreatedAt:       time.Now(),
	}

	slotSvc.EXPECT().CreateSlot(mock.Anything, mock.Anything).Return(slot, nil)

	body, _ := json.Marshal(dto.CreateSlotRequest{
		StartTime: time.Now().Format(time.RFC3339),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/owners/"+ownerID+"/slots", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.SlotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, slot.ID, resp.ID)
}

func TestHandler_CreateSlot_Blocked(t *testing.T) {
	slotSvc, _, r := setupRouter(t)

	slotSvc.EXPECT().CreateSlot(mock.Anything, mock.Anything).
		Return(nil, domain.ErrSlotBlocked)

	body, _ := json.Marshal(dto.CreateSlotRequest{
		StartTime: time.Now().Format(time.RFC3339),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/owners/"+uuid.New().String()+"/slots", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ClaimSlot_Success(t *testing.T) {
	slotSvc, _, r := setupRouter(t)

	slotID := uuid.New().String()
	slotSvc.EXPECT().ClaimSlot(mock.Anything, slotID).
		Return(&domain.FittingSlot{ID: slotID, IsBooked: true}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/slots/"+slotID+"/claim", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SlotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsBooked)
}

func TestHandler_ClaimSlot_AlreadyTaken(t *testing.T) {
	slotSvc, _, r := setupRouter(t)

	slotID := uuid.New().String()
	slotSvc.EXPECT().ClaimSlot(mock.Anything, slotID).
		Return(nil, domain.ErrSlotTaken)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/slots/"+slotID+"/claim", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ClaimSlot_NotFound(t *testing.T) {
	slotSvc, _, r := setupRouter(t)

	slotID := uuid.New().String()
	slotSvc.EXPECT().ClaimSlot(mock.Anything, slotID).
		Return(nil, domain.ErrSlotNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/slots/"+slotID+"/claim", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Schedule blocks ---

func TestHandler_CreateBlock_Success(t *testing.T) {
	slotSvc, _, r := setupRouter(t)

	ownerID := uuid.New().String()
	block := &domain.ScheduleBlock{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		StartTime:   time.Now(),
		EndTime:     time.Now().Add(2 * time.Hour),
		Description: "lunch",
	}

	slotSvc.EXPECT().CreateBlock(mock.Anything, mock.Anything).Return(block, nil)

	body, _ := json.Marshal(dto.CreateBlockRequest{
		StartTime:   block.StartTime.Format(time.RFC3339),
		EndTime:     block.EndTime.Format(time.RFC3339),
		Description: "lunch",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/owners/"+ownerID+"/blocks", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_DeleteBlock_NotFound(t *testing.T) {
	slotSvc, _, r := setupRouter(t)

	ownerID := uuid.New().String()
	blockID := uuid.New().String()
	slotSvc.EXPECT().DeleteBlock(mock.Anything, ownerID, blockID).
		Return(domain.ErrBlockNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/owners/"+ownerID+"/blocks/"+blockID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Variant availability ---

func TestHandler_CheckVariantAvailability_Conflict(t *testing.T) {
	_, rentalSvc, r := setupRouter(t)

	variantID := uuid.New().String()
	rentalSvc.EXPECT().CheckAvailability(mock.Anything, variantID, mock.Anything, mock.Anything, "").
		Return(&domain.AvailabilityResult{IsAvailable: false, ConflictingSKU: "DRESS-M-RED"}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/variants/"+variantID+"/availability?start=2025-03-04T00:00:00Z&end=2025-03-08T00:00:00Z", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.IsAvailable)
	assert.Equal(t, "DRESS-M-RED", resp.ConflictingSKU)
}

func TestHandler_CheckVariantAvailability_ExcludeRental(t *testing.T) {
	_, rentalSvc, r := setupRouter(t)

	variantID := uuid.New().String()
	excludeID := uuid.New().String()
	rentalSvc.EXPECT().CheckAvailability(mock.Anything, variantID, mock.Anything, mock.Anything, excludeID).
		Return(&domain.AvailabilityResult{IsAvailable: true}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/variants/"+variantID+"/availability?start=2025-03-04T00:00:00Z&end=2025-03-08T00:00:00Z&exclude_rental_id="+excludeID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CheckVariantAvailability_NotFound(t *testing.T) {
	_, rentalSvc, r := setupRouter(t)

	variantID := uuid.New().String()
	rentalSvc.EXPECT().CheckAvailability(mock.Anything, variantID, mock.Anything, mock.Anything, "").
		Return(nil, domain.ErrVariantNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/variants/"+variantID+"/availability?start=2025-03-04T00:00:00Z&end=2025-03-08T00:00:00Z", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CheckVariantAvailability_BadDates(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/variants/"+uuid.New().String()+"/availability?start=yesterday&end=tomorrow", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListOwnerVariants_Success(t *testing.T) {
	_, rentalSvc, r := setupRouter(t)

	ownerID := uuid.New().String()
	variants := []*domain.VariantProduct{
		{ID: uuid.New().String(), OwnerID: ownerID, SKU: "DRESS-M-RED", IsAvailable: true},
		{ID: uuid.New().String(), OwnerID: ownerID, SKU: "SUIT-L", IsRented: true},
	}
	rentalSvc.EXPECT().ListVariants(mock.Anything, ownerID).Return(variants, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/owners/"+ownerID+"/variants", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.VariantResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "DRESS-M-RED", resp[0].SKU)
	assert.True(t, resp[1].IsRented)
}

func TestHandler_ListOwnerVariants_InvalidOwnerID(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/owners/not-a-uuid/variants", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Rentals ---

func updateBody(t *testing.T, req dto.UpdateRentalRequest) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)
	return bytes.NewReader(body)
}

func TestHandler_UpdateRental_Success(t *testing.T) {
	_, rentalSvc, r := setupRouter(t)

	rentalID := uuid.New().String()
	ownerID := uuid.New().String()
	status := string(domain.RentalStatusPaid)

	rental := &domain.Rental{
		ID:      rentalID,
		OwnerID: ownerID,
		Status:  domain.RentalStatusPaid,
	}
	rentalSvc.EXPECT().ApplyUpdate(mock.Anything, rentalID, ownerID, mock.Anything).
		Return(rental, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/rentals/"+rentalID,
		updateBody(t, dto.UpdateRentalRequest{OwnerID: ownerID, Status: &status}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RentalResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(domain.RentalStatusPaid), resp.Status)
}

func TestHandler_UpdateRental_VariantConflict(t *testing.T) {
	_, rentalSvc, r := setupRouter(t)

	rentalID := uuid.New().String()
	ownerID := uuid.New().String()

	rentalSvc.EXPECT().ApplyUpdate(mock.Anything, rentalID, ownerID, mock.Anything).
		Return(nil, &domain.ConflictError{SKU: "DRESS-M-RED"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/rentals/"+rentalID,
		updateBody(t, dto.UpdateRentalRequest{
			OwnerID:    ownerID,
			VariantIDs: []string{uuid.New().String()},
		}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "DRESS-M-RED", resp.ConflictingSKU)
}

func TestHandler_UpdateRental_Timeout(t *testing.T) {
	_, rentalSvc, r := setupRouter(t)

	rentalID := uuid.New().String()
	ownerID := uuid.New().String()

	rentalSvc.EXPECT().ApplyUpdate(mock.Anything, rentalID, ownerID, mock.Anything).
		Return(nil, domain.ErrTxTimeout)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/rentals/"+rentalID,
		updateBody(t, dto.UpdateRentalRequest{OwnerID: ownerID}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
}

func TestHandler_UpdateRental_Completed(t *testing.T) {
	_, rentalSvc, r := setupRouter(t)

	rentalID := uuid.New().String()
	ownerID := uuid.New().String()
	status := string(domain.RentalStatusPaid)

	rentalSvc.EXPECT().ApplyUpdate(mock.Anything, rentalID, ownerID, mock.Anything).
		Return(nil, domain.ErrRentalCompleted)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/rentals/"+rentalID,
		updateBody(t, dto.UpdateRentalRequest{OwnerID: ownerID, Status: &status}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_UpdateRental_InvalidStatus(t *testing.T) {
	_, rentalSvc, r := setupRouter(t)

	rentalID := uuid.New().String()
	status := "FINISHED"

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/rentals/"+rentalID,
		updateBody(t, dto.UpdateRentalRequest{OwnerID: uuid.New().String(), Status: &status}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	rentalSvc.AssertNotCalled(t, "ApplyUpdate")
}

func TestHandler_UpdateRental_InvalidRange(t *testing.T) {
	_, rentalSvc, r := setupRouter(t)

	rentalID := uuid.New().String()
	ownerID := uuid.New().String()
	start := "2025-03-08T00:00:00Z"
	end := "2025-03-05T00:00:00Z"

	rentalSvc.EXPECT().ApplyUpdate(mock.Anything, rentalID, ownerID, mock.Anything).
		Return(nil, domain.ErrInvalidRange)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/rentals/"+rentalID,
		updateBody(t, dto.UpdateRentalRequest{OwnerID: ownerID, StartDate: &start, EndDate: &end}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateRental_NotFound(t *testing.T) {
	_, rentalSvc, r := setupRouter(t)

	rentalID := uuid.New().String()
	ownerID := uuid.New().String()

	rentalSvc.EXPECT().ApplyUpdate(mock.Anything, rentalID, ownerID, mock.Anything).
		Return(nil, domain.ErrRentalNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/rentals/"+rentalID,
		updateBody(t, dto.UpdateRentalRequest{OwnerID: ownerID}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetRental_Success(t *testing.T) {
	_, rentalSvc, r := setupRouter(t)

	rentalID := uuid.New().String()
	ownerID := uuid.New().String()

	rental := &domain.Rental{
		ID:      rentalID,
		OwnerID: ownerID,
		Status:  domain.RentalStatusPaid,
		Items: []domain.RentalItem{
			{ID: uuid.New().String(), RentalID: rentalID, VariantProductID: uuid.New().String(), SKU: "SUIT-L"},
		},
	}
	tracking := []*domain.TrackingEvent{
		{ID: uuid.New().String(), RentalID: rentalID, Kind: domain.TrackingKindOngoing, CreatedAt: time.Now()},
	}

	rentalSvc.EXPECT().GetByID(mock.Anything, rentalID, ownerID).Return(rental, nil)
	rentalSvc.EXPECT().ListTrackingEvents(mock.Anything, rentalID, ownerID).Return(tracking, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rentals/"+rentalID+"?owner_id="+ownerID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RentalResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "SUIT-L", resp.Items[0].SKU)
	require.Len(t, resp.Tracking, 1)
	assert.Equal(t, string(domain.TrackingKindOngoing), resp.Tracking[0].Kind)
}

func TestHandler_GetRental_MissingOwner(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rentals/"+uuid.New().String(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListOwnerRentals_Success(t *testing.T) {
	_, rentalSvc, r := setupRouter(t)

	ownerID := uuid.New().String()
	rentals := []*domain.Rental{
		{ID: uuid.New().String(), OwnerID: ownerID, Status: domain.RentalStatusUnpaid},
		{ID: uuid.New().String(), OwnerID: ownerID, Status: domain.RentalStatusCompleted},
	}
	rentalSvc.EXPECT().ListByOwner(mock.Anything, ownerID).Return(rentals, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/owners/"+ownerID+"/rentals", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.RentalResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_InternalError(t *testing.T) {
	_, rentalSvc, r := setupRouter(t)

	ownerID := uuid.New().String()
	rentalSvc.EXPECT().ListByOwner(mock.Anything, ownerID).
		Return(nil, errors.New("db down"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/owners/"+ownerID+"/rentals", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Error)
}
