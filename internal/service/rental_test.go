package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/westerlund126/onrent-sub000/internal/domain"
	"github.com/westerlund126/onrent-sub000/internal/service/ports/mocks"
)

func newRentalService(t *testing.T) (*RentalService, *mocks.MockRentalRepo, *mocks.MockVariantRepo, *mocks.MockRentalNotifier) {
	t.Helper()
	rentalRepo := mocks.NewMockRentalRepo(t)
	variantRepo := mocks.NewMockVariantRepo(t)
	notifier := mocks.NewMockRentalNotifier(t)
	svc := NewRentalService(rentalRepo, variantRepo, notifier, 10*time.Second, newTestLogger(t))
	return svc, rentalRepo, variantRepo, notifier
}

func TestRentalService_CheckAvailability_Conflict(t *testing.T) {
	svc, rentalRepo, variantRepo, _ := newRentalService(t)

	variantRepo.EXPECT().GetByID(mock.Anything, "v1").
		Return(&domain.VariantProduct{ID: "v1", OwnerID: "o1", SKU: "DRESS-M-RED"}, nil)
	rentalRepo.EXPECT().ListActiveHolds(mock.Anything, "v1", "").
		Return([]domain.VariantHold{
			{
				RentalID:  "r1",
				SKU:       "DRESS-M-RED",
				StartDate: ts(t, "2025-03-01T00:00:00Z"),
				EndDate:   ts(t, "2025-03-05T00:00:00Z"),
			},
		}, nil)

	res, err := svc.CheckAvailability(context.Background(),
		"v1", ts(t, "2025-03-04T00:00:00Z"), ts(t, "2025-03-08T00:00:00Z"), "")

	require.NoError(t, err)
	assert.False(t, res.IsAvailable)
	assert.Equal(t, "DRESS-M-RED", res.ConflictingSKU)
}

func TestRentalService_CheckAvailability_SharedDayConflicts(t *testing.T) {
	svc, rentalRepo, variantRepo, _ := newRentalService(t)

	variantRepo.EXPECT().GetByID(mock.Anything, "v1").
		Return(&domain.VariantProduct{ID: "v1", SKU: "SUIT-L"}, nil)
	rentalRepo.EXPECT().ListActiveHolds(mock.Anything, "v1", "").
		Return([]domain.VariantHold{
			{
				RentalID:  "r1",
				SKU:       "SUIT-L",
				StartDate: ts(t, "2025-03-01T00:00:00Z"),
				EndDate:   ts(t, "2025-03-05T00:00:00Z"),
			},
		}, nil)

	// the new range starts on the day the hold ends; day-granular ranges
	// are inclusive, so this is still a conflict
	res, err := svc.CheckAvailability(context.Background(),
		"v1", ts(t, "2025-03-05T00:00:00Z"), ts(t, "2025-03-08T00:00:00Z"), "")

	require.NoError(t, err)
	assert.False(t, res.IsAvailable)
}

func TestRentalService_CheckAvailability_Free(t *testing.T) {
	svc, rentalRepo, variantRepo, _ := newRentalService(t)

	variantRepo.EXPECT().GetByID(mock.Anything, "v1").
		Return(&domain.VariantProduct{ID: "v1", SKU: "SUIT-L"}, nil)
	rentalRepo.EXPECT().ListActiveHolds(mock.Anything, "v1", "").
		Return(nil, nil)

	res, err := svc.CheckAvailability(context.Background(),
		"v1", ts(t, "2025-03-05T00:00:00Z"), ts(t, "2025-03-08T00:00:00Z"), "")

	require.NoError(t, err)
	assert.True(t, res.IsAvailable)
	assert.Empty(t, res.ConflictingSKU)
}

func TestRentalService_CheckAvailability_ExcludesOwnRental(t *testing.T) {
	svc, rentalRepo, variantRepo, _ := newRentalService(t)

	variantRepo.EXPECT().GetByID(mock.Anything, "v1").
		Return(&domain.VariantProduct{ID: "v1", SKU: "SUIT-L"}, nil)
	rentalRepo.EXPECT().ListActiveHolds(mock.Anything, "v1", "r1").
		Return(nil, nil)

	res, err := svc.CheckAvailability(context.Background(),
		"v1", ts(t, "2025-03-05T00:00:00Z"), ts(t, "2025-03-08T00:00:00Z"), "r1")

	require.NoError(t, err)
	assert.True(t, res.IsAvailable)
}

func TestRentalService_CheckAvailability_InvalidRange(t *testing.T) {
	svc, rentalRepo, variantRepo, _ := newRentalService(t)

	start := ts(t, "2025-03-05T00:00:00Z")

	_, err := svc.CheckAvailability(context.Background(), "v1", start, start, "")

	assert.ErrorIs(t, err, domain.ErrInvalidRange)
	variantRepo.AssertNotCalled(t, "GetByID")
	rentalRepo.AssertNotCalled(t, "ListActiveHolds")
}

func TestRentalService_CheckAvailability_VariantNotFound(t *testing.T) {
	svc, rentalRepo, variantRepo, _ := newRentalService(t)

	variantRepo.EXPECT().GetByID(mock.Anything, "missing").
		Return(nil, domain.ErrVariantNotFound)

	_, err := svc.CheckAvailability(context.Background(),
		"missing", ts(t, "2025-03-05T00:00:00Z"), ts(t, "2025-03-08T00:00:00Z"), "")

	assert.ErrorIs(t, err, domain.ErrVariantNotFound)
	rentalRepo.AssertNotCalled(t, "ListActiveHolds")
}

func TestRentalService_ApplyUpdate_InvalidRangeShortCircuits(t *testing.T) {
	svc, rentalRepo, _, _ := newRentalService(t)

	start := ts(t, "2025-03-08T00:00:00Z")
	end := ts(t, "2025-03-05T00:00:00Z")

	_, err := svc.ApplyUpdate(context.Background(), "r1", "o1", domain.RentalPatch{
		StartDate: &start,
		EndDate:   &end,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidRange)
	rentalRepo.AssertNotCalled(t, "ApplyUpdate")
}

func TestRentalService_ApplyUpdate_TimeoutMapsToErrTxTimeout(t *testing.T) {
	svc, rentalRepo, _, _ := newRentalService(t)

	rentalRepo.EXPECT().ApplyUpdate(mock.Anything, "r1", "o1", mock.Anything).
		Return(nil, fmt.Errorf("begin tx: %w", context.DeadlineExceeded))

	_, err := svc.ApplyUpdate(context.Background(), "r1", "o1", domain.RentalPatch{})

	assert.ErrorIs(t, err, domain.ErrTxTimeout)
}

func TestRentalService_ApplyUpdate_CallerCancelIsNotTimeout(t *testing.T) {
	svc, rentalRepo, _, _ := newRentalService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rentalRepo.EXPECT().ApplyUpdate(mock.Anything, "r1", "o1", mock.Anything).
		Return(nil, fmt.Errorf("begin tx: %w", context.DeadlineExceeded))

	_, err := svc.ApplyUpdate(ctx, "r1", "o1", domain.RentalPatch{})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrTxTimeout)
}

func TestRentalService_ApplyUpdate_ConflictPassesThrough(t *testing.T) {
	svc, rentalRepo, _, _ := newRentalService(t)

	rentalRepo.EXPECT().ApplyUpdate(mock.Anything, "r1", "o1", mock.Anything).
		Return(nil, &domain.ConflictError{SKU: "DRESS-M-RED"})

	_, err := svc.ApplyUpdate(context.Background(), "r1", "o1", domain.RentalPatch{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVariantConflict)

	var conflict *domain.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "DRESS-M-RED", conflict.SKU)
}

func TestRentalService_ApplyUpdate_NotifiesOnCompletion(t *testing.T) {
	svc, rentalRepo, _, notifier := newRentalService(t)

	rental := &domain.Rental{
		ID:      "r1",
		OwnerID: "o1",
		Status:  domain.RentalStatusCompleted,
	}
	rentalRepo.EXPECT().ApplyUpdate(mock.Anything, "r1", "o1", mock.Anything).
		Return(&domain.RentalUpdate{Rental: rental, PrevStatus: domain.RentalStatusPaid}, nil)
	notifier.EXPECT().NotifyRentalCompleted(mock.Anything, rental).Return()

	got, err := svc.ApplyUpdate(context.Background(), "r1", "o1", domain.RentalPatch{})

	require.NoError(t, err)
	assert.Equal(t, domain.RentalStatusCompleted, got.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestRentalService_ApplyUpdate_NotifiesOnOverdue(t *testing.T) {
	svc, rentalRepo, _, notifier := newRentalService(t)

	rental := &domain.Rental{
		ID:      "r1",
		OwnerID: "o1",
		Status:  domain.RentalStatusOverdue,
	}
	rentalRepo.EXPECT().ApplyUpdate(mock.Anything, "r1", "o1", mock.Anything).
		Return(&domain.RentalUpdate{Rental: rental, PrevStatus: domain.RentalStatusPaid}, nil)
	notifier.EXPECT().NotifyRentalOverdue(mock.Anything, rental).Return()

	_, err := svc.ApplyUpdate(context.Background(), "r1", "o1", domain.RentalPatch{})

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestRentalService_ApplyUpdate_NoNotifyWhenStatusUnchanged(t *testing.T) {
	svc, rentalRepo, _, notifier := newRentalService(t)

	rental := &domain.Rental{
		ID:      "r1",
		OwnerID: "o1",
		Status:  domain.RentalStatusPaid,
	}
	rentalRepo.EXPECT().ApplyUpdate(mock.Anything, "r1", "o1", mock.Anything).
		Return(&domain.RentalUpdate{Rental: rental, PrevStatus: domain.RentalStatusPaid}, nil)

	_, err := svc.ApplyUpdate(context.Background(), "r1", "o1", domain.RentalPatch{})

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
	notifier.AssertNotCalled(t, "NotifyRentalCompleted")
	notifier.AssertNotCalled(t, "NotifyRentalOverdue")
}

func TestRentalService_GetByID_OwnerMismatch(t *testing.T) {
	svc, rentalRepo, _, _ := newRentalService(t)

	rentalRepo.EXPECT().GetByID(mock.Anything, "r1").
		Return(&domain.Rental{ID: "r1", OwnerID: "someone-else"}, nil)

	_, err := svc.GetByID(context.Background(), "r1", "o1")

	assert.ErrorIs(t, err, domain.ErrRentalNotFound)
}

func TestRentalService_ListTrackingEvents_ChecksOwnership(t *testing.T) {
	svc, rentalRepo, _, _ := newRentalService(t)

	rentalRepo.EXPECT().GetByID(mock.Anything, "r1").
		Return(&domain.Rental{ID: "r1", OwnerID: "o1"}, nil)
	rentalRepo.EXPECT().ListTrackingEvents(mock.Anything, "r1").
		Return([]*domain.TrackingEvent{
			{ID: "t1", RentalID: "r1", Kind: domain.TrackingKindOngoing},
		}, nil)

	events, err := svc.ListTrackingEvents(context.Background(), "r1", "o1")

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, domain.TrackingKindOngoing, events[0].Kind)
}

func TestRentalService_ListVariants(t *testing.T) {
	svc, _, variantRepo, _ := newRentalService(t)

	variants := []*domain.VariantProduct{
		{ID: "v1", OwnerID: "o1", SKU: "DRESS-M-RED", IsAvailable: true},
	}
	variantRepo.EXPECT().ListByOwner(mock.Anything, "o1").Return(variants, nil)

	got, err := svc.ListVariants(context.Background(), "o1")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "DRESS-M-RED", got[0].SKU)
}

func TestRentalService_MarkOverdue(t *testing.T) {
	svc, rentalRepo, _, notifier := newRentalService(t)

	due := []*domain.Rental{
		{ID: "r1", OwnerID: "o1", Status: domain.RentalStatusPaid},
		{ID: "r2", OwnerID: "o2", Status: domain.RentalStatusPaid},
	}
	rentalRepo.EXPECT().ListOverdue(mock.Anything, mock.Anything).Return(due, nil)

	updated1 := &domain.Rental{ID: "r1", OwnerID: "o1", Status: domain.RentalStatusOverdue}
	rentalRepo.EXPECT().ApplyUpdate(mock.Anything, "r1", "o1", mock.Anything).
		Return(&domain.RentalUpdate{Rental: updated1, PrevStatus: domain.RentalStatusPaid}, nil)
	// the second rental fails and is skipped
	rentalRepo.EXPECT().ApplyUpdate(mock.Anything, "r2", "o2", mock.Anything).
		Return(nil, errors.New("db down"))

	notifier.EXPECT().NotifyRentalOverdue(mock.Anything, updated1).Return()

	marked, err := svc.MarkOverdue(context.Background())

	require.NoError(t, err)
	require.Len(t, marked, 1)
	assert.Equal(t, "r1", marked[0].ID)
	assert.Equal(t, domain.RentalStatusOverdue, marked[0].Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}
