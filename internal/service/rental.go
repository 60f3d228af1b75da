package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/westerlund126/onrent-sub000/internal/domain"
	"github.com/westerlund126/onrent-sub000/internal/service/ports"
)

type RentalService struct {
	rentalRepo  ports.RentalRepo
	variantRepo ports.VariantRepo
	notifier    ports.RentalNotifier
	txTimeout   time.Duration
	logger      logger.Logger
}

func NewRentalService(
	rentalRepo ports.RentalRepo,
	variantRepo ports.VariantRepo,
	notifier ports.RentalNotifier,
	txTimeout time.Duration,
	logger logger.Logger,
) *RentalService {
	return &RentalService{
		rentalRepo:  rentalRepo,
		variantRepo: variantRepo,
		notifier:    notifier,
		txTimeout:   txTimeout,
		logger:      logger,
	}
}

// CheckAvailability reports whether a variant is free over the proposed
// range. Holds of completed rentals never count; excludeRentalID lets an
// in-place edit re-check a variant it already holds.
func (s *RentalService) CheckAvailability(ctx context.Context, variantID string, start, end time.Time, excludeRentalID string) (*domain.AvailabilityResult, error) {
	if !end.After(start) {
		return nil, domain.ErrInvalidRange
	}

	if _, err := s.variantRepo.GetByID(ctx, variantID); err != nil {
		return nil, fmt.Errorf("check variant: %w", err)
	}

	holds, err := s.rentalRepo.ListActiveHolds(ctx, variantID, excludeRentalID)
	if err != nil {
		return nil, fmt.Errorf("list holds: %w", err)
	}

	for _, h := range holds {
		if domain.Overlaps(start, end, h.StartDate, h.EndDate, domain.BoundaryClosed) {
			return &domain.AvailabilityResult{
				IsAvailable:    false,
				ConflictingSKU: h.SKU,
			}, nil
		}
	}

	return &domain.AvailabilityResult{IsAvailable: true}, nil
}

// ApplyUpdate runs the rental edit transaction under the configured time
// bound. A deadline hit maps to ErrTxTimeout so callers can tell "retry
// now" (conflict) apart from "state unknown, re-fetch first".
func (s *RentalService) ApplyUpdate(ctx context.Context, rentalID, ownerID string, patch domain.RentalPatch) (*domain.Rental, error) {
	if patch.StartDate != nil && patch.EndDate != nil && !patch.EndDate.After(*patch.StartDate) {
		return nil, domain.ErrInvalidRange
	}

	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	update, err := s.rentalRepo.ApplyUpdate(txCtx, rentalID, ownerID, patch)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			s.logger.Error("rental update timed out",
				logger.String("rental_id", rentalID),
				logger.Duration("timeout", s.txTimeout),
			)
			return nil, domain.ErrTxTimeout
		}
		return nil, fmt.Errorf("apply rental update: %w", err)
	}

	rental := update.Rental

	s.logger.Info("rental updated",
		logger.String("rental_id", rental.ID),
		logger.String("owner_id", rental.OwnerID),
		logger.String("status", string(rental.Status)),
	)

	if rental.Status != update.PrevStatus {
		switch rental.Status {
		case domain.RentalStatusOverdue:
			go s.notifier.NotifyRentalOverdue(context.WithoutCancel(ctx), rental)
		case domain.RentalStatusCompleted:
			go s.notifier.NotifyRentalCompleted(context.WithoutCancel(ctx), rental)
		}
	}

	return rental, nil
}

func (s *RentalService) GetByID(ctx context.Context, rentalID, ownerID string) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.OwnerID != ownerID {
		return nil, domain.ErrRentalNotFound
	}

	return rental, nil
}

func (s *RentalService) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Rental, error) {
	return s.rentalRepo.ListByOwner(ctx, ownerID)
}

// ListVariants returns the owner's rentable variant catalog, flags included.
func (s *RentalService) ListVariants(ctx context.Context, ownerID string) ([]*domain.VariantProduct, error) {
	return s.variantRepo.ListByOwner(ctx, ownerID)
}

func (s *RentalService) ListTrackingEvents(ctx context.Context, rentalID, ownerID string) ([]*domain.TrackingEvent, error) {
	if _, err := s.GetByID(ctx, rentalID, ownerID); err != nil {
		return nil, err
	}

	return s.rentalRepo.ListTrackingEvents(ctx, rentalID)
}

// MarkOverdue flips paid rentals past their end date to OVERDUE, each one
// through the regular update transaction so the status transition stays
// atomic and audited. Failures are logged and skipped.
func (s *RentalService) MarkOverdue(ctx context.Context) ([]*domain.Rental, error) {
	due, err := s.rentalRepo.ListOverdue(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("list overdue: %w", err)
	}

	status := domain.RentalStatusOverdue
	var marked []*domain.Rental
	for _, r := range due {
		updated, err := s.ApplyUpdate(ctx, r.ID, r.OwnerID, domain.RentalPatch{Status: &status})
		if err != nil {
			s.logger.Error("failed to mark rental overdue",
				logger.String("rental_id", r.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		marked = append(marked, updated)
	}

	return marked, nil
}
