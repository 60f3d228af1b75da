package ports

import (
	"context"
	"time"

	"github.com/westerlund126/onrent-sub000/internal/domain"
)

type RentalRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Rental, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Rental, error)
	ListTrackingEvents(ctx context.Context, rentalID string) ([]*domain.TrackingEvent, error)
	ListActiveHolds(ctx context.Context, variantID, excludeRentalID string) ([]domain.VariantHold, error)
	ApplyUpdate(ctx context.Context, rentalID, ownerID string, patch domain.RentalPatch) (*domain.RentalUpdate, error)
	ListOverdue(ctx context.Context, cutoff time.Time) ([]*domain.Rental, error)
}

type VariantRepo interface {
	GetByID(ctx context.Context, id string) (*domain.VariantProduct, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.VariantProduct, error)
}

type RentalNotifier interface {
	NotifyRentalOverdue(ctx context.Context, rental *domain.Rental)
	NotifyRentalCompleted(ctx context.Context, rental *domain.Rental)
}
