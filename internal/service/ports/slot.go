package ports

import (
	"context"

	"github.com/westerlund126/onrent-sub000/internal/domain"
)

type SlotRepo interface {
	Create(ctx context.Context, s *domain.FittingSlot) error
	GetByID(ctx context.Context, id string) (*domain.FittingSlot, error)
	ListByOwner(ctx context.Context, ownerID string, window domain.SlotWindow, availableOnly bool) ([]*domain.FittingSlot, error)
	Claim(ctx context.Context, id string) error
}

type BlockRepo interface {
	Create(ctx context.Context, b *domain.ScheduleBlock) error
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.ScheduleBlock, error)
	Delete(ctx context.Context, ownerID, id string) error
}
