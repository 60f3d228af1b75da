package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/westerlund126/onrent-sub000/internal/domain"
	"github.com/westerlund126/onrent-sub000/internal/service/ports"
)

type SlotService struct {
	slotRepo     ports.SlotRepo
	blockRepo    ports.BlockRepo
	slotDuration time.Duration
	logger       logger.Logger
}

func NewSlotService(
	slotRepo ports.SlotRepo,
	blockRepo ports.BlockRepo,
	slotDuration time.Duration,
	logger logger.Logger,
) *SlotService {
	return &SlotService{
		slotRepo:     slotRepo,
		blockRepo:    blockRepo,
		slotDuration: slotDuration,
		logger:       logger,
	}
}

// ListAvailable returns the owner's slots inside the window, minus any slot
// that collides with a blocked period, original order preserved.
func (s *SlotService) ListAvailable(ctx context.Context, ownerID string, window domain.SlotWindow, availableOnly bool) ([]*domain.FittingSlot, error) {
	slots, err := s.slotRepo.ListByOwner(ctx, ownerID, window, availableOnly)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}

	blocks, err := s.blockRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list blocks: %w", err)
	}

	res := make([]*domain.FittingSlot, 0, len(slots))
	for _, slot := range slots {
		if !slotBlocked(slot, blocks) {
			res = append(res, slot)
		}
	}

	return res, nil
}

func slotBlocked(slot *domain.FittingSlot, blocks []*domain.ScheduleBlock) bool {
	for _, b := range blocks {
		if domain.Overlaps(slot.StartTime, slot.End(), b.StartTime, b.EndTime, domain.BoundaryOpen) {
			return true
		}
	}
	return false
}

func (s *SlotService) CreateSlot(ctx context.Context, input domain.CreateSlotInput) (*domain.FittingSlot, error) {
	if input.StartTime.IsZero() {
		return nil, fmt.Errorf("%w: start_time is required", domain.ErrValidation)
	}

	slot := &domain.FittingSlot{
		ID:              uuid.New().String(),
		OwnerID:         input.OwnerID,
		StartTime:       input.StartTime.UTC(),
		DurationMinutes: int(s.slotDuration.Minutes()),
		IsBooked:        false,
		IsAutoConfirm:   input.IsAutoConfirm,
		CreatedAt:       time.Now().UTC(),
	}

	blocks, err := s.blockRepo.ListByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("list blocks: %w", err)
	}
	if slotBlocked(slot, blocks) {
		return nil, domain.ErrSlotBlocked
	}

	// duplicate (owner_id, start_time) is rejected by the unique index
	if err = s.slotRepo.Create(ctx, slot); err != nil {
		return nil, fmt.Errorf("create slot: %w", err)
	}

	s.logger.Info("slot created",
		logger.String("slot_id", slot.ID),
		logger.String("owner_id", slot.OwnerID),
	)

	return slot, nil
}

// ClaimSlot flips is_booked with a single conditional write; a lost race
// surfaces as ErrSlotTaken, never a silent success.
func (s *SlotService) ClaimSlot(ctx context.Context, slotID string) (*domain.FittingSlot, error) {
	if err := s.slotRepo.Claim(ctx, slotID); err != nil {
		return nil, fmt.Errorf("claim slot: %w", err)
	}

	s.logger.Info("slot claimed",
		logger.String("slot_id", slotID),
	)

	return s.slotRepo.GetByID(ctx, slotID)
}

func (s *SlotService) CreateBlock(ctx context.Context, input domain.CreateBlockInput) (*domain.ScheduleBlock, error) {
	if !input.EndTime.After(input.StartTime) {
		return nil, domain.ErrInvalidRange
	}

	block := &domain.ScheduleBlock{
		ID:          uuid.New().String(),
		OwnerID:     input.OwnerID,
		StartTime:   input.StartTime.UTC(),
		EndTime:     input.EndTime.UTC(),
		Description: input.Description,
	}

	if err := s.blockRepo.Create(ctx, block); err != nil {
		return nil, fmt.Errorf("create block: %w", err)
	}

	s.logger.Info("schedule block created",
		logger.String("block_id", block.ID),
		logger.String("owner_id", block.OwnerID),
	)

	return block, nil
}

func (s *SlotService) ListBlocks(ctx context.Context, ownerID string) ([]*domain.ScheduleBlock, error) {
	return s.blockRepo.ListByOwner(ctx, ownerID)
}

func (s *SlotService) DeleteBlock(ctx context.Context, ownerID, blockID string) error {
	if err := s.blockRepo.Delete(ctx, ownerID, blockID); err != nil {
		return fmt.Errorf("delete block: %w", err)
	}

	s.logger.Info("schedule block deleted",
		logger.String("block_id", blockID),
		logger.String("owner_id", ownerID),
	)

	return nil
}
