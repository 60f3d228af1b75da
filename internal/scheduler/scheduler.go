package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/westerlund126/onrent-sub000/internal/domain"
)

type overdueMarker interface {
	MarkOverdue(ctx context.Context) ([]*domain.Rental, error)
}

// Scheduler periodically sweeps paid rentals past their end date into
// OVERDUE through the regular rental update path.
type Scheduler struct {
	rentalService overdueMarker
	interval      time.Duration
	logger        logger.Logger
}

func New(
	rentalService overdueMarker,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		rentalService: rentalService,
		interval:      interval,
		logger:        logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("overdue sweeper started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("overdue sweeper stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	marked, err := s.rentalService.MarkOverdue(ctx)
	if err != nil {
		s.logger.Error("failed to mark overdue rentals",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, r := range marked {
		s.logger.Info("rental marked overdue",
			logger.String("rental_id", r.ID),
			logger.String("owner_id", r.OwnerID),
		)
	}
}
