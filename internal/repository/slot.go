package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/westerlund126/onrent-sub000/internal/domain"
)

type SlotRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSlotRepo(db *dbpg.DB) *SlotRepository {
	return &SlotRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *SlotRepository) Create(ctx context.Context, s *domain.FittingSlot) error {
	query := `INSERT INTO fitting_slots (id, owner_id, start_time, duration_minutes, is_booked, is_auto_confirm, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.OwnerID, s.StartTime, s.DurationMinutes, s.IsBooked, s.IsAutoConfirm, s.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrSlotExists
		}
		return fmt.Errorf("insert slot: %w", err)
	}

	return nil
}

func (r *SlotRepository) GetByID(ctx context.Context, id string) (*domain.FittingSlot, error) {
	query := `SELECT id, owner_id, start_time, duration_minutes, is_booked, is_auto_confirm, created_at
			  FROM fitting_slots
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}

	var s domain.FittingSlot
	if err = row.Scan(&s.ID, &s.OwnerID, &s.StartTime, &s.DurationMinutes, &s.IsBooked, &s.IsAutoConfirm, &s.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, fmt.Errorf("scan slot: %w", err)
	}

	return &s, nil
}

func (r *SlotRepository) ListByOwner(ctx context.Context, ownerID string, window domain.SlotWindow, availableOnly bool) ([]*domain.FittingSlot, error) {
	query := `SELECT id, owner_id, start_time, duration_minutes, is_booked, is_auto_confirm, created_at
			  FROM fitting_slots
			  WHERE owner_id = $1 AND start_time >= $2 AND start_time <= $3`
	if availableOnly {
		query += ` AND is_booked = false`
	}
	query += ` ORDER BY start_time ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, ownerID, window.From, window.To)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	var res []*domain.FittingSlot
	for rows.Next() {
		var s domain.FittingSlot
		if err = rows.Scan(&s.ID, &s.OwnerID, &s.StartTime, &s.DurationMinutes, &s.IsBooked, &s.IsAutoConfirm, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

// Claim marks a slot booked with a single conditional write. The first
// caller wins; everyone else gets ErrSlotTaken, never a silent overwrite.
func (r *SlotRepository) Claim(ctx context.Context, id string) error {
	query := `UPDATE fitting_slots
			  SET is_booked = true
			  WHERE id = $1 AND is_booked = false`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("claim slot: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("claim rows affected: %w", err)
	}
	if rows == 0 {
		// distinguish a missing slot from a lost race
		var exists bool
		checkQuery := `SELECT EXISTS (SELECT 1 FROM fitting_slots WHERE id = $1)`
		row, checkErr := r.db.QueryRowWithRetry(ctx, r.strategy, checkQuery, id)
		if checkErr != nil {
			return domain.ErrSlotNotFound
		}
		if scanErr := row.Scan(&exists); scanErr != nil || !exists {
			return domain.ErrSlotNotFound
		}
		return domain.ErrSlotTaken
	}

	return nil
}
