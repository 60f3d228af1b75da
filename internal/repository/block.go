package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/westerlund126/onrent-sub000/internal/domain"
)

type BlockRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBlockRepo(db *dbpg.DB) *BlockRepository {
	return &BlockRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BlockRepository) Create(ctx context.Context, b *domain.ScheduleBlock) error {
	query := `INSERT INTO schedule_blocks (id, owner_id, start_time, end_time, description)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, b.ID, b.OwnerID, b.StartTime, b.EndTime, b.Description)
	if err != nil {
		return fmt.Errorf("insert schedule block: %w", err)
	}

	return nil
}

// ListByOwner returns every block of the owner, not a windowed subset:
// a long-lived block may only partially intersect a requested slot window,
// and windowing blocks would silently under-block near window edges.
func (r *BlockRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.ScheduleBlock, error) {
	query := `SELECT id, owner_id, start_time, end_time, description
			  FROM schedule_blocks
			  WHERE owner_id = $1
			  ORDER BY start_time ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list schedule blocks: %w", err)
	}
	defer rows.Close()

	var res []*domain.ScheduleBlock
	for rows.Next() {
		var b domain.ScheduleBlock
		if err = rows.Scan(&b.ID, &b.OwnerID, &b.StartTime, &b.EndTime, &b.Description); err != nil {
			return nil, fmt.Errorf("scan schedule block: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

func (r *BlockRepository) Delete(ctx context.Context, ownerID, id string) error {
	query := `DELETE FROM schedule_blocks WHERE id = $1 AND owner_id = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete schedule block: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete block rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBlockNotFound
	}

	return nil
}
