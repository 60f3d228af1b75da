package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/westerlund126/onrent-sub000/internal/domain"
)

type VariantRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewVariantRepo(db *dbpg.DB) *VariantRepository {
	return &VariantRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *VariantRepository) GetByID(ctx context.Context, id string) (*domain.VariantProduct, error) {
	query := `SELECT id, owner_id, sku, is_available, is_rented
			  FROM variant_products
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get variant: %w", err)
	}

	var v domain.VariantProduct
	if err = row.Scan(&v.ID, &v.OwnerID, &v.SKU, &v.IsAvailable, &v.IsRented); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVariantNotFound
		}
		return nil, fmt.Errorf("scan variant: %w", err)
	}

	return &v, nil
}

func (r *VariantRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.VariantProduct, error) {
	query := `SELECT id, owner_id, sku, is_available, is_rented
			  FROM variant_products
			  WHERE owner_id = $1
			  ORDER BY sku ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list variants: %w", err)
	}
	defer rows.Close()

	var res []*domain.VariantProduct
	for rows.Next() {
		var v domain.VariantProduct
		if err = rows.Scan(&v.ID, &v.OwnerID, &v.SKU, &v.IsAvailable, &v.IsRented); err != nil {
			return nil, fmt.Errorf("scan variant: %w", err)
		}
		res = append(res, &v)
	}

	return res, rows.Err()
}
