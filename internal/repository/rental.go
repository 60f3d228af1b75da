package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/westerlund126/onrent-sub000/internal/domain"
)

type RentalRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRentalRepo(db *dbpg.DB) *RentalRepository {
	return &RentalRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *RentalRepository) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	query := `SELECT id, owner_id, user_id, start_date, end_date, status, additional_info, created_at, updated_at
			  FROM rentals
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get rental: %w", err)
	}

	var rental domain.Rental
	if err = row.Scan(
		&rental.ID, &rental.OwnerID, &rental.UserID, &rental.StartDate, &rental.EndDate,
		&rental.Status, &rental.AdditionalInfo, &rental.CreatedAt, &rental.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRentalNotFound
		}
		return nil, fmt.Errorf("scan rental: %w", err)
	}

	items, err := r.listItems(ctx, id)
	if err != nil {
		return nil, err
	}
	rental.Items = items

	return &rental, nil
}

func (r *RentalRepository) listItems(ctx context.Context, rentalID string) ([]domain.RentalItem, error) {
	query := `SELECT ri.id, ri.rental_id, ri.variant_product_id, v.sku
			  FROM rental_items ri
			  JOIN variant_products v ON v.id = ri.variant_product_id
			  WHERE ri.rental_id = $1
			  ORDER BY v.sku ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, rentalID)
	if err != nil {
		return nil, fmt.Errorf("list rental items: %w", err)
	}
	defer rows.Close()

	var res []domain.RentalItem
	for rows.Next() {
		var it domain.RentalItem
		if err = rows.Scan(&it.ID, &it.RentalID, &it.VariantProductID, &it.SKU); err != nil {
			return nil, fmt.Errorf("scan rental item: %w", err)
		}
		res = append(res, it)
	}

	return res, rows.Err()
}

func (r *RentalRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Rental, error) {
	query := `SELECT id, owner_id, user_id, start_date, end_date, status, additional_info, created_at, updated_at
			  FROM rentals
			  WHERE owner_id = $1
			  ORDER BY start_date DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list rentals: %w", err)
	}
	defer rows.Close()

	var res []*domain.Rental
	for rows.Next() {
		var rental domain.Rental
		if err = rows.Scan(
			&rental.ID, &rental.OwnerID, &rental.UserID, &rental.StartDate, &rental.EndDate,
			&rental.Status, &rental.AdditionalInfo, &rental.CreatedAt, &rental.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan rental: %w", err)
		}
		res = append(res, &rental)
	}

	return res, rows.Err()
}

func (r *RentalRepository) ListTrackingEvents(ctx context.Context, rentalID string) ([]*domain.TrackingEvent, error) {
	query := `SELECT id, rental_id, kind, created_at
			  FROM tracking_events
			  WHERE rental_id = $1
			  ORDER BY created_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, rentalID)
	if err != nil {
		return nil, fmt.Errorf("list tracking events: %w", err)
	}
	defer rows.Close()

	var res []*domain.TrackingEvent
	for rows.Next() {
		var e domain.TrackingEvent
		if err = rows.Scan(&e.ID, &e.RentalID, &e.Kind, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan tracking event: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}

const activeHoldsQuery = `SELECT r.id, v.sku, r.start_date, r.end_date
			  FROM rental_items ri
			  JOIN rentals r ON r.id = ri.rental_id
			  JOIN variant_products v ON v.id = ri.variant_product_id
			  WHERE ri.variant_product_id = $1
			    AND r.status <> 'COMPLETED'
			    AND ($2 = '' OR r.id <> $2)
			  ORDER BY r.start_date ASC`

// ListActiveHolds returns every claim on a variant by a non-completed
// rental, excluding excludeRentalID (pass "" for no exclusion). The rows
// are candidates only; the caller decides overlap.
func (r *RentalRepository) ListActiveHolds(ctx context.Context, variantID, excludeRentalID string) ([]domain.VariantHold, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, activeHoldsQuery, variantID, excludeRentalID)
	if err != nil {
		return nil, fmt.Errorf("list active holds: %w", err)
	}
	defer rows.Close()

	return scanHolds(rows)
}

func scanHolds(rows *sql.Rows) ([]domain.VariantHold, error) {
	var res []domain.VariantHold
	for rows.Next() {
		var h domain.VariantHold
		if err := rows.Scan(&h.RentalID, &h.SKU, &h.StartDate, &h.EndDate); err != nil {
			return nil, fmt.Errorf("scan hold: %w", err)
		}
		res = append(res, h)
	}

	return res, rows.Err()
}

// ListOverdue returns paid rentals whose end date has passed.
func (r *RentalRepository) ListOverdue(ctx context.Context, cutoff time.Time) ([]*domain.Rental, error) {
	query := `SELECT id, owner_id, user_id, start_date, end_date, status, additional_info, created_at, updated_at
			  FROM rentals
			  WHERE status = $1 AND end_date < $2`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.RentalStatusPaid, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list overdue rentals: %w", err)
	}
	defer rows.Close()

	var res []*domain.Rental
	for rows.Next() {
		var rental domain.Rental
		if err = rows.Scan(
			&rental.ID, &rental.OwnerID, &rental.UserID, &rental.StartDate, &rental.EndDate,
			&rental.Status, &rental.AdditionalInfo, &rental.CreatedAt, &rental.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan rental: %w", err)
		}
		res = append(res, &rental)
	}

	return res, rows.Err()
}

type lockedVariant struct {
	ownerID string
	sku     string
}

// ApplyUpdate applies a partial rental edit as one transaction. The patch is
// resolved into a domain.RentalUpdatePlan against the locked rental; this
// method only executes the plan's statements. Any failure rolls the whole
// thing back, so readers never see some variants flipped and others not.
func (r *RentalRepository) ApplyUpdate(ctx context.Context, rentalID, ownerID string, patch domain.RentalPatch) (*domain.RentalUpdate, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	rental, err := lockRental(ctx, tx, rentalID, ownerID)
	if err != nil {
		return nil, err
	}
	prevStatus := rental.Status

	plan, err := domain.PlanRentalUpdate(rental, patch)
	if err != nil {
		return nil, err
	}

	// Lock every touched variant row for the duration of the transaction,
	// so two concurrent edits over the same variant serialize and the
	// loser re-reads committed state instead of racing the check.
	touched := append(append([]string{}, rental.VariantIDs()...), plan.ToAdd...)
	variants, err := lockVariants(ctx, tx, touched)
	if err != nil {
		return nil, err
	}

	for _, id := range plan.ToAdd {
		v, ok := variants[id]
		if !ok {
			return nil, domain.ErrVariantNotFound
		}
		if v.ownerID != ownerID {
			return nil, domain.ErrCrossOwnerMixing
		}
	}

	// The rental itself is excluded from the hold scan so an in-place edit
	// can re-check variants it already holds.
	for _, id := range plan.ToCheck {
		holds, err := activeHoldsTx(ctx, tx, id, rentalID)
		if err != nil {
			return nil, err
		}
		for _, h := range holds {
			if domain.Overlaps(plan.StartDate, plan.EndDate, h.StartDate, h.EndDate, domain.BoundaryClosed) {
				return nil, &domain.ConflictError{SKU: h.SKU}
			}
		}
	}

	for _, id := range plan.ToRemove {
		if _, err = tx.ExecContext(ctx,
			`DELETE FROM rental_items WHERE rental_id = $1 AND variant_product_id = $2`,
			rentalID, id,
		); err != nil {
			return nil, fmt.Errorf("delete rental item: %w", err)
		}
		if err = releaseVariantTx(ctx, tx, id, rentalID); err != nil {
			return nil, err
		}
	}

	addedItems := make([]domain.RentalItem, 0, len(plan.ToAdd))
	for _, id := range plan.ToAdd {
		item := domain.RentalItem{
			ID:               uuid.New().String(),
			RentalID:         rentalID,
			VariantProductID: id,
			SKU:              variants[id].sku,
		}
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO rental_items (id, rental_id, variant_product_id) VALUES ($1, $2, $3)`,
			item.ID, item.RentalID, item.VariantProductID,
		); err != nil {
			return nil, fmt.Errorf("insert rental item: %w", err)
		}
		if _, err = tx.ExecContext(ctx,
			`UPDATE variant_products SET is_rented = true, is_available = false WHERE id = $1`,
			id,
		); err != nil {
			return nil, fmt.Errorf("reserve variant: %w", err)
		}
		addedItems = append(addedItems, item)
	}

	now := time.Now().UTC()
	if _, err = tx.ExecContext(ctx,
		`UPDATE rentals SET start_date = $1, end_date = $2, status = $3, additional_info = $4, updated_at = $5 WHERE id = $6`,
		plan.StartDate, plan.EndDate, plan.Status, plan.AdditionalInfo, now, rentalID,
	); err != nil {
		return nil, fmt.Errorf("update rental: %w", err)
	}

	for _, id := range plan.ToRelease {
		if err = releaseVariantTx(ctx, tx, id, rentalID); err != nil {
			return nil, err
		}
	}

	// One audit event per status transition, never per unrelated edit.
	if plan.AppendTracking {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO tracking_events (id, rental_id, kind, created_at) VALUES ($1, $2, $3, $4)`,
			uuid.New().String(), rentalID, plan.TrackingKind, now,
		); err != nil {
			return nil, fmt.Errorf("insert tracking event: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit rental update: %w", err)
	}

	removed := make(map[string]struct{}, len(plan.ToRemove))
	for _, id := range plan.ToRemove {
		removed[id] = struct{}{}
	}
	items := make([]domain.RentalItem, 0, len(rental.Items)+len(addedItems))
	for _, it := range rental.Items {
		if _, ok := removed[it.VariantProductID]; !ok {
			items = append(items, it)
		}
	}
	items = append(items, addedItems...)

	rental.StartDate = plan.StartDate
	rental.EndDate = plan.EndDate
	rental.Status = plan.Status
	rental.AdditionalInfo = plan.AdditionalInfo
	rental.UpdatedAt = now
	rental.Items = items

	return &domain.RentalUpdate{Rental: rental, PrevStatus: prevStatus}, nil
}

// releaseVariantTx clears a variant's rented flags unless some other active
// rental still holds it. The flags mirror active holds across all rentals,
// not this rental's membership alone, so the release is always conditional.
func releaseVariantTx(ctx context.Context, tx *sql.Tx, variantID, excludeRentalID string) error {
	if _, err := tx.ExecContext(ctx,
		`UPDATE variant_products v SET is_rented = false, is_available = true
		 WHERE v.id = $1
		   AND NOT EXISTS (
		     SELECT 1 FROM rental_items ri
		     JOIN rentals r ON r.id = ri.rental_id
		     WHERE ri.variant_product_id = v.id AND r.id <> $2 AND r.status <> 'COMPLETED'
		   )`,
		variantID, excludeRentalID,
	); err != nil {
		return fmt.Errorf("release variant: %w", err)
	}

	return nil
}

func lockRental(ctx context.Context, tx *sql.Tx, rentalID, ownerID string) (*domain.Rental, error) {
	var rental domain.Rental
	err := tx.QueryRowContext(ctx,
		`SELECT id, owner_id, user_id, start_date, end_date, status, additional_info, created_at, updated_at
		 FROM rentals
		 WHERE id = $1
		 FOR UPDATE`,
		rentalID,
	).Scan(
		&rental.ID, &rental.OwnerID, &rental.UserID, &rental.StartDate, &rental.EndDate,
		&rental.Status, &rental.AdditionalInfo, &rental.CreatedAt, &rental.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRentalNotFound
		}
		return nil, fmt.Errorf("lock rental: %w", err)
	}
	// a rental of another owner is indistinguishable from a missing one
	if rental.OwnerID != ownerID {
		return nil, domain.ErrRentalNotFound
	}

	rows, err := tx.QueryContext(ctx,
		`SELECT ri.id, ri.rental_id, ri.variant_product_id, v.sku
		 FROM rental_items ri
		 JOIN variant_products v ON v.id = ri.variant_product_id
		 WHERE ri.rental_id = $1`,
		rentalID,
	)
	if err != nil {
		return nil, fmt.Errorf("load rental items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it domain.RentalItem
		if err = rows.Scan(&it.ID, &it.RentalID, &it.VariantProductID, &it.SKU); err != nil {
			return nil, fmt.Errorf("scan rental item: %w", err)
		}
		rental.Items = append(rental.Items, it)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return &rental, nil
}

func lockVariants(ctx context.Context, tx *sql.Tx, ids []string) (map[string]lockedVariant, error) {
	res := make(map[string]lockedVariant, len(ids))
	if len(ids) == 0 {
		return res, nil
	}

	rows, err := tx.QueryContext(ctx,
		`SELECT id, owner_id, sku FROM variant_products WHERE id = ANY($1) FOR UPDATE`,
		pq.Array(ids),
	)
	if err != nil {
		return nil, fmt.Errorf("lock variants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var v lockedVariant
		if err = rows.Scan(&id, &v.ownerID, &v.sku); err != nil {
			return nil, fmt.Errorf("scan variant lock: %w", err)
		}
		res[id] = v
	}

	return res, rows.Err()
}

func activeHoldsTx(ctx context.Context, tx *sql.Tx, variantID, excludeRentalID string) ([]domain.VariantHold, error) {
	rows, err := tx.QueryContext(ctx, activeHoldsQuery, variantID, excludeRentalID)
	if err != nil {
		return nil, fmt.Errorf("list active holds: %w", err)
	}
	defer rows.Close()

	return scanHolds(rows)
}
