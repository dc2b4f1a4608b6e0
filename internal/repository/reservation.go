package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/AmerSikira/ljubija-crm-sub000/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const reservationColumns = `id, letter, number, holder_id, reserved_at, expires_at`

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ReservationRepository) FindActive(ctx context.Context, addr domain.SlotAddress, now time.Time) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM grave_reservations
			  WHERE letter = $1 AND number = $2
			    AND (expires_at IS NULL OR expires_at > $3)`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, addr.Letter, addr.Number, now)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("find reservation: %w", err)
	}

	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return res, nil
}

const reapSlotQuery = `DELETE FROM grave_reservations
		  WHERE letter = $1 AND number = $2
		    AND expires_at IS NOT NULL AND expires_at <= $3
		  RETURNING ` + reservationColumns

// ReapSlot физически удаляет истёкшую запись слота и возвращает её.
func (r *ReservationRepository) ReapSlot(ctx context.Context, addr domain.SlotAddress, now time.Time) (*domain.Reservation, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, reapSlotQuery, addr.Letter, addr.Number, now)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("reap expired slot: %w", err)
	}

	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan reaped slot: %w", err)
	}

	return res, nil
}

// Insert relies on the UNIQUE (letter, number) index: concurrent inserts for
// the same slot serialize on it and exactly one wins, across all app instances.
// The expired row it clears out of the way is returned only if the insert commits.
func (r *ReservationRepository) Insert(ctx context.Context, res *domain.Reservation, now time.Time) (*domain.Reservation, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	replaced, err := scanReservation(tx.QueryRowContext(ctx, reapSlotQuery, res.Address.Letter, res.Address.Number, now))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("reap expired slot: %w", err)
		}
		replaced = nil
	}

	query := `INSERT INTO grave_reservations (id, letter, number, holder_id, reserved_at, expires_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  ON CONFLICT (letter, number) DO NOTHING`
	result, err := tx.ExecContext(
		ctx, query, res.ID, res.Address.Letter, res.Address.Number,
		res.HolderID, res.ReservedAt, nullTime(res.ExpiresAt),
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyReserved
		}
		return nil, fmt.Errorf("insert reservation: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("reservation rows affected: %w", err)
	}
	if rows == 0 {
		return nil, domain.ErrAlreadyReserved
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit reservation: %w", err)
	}
	return replaced, nil
}

// DeleteByID returns (nil, nil) when there was nothing to delete.
func (r *ReservationRepository) DeleteByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `DELETE FROM grave_reservations
			  WHERE id = $1
			  RETURNING ` + reservationColumns
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete reservation: %w", err)
	}

	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan deleted reservation: %w", err)
	}

	return res, nil
}

func (r *ReservationRepository) ReapExpired(ctx context.Context, now time.Time) ([]*domain.Reservation, error) {
	query := `DELETE FROM grave_reservations
			  WHERE expires_at IS NOT NULL AND expires_at <= $1
			  RETURNING ` + reservationColumns

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, now)
	if err != nil {
		return nil, fmt.Errorf("reap expired: %w", err)
	}
	defer rows.Close()

	var res []*domain.Reservation
	for rows.Next() {
		item, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reaped: %w", err)
		}
		res = append(res, item)
	}

	return res, rows.Err()
}

func (r *ReservationRepository) ListActive(ctx context.Context, filter domain.SlotFilter, now time.Time) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM grave_reservations
			  WHERE ($1::text = '' OR letter = $1::text)
			    AND ($2::int = 0 OR number = $2::int)
			    AND (expires_at IS NULL OR expires_at > $3)
			  ORDER BY letter, number`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, filter.Letter, filter.Number, now)
	if err != nil {
		return nil, fmt.Errorf("list active reservations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Reservation
	for rows.Next() {
		item, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, item)
	}

	return res, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(s rowScanner) (*domain.Reservation, error) {
	var (
		res       domain.Reservation
		expiresAt sql.NullTime
	)
	if err := s.Scan(
		&res.ID, &res.Address.Letter, &res.Address.Number,
		&res.HolderID, &res.ReservedAt, &expiresAt,
	); err != nil {
		return nil, err
	}
	res.ReservedAt = res.ReservedAt.UTC()
	if expiresAt.Valid {
		t := expiresAt.Time.UTC()
		res.ExpiresAt = &t
	}

	return &res, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
