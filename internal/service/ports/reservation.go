package ports

import (
	"context"
	"time"

	"github.com/AmerSikira/ljubija-crm-sub000/internal/domain"
)

// ReservationRepo is the single source of truth for active reservations.
// Implementations must make Insert atomic per address across processes.
// Every method that deletes an expired row returns it, so the holder can be told.
type ReservationRepo interface {
	// FindActive returns domain.ErrReservationNotFound when the slot is free.
	// It never deletes; an expired row is skipped.
	FindActive(ctx context.Context, addr domain.SlotAddress, now time.Time) (*domain.Reservation, error)
	// Insert returns domain.ErrAlreadyReserved when an active reservation holds the slot.
	// An expired row in the way is deleted and returned as replaced.
	Insert(ctx context.Context, r *domain.Reservation, now time.Time) (replaced *domain.Reservation, err error)
	DeleteByID(ctx context.Context, id string) (*domain.Reservation, error)
	// ReapSlot deletes the row of addr if it is inactive at now. (nil, nil) when nothing was removed.
	ReapSlot(ctx context.Context, addr domain.SlotAddress, now time.Time) (*domain.Reservation, error)
	// ReapExpired deletes every reservation inactive at now and returns what it removed.
	ReapExpired(ctx context.Context, now time.Time) ([]*domain.Reservation, error)
	ListActive(ctx context.Context, filter domain.SlotFilter, now time.Time) ([]*domain.Reservation, error)
}
