package ports

import (
	"context"

	"github.com/AmerSikira/ljubija-crm-sub000/internal/domain"
)

type ReservationNotifier interface {
	NotifyReserved(ctx context.Context, member *domain.Member, reservations []*domain.Reservation)
	NotifyReleased(ctx context.Context, member *domain.Member, reservation *domain.Reservation)
	NotifyExpired(ctx context.Context, member *domain.Member, reservation *domain.Reservation)
}
