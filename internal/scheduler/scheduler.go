package scheduler

import (
	"context"
	"time"

	"github.com/AmerSikira/ljubija-crm-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type reservationReclaimer interface {
	ReclaimExpired(ctx context.Context) ([]*domain.Reservation, error)
}

// Scheduler sweeps expired reservations in the background. Reads reclaim
// lazily anyway, the sweep only makes expiry notifications timely.
type Scheduler struct {
	reservationService reservationReclaimer
	interval           time.Duration
	logger             logger.Logger
}

func New(
	reservationService reservationReclaimer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reservationService: reservationService,
		interval:           interval,
		logger:             logger,
	}
}

func (s *Scheduler) Enabled() bool {
	return s.interval > 0
}

func (s *Scheduler) Start(ctx context.Context) {
	if !s.Enabled() {
		s.logger.Info("scheduler disabled")
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	reclaimed, err := s.reservationService.ReclaimExpired(ctx)
	if err != nil {
		s.logger.Error("failed to reclaim expired reservations",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, r := range reclaimed {
		s.logger.Info("reservation expired",
			logger.String("reservation_id", r.ID),
			logger.String("slot", r.Address.String()),
			logger.String("holder_id", r.HolderID),
		)
	}
}
