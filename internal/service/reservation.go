package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AmerSikira/ljubija-crm-sub000/internal/clock"
	"github.com/AmerSikira/ljubija-crm-sub000/internal/domain"
	"github.com/AmerSikira/ljubija-crm-sub000/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

const (
	defaultPageSize    = 50
	defaultMaxPageSize = 200
)

// ReservationService turns batch requests into per-slot outcomes and serves
// the read side. It keeps no reservation state between calls.
type ReservationService struct {
	repo        ports.ReservationRepo
	members     ports.MemberRepo
	notifier    ports.ReservationNotifier
	catalog     *domain.Catalog
	clock       clock.Clock
	logger      logger.Logger
	pageSize    int
	maxPageSize int
	dispatch    func(func())
}

type ReservationServiceOption func(*ReservationService)

func WithClock(c clock.Clock) ReservationServiceOption {
	return func(s *ReservationService) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithPageSize sets the default and the maximum page size of ListSlots.
func WithPageSize(def, maxSize int) ReservationServiceOption {
	return func(s *ReservationService) {
		if def > 0 {
			s.pageSize = def
		}
		if maxSize > 0 {
			s.maxPageSize = maxSize
		}
		if s.pageSize > s.maxPageSize {
			s.pageSize = s.maxPageSize
		}
	}
}

func NewReservationService(
	repo ports.ReservationRepo,
	members ports.MemberRepo,
	notifier ports.ReservationNotifier,
	catalog *domain.Catalog,
	logger logger.Logger,
	opts ...ReservationServiceOption,
) *ReservationService {
	s := &ReservationService{
		repo:        repo,
		members:     members,
		notifier:    notifier,
		catalog:     catalog,
		clock:       clock.NewSystem(),
		logger:      logger,
		pageSize:    defaultPageSize,
		maxPageSize: defaultMaxPageSize,
		dispatch:    func(f func()) { go f() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ReserveBatch reserves every distinct address in input order. Per-slot
// failures are reported in the result; a store failure aborts the batch and
// the reservations it already created are removed again.
func (s *ReservationService) ReserveBatch(ctx context.Context, in domain.ReserveInput) (*domain.BatchResult, error) {
	if in.HolderID == "" {
		return nil, fmt.Errorf("%w: holder id is required", domain.ErrValidation)
	}
	if len(in.Slots) == 0 {
		return nil, fmt.Errorf("%w: at least one slot is required", domain.ErrValidation)
	}

	now := s.clock.Now()
	expiresAt := in.ExpiresAt
	if expiresAt != nil {
		t := expiresAt.UTC()
		// Срок в прошлом: бронь создаётся, но сразу считается истёкшей.
		if t.Before(now) {
			t = now
		}
		expiresAt = &t
	}

	result := &domain.BatchResult{
		Succeeded: []domain.SlotAddress{},
		Created:   []*domain.Reservation{},
		Failed:    []domain.SlotFailure{},
	}
	seen := make(map[domain.SlotAddress]struct{}, len(in.Slots))
	var (
		conflicts []*domain.Reservation
		replaced  []*domain.Reservation
	)
	conflictIdx := make(map[int]int)
	// освобождённые истёкшие брони сообщаются даже при откате пакета
	defer func() { s.announceExpired(ctx, replaced) }()

	for _, raw := range in.Slots {
		addr := domain.NewSlotAddress(raw.Letter, raw.Number)
		if _, dup := seen[addr]; dup {
			continue
		}
		seen[addr] = struct{}{}

		if err := s.catalog.Validate(addr); err != nil {
			result.Failed = append(result.Failed, domain.SlotFailure{
				Address: addr,
				Reason:  domain.FailureInvalidAddress,
				Detail:  err.Error(),
			})
			continue
		}

		res := &domain.Reservation{
			ID:         uuid.New().String(),
			Address:    addr,
			HolderID:   in.HolderID,
			ReservedAt: now,
			ExpiresAt:  expiresAt,
		}

		old, err := s.repo.Insert(ctx, res, now)
		if old != nil {
			replaced = append(replaced, old)
		}
		switch {
		case err == nil:
			result.Succeeded = append(result.Succeeded, addr)
			result.Created = append(result.Created, res)

		case errors.Is(err, domain.ErrAlreadyReserved):
			failure := domain.SlotFailure{
				Address: addr,
				Reason:  domain.FailureAlreadySlotTaken,
				Detail:  fmt.Sprintf("slot %s is already reserved", addr),
			}
			current, findErr := s.repo.FindActive(ctx, addr, now)
			switch {
			case findErr == nil:
				reservedAt := current.ReservedAt
				failure.ReservedAt = &reservedAt
				conflictIdx[len(result.Failed)] = len(conflicts)
				conflicts = append(conflicts, current)
			case errors.Is(findErr, domain.ErrReservationNotFound):
				// released between the insert and the lookup
			default:
				s.rollback(ctx, result.Created)
				return nil, fmt.Errorf("reserve %s: %w", addr, findErr)
			}
			result.Failed = append(result.Failed, failure)

		default:
			s.rollback(ctx, result.Created)
			return nil, fmt.Errorf("reserve %s: %w", addr, err)
		}
	}

	if len(conflicts) > 0 {
		s.attachHolderNames(ctx, conflicts)
		for failedAt, i := range conflictIdx {
			f := &result.Failed[failedAt]
			f.HolderName = conflicts[i].HolderName
			if f.HolderName != "" {
				f.Detail = fmt.Sprintf("slot %s is already reserved by %s", f.Address, f.HolderName)
			}
		}
	}

	s.logger.Info("batch reserve finished",
		logger.String("holder_id", in.HolderID),
		logger.Int("requested", len(in.Slots)),
		logger.Int("succeeded", len(result.Succeeded)),
		logger.Int("failed", len(result.Failed)),
	)

	if len(result.Created) > 0 {
		created := result.Created
		notifyCtx := context.WithoutCancel(ctx)
		s.dispatch(func() { s.notifyReserved(notifyCtx, in.HolderID, created) })
	}

	return result, nil
}

// Release deletes a reservation by id. Releasing a missing id is a no-op.
// Who may release is decided before this call.
func (s *ReservationService) Release(ctx context.Context, reservationID, requesterID string) (bool, error) {
	res, err := s.repo.DeleteByID(ctx, reservationID)
	if err != nil {
		return false, fmt.Errorf("release reservation: %w", err)
	}
	if res == nil {
		s.logger.Debug("release skipped, reservation not found",
			logger.String("reservation_id", reservationID),
			logger.String("requester_id", requesterID),
		)
		return false, nil
	}

	s.logger.Info("reservation released",
		logger.String("reservation_id", reservationID),
		logger.String("slot", res.Address.String()),
		logger.String("holder_id", res.HolderID),
		logger.String("requester_id", requesterID),
	)

	notifyCtx := context.WithoutCancel(ctx)
	s.dispatch(func() { s.notifyReleased(notifyCtx, res) })

	return true, nil
}

// ReclaimExpired removes every expired reservation. Reads call it before
// counting, the optional scheduler calls it periodically.
func (s *ReservationService) ReclaimExpired(ctx context.Context) ([]*domain.Reservation, error) {
	reaped, err := s.repo.ReapExpired(ctx, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("reclaim expired: %w", err)
	}

	s.announceExpired(ctx, reaped)
	return reaped, nil
}

// announceExpired logs and notifies the holders of reservations removed
// because they expired, whichever path removed them.
func (s *ReservationService) announceExpired(ctx context.Context, reaped []*domain.Reservation) {
	if len(reaped) == 0 {
		return
	}

	s.logger.Info("expired reservations reclaimed",
		logger.Int("count", len(reaped)),
	)

	notifyCtx := context.WithoutCancel(ctx)
	s.dispatch(func() { s.notifyExpired(notifyCtx, reaped) })
}

// FindActive returns the active reservation of a slot, with the holder name.
func (s *ReservationService) FindActive(ctx context.Context, addr domain.SlotAddress) (*domain.Reservation, error) {
	addr = domain.NewSlotAddress(addr.Letter, addr.Number)
	if err := s.catalog.Validate(addr); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	expired, err := s.repo.ReapSlot(ctx, addr, now)
	if err != nil {
		return nil, fmt.Errorf("find active: %w", err)
	}
	if expired != nil {
		s.announceExpired(ctx, []*domain.Reservation{expired})
	}

	res, err := s.repo.FindActive(ctx, addr, now)
	if err != nil {
		if errors.Is(err, domain.ErrReservationNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("find active: %w", err)
	}

	s.attachHolderNames(ctx, []*domain.Reservation{res})
	return res, nil
}

func (s *ReservationService) GetSlot(ctx context.Context, addr domain.SlotAddress) (*domain.SlotRow, error) {
	res, err := s.FindActive(ctx, addr)
	if err != nil {
		if errors.Is(err, domain.ErrReservationNotFound) {
			return &domain.SlotRow{
				Address: domain.NewSlotAddress(addr.Letter, addr.Number),
				Status:  domain.SlotStatusAvailable,
			}, nil
		}
		return nil, err
	}

	return &domain.SlotRow{Address: res.Address, Status: domain.SlotStatusReserved, Reservation: res}, nil
}

// CountByStatus always satisfies Total == Available + Reserved.
func (s *ReservationService) CountByStatus(ctx context.Context) (domain.SlotCounts, error) {
	if _, err := s.ReclaimExpired(ctx); err != nil {
		return domain.SlotCounts{}, err
	}

	active, err := s.repo.ListActive(ctx, domain.SlotFilter{}, s.clock.Now())
	if err != nil {
		return domain.SlotCounts{}, fmt.Errorf("count reservations: %w", err)
	}

	return s.counts(active), nil
}

func (s *ReservationService) ListSlots(ctx context.Context, in domain.ListSlotsInput) (*domain.SlotPage, error) {
	filter := domain.SlotFilter{
		Letter: strings.ToUpper(strings.TrimSpace(in.Filter.Letter)),
		Number: in.Filter.Number,
	}
	if filter.Letter != "" && !s.catalog.IsValidAddress(filter.Letter, 1) {
		return nil, fmt.Errorf("%w: unknown letter %q", domain.ErrValidation, filter.Letter)
	}
	if filter.Number != 0 && !s.catalog.IsValidAddress("A", filter.Number) {
		return nil, fmt.Errorf("%w: number must be in [1, %d]", domain.ErrValidation, s.catalog.MaxPerLetter())
	}

	status := in.Status
	if status == "" {
		status = domain.StatusFilterAll
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}

	page := in.Page
	if page < 1 {
		page = 1
	}
	pageSize := in.PageSize
	if pageSize <= 0 {
		pageSize = s.pageSize
	}
	if pageSize > s.maxPageSize {
		pageSize = s.maxPageSize
	}

	if _, err := s.ReclaimExpired(ctx); err != nil {
		return nil, err
	}

	// counts and rows come from one read
	active, err := s.repo.ListActive(ctx, domain.SlotFilter{}, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	counts := s.counts(active)

	byAddr := make(map[domain.SlotAddress]*domain.Reservation, len(active))
	for _, r := range active {
		if filter.Matches(r.Address) {
			byAddr[r.Address] = r
		}
	}

	var totalItems int
	switch status {
	case domain.StatusFilterAll:
		totalItems = s.catalog.Count(filter)
	case domain.StatusFilterReserved:
		totalItems = s.countIn(byAddr)
	case domain.StatusFilterAvailable:
		totalItems = s.catalog.Count(filter) - s.countIn(byAddr)
	}

	offset := (page - 1) * pageSize
	items := make([]domain.SlotRow, 0, pageSize)
	matched := 0
	for addr := range s.catalog.List(filter) {
		if len(items) >= pageSize {
			break
		}

		row := domain.SlotRow{Address: addr, Status: domain.SlotStatusAvailable}
		if r, ok := byAddr[addr]; ok {
			row.Status = domain.SlotStatusReserved
			row.Reservation = r
		}

		switch status {
		case domain.StatusFilterAvailable:
			if row.Status != domain.SlotStatusAvailable {
				continue
			}
		case domain.StatusFilterReserved:
			if row.Status != domain.SlotStatusReserved {
				continue
			}
		}

		if matched >= offset {
			items = append(items, row)
		}
		matched++
	}

	onPage := make([]*domain.Reservation, 0, len(items))
	for _, row := range items {
		if row.Reservation != nil {
			onPage = append(onPage, row.Reservation)
		}
	}
	s.attachHolderNames(ctx, onPage)

	return &domain.SlotPage{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: (totalItems + pageSize - 1) / pageSize,
		Counts:     counts,
	}, nil
}

func (s *ReservationService) counts(active []*domain.Reservation) domain.SlotCounts {
	reserved := 0
	for _, r := range active {
		if s.catalog.Contains(r.Address) {
			reserved++
		}
	}
	total := s.catalog.Capacity()
	return domain.SlotCounts{
		Total:     total,
		Available: total - reserved,
		Reserved:  reserved,
	}
}

// countIn counts reservations that sit on a catalog address.
func (s *ReservationService) countIn(byAddr map[domain.SlotAddress]*domain.Reservation) int {
	n := 0
	for addr := range byAddr {
		if s.catalog.Contains(addr) {
			n++
		}
	}
	return n
}

// attachHolderNames is best effort: a failed lookup leaves names empty.
func (s *ReservationService) attachHolderNames(ctx context.Context, rs []*domain.Reservation) {
	if len(rs) == 0 || s.members == nil {
		return
	}

	ids := make([]string, 0, len(rs))
	seen := make(map[string]struct{}, len(rs))
	for _, r := range rs {
		if _, ok := seen[r.HolderID]; ok {
			continue
		}
		seen[r.HolderID] = struct{}{}
		ids = append(ids, r.HolderID)
	}

	members, err := s.members.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Warn("failed to resolve holder names",
			logger.Int("holders", len(ids)),
			logger.String("error", err.Error()),
		)
		return
	}

	for _, r := range rs {
		if m, ok := members[r.HolderID]; ok {
			r.HolderName = m.DisplayName
		}
	}
}

func (s *ReservationService) rollback(ctx context.Context, created []*domain.Reservation) {
	ctx = context.WithoutCancel(ctx)
	for _, r := range created {
		if _, err := s.repo.DeleteByID(ctx, r.ID); err != nil {
			s.logger.Error("failed to roll back reservation after batch abort",
				logger.String("reservation_id", r.ID),
				logger.String("slot", r.Address.String()),
				logger.String("error", err.Error()),
			)
		}
	}
}

func (s *ReservationService) notifyReserved(ctx context.Context, holderID string, created []*domain.Reservation) {
	if s.members == nil || s.notifier == nil {
		return
	}
	member, err := s.members.GetByID(ctx, holderID)
	if err != nil {
		s.logger.Debug("holder not found for reserve notification",
			logger.String("holder_id", holderID),
		)
		return
	}

	s.notifier.NotifyReserved(ctx, member, created)
}

func (s *ReservationService) notifyReleased(ctx context.Context, res *domain.Reservation) {
	if s.members == nil || s.notifier == nil {
		return
	}
	member, err := s.members.GetByID(ctx, res.HolderID)
	if err != nil {
		s.logger.Debug("holder not found for release notification",
			logger.String("holder_id", res.HolderID),
		)
		return
	}

	s.notifier.NotifyReleased(ctx, member, res)
}

func (s *ReservationService) notifyExpired(ctx context.Context, reaped []*domain.Reservation) {
	if s.members == nil || s.notifier == nil {
		return
	}
	ids := make([]string, 0, len(reaped))
	for _, r := range reaped {
		ids = append(ids, r.HolderID)
	}

	members, err := s.members.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("failed to get holders for expiry notification",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, r := range reaped {
		member, ok := members[r.HolderID]
		if !ok {
			continue
		}
		s.notifier.NotifyExpired(ctx, member, r)
	}
}

