package service

import (
	"context"
	"sync"
	"time"

	"github.com/AmerSikira/ljubija-crm-sub000/internal/domain"
)

// fakeReservationRepo behaves like a table with UNIQUE (letter, number):
// the mutex plays the role of the index lock.
type fakeReservationRepo struct {
	mu     sync.Mutex
	slots  map[domain.SlotAddress]*domain.Reservation
	failOn map[domain.SlotAddress]error
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{
		slots:  make(map[domain.SlotAddress]*domain.Reservation),
		failOn: make(map[domain.SlotAddress]error),
	}
}

func (f *fakeReservationRepo) FindActive(_ context.Context, addr domain.SlotAddress, now time.Time) (*domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	r, ok := f.slots[addr]
	if !ok || !r.IsActive(now) {
		return nil, domain.ErrReservationNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeReservationRepo) ReapSlot(_ context.Context, addr domain.SlotAddress, now time.Time) (*domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	r, ok := f.slots[addr]
	if !ok || r.IsActive(now) {
		return nil, nil
	}
	delete(f.slots, addr)
	return r, nil
}

func (f *fakeReservationRepo) Insert(_ context.Context, r *domain.Reservation, now time.Time) (*domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err, ok := f.failOn[r.Address]; ok {
		return nil, err
	}
	cur, ok := f.slots[r.Address]
	if ok && cur.IsActive(now) {
		return nil, domain.ErrAlreadyReserved
	}
	cp := *r
	f.slots[r.Address] = &cp
	return cur, nil
}

func (f *fakeReservationRepo) DeleteByID(_ context.Context, id string) (*domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for addr, r := range f.slots {
		if r.ID == id {
			delete(f.slots, addr)
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReservationRepo) ReapExpired(_ context.Context, now time.Time) ([]*domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var reaped []*domain.Reservation
	for addr, r := range f.slots {
		if !r.IsActive(now) {
			delete(f.slots, addr)
			reaped = append(reaped, r)
		}
	}
	return reaped, nil
}

func (f *fakeReservationRepo) ListActive(_ context.Context, filter domain.SlotFilter, now time.Time) ([]*domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var res []*domain.Reservation
	for _, r := range f.slots {
		if r.IsActive(now) && filter.Matches(r.Address) {
			cp := *r
			res = append(res, &cp)
		}
	}
	domain.SortReservations(res)
	return res, nil
}

// rows counts stored rows, expired ones included.
func (f *fakeReservationRepo) rows() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.slots)
}

func (f *fakeReservationRepo) idAt(addr domain.SlotAddress) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r, ok := f.slots[addr]; ok {
		return r.ID
	}
	return ""
}
