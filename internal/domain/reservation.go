package domain

import (
	"cmp"
	"slices"
	"time"
)

type Reservation struct {
	ID         string      `json:"id"`
	Address    SlotAddress `json:"address"`
	HolderID   string      `json:"holder_id"`
	HolderName string      `json:"holder_name,omitempty"`
	ReservedAt time.Time   `json:"reserved_at"`
	ExpiresAt  *time.Time  `json:"expires_at,omitempty"`
}

// IsActive reports whether the reservation still holds its slot at now.
func (r *Reservation) IsActive(now time.Time) bool {
	return r.ExpiresAt == nil || r.ExpiresAt.After(now)
}

// SortReservations orders by letter, then number, matching Catalog.List.
func SortReservations(rs []*Reservation) {
	slices.SortFunc(rs, func(a, b *Reservation) int {
		if c := cmp.Compare(a.Address.Letter, b.Address.Letter); c != 0 {
			return c
		}
		return cmp.Compare(a.Address.Number, b.Address.Number)
	})
}

type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "available"
	SlotStatusReserved  SlotStatus = "reserved"
)

type StatusFilter string

const (
	StatusFilterAll       StatusFilter = "all"
	StatusFilterAvailable StatusFilter = "available"
	StatusFilterReserved  StatusFilter = "reserved"
)

func (s StatusFilter) Valid() bool {
	switch s {
	case StatusFilterAll, StatusFilterAvailable, StatusFilterReserved:
		return true
	}
	return false
}

type SlotRow struct {
	Address     SlotAddress  `json:"address"`
	Status      SlotStatus   `json:"status"`
	Reservation *Reservation `json:"reservation,omitempty"`
}

type SlotCounts struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Reserved  int `json:"reserved"`
}

type ListSlotsInput struct {
	Filter   SlotFilter
	Status   StatusFilter
	Page     int
	PageSize int
}

type SlotPage struct {
	Items      []SlotRow  `json:"items"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalItems int        `json:"total_items"`
	TotalPages int        `json:"total_pages"`
	Counts     SlotCounts `json:"counts"`
}

type ReserveInput struct {
	HolderID  string
	Slots     []SlotAddress
	ExpiresAt *time.Time
}

type FailureReason string

const (
	FailureInvalidAddress   FailureReason = "invalid_address"
	FailureAlreadySlotTaken FailureReason = "already_slot_taken"
)

type SlotFailure struct {
	Address SlotAddress   `json:"address"`
	Reason  FailureReason `json:"reason"`
	Detail  string        `json:"detail,omitempty"`
	// Current holder, filled for FailureAlreadySlotTaken when it could be read.
	HolderName string     `json:"holder_name,omitempty"`
	ReservedAt *time.Time `json:"reserved_at,omitempty"`
}

// BatchResult is the per-address outcome of one batch reserve.
// Created is parallel to Succeeded.
type BatchResult struct {
	Succeeded []SlotAddress  `json:"succeeded"`
	Created   []*Reservation `json:"created"`
	Failed    []SlotFailure  `json:"failed"`
}
