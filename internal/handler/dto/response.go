package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/AmerSikira/ljubija-crm-sub000/internal/domain"
)

type SlotFailureResponse struct {
	Letter     string `json:"letter"`
	Number     int    `json:"number"`
	Reason     string `json:"reason"`
	Detail     string `json:"detail,omitempty"`
	HolderName string `json:"holder_name,omitempty"`
	ReservedAt string `json:"reserved_at,omitempty"`
}

type ReserveResponse struct {
	Succeeded    []domain.SlotAddress  `json:"succeeded"`
	Reservations []ReservationResponse `json:"reservations"`
	Failed       []SlotFailureResponse `json:"failed"`
	Message      string                `json:"message"`
}

type ReservationResponse struct {
	ID         string `json:"id"`
	Letter     string `json:"letter"`
	Number     int    `json:"number"`
	HolderID   string `json:"holder_id"`
	HolderName string `json:"holder_name,omitempty"`
	ReservedAt string `json:"reserved_at"`
	ExpiresAt  string `json:"expires_at,omitempty"`
}

type SlotRowResponse struct {
	Letter      string               `json:"letter"`
	Number      int                  `json:"number"`
	Status      string               `json:"status"`
	Reservation *ReservationResponse `json:"reservation,omitempty"`
}

type CountsResponse struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Reserved  int `json:"reserved"`
}

type SlotPageResponse struct {
	Items      []SlotRowResponse `json:"items"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalItems int               `json:"total_items"`
	TotalPages int               `json:"total_pages"`
	Counts     CountsResponse    `json:"counts"`
}

type ReleaseResponse struct {
	Released bool `json:"released"`
}

type MemberResponse struct {
	ID             string `json:"id"`
	DisplayName    string `json:"display_name"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToReserveResponse(r *domain.BatchResult) ReserveResponse {
	reservations := make([]ReservationResponse, 0, len(r.Created))
	for _, res := range r.Created {
		reservations = append(reservations, ToReservationResponse(res))
	}

	failed := make([]SlotFailureResponse, 0, len(r.Failed))
	for _, f := range r.Failed {
		item := SlotFailureResponse{
			Letter:     f.Address.Letter,
			Number:     f.Address.Number,
			Reason:     string(f.Reason),
			Detail:     f.Detail,
			HolderName: f.HolderName,
		}
		if f.ReservedAt != nil {
			item.ReservedAt = f.ReservedAt.Format(time.RFC3339)
		}
		failed = append(failed, item)
	}

	succeeded := r.Succeeded
	if succeeded == nil {
		succeeded = []domain.SlotAddress{}
	}

	return ReserveResponse{
		Succeeded:    succeeded,
		Reservations: reservations,
		Failed:       failed,
		Message:      Summary(r),
	}
}

// Summary is the flash text shown to the user after a batch reserve.
func Summary(r *domain.BatchResult) string {
	total := len(r.Succeeded) + len(r.Failed)

	var b strings.Builder
	fmt.Fprintf(&b, "Reserved %d of %d graves.", len(r.Succeeded), total)
	for _, f := range r.Failed {
		b.WriteString(" ")
		switch {
		case f.Reason == domain.FailureAlreadySlotTaken && f.HolderName != "":
			fmt.Fprintf(&b, "%s: already reserved by %s.", f.Address, f.HolderName)
		case f.Reason == domain.FailureAlreadySlotTaken:
			fmt.Fprintf(&b, "%s: already reserved.", f.Address)
		default:
			fmt.Fprintf(&b, "%s: invalid address.", f.Address)
		}
	}
	return b.String()
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	resp := ReservationResponse{
		ID:         r.ID,
		Letter:     r.Address.Letter,
		Number:     r.Address.Number,
		HolderID:   r.HolderID,
		HolderName: r.HolderName,
		ReservedAt: r.ReservedAt.Format(time.RFC3339),
	}
	if r.ExpiresAt != nil {
		resp.ExpiresAt = r.ExpiresAt.Format(time.RFC3339)
	}
	return resp
}

func ToSlotRowResponse(row *domain.SlotRow) SlotRowResponse {
	resp := SlotRowResponse{
		Letter: row.Address.Letter,
		Number: row.Address.Number,
		Status: string(row.Status),
	}
	if row.Reservation != nil {
		res := ToReservationResponse(row.Reservation)
		resp.Reservation = &res
	}
	return resp
}

func ToCountsResponse(c domain.SlotCounts) CountsResponse {
	return CountsResponse{
		Total:     c.Total,
		Available: c.Available,
		Reserved:  c.Reserved,
	}
}

func ToSlotPageResponse(p *domain.SlotPage) SlotPageResponse {
	items := make([]SlotRowResponse, 0, len(p.Items))
	for i := range p.Items {
		items = append(items, ToSlotRowResponse(&p.Items[i]))
	}

	return SlotPageResponse{
		Items:      items,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalItems: p.TotalItems,
		TotalPages: p.TotalPages,
		Counts:     ToCountsResponse(p.Counts),
	}
}

func ToMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		ID:             m.ID,
		DisplayName:    m.DisplayName,
		TelegramChatID: m.TelegramChatID,
		CreatedAt:      m.CreatedAt.Format(time.RFC3339),
	}
}
