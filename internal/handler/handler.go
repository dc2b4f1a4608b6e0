package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/AmerSikira/ljubija-crm-sub000/internal/domain"
	"github.com/AmerSikira/ljubija-crm-sub000/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type ReservationSvc interface {
	ReserveBatch(ctx context.Context, in domain.ReserveInput) (*domain.BatchResult, error)
	Release(ctx context.Context, reservationID, requesterID string) (bool, error)
	GetSlot(ctx context.Context, addr domain.SlotAddress) (*domain.SlotRow, error)
	ListSlots(ctx context.Context, in domain.ListSlotsInput) (*domain.SlotPage, error)
	CountByStatus(ctx context.Context) (domain.SlotCounts, error)
}

type MemberSvc interface {
	Create(ctx context.Context, input domain.CreateMemberInput) (*domain.Member, error)
	List(ctx context.Context) ([]*domain.Member, error)
}

type Handler struct {
	reservationService ReservationSvc
	memberService      MemberSvc
}

func NewHandler(reservationService ReservationSvc, memberService MemberSvc) *Handler {
	return &Handler{
		reservationService: reservationService,
		memberService:      memberService,
	}
}

// Graves

func (h *Handler) ReserveGraves(c *ginext.Context) {
	var req dto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.ReserveInput{
		HolderID: req.MemberID,
		Slots:    make([]domain.SlotAddress, 0, len(req.Slots)),
	}
	for _, s := range req.Slots {
		input.Slots = append(input.Slots, domain.NewSlotAddress(s.Letter, s.Number))
	}

	if req.ExpiresAt != nil && *req.ExpiresAt != "" {
		expiresAt, err := time.Parse(time.RFC3339, *req.ExpiresAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid expires_at format, expected RFC3339",
			})
			return
		}
		input.ExpiresAt = &expiresAt
	}

	result, err := h.reservationService.ReserveBatch(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReserveResponse(result))
}

func (h *Handler) ReleaseGrave(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	var req dto.ReleaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	released, err := h.reservationService.Release(c.Request.Context(), id, req.MemberID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ReleaseResponse{Released: released})
}

func (h *Handler) ListGraves(c *ginext.Context) {
	var q dto.ListSlotsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	page, err := h.reservationService.ListSlots(c.Request.Context(), domain.ListSlotsInput{
		Filter:   domain.SlotFilter{Letter: q.Letter, Number: q.Number},
		Status:   domain.StatusFilter(q.Status),
		Page:     q.Page,
		PageSize: q.PageSize,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSlotPageResponse(page))
}

func (h *Handler) GetGrave(c *ginext.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid grave number"})
		return
	}

	row, err := h.reservationService.GetSlot(c.Request.Context(), domain.NewSlotAddress(c.Param("letter"), number))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSlotRowResponse(row))
}

func (h *Handler) GraveStats(c *ginext.Context) {
	counts, err := h.reservationService.CountByStatus(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCountsResponse(counts))
}

// Members

func (h *Handler) CreateMember(c *ginext.Context) {
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateMemberInput{
		DisplayName:    req.DisplayName,
		TelegramChatID: req.TelegramChatID,
	}

	member, err := h.memberService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMemberResponse(member))
}

func (h *Handler) ListMembers(c *ginext.Context) {
	members, err := h.memberService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.MemberResponse, 0, len(members))
	for _, m := range members {
		resp = append(resp, dto.ToMemberResponse(m))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrMemberNotFound),
		errors.Is(err, domain.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidAddress):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
