package domain

import "errors"

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrMemberNotFound      = errors.New("member not found")
)

var (
	ErrInvalidAddress  = errors.New("invalid slot address")
	ErrAlreadyReserved = errors.New("slot is already reserved")
)

var (
	ErrValidation = errors.New("validation error")
)
