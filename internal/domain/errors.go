package domain

import (
	"errors"
	"fmt"
)

// Базовые виды ошибок. Конкретные ошибки ниже оборачивают один из них,
// обработчик HTTP сопоставляет статус по виду.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrInternal   = errors.New("internal error")
)

var (
	ErrUserNotFound        = fmt.Errorf("user %w", ErrNotFound)
	ErrCaravanNotFound     = fmt.Errorf("caravan %w", ErrNotFound)
	ErrReservationNotFound = fmt.Errorf("reservation %w", ErrNotFound)
	ErrPaymentNotFound     = fmt.Errorf("payment %w", ErrNotFound)
)

var (
	ErrInvalidDateRange   = fmt.Errorf("%w: start date must be before end date", ErrValidation)
	ErrInvalidDecision    = fmt.Errorf("%w: decision must be approved or rejected", ErrValidation)
	ErrInvalidTransition  = fmt.Errorf("%w: status transition is not allowed", ErrValidation)
	ErrNotAwaitingPayment = fmt.Errorf("%w: reservation is not awaiting payment", ErrValidation)
	ErrInvalidDiscount    = fmt.Errorf("%w: invalid discount argument", ErrValidation)
	ErrInvalidRating      = fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
)

var (
	ErrReservationOverlap = fmt.Errorf("%w: caravan is already reserved for these dates", ErrConflict)
	ErrUsernameTaken      = fmt.Errorf("%w: username is already taken", ErrConflict)
	ErrPaymentExists      = fmt.Errorf("%w: reservation is already paid", ErrConflict)
)

var (
	ErrReservationVanished = fmt.Errorf("%w: reservation disappeared after payment", ErrInternal)
	ErrTrustNotRecorded    = fmt.Errorf("%w: trust score was not recorded", ErrInternal)
)
