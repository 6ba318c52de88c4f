package ordergroup

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidTransition     = errors.New("invalid order group status transition")
	ErrInvalidTripStatus     = errors.New("invalid trip status")
	ErrInvalidStatus         = errors.New("invalid order group status")
	ErrUndefinedAction       = errors.New("undefined order group action")
	ErrActionNotAvailable    = errors.New("action is not available for order group")

	ErrNoOrderGroupSelected = errors.New("no order group selected")
	ErrNoVehicleSelected    = errors.New("no vehicle selected")
	ErrNoTripSelected       = errors.New("no trip selected")

	ErrOrderGroupNotFound = errors.New("order group not found")
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrTripNotFound       = errors.New("trip not found")

	// ErrExclusive - группа изменилась после того, как её прочитали.
	ErrExclusive = errors.New("order group was modified by another user")
)
