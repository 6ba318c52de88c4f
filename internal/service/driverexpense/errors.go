package driverexpense

import "errors"

var (
	// ErrMissingTripIdentity - не хватает организации, заказа или рейса. До базы не доходит.
	ErrMissingTripIdentity = errors.New("missing organization, order code or trip code")

	ErrUnknownExpenseKey   = errors.New("unknown driver expense key")
	ErrDuplicateExpenseKey = errors.New("duplicate driver expense key")
	ErrNegativeAmount      = errors.New("amount must not be negative")
	ErrInvalidResetScope   = errors.New("invalid reset scope")

	ErrTripNotFound = errors.New("trip not found")
)
