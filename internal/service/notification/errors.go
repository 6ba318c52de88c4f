package notification

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrNoOrderGroupSelected  = errors.New("no order group selected")
	ErrOrderGroupNotFound    = errors.New("order group not found")
	ErrPublishFailed         = errors.New("publish notification event failed")
)
