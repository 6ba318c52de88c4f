//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=action_handle_test
package action_handle

import (
	"context"

	"tms/internal/entities"
)

type OrderGroupMutator interface {
	InboundOrderGroup(ctx context.Context, cmd entities.InboundCommand) error
	SendOutboundOrdersToWarehouse(ctx context.Context, cmd entities.OutboundCommand) error
	UpdateTripStatus(ctx context.Context, cmd entities.TripStatusCommand) error
}

type NotificationSender interface {
	SendNotificationToOrderGroup(ctx context.Context, payload entities.NotificationPayload) (*entities.Notification, error)
}
