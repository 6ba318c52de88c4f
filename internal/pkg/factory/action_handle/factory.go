package action_handle

import (
	"context"
	"fmt"

	"tms/internal/entities"
	"tms/internal/service/ordergroup"
)

type ActionHandlerFactory struct {
	mutator OrderGroupMutator
	sender  NotificationSender
}

func NewActionHandlerFactory(mutator OrderGroupMutator, sender NotificationSender) *ActionHandlerFactory {
	return &ActionHandlerFactory{
		mutator: mutator,
		sender:  sender,
	}
}

func (f *ActionHandlerFactory) GetHandler(action entities.OrderGroupAction) (ordergroup.ExecuteFn, error) {
	switch action {
	case entities.ActionInbound:
		return f.inboundHandler, nil
	case entities.ActionOutbound:
		return f.outboundHandler, nil
	case entities.ActionSendNotification:
		return f.notificationHandler, nil
	case entities.ActionUpdateTripStatus:
		return f.tripStatusHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", ordergroup.ErrUndefinedAction, action)
	}
}

func (f *ActionHandlerFactory) inboundHandler(ctx context.Context, cmd ordergroup.Command) error {
	if cmd.Inbound == nil {
		return ordergroup.ErrMissingRequiredFields
	}
	if err := f.mutator.InboundOrderGroup(ctx, *cmd.Inbound); err != nil {
		return fmt.Errorf("inbound order group %s: %w", cmd.Inbound.OrderGroupCode, err)
	}
	return nil
}

func (f *ActionHandlerFactory) outboundHandler(ctx context.Context, cmd ordergroup.Command) error {
	if cmd.Outbound == nil {
		return ordergroup.ErrMissingRequiredFields
	}
	if err := f.mutator.SendOutboundOrdersToWarehouse(ctx, *cmd.Outbound); err != nil {
		return fmt.Errorf("send outbound orders of group %s: %w", cmd.Outbound.OrderGroupCode, err)
	}
	return nil
}

func (f *ActionHandlerFactory) notificationHandler(ctx context.Context, cmd ordergroup.Command) error {
	if cmd.Notification == nil {
		return ordergroup.ErrMissingRequiredFields
	}
	if _, err := f.sender.SendNotificationToOrderGroup(ctx, *cmd.Notification); err != nil {
		return fmt.Errorf("send notification to group %s: %w", cmd.Notification.OrderGroup.Code, err)
	}
	return nil
}

func (f *ActionHandlerFactory) tripStatusHandler(ctx context.Context, cmd ordergroup.Command) error {
	if cmd.TripStatus == nil {
		return ordergroup.ErrMissingRequiredFields
	}
	if err := f.mutator.UpdateTripStatus(ctx, *cmd.TripStatus); err != nil {
		return fmt.Errorf("update trip %s status: %w", cmd.TripStatus.TripCode, err)
	}
	return nil
}
