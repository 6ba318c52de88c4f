package ordergroup

import (
	"fmt"

	"tms/internal/entities"
	"tms/internal/service/notification"
)

// Selection - то, что пользователь выбрал перед действием. Диспетчер всегда возвращает пустую Selection.
type Selection struct {
	Group        *entities.OrderGroup
	Vehicle      *entities.Vehicle
	TripCode     string
	DriverReport *entities.DriverReport
	ActingUser   entities.ActingUser
}

// Command - запрос к мутации, собранный из Selection. Заполнено только поле текущего действия.
type Command struct {
	Action       entities.OrderGroupAction
	Inbound      *entities.InboundCommand
	Outbound     *entities.OutboundCommand
	Notification *entities.NotificationPayload
	TripStatus   *entities.TripStatusCommand
}

func (c Command) OrganizationID() int64 {
	switch {
	case c.Inbound != nil:
		return c.Inbound.OrganizationID
	case c.Outbound != nil:
		return c.Outbound.OrganizationID
	case c.Notification != nil:
		return c.Notification.OrganizationID
	case c.TripStatus != nil:
		return c.TripStatus.OrganizationID
	default:
		return 0
	}
}

func OnInbound(group *entities.OrderGroup, vehicle *entities.Vehicle) (entities.InboundCommand, error) {
	if group == nil {
		return entities.InboundCommand{}, ErrNoOrderGroupSelected
	}
	if vehicle == nil || vehicle.ID <= 0 {
		return entities.InboundCommand{}, ErrNoVehicleSelected
	}

	cmd := entities.InboundCommand{
		OrganizationID:    group.OrganizationID,
		OrderGroupID:      group.ID,
		OrderGroupCode:    group.Code,
		VehicleID:         vehicle.ID,
		ExpectedUpdatedAt: group.UpdatedAt,
	}
	if group.Warehouse != nil {
		warehouseID := group.Warehouse.ID
		cmd.WarehouseID = &warehouseID
	}
	return cmd, nil
}

func OnOutbound(group *entities.OrderGroup) (entities.OutboundCommand, error) {
	if group == nil {
		return entities.OutboundCommand{}, ErrNoOrderGroupSelected
	}

	orderIDs := make([]int64, 0, len(group.Orders))
	for i := range group.Orders {
		if IsInboundConsolidationOrder(&group.Orders[i]) {
			continue
		}
		orderIDs = append(orderIDs, group.Orders[i].ID)
	}

	return entities.OutboundCommand{
		OrganizationID:    group.OrganizationID,
		OrderGroupID:      group.ID,
		OrderGroupCode:    group.Code,
		OrderIDs:          orderIDs,
		ExpectedUpdatedAt: group.UpdatedAt,
	}, nil
}

func OnUpdateTripStatus(group *entities.OrderGroup, tripCode string, report *entities.DriverReport) (entities.TripStatusCommand, error) {
	if group == nil {
		return entities.TripStatusCommand{}, ErrNoOrderGroupSelected
	}
	if tripCode == "" || report == nil {
		return entities.TripStatusCommand{}, ErrNoTripSelected
	}

	trip := FindTrip(group, tripCode)
	if trip == nil {
		return entities.TripStatusCommand{}, fmt.Errorf("%w: %s", ErrTripNotFound, tripCode)
	}

	return entities.TripStatusCommand{
		OrganizationID: group.OrganizationID,
		OrderGroupID:   group.ID,
		TripID:         trip.ID,
		TripCode:       trip.Code,
		DriverReport:   *report,
	}, nil
}

func FindTrip(group *entities.OrderGroup, tripCode string) *entities.OrderTrip {
	for i := range group.Orders {
		for j := range group.Orders[i].Trips {
			if group.Orders[i].Trips[j].Code == tripCode {
				return &group.Orders[i].Trips[j]
			}
		}
	}
	return nil
}

// BuildCommand собирает запрос к мутации. Ошибка означает, что мутацию вызывать нельзя.
func BuildCommand(action entities.OrderGroupAction, sel Selection) (Command, error) {
	if sel.Group == nil {
		return Command{}, ErrNoOrderGroupSelected
	}
	if !IsActionAvailable(sel.Group, action) {
		return Command{}, fmt.Errorf("%w: %s in status %s", ErrActionNotAvailable, action, sel.Group.LastStatusType)
	}

	cmd := Command{Action: action}
	switch action {
	case entities.ActionInbound:
		inbound, err := OnInbound(sel.Group, sel.Vehicle)
		if err != nil {
			return Command{}, err
		}
		cmd.Inbound = &inbound
	case entities.ActionOutbound:
		outbound, err := OnOutbound(sel.Group)
		if err != nil {
			return Command{}, err
		}
		cmd.Outbound = &outbound
	case entities.ActionSendNotification:
		payload := notification.BuildNotificationPayload(sel.Group, sel.ActingUser)
		cmd.Notification = &payload
	case entities.ActionUpdateTripStatus:
		tripStatus, err := OnUpdateTripStatus(sel.Group, sel.TripCode, sel.DriverReport)
		if err != nil {
			return Command{}, err
		}
		cmd.TripStatus = &tripStatus
	default:
		return Command{}, fmt.Errorf("%w: %s", ErrUndefinedAction, action)
	}
	return cmd, nil
}
