package notification

import (
	"strings"

	"github.com/shopspring/decimal"

	"tms/internal/entities"
)

// requestableTripStatuses - статусы рейсов, при которых водителю можно отправить запрос подтверждения.
var requestableTripStatuses = map[entities.OrderTripStatusType]struct{}{
	entities.TripNew:                 {},
	entities.TripPendingConfirmation: {},
}

// CanSendNotification разрешает отправку только если все рейсы всех заказов группы
// ещё не подтверждены водителем.
func CanSendNotification(group *entities.OrderGroup) bool {
	if group == nil || len(group.Orders) == 0 || len(group.Orders[0].Trips) == 0 {
		return false
	}

	for _, order := range group.Orders {
		for _, trip := range order.Trips {
			if _, ok := requestableTripStatuses[trip.LastStatusType]; !ok {
				return false
			}
		}
	}
	return true
}

// BuildNotificationPayload собирает данные уведомления за один проход по заказам группы.
// Машина и водитель берутся из первого заказа, у которого они есть.
func BuildNotificationPayload(group *entities.OrderGroup, user entities.ActingUser) entities.NotificationPayload {
	payload := entities.NotificationPayload{
		OrderGroup: entities.OrderGroupRef{
			ID:   group.ID,
			Code: group.Code,
		},
		CurrentOrderIDs: make([]int64, 0, len(group.Orders)),
		OrganizationID:  group.OrganizationID,
		FullName:        user.FullName,
		Weight:          decimal.Zero,
	}

	seenUnits := make(map[string]struct{})
	units := make([]string, 0, 1)
	driverFound := false

	for i := range group.Orders {
		order := &group.Orders[i]
		if order.ID > 0 {
			payload.CurrentOrderIDs = append(payload.CurrentOrderIDs, order.ID)
		}

		if order.Weight.Valid {
			payload.Weight = payload.Weight.Add(order.Weight.Decimal)
		}

		if code := order.UnitCode(); code != "" {
			if _, ok := seenUnits[code]; !ok {
				seenUnits[code] = struct{}{}
				units = append(units, code)
			}
		}

		if len(order.Trips) == 0 {
			continue
		}
		trip := order.Trips[0]

		if payload.VehicleNumber == "" && trip.Vehicle != nil && trip.Vehicle.VehicleNumber != "" {
			payload.VehicleNumber = trip.Vehicle.VehicleNumber
		}

		if !driverFound && trip.Driver != nil {
			driverFound = true
			driverID := trip.Driver.ID
			payload.DriverID = &driverID
			payload.DriverFullName = trip.Driver.FullName()
		}
	}

	payload.UnitOfMeasure = strings.Join(units, ", ")
	return payload
}
