package driverexpense

import "tms/internal/entities"

func ToDomain(d *DriverExpenseDB) entities.DriverExpense {
	return entities.DriverExpense{
		ID:           d.ID,
		Key:          d.Key,
		Name:         d.Name,
		Type:         entities.DriverExpenseType(d.Type),
		IsSystem:     d.IsSystem,
		DisplayOrder: d.DisplayOrder,
	}
}

func ToContextDomain(organizationID int64, c *TripContextDB) *entities.TripExpenseContext {
	tc := &entities.TripExpenseContext{
		OrganizationID: organizationID,
		OrderID:        c.OrderID,
		OrderCode:      c.OrderCode,
		Trip: entities.OrderTrip{
			ID:                c.TripID,
			OrderID:           c.OrderID,
			Code:              c.TripCode,
			LastStatusType:    entities.OrderTripStatusType(c.TripLastStatusType),
			Notes:             c.Notes,
			SubcontractorCost: c.SubcontractorCost,
			BridgeToll:        c.BridgeToll,
			OtherCost:         c.OtherCost,
		},
	}

	if c.VehicleID != nil {
		tc.Trip.Vehicle = &entities.Vehicle{ID: *c.VehicleID}
		if c.VehicleNumber != nil {
			tc.Trip.Vehicle.VehicleNumber = *c.VehicleNumber
		}
		if c.VehicleTypeID != nil {
			tc.Trip.Vehicle.Type = &entities.VehicleType{
				ID:                *c.VehicleTypeID,
				DriverExpenseRate: c.DriverExpenseRate,
			}
		}
	}

	if c.RouteID != nil {
		tc.Route = &entities.Route{
			ID:                *c.RouteID,
			SubcontractorCost: c.RouteSubcontractorCost,
			BridgeToll:        c.RouteBridgeToll,
			OtherCost:         c.RouteOtherCost,
			Notes:             c.RouteNotes,
		}
		if c.RouteCode != nil {
			tc.Route.Code = *c.RouteCode
		}
		if c.RouteName != nil {
			tc.Route.Name = *c.RouteName
		}
	}

	return tc
}
