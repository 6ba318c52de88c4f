package ordergroup

import "tms/internal/entities"

func ToDomain(g *OrderGroupDB) *entities.OrderGroup {
	if g == nil {
		return nil
	}
	group := &entities.OrderGroup{
		ID:             g.ID,
		OrganizationID: g.OrganizationID,
		Code:           g.Code,
		LastStatusType: entities.OrderGroupStatusType(g.LastStatusType),
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
	if g.WarehouseID != nil {
		group.Warehouse = &entities.Warehouse{
			ID:   *g.WarehouseID,
			Code: deref(g.WarehouseCode),
			Name: deref(g.WarehouseName),
		}
	}
	if g.ProcessByOrderID != nil {
		group.ProcessByOrder = &entities.OrderRef{
			ID:   *g.ProcessByOrderID,
			Code: deref(g.ProcessByOrderCode),
		}
	}
	return group
}

func ToOrderDomain(o *OrderDB) entities.Order {
	order := entities.Order{
		ID:        o.ID,
		Code:      o.Code,
		Weight:    o.Weight,
		CBM:       o.CBM,
		CreatedAt: o.CreatedAt,
	}
	if o.UnitCode != nil && *o.UnitCode != "" {
		order.Unit = &entities.Unit{Code: *o.UnitCode}
	}
	if o.CustomerID != nil {
		order.Customer = &entities.Customer{
			ID:   *o.CustomerID,
			Code: deref(o.CustomerCode),
			Name: deref(o.CustomerName),
		}
	}
	if o.RouteID != nil {
		order.Route = &entities.Route{
			ID:                *o.RouteID,
			Code:              deref(o.RouteCode),
			Name:              deref(o.RouteName),
			PickupPoints:      o.RoutePickupPoints,
			DeliveryPoints:    o.RouteDeliveryPoints,
			SubcontractorCost: o.RouteSubcontractorCost,
			BridgeToll:        o.RouteBridgeToll,
			OtherCost:         o.RouteOtherCost,
			Notes:             o.RouteNotes,
		}
	}
	return order
}

func ToTripDomain(t *TripDB) entities.OrderTrip {
	trip := entities.OrderTrip{
		ID:                t.ID,
		OrderID:           t.OrderID,
		Code:              t.Code,
		PickupDate:        t.PickupDate,
		DeliveryDate:      t.DeliveryDate,
		LastStatusType:    entities.OrderTripStatusType(t.LastStatusType),
		Notes:             t.Notes,
		SubcontractorCost: t.SubcontractorCost,
		BridgeToll:        t.BridgeToll,
		OtherCost:         t.OtherCost,
		UpdatedAt:         t.UpdatedAt,
	}
	if t.VehicleID != nil {
		trip.Vehicle = &entities.Vehicle{
			ID:            *t.VehicleID,
			VehicleNumber: deref(t.VehicleNumber),
		}
		if t.VehicleTypeID != nil {
			trip.Vehicle.Type = &entities.VehicleType{
				ID:                *t.VehicleTypeID,
				Name:              deref(t.VehicleTypeName),
				DriverExpenseRate: t.DriverExpenseRate,
			}
		}
	}
	if t.DriverID != nil {
		trip.Driver = &entities.Driver{
			ID:          *t.DriverID,
			FirstName:   deref(t.DriverFirstName),
			LastName:    deref(t.DriverLastName),
			PhoneNumber: deref(t.DriverPhoneNumber),
			UserID:      t.DriverUserID,
		}
	}
	return trip
}

func ToTripStatusDomain(s *TripStatusDB) entities.OrderTripStatus {
	return entities.OrderTripStatus{
		ID: s.ID,
		DriverReport: entities.DriverReport{
			Name: s.DriverReportName,
			Type: entities.OrderTripStatusType(s.DriverReportType),
		},
		CreatedAt: s.CreatedAt,
	}
}

func ToVehicleDomain(v *VehicleDB) *entities.Vehicle {
	if v == nil {
		return nil
	}
	vehicle := &entities.Vehicle{
		ID:            v.ID,
		VehicleNumber: v.VehicleNumber,
	}
	if v.VehicleTypeID != nil {
		vehicle.Type = &entities.VehicleType{
			ID:                *v.VehicleTypeID,
			Name:              deref(v.VehicleTypeName),
			DriverExpenseRate: v.DriverExpenseRate,
		}
	}
	return vehicle
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
