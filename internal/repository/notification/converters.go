package notification

import (
	"encoding/json"
	"fmt"

	"tms/internal/entities"
)

func FromDomain(n *entities.Notification) (*NotificationDB, error) {
	payload, err := json.Marshal(PayloadDB{
		OrderGroupID:    n.Payload.OrderGroup.ID,
		OrderGroupCode:  n.Payload.OrderGroup.Code,
		CurrentOrderIDs: n.Payload.CurrentOrderIDs,
		OrganizationID:  n.Payload.OrganizationID,
		FullName:        n.Payload.FullName,
		VehicleNumber:   n.Payload.VehicleNumber,
		DriverID:        n.Payload.DriverID,
		DriverFullName:  n.Payload.DriverFullName,
		Weight:          n.Payload.Weight,
		UnitOfMeasure:   n.Payload.UnitOfMeasure,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal notification payload: %w", err)
	}

	return &NotificationDB{
		ID:             n.ID,
		OrganizationID: n.OrganizationID,
		OrderGroupID:   n.OrderGroupID,
		Type:           n.Type.String(),
		Payload:        payload,
		CreatedAt:      n.CreatedAt,
	}, nil
}

func ToDomain(n *NotificationDB) (*entities.Notification, error) {
	var p PayloadDB
	if err := json.Unmarshal(n.Payload, &p); err != nil {
		return nil, fmt.Errorf("unmarshal notification payload: %w", err)
	}

	return &entities.Notification{
		ID:             n.ID,
		OrganizationID: n.OrganizationID,
		OrderGroupID:   n.OrderGroupID,
		Type:           entities.NotificationType(n.Type),
		Payload: entities.NotificationPayload{
			OrderGroup:      entities.OrderGroupRef{ID: p.OrderGroupID, Code: p.OrderGroupCode},
			CurrentOrderIDs: p.CurrentOrderIDs,
			OrganizationID:  p.OrganizationID,
			FullName:        p.FullName,
			VehicleNumber:   p.VehicleNumber,
			DriverID:        p.DriverID,
			DriverFullName:  p.DriverFullName,
			Weight:          p.Weight,
			UnitOfMeasure:   p.UnitOfMeasure,
		},
		CreatedAt: n.CreatedAt,
	}, nil
}
