package notification

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"tms/internal/entities"
)

type requestedEvent struct {
	EventID         string          `json:"eventId"`
	NotificationID  string          `json:"notificationId"`
	Type            string          `json:"type"`
	OrganizationID  int64           `json:"organizationId"`
	OrderGroupID    int64           `json:"orderGroupId"`
	OrderGroupCode  string          `json:"orderGroupCode"`
	CurrentOrderIDs []int64         `json:"currentOrderIds"`
	FullName        string          `json:"fullName"`
	VehicleNumber   string          `json:"vehicleNumber,omitempty"`
	DriverID        *int64          `json:"driverId,omitempty"`
	DriverFullName  string          `json:"driverFullName,omitempty"`
	Weight          decimal.Decimal `json:"weight"`
	UnitOfMeasure   string          `json:"unitOfMeasure"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func marshalRequestedEvent(eventID string, n *entities.Notification) ([]byte, error) {
	return json.Marshal(requestedEvent{
		EventID:         eventID,
		NotificationID:  n.ID.String(),
		Type:            n.Type.String(),
		OrganizationID:  n.OrganizationID,
		OrderGroupID:    n.OrderGroupID,
		OrderGroupCode:  n.Payload.OrderGroup.Code,
		CurrentOrderIDs: n.Payload.CurrentOrderIDs,
		FullName:        n.Payload.FullName,
		VehicleNumber:   n.Payload.VehicleNumber,
		DriverID:        n.Payload.DriverID,
		DriverFullName:  n.Payload.DriverFullName,
		Weight:          n.Payload.Weight,
		UnitOfMeasure:   n.Payload.UnitOfMeasure,
		CreatedAt:       n.CreatedAt,
	})
}
