package notification

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type NotificationDB struct {
	ID             uuid.UUID
	OrganizationID int64
	OrderGroupID   int64
	Type           string
	Payload        []byte
	CreatedAt      time.Time
}

// PayloadDB - содержимое колонки payload (jsonb).
type PayloadDB struct {
	OrderGroupID    int64           `json:"orderGroupId"`
	OrderGroupCode  string          `json:"orderGroupCode"`
	CurrentOrderIDs []int64         `json:"currentOrderIds"`
	OrganizationID  int64           `json:"organizationId"`
	FullName        string          `json:"fullName"`
	VehicleNumber   string          `json:"vehicleNumber,omitempty"`
	DriverID        *int64          `json:"driverId,omitempty"`
	DriverFullName  string          `json:"driverFullName,omitempty"`
	Weight          decimal.Decimal `json:"weight"`
	UnitOfMeasure   string          `json:"unitOfMeasure,omitempty"`
}
