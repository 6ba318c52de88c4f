package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ActingUser struct {
	ID       *int64
	FullName string
}

type NotificationPayload struct {
	OrderGroup      OrderGroupRef
	CurrentOrderIDs []int64
	OrganizationID  int64
	FullName        string
	VehicleNumber   string
	DriverID        *int64
	DriverFullName  string
	Weight          decimal.Decimal
	UnitOfMeasure   string
}

type Notification struct {
	ID             uuid.UUID
	OrganizationID int64
	OrderGroupID   int64
	Type           NotificationType
	Payload        NotificationPayload
	CreatedAt      time.Time
}

type NotificationType string

const (
	NotificationRequestConfirmation NotificationType = "REQUEST_CONFIRMATION"
)

func (t NotificationType) String() string {
	return string(t)
}
