package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderTrip struct {
	ID                int64
	OrderID           int64
	Code              string
	Vehicle           *Vehicle
	Driver            *Driver
	PickupDate        *time.Time
	DeliveryDate      *time.Time
	LastStatusType    OrderTripStatusType
	Statuses          []OrderTripStatus
	Notes             *string
	DriverExpenses    []TripDriverExpense
	SubcontractorCost decimal.NullDecimal
	BridgeToll        decimal.NullDecimal
	OtherCost         decimal.NullDecimal
	UpdatedAt         time.Time
}

type OrderTripStatusType string

const (
	TripNew                     OrderTripStatusType = "NEW"
	TripPendingConfirmation     OrderTripStatusType = "PENDING_CONFIRMATION"
	TripConfirmed               OrderTripStatusType = "CONFIRMED"
	TripWaitingForPickup        OrderTripStatusType = "WAITING_FOR_PICKUP"
	TripWarehouseGoingToPickup  OrderTripStatusType = "WAREHOUSE_GOING_TO_PICKUP"
	TripWarehousePickedUp       OrderTripStatusType = "WAREHOUSE_PICKED_UP"
	TripWaitingForDelivery      OrderTripStatusType = "WAITING_FOR_DELIVERY"
	TripWarehouseGoingToDeliver OrderTripStatusType = "WAREHOUSE_GOING_TO_DELIVER"
	TripWarehouseDelivered      OrderTripStatusType = "WAREHOUSE_DELIVERED"
	TripDelivered               OrderTripStatusType = "DELIVERED"
	TripCompleted               OrderTripStatusType = "COMPLETED"
	TripCanceled                OrderTripStatusType = "CANCELED"
)

func (s OrderTripStatusType) String() string {
	return string(s)
}

type OrderTripStatus struct {
	ID           int64
	DriverReport DriverReport
	CreatedAt    time.Time
}

type DriverReport struct {
	Name string
	Type OrderTripStatusType
}

type Vehicle struct {
	ID            int64
	VehicleNumber string
	Type          *VehicleType
}

type VehicleType struct {
	ID                int64
	Name              string
	DriverExpenseRate *int
}

type Driver struct {
	ID          int64
	FirstName   string
	LastName    string
	PhoneNumber string
	UserID      *int64
}

func (d *Driver) FullName() string {
	switch {
	case d.LastName == "":
		return d.FirstName
	case d.FirstName == "":
		return d.LastName
	default:
		return d.LastName + " " + d.FirstName
	}
}
