package ordergroup

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderGroupDB struct {
	ID                 int64
	OrganizationID     int64
	Code               string
	LastStatusType     string
	WarehouseID        *int64
	WarehouseCode      *string
	WarehouseName      *string
	ProcessByOrderID   *int64
	ProcessByOrderCode *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type OrderDB struct {
	ID                     int64
	OrderGroupID           int64
	Code                   string
	Weight                 decimal.NullDecimal
	CBM                    decimal.NullDecimal
	UnitCode               *string
	CustomerID             *int64
	CustomerCode           *string
	CustomerName           *string
	RouteID                *int64
	RouteCode              *string
	RouteName              *string
	RoutePickupPoints      []string
	RouteDeliveryPoints    []string
	RouteSubcontractorCost decimal.NullDecimal
	RouteBridgeToll        decimal.NullDecimal
	RouteOtherCost         decimal.NullDecimal
	RouteNotes             *string
	CreatedAt              time.Time
}

type ProcessGroupDB struct {
	OrderID   int64
	GroupID   int64
	GroupCode string
}

type TripDB struct {
	ID                int64
	OrderID           int64
	Code              string
	VehicleID         *int64
	VehicleNumber     *string
	VehicleTypeID     *int64
	VehicleTypeName   *string
	DriverExpenseRate *int
	DriverID          *int64
	DriverFirstName   *string
	DriverLastName    *string
	DriverPhoneNumber *string
	DriverUserID      *int64
	PickupDate        *time.Time
	DeliveryDate      *time.Time
	LastStatusType    string
	Notes             *string
	SubcontractorCost decimal.NullDecimal
	BridgeToll        decimal.NullDecimal
	OtherCost         decimal.NullDecimal
	UpdatedAt         time.Time
}

type TripStatusDB struct {
	ID               int64
	TripID           int64
	DriverReportName string
	DriverReportType string
	CreatedAt        time.Time
}

type VehicleDB struct {
	ID                int64
	VehicleNumber     string
	VehicleTypeID     *int64
	VehicleTypeName   *string
	DriverExpenseRate *int
}
