package driverexpense

import "github.com/shopspring/decimal"

type DriverExpenseDB struct {
	ID           int64
	Key          string
	Name         string
	Type         string
	IsSystem     bool
	DisplayOrder int
}

type ExpenseAmountDB struct {
	DriverExpenseDB
	Amount decimal.Decimal
}

type TripContextDB struct {
	OrderID                int64
	OrderCode              string
	TripID                 int64
	TripCode               string
	TripLastStatusType     string
	VehicleID              *int64
	VehicleNumber          *string
	VehicleTypeID          *int64
	DriverExpenseRate      *int
	Notes                  *string
	SubcontractorCost      decimal.NullDecimal
	BridgeToll             decimal.NullDecimal
	OtherCost              decimal.NullDecimal
	RouteID                *int64
	RouteCode              *string
	RouteName              *string
	RouteSubcontractorCost decimal.NullDecimal
	RouteBridgeToll        decimal.NullDecimal
	RouteOtherCost         decimal.NullDecimal
	RouteNotes             *string
}
