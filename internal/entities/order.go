package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID               int64
	Code             string
	Weight           decimal.NullDecimal
	CBM              decimal.NullDecimal
	Unit             *Unit
	Customer         *Customer
	Route            *Route
	ProcessForGroups []OrderGroupRef
	Trips            []OrderTrip
	CreatedAt        time.Time
}

type Unit struct {
	Code string
}

type Customer struct {
	ID   int64
	Code string
	Name string
}

type Route struct {
	ID                int64
	Code              string
	Name              string
	PickupPoints      []string
	DeliveryPoints    []string
	DriverExpenses    []RouteDriverExpense
	SubcontractorCost decimal.NullDecimal
	BridgeToll        decimal.NullDecimal
	OtherCost         decimal.NullDecimal
	Notes             *string
}

// UnitCode возвращает код единицы измерения или пустую строку.
func (o *Order) UnitCode() string {
	if o.Unit == nil {
		return ""
	}
	return o.Unit.Code
}
