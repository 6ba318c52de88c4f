package entities

import "github.com/shopspring/decimal"

type DriverExpense struct {
	ID           int64
	Key          string
	Name         string
	Type         DriverExpenseType
	IsSystem     bool
	DisplayOrder int
}

type DriverExpenseType string

const (
	DriverExpenseDriverCost DriverExpenseType = "DRIVER_COST"
	DriverExpenseFuel       DriverExpenseType = "FUEL_COST"
	DriverExpenseRoadToll   DriverExpenseType = "ROAD_TOLL"
	DriverExpenseOther      DriverExpenseType = "OTHER"
)

func (t DriverExpenseType) String() string {
	return string(t)
}

type RouteDriverExpense struct {
	DriverExpense DriverExpense
	Amount        decimal.Decimal
}

type TripDriverExpense struct {
	DriverExpense DriverExpense
	Amount        decimal.Decimal
}

// ExpenseAmounts - суммы расходов по DriverExpense.Key.
type ExpenseAmounts map[string]decimal.Decimal

// ExtraCosts - дополнительные расходы рейса, которые не входят в справочник.
type ExtraCosts struct {
	SubcontractorCost decimal.NullDecimal
	BridgeToll        decimal.NullDecimal
	OtherCost         decimal.NullDecimal
	Notes             *string
}

type TripDriverExpenses struct {
	Expenses ExpenseAmounts
	Extra    ExtraCosts
}

type DriverCostDiscrepancy struct {
	RouteDerivedDriverCost decimal.Decimal
	SumOfEffectiveExpenses decimal.Decimal
	Difference             decimal.Decimal
	Warn                   bool
}

// TripExpenseContext - рейс вместе с маршрутом заказа, из которого берутся шаблонные расходы.
type TripExpenseContext struct {
	OrganizationID int64
	OrderID        int64
	OrderCode      string
	Route          *Route
	Trip           OrderTrip
}

type TripIdentity struct {
	OrganizationID int64
	OrderCode      string
	TripCode       string
}

type TripDriverExpenseEntity struct {
	DriverExpenseKey string
	Amount           decimal.Decimal
}

type TripDriverExpensesUpdate struct {
	Identity TripIdentity
	Entities []TripDriverExpenseEntity
	Extra    ExtraCosts
}
