package dto

import (
	"github.com/shopspring/decimal"
	"tms/internal/entities"
	"tms/internal/service/driverexpense"
)

type TripDriverExpenses struct {
	OrderCode         string                `json:"orderCode"`
	TripCode          string                `json:"tripCode"`
	DriverExpenseRate int                   `json:"driverExpenseRate"`
	Expenses          []DriverExpenseAmount `json:"expenses"`
	SubcontractorCost decimal.NullDecimal   `json:"subcontractorCost"`
	BridgeToll        decimal.NullDecimal   `json:"bridgeToll"`
	OtherCost         decimal.NullDecimal   `json:"otherCost"`
	Notes             *string               `json:"notes"`
	Discrepancy       Discrepancy           `json:"discrepancy"`
}

type DriverExpenseAmount struct {
	Key      string          `json:"key"`
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	IsSystem bool            `json:"isSystem"`
	Amount   decimal.Decimal `json:"amount"`
	Filled   bool            `json:"filled"`
}

type Discrepancy struct {
	RouteDerivedDriverCost decimal.Decimal `json:"routeDerivedDriverCost"`
	SumOfEffectiveExpenses decimal.Decimal `json:"sumOfEffectiveExpenses"`
	Difference             decimal.Decimal `json:"difference"`
	Warn                   bool            `json:"warn"`
}

// NewTripDriverExpenses раскладывает суммы по справочнику в порядке отображения.
// Ключи без суммы отдаются с нулем и Filled=false.
func NewTripDriverExpenses(r *driverexpense.Reconciliation) TripDriverExpenses {
	out := TripDriverExpenses{
		OrderCode:         r.Context.OrderCode,
		TripCode:          r.Context.Trip.Code,
		DriverExpenseRate: r.Rate,
		Expenses:          make([]DriverExpenseAmount, 0, len(r.Catalog)),
		SubcontractorCost: r.Expenses.Extra.SubcontractorCost,
		BridgeToll:        r.Expenses.Extra.BridgeToll,
		OtherCost:         r.Expenses.Extra.OtherCost,
		Notes:             r.Expenses.Extra.Notes,
		Discrepancy: Discrepancy{
			RouteDerivedDriverCost: r.Discrepancy.RouteDerivedDriverCost,
			SumOfEffectiveExpenses: r.Discrepancy.SumOfEffectiveExpenses,
			Difference:             r.Discrepancy.Difference,
			Warn:                   r.Discrepancy.Warn,
		},
	}
	for _, expense := range r.Catalog {
		amount, ok := r.Expenses.Expenses[expense.Key]
		out.Expenses = append(out.Expenses, DriverExpenseAmount{
			Key:      expense.Key,
			Name:     expense.Name,
			Type:     expense.Type.String(),
			IsSystem: expense.IsSystem,
			Amount:   amount,
			Filled:   ok,
		})
	}
	return out
}

func (r TripDriverExpensesRequest) ToUpdate(organizationID int64, tripCode string) entities.TripDriverExpensesUpdate {
	items := make([]entities.TripDriverExpenseEntity, 0, len(r.Entities))
	for _, e := range r.Entities {
		items = append(items, entities.TripDriverExpenseEntity{
			DriverExpenseKey: e.DriverExpenseKey,
			Amount:           e.Amount,
		})
	}
	return entities.TripDriverExpensesUpdate{
		Identity: entities.TripIdentity{
			OrganizationID: organizationID,
			OrderCode:      r.OrderCode,
			TripCode:       tripCode,
		},
		Entities: items,
		Extra: entities.ExtraCosts{
			SubcontractorCost: r.SubcontractorCost,
			BridgeToll:        r.BridgeToll,
			OtherCost:         r.OtherCost,
			Notes:             r.Notes,
		},
	}
}
