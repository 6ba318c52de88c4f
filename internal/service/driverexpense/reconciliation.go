package driverexpense

import (
	"github.com/shopspring/decimal"

	"tms/internal/entities"
)

const defaultDriverExpenseRate = 100

var hundred = decimal.NewFromInt(100)

// DriverExpenseRate - процент от шаблонной стоимости водителя для типа машины рейса.
func DriverExpenseRate(trip *entities.OrderTrip) int {
	if trip == nil || trip.Vehicle == nil || trip.Vehicle.Type == nil || trip.Vehicle.Type.DriverExpenseRate == nil {
		return defaultDriverExpenseRate
	}
	return *trip.Vehicle.Type.DriverExpenseRate
}

func adjustedAmount(expense entities.RouteDriverExpense, rate int) decimal.Decimal {
	if expense.DriverExpense.Type != entities.DriverExpenseDriverCost || rate == defaultDriverExpenseRate {
		return expense.Amount
	}
	return expense.Amount.Mul(decimal.NewFromInt(int64(rate))).Div(hundred)
}

// TemplateExpenses - расходы маршрута с учётом ставки. Корректируется только DRIVER_COST.
func TemplateExpenses(route *entities.Route, rate int) entities.ExpenseAmounts {
	amounts := make(entities.ExpenseAmounts)
	if route == nil {
		return amounts
	}
	for _, expense := range route.DriverExpenses {
		amounts[expense.DriverExpense.Key] = adjustedAmount(expense, rate)
	}
	return amounts
}

func tripOverrides(trip *entities.OrderTrip) entities.ExpenseAmounts {
	amounts := make(entities.ExpenseAmounts, len(trip.DriverExpenses))
	for _, expense := range trip.DriverExpenses {
		amounts[expense.DriverExpense.Key] = expense.Amount
	}
	return amounts
}

// EffectiveExpenses: если у рейса есть хоть один свой расход, берутся только они и без ставки.
// Иначе расходы маршрута со ставкой.
func EffectiveExpenses(tc *entities.TripExpenseContext) entities.TripDriverExpenses {
	var expenses entities.ExpenseAmounts
	if len(tc.Trip.DriverExpenses) > 0 {
		expenses = tripOverrides(&tc.Trip)
	} else {
		expenses = TemplateExpenses(tc.Route, DriverExpenseRate(&tc.Trip))
	}

	return entities.TripDriverExpenses{
		Expenses: expenses,
		Extra:    extraCosts(tc, false),
	}
}

// ResetToRouteDefaults при полном сбросе забывает всё, что задано у рейса.
// При частичном оставляет расходы рейса и дополняет недостающие ключи из маршрута.
func ResetToRouteDefaults(tc *entities.TripExpenseContext, isFullReset bool) entities.TripDriverExpenses {
	template := TemplateExpenses(tc.Route, DriverExpenseRate(&tc.Trip))
	if isFullReset {
		return entities.TripDriverExpenses{
			Expenses: template,
			Extra:    extraCosts(tc, true),
		}
	}

	expenses := tripOverrides(&tc.Trip)
	for key, amount := range template {
		if _, ok := expenses[key]; !ok {
			expenses[key] = amount
		}
	}

	return entities.TripDriverExpenses{
		Expenses: expenses,
		Extra:    extraCosts(tc, false),
	}
}

func extraCosts(tc *entities.TripExpenseContext, fromRoute bool) entities.ExtraCosts {
	route := tc.Route
	if route == nil {
		route = &entities.Route{}
	}

	pick := func(trip, template decimal.NullDecimal) decimal.NullDecimal {
		if !fromRoute && trip.Valid {
			return trip
		}
		return template
	}

	notes := route.Notes
	if !fromRoute && tc.Trip.Notes != nil {
		notes = tc.Trip.Notes
	}

	return entities.ExtraCosts{
		SubcontractorCost: pick(tc.Trip.SubcontractorCost, route.SubcontractorCost),
		BridgeToll:        pick(tc.Trip.BridgeToll, route.BridgeToll),
		OtherCost:         pick(tc.Trip.OtherCost, route.OtherCost),
		Notes:             notes,
	}
}

// DriverCostDiscrepancy сравнивает расходы маршрута со ставкой и действующие расходы рейса
// по ключам справочника. Предупреждение только когда обе суммы ненулевые и различаются.
func DriverCostDiscrepancy(tc *entities.TripExpenseContext, catalog []entities.DriverExpense) entities.DriverCostDiscrepancy {
	routeDerived := decimal.Zero
	for _, amount := range TemplateExpenses(tc.Route, DriverExpenseRate(&tc.Trip)) {
		routeDerived = routeDerived.Add(amount)
	}

	effective := EffectiveExpenses(tc).Expenses
	sumEffective := decimal.Zero
	for _, expense := range catalog {
		if amount, ok := effective[expense.Key]; ok {
			sumEffective = sumEffective.Add(amount)
		}
	}

	difference := routeDerived.Sub(sumEffective).Abs()

	return entities.DriverCostDiscrepancy{
		RouteDerivedDriverCost: routeDerived,
		SumOfEffectiveExpenses: sumEffective,
		Difference:             difference,
		Warn:                   !routeDerived.IsZero() && !sumEffective.IsZero() && !difference.IsZero(),
	}
}
