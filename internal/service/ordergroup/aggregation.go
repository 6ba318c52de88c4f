package ordergroup

import (
	"strings"

	"github.com/shopspring/decimal"

	"tms/internal/entities"
)

type UnitQuantity struct {
	UnitCode string
	Weight   decimal.Decimal
}

// AggregateQuantity суммирует вес по единицам измерения в порядке их первого появления.
// Заказы без единицы измерения пропускаются.
func AggregateQuantity(orders []entities.Order) []UnitQuantity {
	positions := make(map[string]int)
	result := make([]UnitQuantity, 0, 1)

	for i := range orders {
		code := orders[i].UnitCode()
		if code == "" {
			continue
		}

		weight := decimal.Zero
		if orders[i].Weight.Valid {
			weight = orders[i].Weight.Decimal
		}

		if pos, ok := positions[code]; ok {
			result[pos].Weight = result[pos].Weight.Add(weight)
			continue
		}
		positions[code] = len(result)
		result = append(result, UnitQuantity{UnitCode: code, Weight: weight})
	}
	return result
}

// FormatQuantity: "150 KG, 2 TON". Пустая строка, если единиц нет.
func FormatQuantity(quantities []UnitQuantity) string {
	parts := make([]string, 0, len(quantities))
	for _, q := range quantities {
		parts = append(parts, FormatNumber(q.Weight)+" "+q.UnitCode)
	}
	return strings.Join(parts, ", ")
}

func AggregateCbm(orders []entities.Order) decimal.Decimal {
	total := decimal.Zero
	for i := range orders {
		if orders[i].CBM.Valid {
			total = total.Add(orders[i].CBM.Decimal)
		}
	}
	return total
}

func RoundCbm(cbm decimal.Decimal) decimal.Decimal {
	return cbm.Round(2)
}

type Summary struct {
	Actions  []entities.OrderGroupAction
	Quantity string
	CBM      decimal.Decimal
}

func Summarize(group *entities.OrderGroup) Summary {
	if group == nil {
		return Summary{}
	}
	return Summary{
		Actions:  AvailableActions(group),
		Quantity: FormatQuantity(AggregateQuantity(group.Orders)),
		CBM:      RoundCbm(AggregateCbm(group.Orders)),
	}
}
