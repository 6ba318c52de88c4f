package driverexpense

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"tms/internal/entities"
)

func isValidIdentity(identity entities.TripIdentity) bool {
	return identity.OrganizationID > 0 &&
		strings.TrimSpace(identity.OrderCode) != "" &&
		strings.TrimSpace(identity.TripCode) != ""
}

func validateEntities(items []entities.TripDriverExpenseEntity) error {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.DriverExpenseKey]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateExpenseKey, item.DriverExpenseKey)
		}
		seen[item.DriverExpenseKey] = struct{}{}

		if item.Amount.IsNegative() {
			return fmt.Errorf("%w: %s", ErrNegativeAmount, item.DriverExpenseKey)
		}
	}
	return nil
}

func validateExtraCosts(extra entities.ExtraCosts) error {
	for name, value := range map[string]decimal.NullDecimal{
		"subcontractorCost": extra.SubcontractorCost,
		"bridgeToll":        extra.BridgeToll,
		"otherCost":         extra.OtherCost,
	} {
		if value.Valid && value.Decimal.IsNegative() {
			return fmt.Errorf("%w: %s", ErrNegativeAmount, name)
		}
	}
	return nil
}
