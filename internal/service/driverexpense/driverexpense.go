package driverexpense

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"tms/internal/entities"
)

type ResetScope string

const (
	ResetNone    ResetScope = "none"
	ResetPartial ResetScope = "partial"
	ResetFull    ResetScope = "full"
)

func ParseResetScope(value string) (ResetScope, error) {
	switch scope := ResetScope(strings.ToLower(strings.TrimSpace(value))); scope {
	case "", ResetNone:
		return ResetNone, nil
	case ResetPartial, ResetFull:
		return scope, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidResetScope, value)
	}
}

// Reconciliation - всё, что нужно форме расходов рейса.
type Reconciliation struct {
	Context     *entities.TripExpenseContext
	Catalog     []entities.DriverExpense
	Rate        int
	Expenses    entities.TripDriverExpenses
	Discrepancy entities.DriverCostDiscrepancy
}

type Service struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Service {
	return &Service{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Service) GetTripDriverExpenses(
	ctx context.Context,
	identity entities.TripIdentity,
	scope ResetScope,
) (*Reconciliation, error) {
	if !isValidIdentity(identity) {
		return nil, ErrMissingTripIdentity
	}

	tc, err := s.repository.GetTripExpenseContext(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("get trip expense context: %w", err)
	}

	catalog, err := s.repository.ListCatalog(ctx, identity.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("list driver expense catalog: %w", err)
	}

	var expenses entities.TripDriverExpenses
	switch scope {
	case ResetFull:
		expenses = ResetToRouteDefaults(tc, true)
	case ResetPartial:
		expenses = ResetToRouteDefaults(tc, false)
	default:
		expenses = EffectiveExpenses(tc)
	}

	return &Reconciliation{
		Context:     tc,
		Catalog:     catalog,
		Rate:        DriverExpenseRate(&tc.Trip),
		Expenses:    expenses,
		Discrepancy: DriverCostDiscrepancy(tc, catalog),
	}, nil
}

// UpdateTripDriverExpenses заменяет расходы рейса и дополнительные затраты одной транзакцией.
func (s *Service) UpdateTripDriverExpenses(ctx context.Context, update entities.TripDriverExpensesUpdate) error {
	if !isValidIdentity(update.Identity) {
		return ErrMissingTripIdentity
	}
	if err := validateEntities(update.Entities); err != nil {
		return err
	}
	if err := validateExtraCosts(update.Extra); err != nil {
		return err
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		tc, err := s.repository.GetTripExpenseContext(ctx, update.Identity)
		if err != nil {
			return fmt.Errorf("get trip expense context: %w", err)
		}

		catalog, err := s.repository.ListCatalog(ctx, update.Identity.OrganizationID)
		if err != nil {
			return fmt.Errorf("list driver expense catalog: %w", err)
		}

		expenses, err := resolveEntities(update.Entities, catalog)
		if err != nil {
			return err
		}

		if err := s.repository.ReplaceTripDriverExpenses(ctx, tc.Trip.ID, expenses); err != nil {
			return fmt.Errorf("replace trip driver expenses: %w", err)
		}

		if err := s.repository.UpdateTripExtraCosts(ctx, tc.Trip.ID, update.Extra); err != nil {
			return fmt.Errorf("update trip extra costs: %w", err)
		}
		return nil
	})
}

// resolveEntities связывает ключи со справочником и сортирует по порядку отображения.
func resolveEntities(
	items []entities.TripDriverExpenseEntity,
	catalog []entities.DriverExpense,
) ([]entities.TripDriverExpense, error) {
	byKey := make(map[string]entities.DriverExpense, len(catalog))
	for _, expense := range catalog {
		byKey[expense.Key] = expense
	}

	expenses := make([]entities.TripDriverExpense, 0, len(items))
	for _, item := range items {
		expense, ok := byKey[item.DriverExpenseKey]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownExpenseKey, item.DriverExpenseKey)
		}
		expenses = append(expenses, entities.TripDriverExpense{
			DriverExpense: expense,
			Amount:        item.Amount,
		})
	}

	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].DriverExpense.DisplayOrder < expenses[j].DriverExpense.DisplayOrder
	})
	return expenses, nil
}
