//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driverexpense_test
package driverexpense

import (
	"context"

	"tms/internal/entities"
)

type Repository interface {
	GetTripExpenseContext(ctx context.Context, identity entities.TripIdentity) (*entities.TripExpenseContext, error)
	ListCatalog(ctx context.Context, organizationID int64) ([]entities.DriverExpense, error)

	ReplaceTripDriverExpenses(ctx context.Context, tripID int64, expenses []entities.TripDriverExpense) error
	UpdateTripExtraCosts(ctx context.Context, tripID int64, extra entities.ExtraCosts) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
