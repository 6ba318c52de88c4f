//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=trip_driver_expenses_get_test
package trip_driver_expenses_get

import (
	"context"

	"tms/internal/entities"
	"tms/internal/service/driverexpense"
	"tms/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetTripDriverExpenses(ctx context.Context, identity entities.TripIdentity, scope driverexpense.ResetScope) (*driverexpense.Reconciliation, error)
}
