//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=trip_driver_expenses_put_test
package trip_driver_expenses_put

import (
	"context"

	"tms/internal/entities"
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
	UpdateTripDriverExpenses(ctx context.Context, update entities.TripDriverExpensesUpdate) error
}
