//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=trip_status_changed_test
package trip_status_changed

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
	ProcessTripStatusChange(ctx context.Context, organizationID int64, tripCode string, report entities.DriverReport) (*entities.OrderGroup, error)
}
