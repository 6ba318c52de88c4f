//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_group_get_test
package order_group_get

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
	GetOrderGroup(ctx context.Context, organizationID, orderGroupID int64) (*entities.OrderGroup, error)
}
