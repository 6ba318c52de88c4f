//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=trip_status_post_test
package trip_status_post

import (
	"context"

	"tms/internal/entities"
	"tms/internal/service/ordergroup"
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
	SelectAndDispatch(ctx context.Context, action entities.OrderGroupAction, req ordergroup.ActionRequest) (entities.Notice, error)
}
