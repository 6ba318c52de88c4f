//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ordergroup_test
package ordergroup

import (
	"context"

	"tms/internal/entities"
	"tms/pkg/logger"
)

type Repository interface {
	List(ctx context.Context, filter entities.OrderGroupFilter) ([]entities.OrderGroup, int64, error)
	CountByStatus(ctx context.Context, organizationID int64) ([]entities.OrderGroupStatusCount, error)
	GetByID(ctx context.Context, organizationID, orderGroupID int64) (*entities.OrderGroup, error)
	GetByTripCode(ctx context.Context, organizationID int64, tripCode string) (*entities.OrderGroup, error)
	GetVehicleByID(ctx context.Context, organizationID, vehicleID int64) (*entities.Vehicle, error)
	ListForStatusSync(ctx context.Context, statuses []entities.OrderGroupStatusType, limit int) ([]entities.OrderGroup, error)

	UpdateStatus(ctx context.Context, update entities.OrderGroupStatusUpdate) error
	CreateInboundOrder(ctx context.Context, cmd entities.InboundCommand) (*entities.Order, error)
	AppendTripStatus(ctx context.Context, cmd entities.TripStatusCommand) error
}

type Cache interface {
	ListKey(ctx context.Context, filter entities.OrderGroupFilter) (string, error)
	GetList(ctx context.Context, key string) (*entities.OrderGroupPage, bool, error)
	SetList(ctx context.Context, key string, page *entities.OrderGroupPage) error
	CountsKey(ctx context.Context, organizationID int64) (string, error)
	GetCounts(ctx context.Context, key string) ([]entities.OrderGroupStatusCount, bool, error)
	SetCounts(ctx context.Context, key string, counts []entities.OrderGroupStatusCount) error

	InvalidateCounts(ctx context.Context, organizationID int64) error
	InvalidateList(ctx context.Context, organizationID int64) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type (
	ExecuteFn      func(ctx context.Context, cmd Command) error
	HandlerFactory interface {
		GetHandler(action entities.OrderGroupAction) (ExecuteFn, error)
	}
)

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
