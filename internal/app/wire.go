//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"tms/internal/cache/rediscache"
	"tms/internal/pkg/config"
	"tms/internal/pkg/factory/action_handle"
	"tms/internal/pkg/kafka"
	notificationRepo "tms/internal/repository/notification"
	orderGroupRepo "tms/internal/repository/ordergroup"
	notificationService "tms/internal/service/notification"
	orderGroupService "tms/internal/service/ordergroup"
	"tms/pkg/logger"
	"tms/pkg/tx"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cache *rediscache.RedisCache,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		domainSet,

		provideDriverExpenseRepository,
		provideDriverExpenseService,

		provideGroupStatusSyncTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-trip-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cache *rediscache.RedisCache,
	producer *kafka.Producer,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		domainSet,
		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

var domainSet = wire.NewSet(
	provideTxManager,
	provideQuerier,

	provideOrderGroupRepository,
	provideNotificationRepository,

	provideMutations,
	provideNotificationService,
	provideActionHandlerFactory,
	provideOrderGroupService,

	wire.Bind(new(orderGroupService.Repository), new(*orderGroupRepo.Repository)),
	wire.Bind(new(orderGroupService.Cache), new(*rediscache.RedisCache)),
	wire.Bind(new(orderGroupService.TxManager), new(*tx.Manager)),
	wire.Bind(new(orderGroupService.HandlerFactory), new(*action_handle.ActionHandlerFactory)),
	wire.Bind(new(notificationService.Repository), new(*notificationRepo.Repository)),
	wire.Bind(new(notificationService.Publisher), new(*kafka.Producer)),
	wire.Bind(new(notificationService.TxManager), new(*tx.Manager)),
	wire.Bind(new(action_handle.OrderGroupMutator), new(*orderGroupService.Mutations)),
	wire.Bind(new(action_handle.NotificationSender), new(*notificationService.Service)),
)
