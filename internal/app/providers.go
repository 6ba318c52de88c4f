package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"tms/internal/handlers/tasks/group_status_sync"
	"tms/internal/pkg/config"
	"tms/internal/pkg/factory/action_handle"
	driverExpenseRepo "tms/internal/repository/driverexpense"
	notificationRepo "tms/internal/repository/notification"
	orderGroupRepo "tms/internal/repository/ordergroup"
	driverExpenseService "tms/internal/service/driverexpense"
	notificationService "tms/internal/service/notification"
	orderGroupService "tms/internal/service/ordergroup"
	"tms/pkg/background"
	"tms/pkg/logger"
	"tms/pkg/querier"
	"tms/pkg/tx"
)

type Application struct {
	OrderGroups       *orderGroupService.Service
	DriverExpenses    *driverExpenseService.Service
	BackgroundWorkers *background.Worker
}

type KafkaWorkerApp struct {
	OrderGroups *orderGroupService.Service
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderGroupRepository(q *querier.Querier) *orderGroupRepo.Repository {
	return orderGroupRepo.New(q)
}

func provideNotificationRepository(q *querier.Querier) *notificationRepo.Repository {
	return notificationRepo.New(q)
}

func provideDriverExpenseRepository(q *querier.Querier) *driverExpenseRepo.Repository {
	return driverExpenseRepo.New(q)
}

func provideMutations(
	repository orderGroupService.Repository,
	txManager orderGroupService.TxManager,
) *orderGroupService.Mutations {
	return orderGroupService.NewMutations(repository, txManager)
}

func provideNotificationService(
	repository notificationService.Repository,
	publisher notificationService.Publisher,
	txManager notificationService.TxManager,
	cfg *config.Config,
) *notificationService.Service {
	return notificationService.New(repository, publisher, txManager, cfg.Kafka.Topics.NotificationRequested)
}

func provideActionHandlerFactory(
	mutator action_handle.OrderGroupMutator,
	sender action_handle.NotificationSender,
) *action_handle.ActionHandlerFactory {
	return action_handle.NewActionHandlerFactory(mutator, sender)
}

func provideOrderGroupService(
	repository orderGroupService.Repository,
	cache orderGroupService.Cache,
	factory orderGroupService.HandlerFactory,
	txManager orderGroupService.TxManager,
	log logger.Logger,
	cfg *config.Config,
) *orderGroupService.Service {
	return orderGroupService.New(
		repository,
		cache,
		factory,
		txManager,
		log.With(logger.NewField("component", "order_group_service")),
		cfg.Tasks.GroupStatusSyncBatch,
	)
}

func provideDriverExpenseService(
	repository *driverExpenseRepo.Repository,
	txManager *tx.Manager,
) *driverExpenseService.Service {
	return driverExpenseService.New(repository, txManager)
}

func provideGroupStatusSyncTask(
	log logger.Logger,
	service *orderGroupService.Service,
	cfg *config.Config,
) *group_status_sync.GroupStatusSync {
	return group_status_sync.New(log, service, cfg.Tasks.GroupStatusSyncInterval)
}

func provideTaskList(groupStatusSync *group_status_sync.GroupStatusSync) []background.Task {
	return []background.Task{
		groupStatusSync,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
