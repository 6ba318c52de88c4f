package group_status_sync

import (
	"context"
	"time"

	"tms/pkg/logger"
)

type Service interface {
	SyncGroupStatuses(ctx context.Context) (int64, error)
}

// GroupStatusSync периодически пересчитывает статусы групп по статусам их рейсов.
type GroupStatusSync struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func New(log logger.Logger, service Service, interval time.Duration) *GroupStatusSync {
	return &GroupStatusSync{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (g *GroupStatusSync) TTL() time.Duration {
	return g.interval
}

func (g *GroupStatusSync) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, g.interval)
	defer cancel()

	changed, err := g.service.SyncGroupStatuses(ctxWithTimeout)
	if changed > 0 {
		g.log.With(logger.NewField("changed_groups", changed)).Info("group status sync")
	}

	return err
}

func (g *GroupStatusSync) Info() string {
	return "group status sync"
}
