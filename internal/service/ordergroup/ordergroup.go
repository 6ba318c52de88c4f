package ordergroup

import (
	"context"
	"errors"
	"fmt"

	"tms/internal/entities"
	"tms/pkg/logger"
	"tms/pkg/tx"
)

// syncStatuses - статусы, которые могут продвинуться по рейсам.
var syncStatuses = []entities.OrderGroupStatusType{
	entities.OrderGroupApproved,
	entities.OrderGroupTranshipment,
	entities.OrderGroupInbound,
	entities.OrderGroupOutbound,
	entities.OrderGroupInProgress,
	entities.OrderGroupDelivered,
}

type Service struct {
	repository    Repository
	cache         Cache
	factory       HandlerFactory
	txManager     TxManager
	log           serviceLogger
	syncBatchSize int
}

func New(
	repository Repository,
	cache Cache,
	factory HandlerFactory,
	txManager TxManager,
	log serviceLogger,
	syncBatchSize int,
) *Service {
	return &Service{
		repository:    repository,
		cache:         cache,
		factory:       factory,
		txManager:     txManager,
		log:           log,
		syncBatchSize: syncBatchSize,
	}
}

func (s *Service) ListOrderGroups(ctx context.Context, filter entities.OrderGroupFilter) (*entities.OrderGroupPage, error) {
	filter, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}

	// поколение кэша фиксируется до чтения из базы: инвалидация во время чтения не теряется
	key, err := s.cache.ListKey(ctx, filter)
	if err != nil {
		s.log.Warn("resolve order group list cache key", logger.NewField("error", err))
	}
	if key != "" {
		cached, ok, err := s.cache.GetList(ctx, key)
		if err != nil {
			s.log.Warn("read order group list from cache", logger.NewField("error", err))
		}
		if ok {
			return cached, nil
		}
	}

	items, total, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list order groups: %w", err)
	}

	page := &entities.OrderGroupPage{
		Items:      items,
		Pagination: entities.NewPagination(filter.Page, filter.PageSize, total),
	}

	if key != "" {
		if err := s.cache.SetList(ctx, key, page); err != nil {
			s.log.Warn("write order group list to cache", logger.NewField("error", err))
		}
	}
	return page, nil
}

// CountByStatus возвращает счётчик для каждого статуса, включая нулевые.
func (s *Service) CountByStatus(ctx context.Context, organizationID int64) ([]entities.OrderGroupStatusCount, error) {
	if organizationID <= 0 {
		return nil, ErrMissingRequiredFields
	}

	key, err := s.cache.CountsKey(ctx, organizationID)
	if err != nil {
		s.log.Warn("resolve order group counts cache key", logger.NewField("error", err))
	}
	if key != "" {
		cached, ok, err := s.cache.GetCounts(ctx, key)
		if err != nil {
			s.log.Warn("read order group counts from cache", logger.NewField("error", err))
		}
		if ok {
			return cached, nil
		}
	}

	stored, err := s.repository.CountByStatus(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("count order groups by status: %w", err)
	}

	byStatus := make(map[entities.OrderGroupStatusType]int64, len(stored))
	for _, c := range stored {
		byStatus[c.Status] = c.Count
	}

	counts := make([]entities.OrderGroupStatusCount, 0, len(entities.OrderGroupStatuses))
	for _, status := range entities.OrderGroupStatuses {
		counts = append(counts, entities.OrderGroupStatusCount{Status: status, Count: byStatus[status]})
	}

	if key != "" {
		if err := s.cache.SetCounts(ctx, key, counts); err != nil {
			s.log.Warn("write order group counts to cache", logger.NewField("error", err))
		}
	}
	return counts, nil
}

func (s *Service) GetOrderGroup(ctx context.Context, organizationID, orderGroupID int64) (*entities.OrderGroup, error) {
	if organizationID <= 0 || orderGroupID <= 0 {
		return nil, ErrMissingRequiredFields
	}

	group, err := s.repository.GetByID(ctx, organizationID, orderGroupID)
	if err != nil {
		return nil, fmt.Errorf("get order group: %w", err)
	}
	return group, nil
}

// ActionRequest - идентификаторы, из которых собирается Selection для Dispatch.
type ActionRequest struct {
	OrganizationID int64
	OrderGroupID   int64
	VehicleID      int64
	TripCode       string
	DriverReport   *entities.DriverReport
	ActingUser     entities.ActingUser
}

// SelectAndDispatch загружает выбранные сущности и выполняет действие.
// Ошибка возвращается только если сущности загрузить не удалось.
func (s *Service) SelectAndDispatch(
	ctx context.Context,
	action entities.OrderGroupAction,
	req ActionRequest,
) (entities.Notice, error) {
	if req.OrganizationID <= 0 {
		return entities.Notice{}, ErrMissingRequiredFields
	}

	var (
		group *entities.OrderGroup
		err   error
	)
	switch {
	case req.OrderGroupID > 0:
		group, err = s.repository.GetByID(ctx, req.OrganizationID, req.OrderGroupID)
	case req.TripCode != "":
		group, err = s.repository.GetByTripCode(ctx, req.OrganizationID, req.TripCode)
	}
	if err != nil {
		return entities.Notice{}, fmt.Errorf("get order group: %w", err)
	}

	sel := Selection{
		Group:        group,
		TripCode:     req.TripCode,
		DriverReport: req.DriverReport,
		ActingUser:   req.ActingUser,
	}

	if req.VehicleID > 0 {
		sel.Vehicle, err = s.repository.GetVehicleByID(ctx, req.OrganizationID, req.VehicleID)
		if err != nil {
			return entities.Notice{}, fmt.Errorf("get vehicle: %w", err)
		}
	}

	_, notice := s.Dispatch(ctx, sel, action)
	return notice, nil
}

// ProcessTripStatusChange применяет отчёт водителя, пришедший не из интерфейса.
// Доступность UPDATE_TRIP_STATUS здесь не проверяется: водитель сообщает о том, что уже произошло.
func (s *Service) ProcessTripStatusChange(
	ctx context.Context,
	organizationID int64,
	tripCode string,
	report entities.DriverReport,
) (*entities.OrderGroup, error) {
	if organizationID <= 0 || tripCode == "" {
		return nil, ErrMissingRequiredFields
	}

	group, err := s.repository.GetByTripCode(ctx, organizationID, tripCode)
	if err != nil {
		return nil, fmt.Errorf("get order group by trip: %w", err)
	}

	trip := FindTrip(group, tripCode)
	if trip == nil {
		return nil, fmt.Errorf("%w: %s", ErrTripNotFound, tripCode)
	}
	// повторная доставка того же события
	if trip.LastStatusType == report.Type {
		return group, nil
	}

	cmd, err := OnUpdateTripStatus(group, tripCode, &report)
	if err != nil {
		return nil, err
	}

	executeFn, err := s.factory.GetHandler(entities.ActionUpdateTripStatus)
	if err != nil {
		return nil, err
	}

	err = executeFn(ctx, Command{Action: entities.ActionUpdateTripStatus, TripStatus: &cmd})
	s.invalidate(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	return group, nil
}

// SyncGroupStatuses продвигает статусы групп, отставшие от рейсов. Конфликты пропускаются до следующего запуска.
func (s *Service) SyncGroupStatuses(ctx context.Context) (int64, error) {
	groups, err := s.repository.ListForStatusSync(ctx, syncStatuses, s.syncBatchSize)
	if err != nil {
		return 0, fmt.Errorf("list order groups for status sync: %w", err)
	}

	var advanced int64
	touched := make(map[int64]struct{})

	for i := range groups {
		group := &groups[i]
		next, ok := DeriveGroupStatus(group)
		if !ok {
			continue
		}

		// статус и запись истории меняются вместе
		err := s.txManager.Do(ctx, func(ctx context.Context) error {
			return s.repository.UpdateStatus(ctx, entities.OrderGroupStatusUpdate{
				OrganizationID:    group.OrganizationID,
				OrderGroupID:      group.ID,
				From:              group.LastStatusType,
				To:                next,
				ExpectedUpdatedAt: group.UpdatedAt,
			})
		})
		if err != nil {
			if errors.Is(err, ErrExclusive) || errors.Is(err, tx.ErrConcurrentUpdate) {
				continue
			}
			return advanced, fmt.Errorf("update order group %d status: %w", group.ID, err)
		}

		StatusSyncTransitionsTotal.WithLabelValues(group.LastStatusType.String(), next.String()).Inc()
		advanced++
		touched[group.OrganizationID] = struct{}{}
	}

	for organizationID := range touched {
		s.invalidate(ctx, organizationID)
	}
	return advanced, nil
}

func normalizeFilter(filter entities.OrderGroupFilter) (entities.OrderGroupFilter, error) {
	if filter.OrganizationID <= 0 {
		return filter, ErrMissingRequiredFields
	}

	for _, status := range filter.Statuses {
		if _, ok := allowedTransitions[status]; !ok {
			return filter, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
		}
	}

	if filter.Page < 1 {
		filter.Page = entities.DefaultPage
	}
	switch {
	case filter.PageSize < 1:
		filter.PageSize = entities.DefaultPageSize
	case filter.PageSize > entities.MaxPageSize:
		filter.PageSize = entities.MaxPageSize
	}
	return filter, nil
}
