package ordergroup

import (
	"tms/internal/entities"
	"tms/internal/service/notification"
)

type statusSet map[entities.OrderGroupStatusType]struct{}

func newStatusSet(statuses ...entities.OrderGroupStatusType) statusSet {
	set := make(statusSet, len(statuses))
	for _, s := range statuses {
		set[s] = struct{}{}
	}
	return set
}

func (s statusSet) has(status entities.OrderGroupStatusType) bool {
	_, ok := s[status]
	return ok
}

var allowedTransitions = map[entities.OrderGroupStatusType]statusSet{
	entities.OrderGroupApproved: newStatusSet(
		entities.OrderGroupInbound,
		entities.OrderGroupTranshipment,
		entities.OrderGroupInProgress,
		entities.OrderGroupCanceled,
	),
	entities.OrderGroupTranshipment: newStatusSet(entities.OrderGroupInProgress, entities.OrderGroupCanceled),
	entities.OrderGroupInbound:      newStatusSet(entities.OrderGroupInStock, entities.OrderGroupCanceled),
	entities.OrderGroupInStock:      newStatusSet(entities.OrderGroupOutbound, entities.OrderGroupCanceled),
	entities.OrderGroupOutbound:     newStatusSet(entities.OrderGroupInProgress, entities.OrderGroupCanceled),
	entities.OrderGroupInProgress:   newStatusSet(entities.OrderGroupDelivered, entities.OrderGroupCanceled),
	entities.OrderGroupDelivered:    newStatusSet(entities.OrderGroupCompleted, entities.OrderGroupCanceled),
	entities.OrderGroupCompleted:    newStatusSet(),
	entities.OrderGroupCanceled:     newStatusSet(),
}

func CanTransition(from, to entities.OrderGroupStatusType) bool {
	next, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	return next.has(to)
}

func IsTerminal(status entities.OrderGroupStatusType) bool {
	next, ok := allowedTransitions[status]
	return ok && len(next) == 0
}

// IsInboundConsolidationOrder - внутренний заказ, который завозит груз группы на склад.
func IsInboundConsolidationOrder(order *entities.Order) bool {
	return order != nil && len(order.ProcessForGroups) > 0 && order.ProcessForGroups[0].ID > 0
}

func hasInboundConsolidationOrder(group *entities.OrderGroup) bool {
	for i := range group.Orders {
		if IsInboundConsolidationOrder(&group.Orders[i]) {
			return true
		}
	}
	return false
}

type actionRule struct {
	action   entities.OrderGroupAction
	statuses statusSet
	check    func(group *entities.OrderGroup) bool
}

var actionRules = []actionRule{
	{
		action:   entities.ActionInbound,
		statuses: newStatusSet(entities.OrderGroupApproved),
	},
	{
		action:   entities.ActionOutbound,
		statuses: newStatusSet(entities.OrderGroupInStock),
	},
	{
		action: entities.ActionShare,
		check: func(group *entities.OrderGroup) bool {
			return len(group.Orders) == 1 && !IsInboundConsolidationOrder(&group.Orders[0])
		},
	},
	{
		action:   entities.ActionUpdateTripStatus,
		statuses: newStatusSet(entities.OrderGroupInProgress),
		check: func(group *entities.OrderGroup) bool {
			return len(group.Orders) > 0 && len(group.Orders[0].Trips) > 0
		},
	},
	{
		action: entities.ActionSendNotification,
		check: func(group *entities.OrderGroup) bool {
			return !hasInboundConsolidationOrder(group) && notification.CanSendNotification(group)
		},
	},
}

// AvailableActions возвращает действия, доступные для группы, в фиксированном порядке.
func AvailableActions(group *entities.OrderGroup) []entities.OrderGroupAction {
	if group == nil {
		return nil
	}

	actions := make([]entities.OrderGroupAction, 0, len(actionRules))
	for _, rule := range actionRules {
		if rule.statuses != nil && !rule.statuses.has(group.LastStatusType) {
			continue
		}
		if rule.check != nil && !rule.check(group) {
			continue
		}
		actions = append(actions, rule.action)
	}
	return actions
}

func IsActionAvailable(group *entities.OrderGroup, action entities.OrderGroupAction) bool {
	for _, a := range AvailableActions(group) {
		if a == action {
			return true
		}
	}
	return false
}

var knownTripStatuses = map[entities.OrderTripStatusType]struct{}{
	entities.TripNew:                     {},
	entities.TripPendingConfirmation:     {},
	entities.TripConfirmed:               {},
	entities.TripWaitingForPickup:        {},
	entities.TripWarehouseGoingToPickup:  {},
	entities.TripWarehousePickedUp:       {},
	entities.TripWaitingForDelivery:      {},
	entities.TripWarehouseGoingToDeliver: {},
	entities.TripWarehouseDelivered:      {},
	entities.TripDelivered:               {},
	entities.TripCompleted:               {},
	entities.TripCanceled:                {},
}

func IsKnownTripStatus(status entities.OrderTripStatusType) bool {
	_, ok := knownTripStatuses[status]
	return ok
}

// startedTripStatuses - рейс уже выполняется (после подтверждения водителем).
var startedTripStatuses = map[entities.OrderTripStatusType]struct{}{
	entities.TripWaitingForPickup:        {},
	entities.TripWarehouseGoingToPickup:  {},
	entities.TripWarehousePickedUp:       {},
	entities.TripWaitingForDelivery:      {},
	entities.TripWarehouseGoingToDeliver: {},
	entities.TripWarehouseDelivered:      {},
	entities.TripDelivered:               {},
	entities.TripCompleted:               {},
}

// progressRank упорядочивает статусы, которые выводятся из рейсов.
var progressRank = map[entities.OrderGroupStatusType]int{
	entities.OrderGroupApproved:     0,
	entities.OrderGroupTranshipment: 0,
	entities.OrderGroupOutbound:     0,
	entities.OrderGroupInProgress:   1,
	entities.OrderGroupDelivered:    2,
	entities.OrderGroupCompleted:    3,
}

// DeriveGroupStatus вычисляет статус группы по рейсам её заказов.
// Возвращает false, если статус менять не нужно. Статус только продвигается вперёд.
func DeriveGroupStatus(group *entities.OrderGroup) (entities.OrderGroupStatusType, bool) {
	if group == nil {
		return "", false
	}
	current := group.LastStatusType
	if IsTerminal(current) {
		return current, false
	}

	if current == entities.OrderGroupInbound {
		if inboundTripsArrived(group) {
			return entities.OrderGroupInStock, true
		}
		return current, false
	}

	currentRank, ok := progressRank[current]
	if !ok {
		return current, false
	}

	candidate, ok := progressFromTrips(group)
	if !ok || progressRank[candidate] <= currentRank {
		return current, false
	}

	if !reachable(current, candidate) {
		return current, false
	}
	return candidate, true
}

// reachable ищет путь по таблице переходов, не заходя в CANCELED.
func reachable(from, to entities.OrderGroupStatusType) bool {
	visited := newStatusSet(from)
	queue := []entities.OrderGroupStatusType{from}

	for len(queue) > 0 {
		status := queue[0]
		queue = queue[1:]
		for next := range allowedTransitions[status] {
			if next == to {
				return true
			}
			if next == entities.OrderGroupCanceled || visited.has(next) {
				continue
			}
			visited[next] = struct{}{}
			queue = append(queue, next)
		}
	}
	return false
}

func progressFromTrips(group *entities.OrderGroup) (entities.OrderGroupStatusType, bool) {
	total, completed, delivered, started := 0, 0, 0, 0

	for i := range group.Orders {
		order := &group.Orders[i]
		if IsInboundConsolidationOrder(order) {
			continue
		}
		for _, trip := range order.Trips {
			if trip.LastStatusType == entities.TripCanceled {
				continue
			}
			total++
			switch trip.LastStatusType {
			case entities.TripCompleted:
				completed++
				delivered++
			case entities.TripDelivered:
				delivered++
			}
			if _, ok := startedTripStatuses[trip.LastStatusType]; ok {
				started++
			}
		}
	}

	switch {
	case total == 0:
		return "", false
	case completed == total:
		return entities.OrderGroupCompleted, true
	case delivered == total:
		return entities.OrderGroupDelivered, true
	case started > 0:
		return entities.OrderGroupInProgress, true
	default:
		return "", false
	}
}

func inboundTripsArrived(group *entities.OrderGroup) bool {
	trips := 0
	for i := range group.Orders {
		order := &group.Orders[i]
		if !IsInboundConsolidationOrder(order) {
			continue
		}
		for _, trip := range order.Trips {
			switch trip.LastStatusType {
			case entities.TripCanceled:
				continue
			case entities.TripWarehouseDelivered, entities.TripDelivered, entities.TripCompleted:
				trips++
			default:
				return false
			}
		}
	}
	return trips > 0
}
