package ordergroup

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"tms/internal/entities"
)

// attachOrders дозагружает заказы, рейсы и историю статусов рейсов для групп
// четырьмя запросами независимо от числа групп.
func (r *Repository) attachOrders(ctx context.Context, groups []entities.OrderGroup) error {
	if len(groups) == 0 {
		return nil
	}

	groupIDs := make([]int64, 0, len(groups))
	for _, g := range groups {
		groupIDs = append(groupIDs, g.ID)
	}

	orders, err := r.loadOrders(ctx, groupIDs)
	if err != nil {
		return err
	}

	orderIDs := make([]int64, 0, len(orders))
	for _, o := range orders {
		orderIDs = append(orderIDs, o.order.ID)
	}

	processGroups, err := r.loadProcessGroups(ctx, orderIDs)
	if err != nil {
		return err
	}

	trips, err := r.loadTrips(ctx, orderIDs)
	if err != nil {
		return err
	}

	byGroup := make(map[int64][]entities.Order, len(groups))
	for _, o := range orders {
		order := o.order
		order.ProcessForGroups = processGroups[order.ID]
		order.Trips = trips[order.ID]
		byGroup[o.groupID] = append(byGroup[o.groupID], order)
	}

	for i := range groups {
		groups[i].Orders = byGroup[groups[i].ID]
	}
	return nil
}

type groupOrder struct {
	groupID int64
	order   entities.Order
}

func (r *Repository) loadOrders(ctx context.Context, groupIDs []int64) ([]groupOrder, error) {
	query, args, err := qb.Select(
		"o.id", "o.order_group_id", "o.code", "o.weight", "o.cbm", "o.unit_code",
		"c.id", "c.code", "c.name",
		"rt.id", "rt.code", "rt.name", "rt.pickup_points", "rt.delivery_points",
		"rt.subcontractor_cost", "rt.bridge_toll", "rt.other_cost", "rt.notes",
		"o.created_at",
	).
		From("orders o").
		LeftJoin("customers c ON c.id = o.customer_id").
		LeftJoin("routes rt ON rt.id = o.route_id").
		Where(sq.Eq{"o.order_group_id": groupIDs}).
		OrderBy("o.order_group_id", "o.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order group repository orders build error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order group repository orders error: %w", err)
	}
	defer rows.Close()

	var res []groupOrder
	for rows.Next() {
		var o OrderDB
		err := rows.Scan(
			&o.ID,
			&o.OrderGroupID,
			&o.Code,
			&o.Weight,
			&o.CBM,
			&o.UnitCode,
			&o.CustomerID,
			&o.CustomerCode,
			&o.CustomerName,
			&o.RouteID,
			&o.RouteCode,
			&o.RouteName,
			&o.RoutePickupPoints,
			&o.RouteDeliveryPoints,
			&o.RouteSubcontractorCost,
			&o.RouteBridgeToll,
			&o.RouteOtherCost,
			&o.RouteNotes,
			&o.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order group repository orders scan error: %w", err)
		}
		res = append(res, groupOrder{groupID: o.OrderGroupID, order: ToOrderDomain(&o)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order group repository orders rows error: %w", err)
	}

	return res, nil
}

func (r *Repository) loadProcessGroups(ctx context.Context, orderIDs []int64) (map[int64][]entities.OrderGroupRef, error) {
	res := make(map[int64][]entities.OrderGroupRef)
	if len(orderIDs) == 0 {
		return res, nil
	}

	query, args, err := qb.Select("opg.order_id", "og.id", "og.code").
		From("order_process_groups opg").
		Join("order_groups og ON og.id = opg.order_group_id").
		Where(sq.Eq{"opg.order_id": orderIDs}).
		OrderBy("opg.order_id", "opg.position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order group repository process groups build error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order group repository process groups error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p ProcessGroupDB
		if err := rows.Scan(&p.OrderID, &p.GroupID, &p.GroupCode); err != nil {
			return nil, fmt.Errorf("unexpected order group repository process groups scan error: %w", err)
		}
		res[p.OrderID] = append(res[p.OrderID], entities.OrderGroupRef{ID: p.GroupID, Code: p.GroupCode})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order group repository process groups rows error: %w", err)
	}

	return res, nil
}

func (r *Repository) loadTrips(ctx context.Context, orderIDs []int64) (map[int64][]entities.OrderTrip, error) {
	res := make(map[int64][]entities.OrderTrip)
	if len(orderIDs) == 0 {
		return res, nil
	}

	query, args, err := qb.Select(
		"t.id", "t.order_id", "t.code",
		"v.id", "v.vehicle_number", "vt.id", "vt.name", "vt.driver_expense_rate",
		"d.id", "d.first_name", "d.last_name", "d.phone_number", "d.user_id",
		"t.pickup_date", "t.delivery_date", "t.last_status_type", "t.notes",
		"t.subcontractor_cost", "t.bridge_toll", "t.other_cost", "t.updated_at",
	).
		From("order_trips t").
		LeftJoin("vehicles v ON v.id = t.vehicle_id").
		LeftJoin("vehicle_types vt ON vt.id = v.vehicle_type_id").
		LeftJoin("drivers d ON d.id = t.driver_id").
		Where(sq.Eq{"t.order_id": orderIDs}).
		OrderBy("t.order_id", "t.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order group repository trips build error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order group repository trips error: %w", err)
	}
	defer rows.Close()

	var (
		trips   []entities.OrderTrip
		tripIDs []int64
	)
	for rows.Next() {
		var t TripDB
		err := rows.Scan(
			&t.ID,
			&t.OrderID,
			&t.Code,
			&t.VehicleID,
			&t.VehicleNumber,
			&t.VehicleTypeID,
			&t.VehicleTypeName,
			&t.DriverExpenseRate,
			&t.DriverID,
			&t.DriverFirstName,
			&t.DriverLastName,
			&t.DriverPhoneNumber,
			&t.DriverUserID,
			&t.PickupDate,
			&t.DeliveryDate,
			&t.LastStatusType,
			&t.Notes,
			&t.SubcontractorCost,
			&t.BridgeToll,
			&t.OtherCost,
			&t.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order group repository trips scan error: %w", err)
		}
		trips = append(trips, ToTripDomain(&t))
		tripIDs = append(tripIDs, t.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order group repository trips rows error: %w", err)
	}
	rows.Close()

	statuses, err := r.loadTripStatuses(ctx, tripIDs)
	if err != nil {
		return nil, err
	}

	for _, trip := range trips {
		trip.Statuses = statuses[trip.ID]
		res[trip.OrderID] = append(res[trip.OrderID], trip)
	}
	return res, nil
}

// loadTripStatuses возвращает историю каждого рейса, самые свежие статусы первыми.
func (r *Repository) loadTripStatuses(ctx context.Context, tripIDs []int64) (map[int64][]entities.OrderTripStatus, error) {
	res := make(map[int64][]entities.OrderTripStatus)
	if len(tripIDs) == 0 {
		return res, nil
	}

	query, args, err := qb.Select("s.id", "s.trip_id", "s.driver_report_name", "s.driver_report_type", "s.created_at").
		From("order_trip_statuses s").
		Where(sq.Eq{"s.trip_id": tripIDs}).
		OrderBy("s.trip_id", "s.created_at DESC", "s.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order group repository trip statuses build error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order group repository trip statuses error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s TripStatusDB
		if err := rows.Scan(&s.ID, &s.TripID, &s.DriverReportName, &s.DriverReportType, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("unexpected order group repository trip statuses scan error: %w", err)
		}
		res[s.TripID] = append(res[s.TripID], ToTripStatusDomain(&s))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order group repository trip statuses rows error: %w", err)
	}

	return res, nil
}
