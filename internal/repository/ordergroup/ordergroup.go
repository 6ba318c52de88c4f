package ordergroup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"tms/internal/entities"
	"tms/internal/repository"
	service "tms/internal/service/ordergroup"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const groupColumns = `og.id, og.organization_id, og.code, og.last_status_type,
	w.id, w.code, w.name, pbo.id, pbo.code, og.created_at, og.updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) List(ctx context.Context, filter entities.OrderGroupFilter) ([]entities.OrderGroup, int64, error) {
	where := listConditions(filter)

	countQuery, countArgs, err := qb.Select("COUNT(*)").From("order_groups og").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected order group repository count build error: %w", err)
	}

	var total int64
	if err := r.querier.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("unexpected order group repository count error: %w", err)
	}
	if total == 0 {
		return []entities.OrderGroup{}, 0, nil
	}

	builder := selectGroups().
		Where(where).
		OrderBy("og.updated_at DESC", "og.id DESC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64((filter.Page - 1) * filter.PageSize))

	groups, err := r.queryGroups(ctx, builder)
	if err != nil {
		return nil, 0, err
	}
	return groups, total, nil
}

func (r *Repository) CountByStatus(ctx context.Context, organizationID int64) ([]entities.OrderGroupStatusCount, error) {
	query := `
		SELECT last_status_type, COUNT(*)
		FROM order_groups
		WHERE organization_id = $1
		GROUP BY last_status_type
	`

	rows, err := r.querier.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order group repository count by status error: %w", err)
	}
	defer rows.Close()

	var counts []entities.OrderGroupStatusCount
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("unexpected order group repository count scan error: %w", err)
		}
		counts = append(counts, entities.OrderGroupStatusCount{
			Status: entities.OrderGroupStatusType(status),
			Count:  count,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order group repository count rows error: %w", err)
	}

	return counts, nil
}

func (r *Repository) GetByID(ctx context.Context, organizationID, orderGroupID int64) (*entities.OrderGroup, error) {
	builder := selectGroups().Where(sq.Eq{
		"og.organization_id": organizationID,
		"og.id":              orderGroupID,
	})

	groups, err := r.queryGroups(ctx, builder)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, service.ErrOrderGroupNotFound
	}
	return &groups[0], nil
}

func (r *Repository) GetByTripCode(ctx context.Context, organizationID int64, tripCode string) (*entities.OrderGroup, error) {
	query := `
		SELECT o.order_group_id
		FROM order_trips t
		JOIN orders o ON o.id = t.order_id
		WHERE t.organization_id = $1 AND t.code = $2
	`

	var groupID int64
	err := r.querier.QueryRow(ctx, query, organizationID, tripCode).Scan(&groupID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrTripNotFound
		}
		return nil, fmt.Errorf("unexpected order group repository get by trip code error: %w", err)
	}

	return r.GetByID(ctx, organizationID, groupID)
}

func (r *Repository) GetVehicleByID(ctx context.Context, organizationID, vehicleID int64) (*entities.Vehicle, error) {
	query := `
		SELECT v.id, v.vehicle_number, vt.id, vt.name, vt.driver_expense_rate
		FROM vehicles v
		LEFT JOIN vehicle_types vt ON vt.id = v.vehicle_type_id
		WHERE v.organization_id = $1 AND v.id = $2
	`

	var vehicleDB VehicleDB
	err := r.querier.QueryRow(ctx, query, organizationID, vehicleID).Scan(
		&vehicleDB.ID,
		&vehicleDB.VehicleNumber,
		&vehicleDB.VehicleTypeID,
		&vehicleDB.VehicleTypeName,
		&vehicleDB.DriverExpenseRate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("unexpected order group repository get vehicle error: %w", err)
	}

	return ToVehicleDomain(&vehicleDB), nil
}

// ListForStatusSync выбирает группы всех организаций, дольше всего не менявшиеся, первыми.
func (r *Repository) ListForStatusSync(ctx context.Context, statuses []entities.OrderGroupStatusType, limit int) ([]entities.OrderGroup, error) {
	builder := selectGroups().
		Where(sq.Eq{"og.last_status_type": statusStrings(statuses)}).
		OrderBy("og.updated_at ASC", "og.id ASC").
		Limit(uint64(limit))

	return r.queryGroups(ctx, builder)
}

// UpdateStatus меняет статус, только если группа не менялась с момента чтения.
func (r *Repository) UpdateStatus(ctx context.Context, update entities.OrderGroupStatusUpdate) error {
	query := `
		UPDATE order_groups
		SET last_status_type = $1,
			updated_at = NOW()
		WHERE id = $2
			AND organization_id = $3
			AND last_status_type = $4
			AND updated_at = $5
	`

	result, err := r.querier.Exec(
		ctx,
		query,
		update.To.String(),
		update.OrderGroupID,
		update.OrganizationID,
		update.From.String(),
		update.ExpectedUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("unexpected order group repository update status error: %w", err)
	}

	if result.RowsAffected() == 0 {
		exists, err := r.exists(ctx, update.OrganizationID, update.OrderGroupID)
		if err != nil {
			return err
		}
		if !exists {
			return service.ErrOrderGroupNotFound
		}
		return service.ErrExclusive
	}

	historyQuery := `
		INSERT INTO order_group_statuses (order_group_id, status_type)
		VALUES ($1, $2)
	`
	if _, err := r.querier.Exec(ctx, historyQuery, update.OrderGroupID, update.To.String()); err != nil {
		return fmt.Errorf("unexpected order group repository status history error: %w", err)
	}

	return nil
}

// CreateInboundOrder заводит консолидационный заказ с рейсом на выбранной машине
// и привязывает его к группе как обрабатывающий.
func (r *Repository) CreateInboundOrder(ctx context.Context, cmd entities.InboundCommand) (*entities.Order, error) {
	code := "IB-" + cmd.OrderGroupCode

	orderQuery := `
		INSERT INTO orders (organization_id, order_group_id, code)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	order := entities.Order{
		Code:             code,
		ProcessForGroups: []entities.OrderGroupRef{{ID: cmd.OrderGroupID, Code: cmd.OrderGroupCode}},
	}
	err := r.querier.QueryRow(ctx, orderQuery, cmd.OrganizationID, cmd.OrderGroupID, code).
		Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, fmt.Errorf("%w: inbound order %s already exists", service.ErrExclusive, code)
		}
		return nil, fmt.Errorf("unexpected order group repository create inbound order error: %w", err)
	}

	processQuery := `
		INSERT INTO order_process_groups (order_id, order_group_id, position)
		VALUES ($1, $2, 0)
	`
	if _, err := r.querier.Exec(ctx, processQuery, order.ID, cmd.OrderGroupID); err != nil {
		return nil, fmt.Errorf("unexpected order group repository process group error: %w", err)
	}

	groupUpdate := qb.Update("order_groups").
		Set("process_by_order_id", order.ID).
		Where(sq.Eq{"id": cmd.OrderGroupID, "organization_id": cmd.OrganizationID})
	if cmd.WarehouseID != nil {
		groupUpdate = groupUpdate.Set("warehouse_id", *cmd.WarehouseID)
	}

	query, args, err := groupUpdate.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order group repository process by build error: %w", err)
	}
	if _, err := r.querier.Exec(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("unexpected order group repository process by error: %w", err)
	}

	tripQuery := `
		INSERT INTO order_trips (organization_id, order_id, code, vehicle_id, last_status_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, updated_at
	`

	trip := entities.OrderTrip{
		OrderID:        order.ID,
		Code:           code + "-1",
		Vehicle:        &entities.Vehicle{ID: cmd.VehicleID},
		LastStatusType: entities.TripNew,
	}
	err = r.querier.QueryRow(
		ctx,
		tripQuery,
		cmd.OrganizationID,
		order.ID,
		trip.Code,
		cmd.VehicleID,
		entities.TripNew.String(),
	).Scan(&trip.ID, &trip.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("unexpected order group repository create inbound trip error: %w", err)
	}

	status, err := r.insertTripStatus(ctx, trip.ID, entities.DriverReport{Type: entities.TripNew})
	if err != nil {
		return nil, err
	}
	trip.Statuses = []entities.OrderTripStatus{status}
	order.Trips = []entities.OrderTrip{trip}

	return &order, nil
}

func (r *Repository) AppendTripStatus(ctx context.Context, cmd entities.TripStatusCommand) error {
	query := `
		UPDATE order_trips
		SET last_status_type = $1,
			updated_at = NOW()
		WHERE id = $2 AND organization_id = $3
	`

	result, err := r.querier.Exec(ctx, query, cmd.DriverReport.Type.String(), cmd.TripID, cmd.OrganizationID)
	if err != nil {
		return fmt.Errorf("unexpected order group repository update trip status error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return service.ErrTripNotFound
	}

	_, err = r.insertTripStatus(ctx, cmd.TripID, cmd.DriverReport)
	return err
}

func (r *Repository) insertTripStatus(ctx context.Context, tripID int64, report entities.DriverReport) (entities.OrderTripStatus, error) {
	query := `
		INSERT INTO order_trip_statuses (trip_id, driver_report_name, driver_report_type)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	status := entities.OrderTripStatus{DriverReport: report}
	err := r.querier.QueryRow(ctx, query, tripID, report.Name, report.Type.String()).
		Scan(&status.ID, &status.CreatedAt)
	if err != nil {
		return entities.OrderTripStatus{}, fmt.Errorf("unexpected order group repository insert trip status error: %w", err)
	}
	return status, nil
}

func (r *Repository) exists(ctx context.Context, organizationID, orderGroupID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM order_groups WHERE id = $1 AND organization_id = $2)`

	var exists bool
	if err := r.querier.QueryRow(ctx, query, orderGroupID, organizationID).Scan(&exists); err != nil {
		return false, fmt.Errorf("unexpected order group repository exists error: %w", err)
	}
	return exists, nil
}

func (r *Repository) queryGroups(ctx context.Context, builder sq.SelectBuilder) ([]entities.OrderGroup, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order group repository select build error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order group repository select error: %w", err)
	}
	defer rows.Close()

	var groups []entities.OrderGroup
	for rows.Next() {
		var g OrderGroupDB
		err := rows.Scan(
			&g.ID,
			&g.OrganizationID,
			&g.Code,
			&g.LastStatusType,
			&g.WarehouseID,
			&g.WarehouseCode,
			&g.WarehouseName,
			&g.ProcessByOrderID,
			&g.ProcessByOrderCode,
			&g.CreatedAt,
			&g.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order group repository scan error: %w", err)
		}
		groups = append(groups, *ToDomain(&g))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order group repository rows error: %w", err)
	}

	if err := r.attachOrders(ctx, groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func selectGroups() sq.SelectBuilder {
	return qb.Select(groupColumns).
		From("order_groups og").
		LeftJoin("warehouses w ON w.id = og.warehouse_id").
		LeftJoin("orders pbo ON pbo.id = og.process_by_order_id")
}

func listConditions(filter entities.OrderGroupFilter) sq.And {
	where := sq.And{sq.Eq{"og.organization_id": filter.OrganizationID}}

	if len(filter.Statuses) > 0 {
		where = append(where, sq.Eq{"og.last_status_type": statusStrings(filter.Statuses)})
	}

	if keywords := strings.TrimSpace(filter.Keywords); keywords != "" {
		pattern := "%" + escapeLike(keywords) + "%"
		where = append(where, sq.Or{
			sq.ILike{"og.code": pattern},
			sq.Expr(`EXISTS (
				SELECT 1 FROM orders o
				LEFT JOIN customers c ON c.id = o.customer_id
				WHERE o.order_group_id = og.id AND (o.code ILIKE ? OR c.name ILIKE ?)
			)`, pattern, pattern),
		})
	}

	return where
}

func statusStrings(statuses []entities.OrderGroupStatusType) []string {
	res := make([]string, 0, len(statuses))
	for _, s := range statuses {
		res = append(res, s.String())
	}
	return res
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
