package driverexpense

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"tms/internal/entities"
	service "tms/internal/service/driverexpense"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// GetTripExpenseContext загружает рейс с его расходами и маршрут заказа с шаблоном расходов.
func (r *Repository) GetTripExpenseContext(ctx context.Context, identity entities.TripIdentity) (*entities.TripExpenseContext, error) {
	query := `
		SELECT
			o.id, o.code, t.id, t.code, t.last_status_type,
			v.id, v.vehicle_number, vt.id, vt.driver_expense_rate,
			t.notes, t.subcontractor_cost, t.bridge_toll, t.other_cost,
			rt.id, rt.code, rt.name, rt.subcontractor_cost, rt.bridge_toll, rt.other_cost, rt.notes
		FROM order_trips t
		JOIN orders o ON o.id = t.order_id
		LEFT JOIN vehicles v ON v.id = t.vehicle_id
		LEFT JOIN vehicle_types vt ON vt.id = v.vehicle_type_id
		LEFT JOIN routes rt ON rt.id = o.route_id
		WHERE t.organization_id = $1 AND o.code = $2 AND t.code = $3
	`

	var c TripContextDB
	err := r.querier.QueryRow(ctx, query, identity.OrganizationID, identity.OrderCode, identity.TripCode).Scan(
		&c.OrderID,
		&c.OrderCode,
		&c.TripID,
		&c.TripCode,
		&c.TripLastStatusType,
		&c.VehicleID,
		&c.VehicleNumber,
		&c.VehicleTypeID,
		&c.DriverExpenseRate,
		&c.Notes,
		&c.SubcontractorCost,
		&c.BridgeToll,
		&c.OtherCost,
		&c.RouteID,
		&c.RouteCode,
		&c.RouteName,
		&c.RouteSubcontractorCost,
		&c.RouteBridgeToll,
		&c.RouteOtherCost,
		&c.RouteNotes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrTripNotFound
		}
		return nil, fmt.Errorf("unexpected driver expense repository get trip error: %w", err)
	}

	tc := ToContextDomain(identity.OrganizationID, &c)

	tripExpenses, err := r.listAmounts(ctx, `
		SELECT de.id, de.key, de.name, de.type, de.is_system, de.display_order, tde.amount
		FROM trip_driver_expenses tde
		JOIN driver_expenses de ON de.id = tde.driver_expense_id
		WHERE tde.trip_id = $1
		ORDER BY de.display_order, de.id
	`, c.TripID)
	if err != nil {
		return nil, err
	}
	for _, e := range tripExpenses {
		tc.Trip.DriverExpenses = append(tc.Trip.DriverExpenses, entities.TripDriverExpense{
			DriverExpense: ToDomain(&e.DriverExpenseDB),
			Amount:        e.Amount,
		})
	}

	if tc.Route != nil {
		routeExpenses, err := r.listAmounts(ctx, `
			SELECT de.id, de.key, de.name, de.type, de.is_system, de.display_order, rde.amount
			FROM route_driver_expenses rde
			JOIN driver_expenses de ON de.id = rde.driver_expense_id
			WHERE rde.route_id = $1
			ORDER BY de.display_order, de.id
		`, tc.Route.ID)
		if err != nil {
			return nil, err
		}
		for _, e := range routeExpenses {
			tc.Route.DriverExpenses = append(tc.Route.DriverExpenses, entities.RouteDriverExpense{
				DriverExpense: ToDomain(&e.DriverExpenseDB),
				Amount:        e.Amount,
			})
		}
	}

	return tc, nil
}

func (r *Repository) ListCatalog(ctx context.Context, organizationID int64) ([]entities.DriverExpense, error) {
	query := `
		SELECT id, key, name, type, is_system, display_order
		FROM driver_expenses
		WHERE organization_id = $1
		ORDER BY display_order, id
	`

	rows, err := r.querier.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("unexpected driver expense repository list catalog error: %w", err)
	}
	defer rows.Close()

	var catalog []entities.DriverExpense
	for rows.Next() {
		var d DriverExpenseDB
		if err := rows.Scan(&d.ID, &d.Key, &d.Name, &d.Type, &d.IsSystem, &d.DisplayOrder); err != nil {
			return nil, fmt.Errorf("unexpected driver expense repository catalog scan error: %w", err)
		}
		catalog = append(catalog, ToDomain(&d))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected driver expense repository catalog rows error: %w", err)
	}

	return catalog, nil
}

// ReplaceTripDriverExpenses удаляет старые строки рейса и вставляет новые; пустой список снимает переопределения.
func (r *Repository) ReplaceTripDriverExpenses(ctx context.Context, tripID int64, expenses []entities.TripDriverExpense) error {
	if _, err := r.querier.Exec(ctx, `DELETE FROM trip_driver_expenses WHERE trip_id = $1`, tripID); err != nil {
		return fmt.Errorf("unexpected driver expense repository delete error: %w", err)
	}
	if len(expenses) == 0 {
		return nil
	}

	builder := qb.Insert("trip_driver_expenses").Columns("trip_id", "driver_expense_id", "amount")
	for _, e := range expenses {
		builder = builder.Values(tripID, e.DriverExpense.ID, e.Amount)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected driver expense repository insert build error: %w", err)
	}

	if _, err := r.querier.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("unexpected driver expense repository insert error: %w", err)
	}
	return nil
}

func (r *Repository) UpdateTripExtraCosts(ctx context.Context, tripID int64, extra entities.ExtraCosts) error {
	query, args, err := qb.Update("order_trips").
		Set("subcontractor_cost", extra.SubcontractorCost).
		Set("bridge_toll", extra.BridgeToll).
		Set("other_cost", extra.OtherCost).
		Set("notes", extra.Notes).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": tripID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected driver expense repository update build error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected driver expense repository update extra costs error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return service.ErrTripNotFound
	}
	return nil
}

func (r *Repository) listAmounts(ctx context.Context, query string, id int64) ([]ExpenseAmountDB, error) {
	rows, err := r.querier.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("unexpected driver expense repository amounts error: %w", err)
	}
	defer rows.Close()

	var res []ExpenseAmountDB
	for rows.Next() {
		var e ExpenseAmountDB
		err := rows.Scan(&e.ID, &e.Key, &e.Name, &e.Type, &e.IsSystem, &e.DisplayOrder, &e.Amount)
		if err != nil {
			return nil, fmt.Errorf("unexpected driver expense repository amounts scan error: %w", err)
		}
		res = append(res, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected driver expense repository amounts rows error: %w", err)
	}

	return res, nil
}
