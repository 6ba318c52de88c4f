package notification

import (
	"context"
	"fmt"

	"tms/internal/entities"
	"tms/internal/repository"
	service "tms/internal/service/notification"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, notification entities.Notification) (*entities.Notification, error) {
	notificationDB, err := FromDomain(&notification)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO notifications (id, organization_id, order_group_id, type, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, organization_id, order_group_id, type, payload, created_at
	`

	var created NotificationDB
	err = r.querier.QueryRow(
		ctx,
		query,
		notificationDB.ID,
		notificationDB.OrganizationID,
		notificationDB.OrderGroupID,
		notificationDB.Type,
		notificationDB.Payload,
		notificationDB.CreatedAt,
	).Scan(
		&created.ID,
		&created.OrganizationID,
		&created.OrderGroupID,
		&created.Type,
		&created.Payload,
		&created.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, fmt.Errorf("%w: order group %d", service.ErrOrderGroupNotFound, notification.OrderGroupID)
		}
		return nil, fmt.Errorf("unexpected notification repository create error: %w", err)
	}

	return ToDomain(&created)
}

// MarkTripsPendingConfirmation переводит рейсы NEW указанных заказов в PENDING_CONFIRMATION
// и пишет историю статусов. Возвращает число переведенных рейсов.
func (r *Repository) MarkTripsPendingConfirmation(ctx context.Context, organizationID int64, orderIDs []int64) (int64, error) {
	if len(orderIDs) == 0 {
		return 0, nil
	}

	query := `
		WITH moved AS (
			UPDATE order_trips
			SET last_status_type = $1,
				updated_at = NOW()
			WHERE organization_id = $2
				AND order_id = ANY($3)
				AND last_status_type = $4
			RETURNING id
		)
		INSERT INTO order_trip_statuses (trip_id, driver_report_type)
		SELECT id, $1 FROM moved
	`

	result, err := r.querier.Exec(
		ctx,
		query,
		entities.TripPendingConfirmation.String(),
		organizationID,
		orderIDs,
		entities.TripNew.String(),
	)
	if err != nil {
		return 0, fmt.Errorf("unexpected notification repository mark trips error: %w", err)
	}

	return result.RowsAffected(), nil
}
