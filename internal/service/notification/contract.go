//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"tms/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, notification entities.Notification) (*entities.Notification, error)
	MarkTripsPendingConfirmation(ctx context.Context, organizationID int64, orderIDs []int64) (int64, error)
}

type Publisher interface {
	Publish(ctx context.Context, topic string, key string, value []byte) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
