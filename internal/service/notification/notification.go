package notification

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"tms/internal/entities"
)

type Service struct {
	repository Repository
	publisher  Publisher
	txManager  TxManager
	topic      string
}

func New(repository Repository, publisher Publisher, txManager TxManager, topic string) *Service {
	return &Service{
		repository: repository,
		publisher:  publisher,
		txManager:  txManager,
		topic:      topic,
	}
}

// SendNotificationToOrderGroup сохраняет запрос подтверждения, переводит новые рейсы
// в PENDING_CONFIRMATION и публикует событие. Любая ошибка откатывает всё целиком.
func (s *Service) SendNotificationToOrderGroup(
	ctx context.Context,
	payload entities.NotificationPayload,
) (*entities.Notification, error) {
	if payload.OrderGroup.ID <= 0 {
		return nil, ErrNoOrderGroupSelected
	}
	if payload.OrganizationID <= 0 || len(payload.CurrentOrderIDs) == 0 {
		return nil, ErrMissingRequiredFields
	}

	notification := entities.Notification{
		ID:             uuid.New(),
		OrganizationID: payload.OrganizationID,
		OrderGroupID:   payload.OrderGroup.ID,
		Type:           entities.NotificationRequestConfirmation,
		Payload:        payload,
		CreatedAt:      time.Now().UTC(),
	}

	var created *entities.Notification
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.repository.Create(ctx, notification)
		if err != nil {
			return fmt.Errorf("create notification: %w", err)
		}

		_, err = s.repository.MarkTripsPendingConfirmation(ctx, payload.OrganizationID, payload.CurrentOrderIDs)
		if err != nil {
			return fmt.Errorf("mark trips pending confirmation: %w", err)
		}

		event, err := marshalRequestedEvent(uuid.NewString(), created)
		if err != nil {
			return fmt.Errorf("marshal notification event: %w", err)
		}

		key := strconv.FormatInt(created.OrderGroupID, 10)
		if err := s.publisher.Publish(ctx, s.topic, key, event); err != nil {
			return fmt.Errorf("%w: %w", ErrPublishFailed, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}
