package trip_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"tms/internal/entities"
	"tms/internal/service/ordergroup"
	"tms/pkg/logger"
)

const eventName = "trip.status.changed"

type Handler struct {
	service                  Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, service Service, timeout time.Duration) *Handler {
	return &Handler{
		service:                  service,
		log:                      log.With(logger.NewField("event", eventName)),
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("claim messages closed, exiting ConsumeClaim")
				return nil
			}

			ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
			retry := h.process(ctx, message.Value, message.Offset)
			cancel()

			if retry {
				// без MarkMessage сообщение придет снова после ребаланса
				return nil
			}
			sess.MarkMessage(message, "")

		case <-sess.Context().Done():
			h.log.Info("session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// process применяет одно событие. true - обработку нужно прервать и повторить сообщение позже.
func (h *Handler) process(ctx context.Context, value []byte, offset int64) bool {
	var event changedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", offset),
		).Error("bad message")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("organization_id", event.OrganizationID),
		logger.NewField("trip", event.TripCode),
		logger.NewField("status", event.DriverReportType),
		logger.NewField("offset", offset),
	)

	report := entities.DriverReport{
		Name: event.DriverReportName,
		Type: entities.OrderTripStatusType(event.DriverReportType),
	}

	group, err := h.service.ProcessTripStatusChange(ctx, event.OrganizationID, event.TripCode, report)
	if err != nil {
		errLog := msgLog.With(logger.NewField("error", err))

		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			errLog.Warn("context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, ordergroup.ErrExclusive):
			errLog.Warn("order group changed concurrently, message will be reprocessed")
			return true

		case errors.Is(err, ordergroup.ErrMissingRequiredFields),
			errors.Is(err, ordergroup.ErrInvalidTripStatus),
			errors.Is(err, ordergroup.ErrTripNotFound),
			errors.Is(err, ordergroup.ErrOrderGroupNotFound):
			errLog.Warn("event skipped")

		default:
			errLog.Error("failed to process event")
		}
		return false
	}

	msgLog.With(
		logger.NewField("order_group", group.Code),
		logger.NewField("order_group_status", group.LastStatusType.String()),
	).Info("processed")
	return false
}
