package ordergroup

import (
	"context"
	"errors"
	"fmt"

	"tms/internal/entities"
	"tms/internal/service/notification"
	"tms/pkg/logger"
	"tms/pkg/tx"
)

const (
	exclusiveMessage = "order group was updated by someone else, reload it and try again"
	unknownMessage   = "something went wrong, please try again later"
)

var successMessages = map[entities.OrderGroupAction]string{
	entities.ActionInbound:          "inbound request created",
	entities.ActionOutbound:         "orders sent to warehouse for outbound",
	entities.ActionSendNotification: "confirmation request sent to driver",
	entities.ActionUpdateTripStatus: "trip status updated",
}

// Dispatch выполняет действие над выбранной группой и всегда заканчивается одним уведомлением.
// Порядок: запрос из Selection, мутация, сброс Selection, инвалидация счётчиков и списка.
// Локальные ошибки (ничего не выбрано, действие недоступно) до мутации и инвалидации не доходят.
func (s *Service) Dispatch(
	ctx context.Context,
	sel Selection,
	action entities.OrderGroupAction,
) (Selection, entities.Notice) {
	cmd, err := BuildCommand(action, sel)
	if err != nil {
		return Selection{}, s.failed(action, entities.ErrorKindPreconditionNotMet, err)
	}

	executeFn, err := s.factory.GetHandler(action)
	if err != nil {
		return Selection{}, s.failed(action, entities.ErrorKindPreconditionNotMet, err)
	}

	mutationErr := executeFn(ctx, cmd)

	s.invalidate(ctx, cmd.OrganizationID())

	if mutationErr != nil {
		return Selection{}, s.failed(action, classifyError(mutationErr), mutationErr)
	}

	ActionsTotal.WithLabelValues(action.String(), "success").Inc()
	return Selection{}, entities.Notice{
		Type:    entities.NoticeSuccess,
		Action:  action,
		Message: fmt.Sprintf("%s: %s", sel.Group.Code, successMessages[action]),
	}
}

// invalidate сбрасывает счётчики и список ровно по одному разу, даже если запрос уже отменён.
func (s *Service) invalidate(ctx context.Context, organizationID int64) {
	ctx = context.WithoutCancel(ctx)

	if err := s.cache.InvalidateCounts(ctx, organizationID); err != nil {
		s.log.Warn("invalidate order group counts",
			logger.NewField("organization_id", organizationID),
			logger.NewField("error", err),
		)
	}
	if err := s.cache.InvalidateList(ctx, organizationID); err != nil {
		s.log.Warn("invalidate order group list",
			logger.NewField("organization_id", organizationID),
			logger.NewField("error", err),
		)
	}
}

func (s *Service) failed(action entities.OrderGroupAction, kind entities.ErrorKind, err error) entities.Notice {
	ActionsTotal.WithLabelValues(action.String(), kind.String()).Inc()

	if kind == entities.ErrorKindUnknown {
		s.log.Error("order group action failed",
			logger.NewField("action", action.String()),
			logger.NewField("error", err),
		)
	}

	message := err.Error()
	switch kind {
	case entities.ErrorKindExclusive:
		message = exclusiveMessage
	case entities.ErrorKindUnknown:
		message = unknownMessage
	}

	return entities.Notice{
		Type:    entities.NoticeError,
		Kind:    kind,
		Action:  action,
		Message: message,
	}
}

func classifyError(err error) entities.ErrorKind {
	switch {
	case errors.Is(err, ErrExclusive), errors.Is(err, tx.ErrConcurrentUpdate):
		return entities.ErrorKindExclusive
	case errors.Is(err, ErrMissingRequiredFields),
		errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrInvalidTripStatus),
		errors.Is(err, ErrOrderGroupNotFound),
		errors.Is(err, ErrVehicleNotFound),
		errors.Is(err, ErrTripNotFound),
		errors.Is(err, notification.ErrMissingRequiredFields),
		errors.Is(err, notification.ErrNoOrderGroupSelected),
		errors.Is(err, notification.ErrOrderGroupNotFound):
		return entities.ErrorKindValidation
	default:
		return entities.ErrorKindUnknown
	}
}
