package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"tms/internal/dto"
	"tms/internal/entities"
	"tms/internal/service/ordergroup"
	"tms/pkg/logger"
)

type errorLogger interface {
	With(fields ...logger.Field) logger.Logger
}

func JSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func Notice(w http.ResponseWriter, log errorLogger, notice entities.Notice) {
	JSON(w, log, dto.NoticeStatus(notice), dto.NewNotice(notice))
}

func Error(w http.ResponseWriter, log errorLogger, status int, kind entities.ErrorKind, message string) {
	JSON(w, log, status, dto.ErrorNotice(kind, message))
}

// SelectionError отвечает на ошибку загрузки группы, машины или рейса перед действием.
func SelectionError(w http.ResponseWriter, log errorLogger, err error) {
	switch {
	case errors.Is(err, ordergroup.ErrOrderGroupNotFound):
		Error(w, log, http.StatusNotFound, entities.ErrorKindPreconditionNotMet, "order group not found")
	case errors.Is(err, ordergroup.ErrVehicleNotFound):
		Error(w, log, http.StatusNotFound, entities.ErrorKindPreconditionNotMet, "vehicle not found")
	case errors.Is(err, ordergroup.ErrTripNotFound):
		Error(w, log, http.StatusNotFound, entities.ErrorKindPreconditionNotMet, "trip not found")
	case errors.Is(err, ordergroup.ErrMissingRequiredFields):
		Error(w, log, http.StatusBadRequest, entities.ErrorKindValidation, err.Error())
	default:
		log.With(logger.NewField("error", err)).Error("load action selection")
		Error(w, log, http.StatusInternalServerError, entities.ErrorKindUnknown, "failed to load order group")
	}
}
