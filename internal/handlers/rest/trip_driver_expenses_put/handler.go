package trip_driver_expenses_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"tms/internal/dto"
	"tms/internal/entities"
	"tms/internal/handlers/rest/response"
	"tms/internal/pkg/middlewares/tenant"
	"tms/internal/service/driverexpense"
	"tms/pkg/logger"
	"tms/pkg/tx"
)

const savedMessage = "Driver expenses saved"

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "trip_driver_expenses_put")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := tenant.FromContext(r.Context())
	if !ok {
		response.Error(w, h.log, http.StatusBadRequest, entities.ErrorKindValidation, "organization is required")
		return
	}

	var req dto.TripDriverExpensesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, h.log, http.StatusBadRequest, entities.ErrorKindValidation, "invalid request body")
		return
	}
	req.OrderCode = strings.TrimSpace(req.OrderCode)

	update := req.ToUpdate(identity.OrganizationID, strings.TrimSpace(mux.Vars(r)["code"]))

	err := h.service.UpdateTripDriverExpenses(r.Context(), update)
	if err != nil {
		response.Notice(w, h.log, h.failed(err))
		return
	}

	response.Notice(w, h.log, entities.Notice{Type: entities.NoticeSuccess, Message: savedMessage})
}

func (h *Handler) failed(err error) entities.Notice {
	notice := entities.Notice{Type: entities.NoticeError, Message: err.Error()}

	switch {
	case errors.Is(err, driverexpense.ErrMissingTripIdentity), errors.Is(err, driverexpense.ErrTripNotFound):
		notice.Kind = entities.ErrorKindPreconditionNotMet
	case errors.Is(err, driverexpense.ErrUnknownExpenseKey),
		errors.Is(err, driverexpense.ErrDuplicateExpenseKey),
		errors.Is(err, driverexpense.ErrNegativeAmount):
		notice.Kind = entities.ErrorKindValidation
	case errors.Is(err, tx.ErrConcurrentUpdate):
		notice.Kind = entities.ErrorKindExclusive
	default:
		notice.Kind = entities.ErrorKindUnknown
		notice.Message = "failed to save driver expenses"
		h.log.With(logger.NewField("error", err)).Error("update trip driver expenses")
	}
	return notice
}
