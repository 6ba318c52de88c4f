package trip_driver_expenses_get

import (
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
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "trip_driver_expenses_get")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := tenant.FromContext(r.Context())
	if !ok {
		response.Error(w, h.log, http.StatusBadRequest, entities.ErrorKindValidation, "organization is required")
		return
	}

	query := r.URL.Query()
	scope, err := driverexpense.ParseResetScope(query.Get("reset"))
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, entities.ErrorKindValidation, err.Error())
		return
	}

	reconciliation, err := h.service.GetTripDriverExpenses(r.Context(), entities.TripIdentity{
		OrganizationID: identity.OrganizationID,
		OrderCode:      strings.TrimSpace(query.Get("orderCode")),
		TripCode:       strings.TrimSpace(mux.Vars(r)["code"]),
	}, scope)
	if err != nil {
		switch {
		case errors.Is(err, driverexpense.ErrMissingTripIdentity):
			response.Error(w, h.log, http.StatusPreconditionFailed, entities.ErrorKindPreconditionNotMet, err.Error())
		case errors.Is(err, driverexpense.ErrTripNotFound):
			response.Error(w, h.log, http.StatusNotFound, entities.ErrorKindPreconditionNotMet, "trip not found")
		default:
			h.log.With(logger.NewField("error", err)).Error("get trip driver expenses")
			response.Error(w, h.log, http.StatusInternalServerError, entities.ErrorKindUnknown, "failed to get trip driver expenses")
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.NewTripDriverExpenses(reconciliation))
}
