package trip_status_post

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"tms/internal/dto"
	"tms/internal/entities"
	"tms/internal/handlers/rest/response"
	"tms/internal/pkg/middlewares/tenant"
	"tms/internal/service/ordergroup"
	"tms/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "trip_status_post")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := tenant.FromContext(r.Context())
	if !ok {
		response.Error(w, h.log, http.StatusBadRequest, entities.ErrorKindValidation, "organization is required")
		return
	}

	tripCode := strings.TrimSpace(mux.Vars(r)["code"])
	if tripCode == "" {
		response.Error(w, h.log, http.StatusBadRequest, entities.ErrorKindValidation, "trip code is required")
		return
	}

	var req dto.TripStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, h.log, http.StatusBadRequest, entities.ErrorKindValidation, "invalid request body")
		return
	}

	notice, err := h.service.SelectAndDispatch(r.Context(), entities.ActionUpdateTripStatus, ordergroup.ActionRequest{
		OrganizationID: identity.OrganizationID,
		TripCode:       tripCode,
		DriverReport: &entities.DriverReport{
			Name: strings.TrimSpace(req.DriverReportName),
			Type: entities.OrderTripStatusType(strings.ToUpper(strings.TrimSpace(req.DriverReportType))),
		},
		ActingUser: entities.ActingUser{ID: identity.UserID},
	})
	if err != nil {
		response.SelectionError(w, h.log, err)
		return
	}

	response.Notice(w, h.log, notice)
}
