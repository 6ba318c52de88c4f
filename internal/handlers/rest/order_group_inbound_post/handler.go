package order_group_inbound_post

import (
	"encoding/json"
	"net/http"
	"strconv"

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
		log:     log.With(logger.NewField("handler", "order_group_inbound_post")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := tenant.FromContext(r.Context())
	if !ok {
		response.Error(w, h.log, http.StatusBadRequest, entities.ErrorKindValidation, "organization is required")
		return
	}

	groupID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || groupID <= 0 {
		response.Error(w, h.log, http.StatusBadRequest, entities.ErrorKindValidation, "invalid order group id")
		return
	}

	var req dto.InboundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, h.log, http.StatusBadRequest, entities.ErrorKindValidation, "invalid request body")
		return
	}

	// без машины Dispatch вернет PRECONDITION_NOT_MET
	notice, err := h.service.SelectAndDispatch(r.Context(), entities.ActionInbound, ordergroup.ActionRequest{
		OrganizationID: identity.OrganizationID,
		OrderGroupID:   groupID,
		VehicleID:      req.VehicleID,
		ActingUser:     entities.ActingUser{ID: identity.UserID},
	})
	if err != nil {
		response.SelectionError(w, h.log, err)
		return
	}

	response.Notice(w, h.log, notice)
}
