package order_group_outbound_post

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
		log:     log.With(logger.NewField("handler", "order_group_outbound_post")),
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

	notice, err := h.service.SelectAndDispatch(r.Context(), entities.ActionOutbound, ordergroup.ActionRequest{
		OrganizationID: identity.OrganizationID,
		OrderGroupID:   groupID,
		ActingUser:     entities.ActingUser{ID: identity.UserID},
	})
	if err != nil {
		response.SelectionError(w, h.log, err)
		return
	}

	response.Notice(w, h.log, notice)
}
