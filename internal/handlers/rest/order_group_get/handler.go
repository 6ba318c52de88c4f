package order_group_get

import (
	"errors"
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
		log:     log.With(logger.NewField("handler", "order_group_get")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := tenant.FromContext(r.Context())
	if !ok {
		response.Error(w, h.log, http.StatusBadRequest, entities.ErrorKindValidation, "organization is required")
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		response.Error(w, h.log, http.StatusBadRequest, entities.ErrorKindValidation, "invalid order group id")
		return
	}

	group, err := h.service.GetOrderGroup(r.Context(), identity.OrganizationID, id)
	if err != nil {
		switch {
		case errors.Is(err, ordergroup.ErrOrderGroupNotFound):
			response.Error(w, h.log, http.StatusNotFound, entities.ErrorKindValidation, "order group not found")
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("order_group_id", id),
			).Error("get order group")
			response.Error(w, h.log, http.StatusInternalServerError, entities.ErrorKindUnknown, "failed to get order group")
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.NewOrderGroup(group))
}
