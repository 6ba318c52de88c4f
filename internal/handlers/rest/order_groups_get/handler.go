package order_groups_get

import (
	"errors"
	"net/http"

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
		log:     log.With(logger.NewField("handler", "order_groups_get")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := tenant.FromContext(r.Context())
	if !ok {
		response.Error(w, h.log, http.StatusBadRequest, entities.ErrorKindValidation, "organization is required")
		return
	}

	filter, err := ParseFilter(identity.OrganizationID, r.URL.Query())
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, entities.ErrorKindValidation, err.Error())
		return
	}

	page, err := h.service.ListOrderGroups(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, ordergroup.ErrInvalidStatus), errors.Is(err, ordergroup.ErrMissingRequiredFields):
			response.Error(w, h.log, http.StatusBadRequest, entities.ErrorKindValidation, err.Error())
		default:
			h.log.With(logger.NewField("error", err)).Error("list order groups")
			response.Error(w, h.log, http.StatusInternalServerError, entities.ErrorKindUnknown, "failed to list order groups")
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.NewOrderGroupList(page))
}
