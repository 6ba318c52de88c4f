package order_group_counts_get

import (
	"net/http"

	"tms/internal/dto"
	"tms/internal/entities"
	"tms/internal/handlers/rest/response"
	"tms/internal/pkg/middlewares/tenant"
	"tms/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "order_group_counts_get")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := tenant.FromContext(r.Context())
	if !ok {
		response.Error(w, h.log, http.StatusBadRequest, entities.ErrorKindValidation, "organization is required")
		return
	}

	counts, err := h.service.CountByStatus(r.Context(), identity.OrganizationID)
	if err != nil {
		h.log.With(logger.NewField("error", err)).Error("count order groups by status")
		response.Error(w, h.log, http.StatusInternalServerError, entities.ErrorKindUnknown, "failed to count order groups")
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.NewStatusCounts(counts))
}
