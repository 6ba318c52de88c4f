package order_groups_export_get

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"tms/internal/entities"
	"tms/internal/handlers/rest/order_groups_get"
	"tms/internal/handlers/rest/response"
	"tms/internal/pkg/middlewares/tenant"
	"tms/internal/service/ordergroup"
	"tms/pkg/logger"
)

const (
	contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	maxRows     = 10000
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "order_groups_export_get")),
		service: service,
	}
}

// ServeHTTP выгружает все группы под фильтром постранично, но не больше maxRows строк.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := tenant.FromContext(r.Context())
	if !ok {
		response.Error(w, h.log, http.StatusBadRequest, entities.ErrorKindValidation, "organization is required")
		return
	}

	filter, err := order_groups_get.ParseFilter(identity.OrganizationID, r.URL.Query())
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, entities.ErrorKindValidation, err.Error())
		return
	}
	filter.Page = 1
	filter.PageSize = entities.MaxPageSize

	f, err := newWorkbook()
	if err != nil {
		h.fail(w, err)
		return
	}
	defer f.Close()

	row := 2
	for row-2 < maxRows {
		page, err := h.service.ListOrderGroups(r.Context(), filter)
		if err != nil {
			if errors.Is(err, ordergroup.ErrInvalidStatus) {
				response.Error(w, h.log, http.StatusBadRequest, entities.ErrorKindValidation, err.Error())
				return
			}
			h.fail(w, err)
			return
		}

		for i := range page.Items {
			if row-2 >= maxRows {
				break
			}
			if err := writeGroup(f, row, &page.Items[i]); err != nil {
				h.fail(w, err)
				return
			}
			row++
		}

		if filter.Page >= page.Pagination.PageCount {
			break
		}
		filter.Page++
	}

	filename := fmt.Sprintf("order-groups-%s.xlsx", time.Now().UTC().Format("20060102-150405"))
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	if err := f.Write(w); err != nil {
		h.log.With(logger.NewField("error", err)).Error("write xlsx response")
	}
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	h.log.With(logger.NewField("error", err)).Error("export order groups")
	response.Error(w, h.log, http.StatusInternalServerError, entities.ErrorKindUnknown, "failed to export order groups")
}
