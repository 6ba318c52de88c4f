package order_groups_get

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"tms/internal/entities"
)

var errInvalidPagination = errors.New("page and pageSize must be integers")

// ParseFilter читает status (через запятую или повтором), keywords, page и pageSize.
func ParseFilter(organizationID int64, query url.Values) (entities.OrderGroupFilter, error) {
	filter := entities.OrderGroupFilter{
		OrganizationID: organizationID,
		Keywords:       strings.TrimSpace(query.Get("keywords")),
	}

	for _, raw := range query["status"] {
		for _, status := range strings.Split(raw, ",") {
			if status = strings.TrimSpace(status); status != "" {
				filter.Statuses = append(filter.Statuses, entities.OrderGroupStatusType(strings.ToUpper(status)))
			}
		}
	}

	var err error
	if filter.Page, err = atoiOptional(query.Get("page")); err != nil {
		return filter, errInvalidPagination
	}
	if filter.PageSize, err = atoiOptional(query.Get("pageSize")); err != nil {
		return filter, errInvalidPagination
	}
	return filter, nil
}

func atoiOptional(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
