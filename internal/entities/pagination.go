package entities

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type Pagination struct {
	Page      int
	PageSize  int
	Total     int64
	PageCount int
}

func NewPagination(page, pageSize int, total int64) Pagination {
	pageCount := 0
	if pageSize > 0 {
		pageCount = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		PageCount: pageCount,
	}
}
