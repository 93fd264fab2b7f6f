package utils

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PaginationParams struct {
	Page     int    `json:"page" form:"page"`
	PageSize int    `json:"page_size" form:"page_size"`
	Search   string `json:"search" form:"search"`
}

type PaginationMeta struct {
	Page         int   `json:"page"`
	PageSize     int   `json:"page_size"`
	Total        int64 `json:"total"`
	TotalPages   int   `json:"total_pages"`
	HasNext      bool  `json:"has_next"`
	HasPrevious  bool  `json:"has_previous"`
	NextPage     *int  `json:"next_page,omitempty"`
	PreviousPage *int  `json:"previous_page,omitempty"`
}

func GetPaginationParams(c *gin.Context) *PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(DefaultPageSize)))
	search := c.Query("search")

	if page < 1 {
		page = 1
	}

	if pageSize < MinPageSize {
		pageSize = MinPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return &PaginationParams{
		Page:     page,
		PageSize: pageSize,
		Search:   search,
	}
}

func (p *PaginationParams) GetSkip() int {
	return (p.Page - 1) * p.PageSize
}

func (p *PaginationParams) GetLimit() int {
	return p.PageSize
}

// Paginate slices a result set that was filtered in memory.
func Paginate[T any](items []T, params *PaginationParams) []T {
	start := params.GetSkip()
	if start >= len(items) {
		return []T{}
	}

	end := start + params.GetLimit()
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}

func CreatePaginationMeta(params *PaginationParams, total int64) *PaginationMeta {
	totalPages := int(math.Ceil(float64(total) / float64(params.PageSize)))

	meta := &PaginationMeta{
		Page:        params.Page,
		PageSize:    params.PageSize,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     params.Page < totalPages,
		HasPrevious: params.Page > 1,
	}

	if meta.HasNext {
		nextPage := params.Page + 1
		meta.NextPage = &nextPage
	}

	if meta.HasPrevious {
		previousPage := params.Page - 1
		meta.PreviousPage = &previousPage
	}

	return meta
}
