package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginateBounds(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page1 := Paginate(items, &PaginationParams{Page: 1, PageSize: 2})
	assert.Equal(t, []int{1, 2}, page1)

	page3 := Paginate(items, &PaginationParams{Page: 3, PageSize: 2})
	assert.Equal(t, []int{5}, page3)

	beyond := Paginate(items, &PaginationParams{Page: 4, PageSize: 2})
	assert.Empty(t, beyond)
}

func TestCreatePaginationMeta(t *testing.T) {
	meta := CreatePaginationMeta(&PaginationParams{Page: 2, PageSize: 10}, 35)

	assert.Equal(t, 4, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrevious)
	assert.Equal(t, 3, *meta.NextPage)
	assert.Equal(t, 1, *meta.PreviousPage)

	last := CreatePaginationMeta(&PaginationParams{Page: 4, PageSize: 10}, 35)
	assert.False(t, last.HasNext)
	assert.Nil(t, last.NextPage)
}
