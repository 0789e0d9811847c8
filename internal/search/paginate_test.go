package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yoyakulabs/clinic-navi/internal/domain/entities"
)

func TestNormalizePage(t *testing.T) {
	assert.Equal(t, 1, NormalizePage(0))
	assert.Equal(t, 1, NormalizePage(-3))
	assert.Equal(t, 1, NormalizePage(1))
	assert.Equal(t, 99, NormalizePage(99))
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1))
	assert.Equal(t, PageSize, Offset(2))
	assert.Equal(t, 4*PageSize, Offset(5))
	assert.Equal(t, 0, Offset(-1))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0))
	assert.Equal(t, 0, TotalPages(-5))
	assert.Equal(t, 1, TotalPages(1))
	assert.Equal(t, 1, TotalPages(PageSize))
	assert.Equal(t, 2, TotalPages(PageSize+1))
	assert.Equal(t, 4, TotalPages(47))
}

func TestPaginationFor(t *testing.T) {
	t.Run("middle page", func(t *testing.T) {
		p := PaginationFor(2, 47, PageSize)
		assert.Equal(t, entities.Pagination{
			CurrentPage: 2,
			TotalPages:  4,
			TotalCount:  47,
			RangeStart:  16,
			RangeEnd:    30,
		}, p)
	})

	t.Run("short last page", func(t *testing.T) {
		p := PaginationFor(4, 47, 2)
		assert.Equal(t, 46, p.RangeStart)
		assert.Equal(t, 47, p.RangeEnd)
	})

	t.Run("page beyond the last yields an empty range", func(t *testing.T) {
		p := PaginationFor(9, 47, 0)
		assert.Equal(t, 9, p.CurrentPage)
		assert.Equal(t, 4, p.TotalPages)
		assert.Zero(t, p.RangeStart)
		assert.Zero(t, p.RangeEnd)
	})

	t.Run("no results at all", func(t *testing.T) {
		p := PaginationFor(1, 0, 0)
		assert.Equal(t, entities.Pagination{CurrentPage: 1}, p)
	})

	t.Run("normalizes page input", func(t *testing.T) {
		p := PaginationFor(0, 10, 10)
		assert.Equal(t, 1, p.CurrentPage)
		assert.Equal(t, 1, p.RangeStart)
		assert.Equal(t, 10, p.RangeEnd)
	})
}
