package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zoo-web/catalog"
)

func TestPaginate_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		_, err := Paginate([]int{1, 2, 3}, 1, size)
		assert.ErrorIs(t, err, ErrInvalidPageSize)
	}
}

func TestPaginate_CoversEveryItemOnce(t *testing.T) {
	for n := 0; n <= 25; n++ {
		items := make([]int, n)
		for i := range items {
			items[i] = i
		}
		for size := 1; size <= 10; size++ {
			var seen []int
			first, err := Paginate(items, 1, size)
			require.NoError(t, err)
			for p := 1; p <= first.TotalPages; p++ {
				page, err := Paginate(items, p, size)
				require.NoError(t, err)
				assert.LessOrEqual(t, len(page.Items), size)
				seen = append(seen, page.Items...)
			}
			if n == 0 {
				assert.Empty(t, seen)
				continue
			}
			assert.Equal(t, items, seen, "n=%d size=%d", n, size)
		}
	}
}

func TestPaginate_TotalPages(t *testing.T) {
	tests := []struct {
		n, size, want int
	}{
		{0, 9, 1},
		{1, 9, 1},
		{9, 9, 1},
		{10, 9, 2},
		{12, 8, 2},
		{16, 8, 2},
		{17, 8, 3},
	}
	for _, tt := range tests {
		page, err := Paginate(make([]int, tt.n), 1, tt.size)
		require.NoError(t, err)
		assert.Equal(t, tt.want, page.TotalPages, "n=%d size=%d", tt.n, tt.size)
		assert.Equal(t, tt.n, page.TotalItems)
	}
}

func TestPaginate_PageBeyondEndIsEmpty(t *testing.T) {
	page, err := Paginate([]int{1, 2, 3}, 5, 2)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 5, page.Number)
	assert.Equal(t, 2, page.TotalPages)
}

func TestPaginate_PageBelowOne(t *testing.T) {
	page, err := Paginate([]int{1, 2, 3}, -3, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, []int{1, 2}, page.Items)
}

func TestAnimalDirectory_AsiaSinglePage(t *testing.T) {
	animals := catalog.NewStore().Animals()
	v := NewView("")
	v.SetFilter(DimRegion, "Asia")

	page, err := AnimalPage(animals, v)
	require.NoError(t, err)

	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 5, page.TotalItems)
	assert.Equal(t, []int{2, 3, 4, 5, 8}, animalIDs(page.Items))
}

func TestAnimalDirectory_SecondPage(t *testing.T) {
	animals := catalog.NewStore().Animals()
	v := NewView("")
	v.SetPage(2)

	page, err := AnimalPage(animals, v)
	require.NoError(t, err)

	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, []int{10, 11, 12}, animalIDs(page.Items))
}

func TestProductPage_ClampsStalePage(t *testing.T) {
	products := catalog.NewStore().Products()
	v := NewView(SortFeatured)
	v.SetPage(7)

	page, err := ProductPage(products, v)
	require.NoError(t, err)

	assert.Equal(t, 2, page.Number)
	assert.Equal(t, 2, v.Page())
	assert.Len(t, page.Items, 8)
}
