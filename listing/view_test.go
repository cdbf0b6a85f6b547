package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"zoo-web/catalog"
)

func TestView_FilterChangeResetsPage(t *testing.T) {
	v := NewView(SortFeatured)
	v.SetPage(3)

	changed := v.SetFilter(DimCategory, "Books")

	assert.True(t, changed)
	assert.Equal(t, 1, v.Page())
}

func TestView_SameFilterKeepsPage(t *testing.T) {
	v := NewView(SortFeatured)
	v.SetFilter(DimCategory, "Books")
	v.SetPage(2)

	assert.False(t, v.SetFilter(DimCategory, "Books"))
	assert.Equal(t, 2, v.Page())

	// empty and All are the same selection
	assert.False(t, v.SetFilter(DimRegion, ""))
	assert.False(t, v.SetFilter(DimRegion, All))
	assert.Equal(t, 2, v.Page())
}

func TestView_SortChangeResetsPage(t *testing.T) {
	v := NewView(SortFeatured)
	v.SetPage(2)

	assert.True(t, v.SetSort(SortPriceHigh))
	assert.Equal(t, 1, v.Page())
	assert.Equal(t, SortPriceHigh, v.Sort())
}

func TestView_ApplyIgnoresPageWhenSelectionsChange(t *testing.T) {
	v := NewView(SortFeatured)
	v.Apply(nil, "", 2)
	assert.Equal(t, 2, v.Page())

	changed := v.Apply(map[string]string{DimCategory: "Toys"}, SortFeatured, 3)

	assert.True(t, changed)
	assert.Equal(t, 1, v.Page())

	v.Apply(map[string]string{DimCategory: "Toys"}, SortFeatured, 2)
	assert.Equal(t, 2, v.Page())
}

func TestView_Clamp(t *testing.T) {
	v := NewView("")
	v.SetPage(9)

	v.Clamp(2)
	assert.Equal(t, 2, v.Page())

	v.Clamp(0)
	assert.Equal(t, 1, v.Page())
}

func TestView_FiltersIsACopy(t *testing.T) {
	v := NewView("")
	v.SetFilter(DimRegion, "Asia")

	f := v.Filters()
	f[DimRegion] = "Africa"

	assert.Equal(t, "Asia", v.Filter(DimRegion))
}

func TestView_ClearedSearchStopsFiltering(t *testing.T) {
	animals := catalog.NewStore().Animals()
	v := NewView("")

	assert.True(t, v.SetFilter(DimSearch, "tiger"))
	assert.True(t, v.SetFilter(DimSearch, ""))
	assert.NotContains(t, v.Filters(), DimSearch)
	assert.Len(t, Filter(animals, AnimalPredicates(v.Filters())...), len(animals))

	// a select set back to All is cleared too
	v.SetFilter(DimRegion, "Asia")
	assert.True(t, v.SetFilter(DimRegion, All))
	assert.NotContains(t, v.Filters(), DimRegion)
}

func TestHighlightView(t *testing.T) {
	animals := catalog.NewStore().Animals()
	h := NewHighlightView()

	visible, more := h.Visible(animals)
	assert.Len(t, visible, 8)
	assert.True(t, more)

	h.ShowMore(len(animals))
	visible, more = h.Visible(animals)
	assert.Len(t, visible, 12)
	assert.False(t, more)

	h.ShowMore(len(animals))
	visible, _ = h.Visible(animals)
	assert.Len(t, visible, 12)

	assert.True(t, h.SetFilters("Asia", ""))
	visible, more = h.Visible(animals)
	assert.Equal(t, []int{2, 3, 4, 5, 8}, animalIDs(visible))
	assert.False(t, more)

	assert.True(t, h.SetFilters(All, All))
	visible, _ = h.Visible(animals)
	assert.Len(t, visible, 8)
}
