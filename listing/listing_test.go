package listing

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zoo-web/catalog"
	"zoo-web/models"
)

func animalIDs(animals []models.Animal) []int {
	ids := make([]int, len(animals))
	for i, a := range animals {
		ids[i] = a.ID
	}
	return ids
}

func productIDs(products []models.Product) []int {
	ids := make([]int, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

func TestFilter_AllSentinelIsNoConstraint(t *testing.T) {
	animals := catalog.NewStore().Animals()

	got := Filter(animals, AnimalPredicates(map[string]string{
		DimRegion: All,
		DimStatus: "",
	})...)

	assert.Equal(t, animalIDs(animals), animalIDs(got))
}

func TestFilter_ANDAcrossDimensions(t *testing.T) {
	animals := catalog.NewStore().Animals()

	got := Filter(animals, AnimalPredicates(map[string]string{
		DimRegion:  "Asia",
		DimHabitat: "Forest",
		DimStatus:  "Endangered",
	})...)

	assert.Equal(t, []int{2, 5}, animalIDs(got))
}

func TestFilter_NoMatchesIsEmptyNotError(t *testing.T) {
	animals := catalog.NewStore().Animals()

	got := Filter(animals, AnimalPredicates(map[string]string{DimSearch: "unicorn"})...)
	assert.Empty(t, got)

	page, err := Paginate(got, 1, AnimalPageSize)
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalPages)
	assert.Empty(t, page.Items)
}

func TestMatchText(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		fields []string
		want   bool
	}{
		{name: "empty query", query: "", fields: []string{"Koala"}, want: true},
		{name: "blank query is literal", query: "   ", fields: []string{"Koala"}, want: false},
		{name: "leading space is literal", query: " lion", fields: []string{"Lion", "Panthera leo"}, want: false},
		{name: "inner space", query: "n lion", fields: []string{"African Lion"}, want: true},
		{name: "case insensitive", query: "TIGER", fields: []string{"Bengal Tiger"}, want: true},
		{name: "second field", query: "panthera", fields: []string{"African Lion", "Panthera leo"}, want: true},
		{name: "no match", query: "zebra", fields: []string{"Koala", "Phascolarctos cinereus"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchText(tt.query, tt.fields...))
		})
	}
}

func TestAnimalSearch_UsesQueryAsTyped(t *testing.T) {
	animals := catalog.NewStore().Animals()

	got := Filter(animals, AnimalPredicates(map[string]string{DimSearch: " "})...)
	for _, a := range got {
		assert.True(t, strings.Contains(a.Name, " ") || strings.Contains(a.ScientificName, " "), a.Name)
	}

	assert.Len(t, Filter(animals, AnimalPredicates(map[string]string{DimSearch: ""})...), len(animals))
}

func TestAnimalSearch_MatchesScientificName(t *testing.T) {
	animals := catalog.NewStore().Animals()

	got := Filter(animals, AnimalPredicates(map[string]string{DimSearch: "panthera"})...)
	assert.Equal(t, []int{2, 6}, animalIDs(got))
}

func TestProductSearch_MatchesDescription(t *testing.T) {
	products := catalog.NewStore().Products()

	got := Filter(products, ProductPredicates(map[string]string{DimSearch: "eucalyptus"})...)
	assert.Empty(t, got)

	got = Filter(products, ProductPredicates(map[string]string{DimSearch: "stickers"})...)
	assert.Equal(t, []int{13}, productIDs(got))
}

func TestSortStable_FeaturedKeepsOriginalOrderWithinGroups(t *testing.T) {
	products := catalog.NewStore().Products()

	got := SortStable(products, ProductOrder(SortFeatured))

	want := []int{1, 3, 6, 10, 12, 15, 2, 4, 5, 7, 8, 9, 11, 13, 14, 16}
	if diff := cmp.Diff(want, productIDs(got)); diff != "" {
		t.Errorf("featured order mismatch (-want +got):\n%s", diff)
	}
}

func TestSortStable_PriceOrders(t *testing.T) {
	products := catalog.NewStore().Products()

	low := SortStable(products, ProductOrder(SortPriceLow))
	for i := 1; i < len(low); i++ {
		assert.LessOrEqual(t, low[i-1].Price, low[i].Price)
	}

	high := SortStable(products, ProductOrder(SortPriceHigh))
	for i := 1; i < len(high); i++ {
		assert.GreaterOrEqual(t, high[i-1].Price, high[i].Price)
	}

	// 8 and 14 share a price; they keep catalog order either way
	assert.Less(t, indexOf(low, 8), indexOf(low, 14))
	assert.Less(t, indexOf(high, 8), indexOf(high, 14))
}

func indexOf(products []models.Product, id int) int {
	for i, p := range products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func TestSortStable_DoesNotMutateInput(t *testing.T) {
	products := catalog.NewStore().Products()
	before := productIDs(products)

	_ = SortStable(products, ProductOrder(SortPriceHigh))

	assert.Equal(t, before, productIDs(products))
}

func TestOptions(t *testing.T) {
	type row struct{ v string }
	got := Options([]row{{"b"}, {"a"}, {""}, {"b"}}, func(r row) string { return r.v })
	assert.Equal(t, []string{All, "b", "a"}, got)
}
