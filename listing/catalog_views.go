package listing

import (
	"zoo-web/models"
)

// Page sizes of the catalog listings
const (
	AnimalPageSize  = 9
	ProductPageSize = 8
)

// Filter dimensions
const (
	DimSearch   = "search"
	DimHabitat  = "habitat"
	DimRegion   = "region"
	DimStatus   = "status"
	DimActivity = "activity"
	DimCategory = "category"
)

// Shop sort keys
const (
	SortFeatured  = "featured"
	SortPriceLow  = "priceLow"
	SortPriceHigh = "priceHigh"
)

// AnimalDimensions lists the animal directory filters in form order
var AnimalDimensions = []string{DimSearch, DimHabitat, DimRegion, DimStatus, DimActivity}

// ProductDimensions lists the shop filters in form order
var ProductDimensions = []string{DimSearch, DimCategory}

// AnimalPredicates turns directory selections into predicates.
// Search matches the common or the scientific name.
func AnimalPredicates(filters map[string]string) []Predicate[models.Animal] {
	return []Predicate[models.Animal]{
		Search(filters[DimSearch], func(a models.Animal) []string {
			return []string{a.Name, a.ScientificName}
		}),
		Equals(filters[DimHabitat], func(a models.Animal) string { return a.Habitat }),
		Equals(filters[DimRegion], func(a models.Animal) string { return a.Region }),
		Equals(filters[DimStatus], func(a models.Animal) string { return a.ConservationStatus }),
		Equals(filters[DimActivity], func(a models.Animal) string { return a.ActivityTime }),
	}
}

// ProductPredicates turns shop selections into predicates.
// Search matches the name or the description.
func ProductPredicates(filters map[string]string) []Predicate[models.Product] {
	return []Predicate[models.Product]{
		Search(filters[DimSearch], func(p models.Product) []string {
			return []string{p.Name, p.Description}
		}),
		Equals(filters[DimCategory], func(p models.Product) string { return p.Category }),
	}
}

// ProductOrder returns the comparator for a shop sort key; unknown keys
// fall back to featured
func ProductOrder(key string) func(a, b models.Product) bool {
	switch key {
	case SortPriceLow:
		return func(a, b models.Product) bool { return a.Price < b.Price }
	case SortPriceHigh:
		return func(a, b models.Product) bool { return a.Price > b.Price }
	default:
		return FlaggedFirst(func(p models.Product) bool { return p.Bestseller })
	}
}

// ValidProductSort reports whether key names a shop ordering
func ValidProductSort(key string) bool {
	return key == SortFeatured || key == SortPriceLow || key == SortPriceHigh
}

// AnimalPage filters and paginates the directory for a view
func AnimalPage(animals []models.Animal, v *View) (Page[models.Animal], error) {
	filtered := Filter(animals, AnimalPredicates(v.Filters())...)
	v.Clamp(TotalPages(len(filtered), AnimalPageSize))
	return Paginate(filtered, v.Page(), AnimalPageSize)
}

// ProductPage filters, sorts and paginates the shop for a view
func ProductPage(products []models.Product, v *View) (Page[models.Product], error) {
	filtered := Filter(products, ProductPredicates(v.Filters())...)
	sorted := SortStable(filtered, ProductOrder(v.Sort()))
	v.Clamp(TotalPages(len(sorted), ProductPageSize))
	return Paginate(sorted, v.Page(), ProductPageSize)
}

// ProductSortKeys lists the shop orderings in display order
var ProductSortKeys = []string{SortFeatured, SortPriceLow, SortPriceHigh}
