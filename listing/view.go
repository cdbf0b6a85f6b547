package listing

import "maps"

// View is one visitor's state for a listing page: the selected filter
// values, the sort key and the current page
type View struct {
	filters map[string]string
	sort    string
	page    int
}

// NewView creates a view on page 1 with the given default sort key
func NewView(defaultSort string) *View {
	return &View{
		filters: map[string]string{},
		sort:    defaultSort,
		page:    1,
	}
}

// Filter returns the selected value for a dimension, or All
func (v *View) Filter(dim string) string {
	if val, ok := v.filters[dim]; ok && val != "" {
		return val
	}
	return All
}

// Filters returns a copy of the selected values
func (v *View) Filters() map[string]string {
	return maps.Clone(v.filters)
}

// Sort returns the current sort key
func (v *View) Sort() string {
	return v.sort
}

// Page returns the current page
func (v *View) Page() int {
	return v.page
}

// SetFilter selects a value for one dimension. The page goes back to 1 when
// the value differs from the current one. An empty value clears the
// dimension; so does All, except for the search text, which is kept as typed.
func (v *View) SetFilter(dim, value string) bool {
	if value == All && dim != DimSearch {
		value = ""
	}
	if v.filters[dim] == value {
		return false
	}
	if value == "" {
		delete(v.filters, dim)
	} else {
		v.filters[dim] = value
	}
	v.page = 1
	return true
}

// SetSort selects the sort key, resetting the page when it changes
func (v *View) SetSort(key string) bool {
	if key == "" || key == v.sort {
		return false
	}
	v.sort = key
	v.page = 1
	return true
}

// SetPage moves to page n; values below 1 are read as 1
func (v *View) SetPage(n int) {
	v.page = max(n, 1)
}

// Apply takes a full set of selections from one request. Filters and sort are
// applied first; the requested page only sticks when none of them changed.
func (v *View) Apply(filters map[string]string, sort string, page int) bool {
	changed := false
	for dim, value := range filters {
		if v.SetFilter(dim, value) {
			changed = true
		}
	}
	if v.SetSort(sort) {
		changed = true
	}
	if !changed && page > 0 {
		v.SetPage(page)
	}
	return changed
}

// Clamp bounds the page to [1, totalPages]
func (v *View) Clamp(totalPages int) {
	if totalPages < 1 {
		totalPages = 1
	}
	v.page = min(max(v.page, 1), totalPages)
}

// Reset clears all selections
func (v *View) Reset(defaultSort string) {
	v.filters = map[string]string{}
	v.sort = defaultSort
	v.page = 1
}
