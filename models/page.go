package models

// ListingPage is a page of a filtered listing together with the active selections
type ListingPage[T any] struct {
	Items      []T               `json:"items"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalItems int               `json:"totalItems"`
	TotalPages int               `json:"totalPages"`
	Filters    map[string]string `json:"filters"`
	Sort       string            `json:"sort,omitempty"`
	Summary    string            `json:"summary"` // e.g. "Showing 9 of 12 animals"
}

// AnimalDirectoryResponse represents the animal directory page
type AnimalDirectoryResponse struct {
	ListingPage[Animal]
	Options     AnimalFilterOptions `json:"options"`
	Highlighted []Animal            `json:"highlighted"` // Carousel of highlighted animals
}

// ShopResponse represents the shop page
type ShopResponse struct {
	ListingPage[ProductView]
	Categories []string `json:"categories"`
	SortKeys   []string `json:"sortKeys"`
	CartCount  int      `json:"cartCount"`
}

// HomeResponse represents the home page
type HomeResponse struct {
	Highlighted      []Animal                  `json:"highlighted"`
	HighlightFilters map[string]string         `json:"highlightFilters"`
	CanShowMore      bool                      `json:"canShowMore"`
	Regions          []string                  `json:"regions"`
	Statuses         []string                  `json:"statuses"`
	Conservation     []ConservationProjectView `json:"conservation"`
	Events           []EventOccurrence         `json:"events"`
}

// ConservationResponse represents the conservation page
type ConservationResponse struct {
	Projects []ConservationProjectView `json:"projects"`
	Partners []Partner                 `json:"partners"`
}
