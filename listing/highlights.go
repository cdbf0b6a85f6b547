package listing

import "zoo-web/models"

// Home page carousel sizing
const (
	HighlightInitialCount = 8
	HighlightStep         = 4
)

// HighlightView is the home page "highlighted animals" grid: a region and
// status filter plus a growing display count
type HighlightView struct {
	region string
	status string
	count  int
}

// NewHighlightView starts with no filter and the initial count
func NewHighlightView() *HighlightView {
	return &HighlightView{region: All, status: All, count: HighlightInitialCount}
}

// SetFilters selects region and status; any change resets the count
func (h *HighlightView) SetFilters(region, status string) bool {
	if region == "" {
		region = All
	}
	if status == "" {
		status = All
	}
	if region == h.region && status == h.status {
		return false
	}
	h.region, h.status = region, status
	h.count = HighlightInitialCount
	return true
}

// ShowMore reveals another step of animals, capped at total
func (h *HighlightView) ShowMore(total int) {
	h.count = min(h.count+HighlightStep, max(total, HighlightInitialCount))
}

// Filters returns the current region and status selection
func (h *HighlightView) Filters() map[string]string {
	return map[string]string{DimRegion: h.region, DimStatus: h.status}
}

// Visible filters the animals and cuts them to the display count.
// more reports whether hidden matches remain.
func (h *HighlightView) Visible(animals []models.Animal) (visible []models.Animal, more bool) {
	filtered := h.Matching(animals)
	if len(filtered) <= h.count {
		return filtered, false
	}
	return filtered[:h.count], true
}

// Matching returns every animal passing the region and status filter
func (h *HighlightView) Matching(animals []models.Animal) []models.Animal {
	return Filter(animals,
		Equals(h.region, func(a models.Animal) string { return a.Region }),
		Equals(h.status, func(a models.Animal) string { return a.ConservationStatus }),
	)
}
