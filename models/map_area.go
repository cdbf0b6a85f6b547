package models

// Route type values for the zoo map
const (
	RouteRegular    = "regular"
	RouteAccessible = "accessible"
)

// MapArea represents an area on the zoo map
type MapArea struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Animals    int      `json:"animals"`
	Facilities []string `json:"facilities"`
	Habitat    string   `json:"habitat"` // Directory habitat the area links to
}

// ItineraryStop is one entry of the suggested visit itinerary
type ItineraryStop struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Location string `json:"location"`
}

// ZooMapResponse represents the zoo map page
type ZooMapResponse struct {
	Areas        []MapArea       `json:"areas"`
	SelectedArea *MapArea        `json:"selectedArea,omitempty"`
	Facilities   []string        `json:"facilities"`
	RouteType    string          `json:"routeType"`
	Itinerary    []ItineraryStop `json:"itinerary"`
	// DirectoryLink points at the animal directory filtered by the selected area's habitat
	DirectoryLink string `json:"directoryLink,omitempty"`
}
