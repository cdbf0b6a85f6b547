package models

// Animal represents a single animal in the zoo directory
type Animal struct {
	ID                 int    `json:"id"`
	Name               string `json:"name"`
	ScientificName     string `json:"scientificName,omitempty"`
	Description        string `json:"description"`
	Image              string `json:"image"`
	Habitat            string `json:"habitat,omitempty"`
	Diet               string `json:"diet,omitempty"`
	ConservationStatus string `json:"conservationStatus"`
	Region             string `json:"region"`
	ActivityTime       string `json:"activityTime,omitempty"`
	Highlighted        bool   `json:"highlighted"`
	HighlightReason    string `json:"highlightReason,omitempty"`
}

// AnimalFilterOptions lists the values offered by the directory filter selects.
// Every list starts with the "All" sentinel.
type AnimalFilterOptions struct {
	Habitats      []string `json:"habitats"`
	Regions       []string `json:"regions"`
	Statuses      []string `json:"statuses"`
	ActivityTimes []string `json:"activityTimes"`
}

// AnimalNotFoundResponse is the fallback body for an unmatched animal id
// Example: {"error": "animal not found", "id": "42", "back": "/animals"}
type AnimalNotFoundResponse struct {
	Error string `json:"error"`
	ID    string `json:"id"`
	Back  string `json:"back"`
}
