// Package catalog holds the zoo's hard-coded content: animals, shop products,
// conservation projects, events, map areas and visitor information.
//
// Everything handed out by a Store is a copy, so callers can filter and sort
// freely without touching the underlying data.
package catalog

import (
	"slices"

	"zoo-web/models"
)

// All is the first entry of every select list
const All = "All"

// HomeHighlightProjects is how many conservation projects the home page shows
const HomeHighlightProjects = 3

// Store is the read-only catalog of the zoo
type Store struct {
	animals  []models.Animal
	products []models.Product
	projects []models.ConservationProject
	partners []models.Partner
	events   []models.Event
	areas    []models.MapArea
	tickets  []models.TicketType
	faqs     []models.FAQ
	stops    []models.ItineraryStop

	regions       []string
	habitats      []string
	statuses      []string
	activityTimes []string
	facilities    []string
}

// NewStore creates the catalog over the built-in data set
func NewStore() *Store {
	s := &Store{
		animals:  animals,
		products: products,
		projects: projects,
		partners: partners,
		events:   events,
		areas:    mapAreas,
		tickets:  ticketTypes,
		faqs:     faqs,
		stops:    itinerary,
	}

	s.regions = distinct(s.animals, func(a models.Animal) string { return a.Region })
	s.habitats = distinct(s.animals, func(a models.Animal) string { return a.Habitat })
	s.statuses = distinct(s.animals, func(a models.Animal) string { return a.ConservationStatus })
	s.activityTimes = distinct(s.animals, func(a models.Animal) string { return a.ActivityTime })

	// Facilities has no "All" entry: it is a multi-select
	for _, area := range s.areas {
		for _, f := range area.Facilities {
			if !slices.Contains(s.facilities, f) {
				s.facilities = append(s.facilities, f)
			}
		}
	}

	return s
}

// distinct returns All followed by each non-empty field value in first-seen order
func distinct(animals []models.Animal, field func(models.Animal) string) []string {
	out := []string{All}
	for _, a := range animals {
		if v := field(a); v != "" && !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

// Animals returns every animal in catalog order
func (s *Store) Animals() []models.Animal {
	return slices.Clone(s.animals)
}

// FindAnimal looks up an animal by id
func (s *Store) FindAnimal(id int) (models.Animal, bool) {
	for _, a := range s.animals {
		if a.ID == id {
			return a, true
		}
	}
	return models.Animal{}, false
}

// HighlightedAnimals returns the animals flagged for the home page carousel
func (s *Store) HighlightedAnimals() []models.Animal {
	var out []models.Animal
	for _, a := range s.animals {
		if a.Highlighted {
			out = append(out, a)
		}
	}
	return out
}

// Products returns every shop product in catalog order
func (s *Store) Products() []models.Product {
	return slices.Clone(s.products)
}

// FindProduct looks up a product by id
func (s *Store) FindProduct(id int) (models.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Projects returns the conservation projects
func (s *Store) Projects() []models.ConservationProject {
	out := make([]models.ConservationProject, len(s.projects))
	for i, p := range s.projects {
		p.Impacts = slices.Clone(p.Impacts)
		out[i] = p
	}
	return out
}

// Partners returns the partner organizations
func (s *Store) Partners() []models.Partner {
	return slices.Clone(s.partners)
}

// Events returns the recurring events
func (s *Store) Events() []models.Event {
	return slices.Clone(s.events)
}

// MapAreas returns the zoo map areas
func (s *Store) MapAreas() []models.MapArea {
	out := make([]models.MapArea, len(s.areas))
	for i, a := range s.areas {
		a.Facilities = slices.Clone(a.Facilities)
		out[i] = a
	}
	return out
}

// FindMapArea looks up a map area by id
func (s *Store) FindMapArea(id string) (models.MapArea, bool) {
	for _, a := range s.areas {
		if a.ID == id {
			a.Facilities = slices.Clone(a.Facilities)
			return a, true
		}
	}
	return models.MapArea{}, false
}

// Itinerary returns the suggested visit itinerary
func (s *Store) Itinerary() []models.ItineraryStop {
	return slices.Clone(s.stops)
}

// TicketTypes returns the admission ticket types at list price
func (s *Store) TicketTypes() []models.TicketType {
	return slices.Clone(s.tickets)
}

// FAQ returns the visitor questions and answers
func (s *Store) FAQ() []models.FAQ {
	return slices.Clone(s.faqs)
}

// OpeningHours returns the opening hours line and the seasonal notice
func (s *Store) OpeningHours() (hours, notice string) {
	return openingHours, hoursNotice
}

// Regions returns "All" followed by each distinct animal region
func (s *Store) Regions() []string { return slices.Clone(s.regions) }

// Habitats returns "All" followed by each distinct animal habitat
func (s *Store) Habitats() []string { return slices.Clone(s.habitats) }

// Statuses returns "All" followed by each distinct conservation status
func (s *Store) Statuses() []string { return slices.Clone(s.statuses) }

// ActivityTimes returns "All" followed by each distinct activity time
func (s *Store) ActivityTimes() []string { return slices.Clone(s.activityTimes) }

// Categories returns the shop category list, "All" first
func (s *Store) Categories() []string { return slices.Clone(productCategories) }

// Facilities returns the distinct facilities offered across map areas
func (s *Store) Facilities() []string { return slices.Clone(s.facilities) }

// AnimalOptions bundles the directory filter selects
func (s *Store) AnimalOptions() models.AnimalFilterOptions {
	return models.AnimalFilterOptions{
		Habitats:      s.Habitats(),
		Regions:       s.Regions(),
		Statuses:      s.Statuses(),
		ActivityTimes: s.ActivityTimes(),
	}
}
