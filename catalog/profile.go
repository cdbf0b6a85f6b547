package catalog

import (
	"slices"

	"zoo-web/models"
)

var membership = models.Membership{
	Type:       "Standard",
	Number:     "M-10042389",
	ValidUntil: "December 31, 2025",
	Benefits: []string{
		"Free entry to the zoo",
		"Member-only events",
		"Quarterly newsletter",
		"Discounts at zoo shops",
	},
}

var favoriteAnimalIDs = []int{1, 2}

// Membership returns the membership shown on every profile
func (s *Store) Membership() models.Membership {
	m := membership
	m.Benefits = slices.Clone(m.Benefits)
	return m
}

// FavoriteAnimals returns the animals pinned on the profile page
func (s *Store) FavoriteAnimals() []models.Animal {
	out := make([]models.Animal, 0, len(favoriteAnimalIDs))
	for _, id := range favoriteAnimalIDs {
		if a, ok := s.FindAnimal(id); ok {
			out = append(out, a)
		}
	}
	return out
}
