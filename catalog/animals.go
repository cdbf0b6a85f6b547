package catalog

import "zoo-web/models"

var animals = []models.Animal{
	{
		ID:                 1,
		Name:               "African Elephant",
		ScientificName:     "Loxodonta africana",
		Description:        "The largest land animals on Earth, known for their intelligence and complex social structures. They can live up to 70 years in the wild.",
		Image:              "https://images.pexels.com/photos/133394/pexels-photo-133394.jpeg",
		Habitat:            "Savanna",
		Diet:               "Herbivore",
		ConservationStatus: "Vulnerable",
		Region:             "Africa",
		ActivityTime:       "Diurnal",
		Highlighted:        true,
		HighlightReason:    "Conservation Success Story",
	},
	{
		ID:                 2,
		Name:               "Bengal Tiger",
		ScientificName:     "Panthera tigris tigris",
		Description:        "A tiger subspecies native to the Indian subcontinent with a distinctive orange coat with black stripes. They can run at speeds up to 65 km/h.",
		Image:              "https://images.pexels.com/photos/145939/pexels-photo-145939.jpeg",
		Habitat:            "Forest",
		Diet:               "Carnivore",
		ConservationStatus: "Endangered",
		Region:             "Asia",
		ActivityTime:       "Nocturnal",
		Highlighted:        true,
		HighlightReason:    "Flagship Conservation Species",
	},
	{
		ID:                 3,
		Name:               "Giant Panda",
		ScientificName:     "Ailuropoda melanoleuca",
		Description:        "A bear native to China, known for its distinctive black and white coloring. They spend 10-16 hours a day feeding on bamboo.",
		Image:              "https://images.pexels.com/photos/158109/kodiak-brown-bear-adult-portrait-wildlife-158109.jpeg",
		Habitat:            "Forest",
		Diet:               "Herbivore",
		ConservationStatus: "Vulnerable",
		Region:             "Asia",
		ActivityTime:       "Crepuscular",
		Highlighted:        true,
		HighlightReason:    "Symbol of Wildlife Conservation",
	},
	{
		ID:                 4,
		Name:               "Komodo Dragon",
		ScientificName:     "Varanus komodoensis",
		Description:        "The largest living species of lizard, found in Indonesian islands. A powerful predator with venomous saliva that can take down large prey.",
		Image:              "https://images.pexels.com/photos/6686455/pexels-photo-6686455.jpeg",
		Habitat:            "Grassland",
		Diet:               "Carnivore",
		ConservationStatus: "Endangered",
		Region:             "Asia",
		ActivityTime:       "Diurnal",
		Highlighted:        true,
		HighlightReason:    "Unique Island Species",
	},
	{
		ID:                 5,
		Name:               "Red Panda",
		ScientificName:     "Ailurus fulgens",
		Description:        "A small, arboreal mammal native to the eastern Himalayas and southwestern China. They have a bushy tail and feed mainly on bamboo.",
		Image:              "https://images.pexels.com/photos/145902/pexels-photo-145902.jpeg",
		Habitat:            "Forest",
		Diet:               "Omnivore",
		ConservationStatus: "Endangered",
		Region:             "Asia",
		ActivityTime:       "Crepuscular",
		Highlighted:        true,
		HighlightReason:    "Endangered Mountain Species",
	},
	{
		ID:                 6,
		Name:               "African Lion",
		ScientificName:     "Panthera leo",
		Description:        "Known as the \"king of the jungle,\" lions are the second-largest big cat after tigers. They live in prides and are apex predators.",
		Image:              "https://images.pexels.com/photos/33045/lion-wild-africa-african.jpg",
		Habitat:            "Savanna",
		Diet:               "Carnivore",
		ConservationStatus: "Vulnerable",
		Region:             "Africa",
		ActivityTime:       "Nocturnal",
	},
	{
		ID:                 7,
		Name:               "Polar Bear",
		ScientificName:     "Ursus maritimus",
		Description:        "The largest land carnivore, adapted to life in the Arctic with thick fur and layers of fat. They primarily hunt seals on sea ice.",
		Image:              "https://images.pexels.com/photos/3777200/pexels-photo-3777200.jpeg",
		Habitat:            "Tundra",
		Diet:               "Carnivore",
		ConservationStatus: "Vulnerable",
		Region:             "Arctic",
		ActivityTime:       "Diurnal",
		Highlighted:        true,
		HighlightReason:    "Climate Change Indicator Species",
	},
	{
		ID:                 8,
		Name:               "Sumatran Orangutan",
		ScientificName:     "Pongo abelii",
		Description:        "Critically endangered great apes known for their intelligence. They share 96.4% of our DNA and can use tools and solve complex problems.",
		Image:              "https://images.pexels.com/photos/1321794/pexels-photo-1321794.jpeg",
		Habitat:            "Forest",
		Diet:               "Herbivore",
		ConservationStatus: "Critically Endangered",
		Region:             "Asia",
		ActivityTime:       "Diurnal",
		Highlighted:        true,
		HighlightReason:    "Critically Endangered Primate",
	},
	{
		ID:                 9,
		Name:               "Blue Poison Dart Frog",
		ScientificName:     "Dendrobates tinctorius azureus",
		Description:        "A small, brightly colored frog native to South America. Their skin secretes toxins used by indigenous people for hunting.",
		Image:              "https://images.pexels.com/photos/674318/pexels-photo-674318.jpeg",
		Habitat:            "Rainforest",
		Diet:               "Carnivore",
		ConservationStatus: "Near Threatened",
		Region:             "South America",
		ActivityTime:       "Diurnal",
	},
	{
		ID:                 10,
		Name:               "Galapagos Tortoise",
		ScientificName:     "Chelonoidis niger",
		Description:        "One of the longest-lived animals, with some individuals exceeding 100 years. They played a key role in Darwin's theory of evolution.",
		Image:              "https://images.pexels.com/photos/2613148/pexels-photo-2613148.jpeg",
		Habitat:            "Island",
		Diet:               "Herbivore",
		ConservationStatus: "Vulnerable",
		Region:             "South America",
		ActivityTime:       "Diurnal",
	},
	{
		ID:                 11,
		Name:               "Koala",
		ScientificName:     "Phascolarctos cinereus",
		Description:        "An arboreal herbivorous marsupial native to Australia. They sleep up to 20 hours a day and feed exclusively on eucalyptus leaves.",
		Image:              "https://images.pexels.com/photos/3690511/pexels-photo-3690511.jpeg",
		Habitat:            "Forest",
		Diet:               "Herbivore",
		ConservationStatus: "Vulnerable",
		Region:             "Australia",
		ActivityTime:       "Nocturnal",
	},
	{
		ID:                 12,
		Name:               "California Condor",
		ScientificName:     "Gymnogyps californianus",
		Description:        "The largest North American land bird with a wingspan of up to 3 meters. They were brought back from the brink of extinction through conservation efforts.",
		Image:              "https://images.pexels.com/photos/4488636/pexels-photo-4488636.jpeg",
		Habitat:            "Mountain",
		Diet:               "Carnivore",
		ConservationStatus: "Critically Endangered",
		Region:             "North America",
		ActivityTime:       "Diurnal",
		Highlighted:        true,
		HighlightReason:    "Conservation Recovery Success",
	},
}

// StatusColors maps a conservation status to its badge color
var StatusColors = map[string]string{
	"Least Concern":         "#4caf50",
	"Near Threatened":       "#8bc34a",
	"Vulnerable":            "#ffc107",
	"Endangered":            "#ff9800",
	"Critically Endangered": "#f44336",
	"Extinct in Wild":       "#9c27b0",
	"Extinct":               "#000000",
}
