package catalog

import "zoo-web/models"

var projects = []models.ConservationProject{
	{
		ID:            1,
		Title:         "Tiger Conservation Initiative",
		Description:   "Supporting anti-poaching efforts and habitat restoration for wild tigers in Asia. This project works with local communities to reduce human-wildlife conflict.",
		TargetAmount:  50000,
		CurrentAmount: 32500,
		Location:      "Southeast Asia",
		Image:         "https://images.pexels.com/photos/46251/sumatran-tiger-tiger-big-cat-stripes-46251.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Impacts: []string{
			"Protected 5,000+ acres of tiger habitat",
			"Reduced poaching by 60% in project areas",
			"Trained 200+ local conservation rangers",
		},
	},
	{
		ID:            2,
		Title:         "Coral Reef Restoration",
		Description:   "Rebuilding damaged coral reefs and educating communities on marine conservation. Our team is developing innovative techniques to accelerate coral growth.",
		TargetAmount:  35000,
		CurrentAmount: 28000,
		Location:      "Pacific Ocean",
		Image:         "https://images.pexels.com/photos/847393/pexels-photo-847393.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Impacts: []string{
			"Restored 3,000+ square meters of coral reef",
			"Increased fish biodiversity by 45% in restored areas",
			"Trained 150 local divers in coral restoration techniques",
		},
	},
	{
		ID:            3,
		Title:         "Elephant Protection Program",
		Description:   "Creating safe corridors for elephant migration and reducing human-wildlife conflict through community engagement and education initiatives.",
		TargetAmount:  75000,
		CurrentAmount: 45000,
		Location:      "East Africa",
		Image:         "https://images.pexels.com/photos/66898/elephant-cub-tsavo-kenya-66898.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Impacts: []string{
			"Established 120 miles of protected migration corridors",
			"Reduced human-elephant conflicts by 70%",
			"Supported 15 communities with sustainable farming practices",
		},
	},
	{
		ID:            4,
		Title:         "Rainforest Preservation",
		Description:   "Protecting critical rainforest habitats from deforestation through land acquisition, community partnerships, and sustainable agriculture training.",
		TargetAmount:  90000,
		CurrentAmount: 52000,
		Location:      "Amazon Basin",
		Image:         "https://images.pexels.com/photos/975771/pexels-photo-975771.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Impacts: []string{
			"Protected 12,000+ acres of primary rainforest",
			"Partnered with 25 indigenous communities",
			"Planted 50,000+ native trees in degraded areas",
		},
	},
}

var partners = []models.Partner{
	{ID: 1, Name: "World Wildlife Fund", Description: "Global conservation organization working to protect wildlife and reduce human impact on the environment."},
	{ID: 2, Name: "Ocean Conservation Alliance", Description: "Dedicated to protecting marine ecosystems through science, policy, and community engagement."},
	{ID: 3, Name: "Rainforest Trust", Description: "Purchases and protects threatened tropical forests to save endangered wildlife and sequester carbon."},
}
