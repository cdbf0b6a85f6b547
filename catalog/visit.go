package catalog

import "zoo-web/models"

const (
	openingHours = "Open every day from 9:00 AM to 5:00 PM, last entry at 4:00 PM."
	hoursNotice  = "Special summer hours: Open until 7:00 PM on Fridays and Saturdays in July and August!"
)

var ticketTypes = []models.TicketType{
	{ID: models.TicketAdult, Name: "Adult (13-64)", Price: 2999},
	{ID: models.TicketChild, Name: "Child (3-12)", Price: 1999},
	{ID: models.TicketSenior, Name: "Senior (65+)", Price: 2499},
	{ID: models.TicketToddler, Name: "Toddler (0-2)", Price: 0},
}

var faqs = []models.FAQ{
	{Question: "What are your opening hours?", Answer: "Our zoo is open every day from 9:00 AM to 5:00 PM, with last entry at 4:00 PM. We're open on most holidays, with special hours on Christmas and New Year's Day."},
	{Question: "Can I bring my own food and drinks?", Answer: "Yes, you are welcome to bring your own food and non-alcoholic beverages. We have several picnic areas throughout the zoo. However, we ask that you do not bring glass containers or straws for the safety of our animals."},
	{Question: "Are pets allowed in the zoo?", Answer: "For the safety and wellbeing of our zoo animals, pets are not permitted, with the exception of service animals. Service animals must be kept on a leash at all times and may be restricted from certain areas."},
	{Question: "Do you offer wheelchair rentals?", Answer: "Yes, we offer wheelchair rentals on a first-come, first-served basis for $10 per day. We recommend reserving in advance during peak seasons. Our zoo is fully accessible with ramps and paved pathways throughout."},
	{Question: "Are there discounts for large groups?", Answer: "Yes, we offer discounted rates for groups of 15 or more people. Please contact our Group Sales office at least two weeks in advance to make arrangements and secure your group rate."},
	{Question: "What if it rains during my visit?", Answer: "The zoo remains open during light to moderate rain. Many of our exhibits have covered viewing areas, and we have several indoor attractions. In case of severe weather, some outdoor exhibits may temporarily close."},
	{Question: "Can I feed the animals?", Answer: "No, visitors are not permitted to feed the animals. Our animals follow specially designed diets monitored by our nutritionists and veterinary staff. Unauthorized feeding can cause serious health problems."},
	{Question: "Do you offer guided tours?", Answer: "Yes, we offer guided tours daily at 10:00 AM and 2:00 PM. These tours last approximately 90 minutes and provide fascinating insights into our animals and conservation efforts. Tours can be booked online or at the information desk."},
}

// Recurring events, scheduled as five-field cron expressions
var events = []models.Event{
	{ID: 1, Title: "Penguin Feeding", Description: "Watch our penguins enjoy their meal while learning about their diet and habits.", Schedule: "0 11 * * *", Duration: 30, Location: "Penguin Habitat", Category: models.EventCategoryDaily},
	{ID: 2, Title: "Conservation Talk: Saving Tigers", Description: "Join our conservationists for an informative presentation about tiger conservation efforts.", Schedule: "0 14 * * 4", Duration: 45, Location: "Education Center", Category: models.EventCategoryEducational},
	{ID: 3, Title: "Kids Safari Adventure", Description: "A guided tour for children to explore and learn about various animals through fun activities.", Schedule: "0 10 * * 6", Duration: 60, Location: "Meeting Point: Main Entrance", Category: models.EventCategorySpecial},
	{ID: 4, Title: "Night Safari Experience", Description: "Explore the zoo after hours and see nocturnal animals in action.", Schedule: "0 19 * * 1", Duration: 90, Location: "Night Safari Entrance", Category: models.EventCategorySpecial, Price: 3599},
	{ID: 5, Title: "Breakfast with Giraffes", Description: "Enjoy a gourmet breakfast with our giraffe family in a private setting.", Schedule: "30 8 * * 0", Duration: 60, Location: "African Savanna", Category: models.EventCategorySpecial, Price: 4999},
	{ID: 6, Title: "Conservation Workshop", Description: "Hands-on workshop learning about wildlife conservation techniques.", Schedule: "0 13 * * 3", Duration: 120, Location: "Education Center", Category: models.EventCategoryEducational, Price: 1599},
}

var mapAreas = []models.MapArea{
	{ID: "af", Name: "African Savanna", Animals: 12, Facilities: []string{"Food", "Restroom", "Gift Shop"}, Habitat: "Savanna"},
	{ID: "as", Name: "Asian Rainforest", Animals: 15, Facilities: []string{"Food", "Restroom"}, Habitat: "Rainforest"},
	{ID: "au", Name: "Australian Outback", Animals: 8, Facilities: []string{"Restroom"}, Habitat: "Grassland"},
	{ID: "ar", Name: "Arctic Tundra", Animals: 6, Facilities: []string{"Food", "Gift Shop"}, Habitat: "Tundra"},
	{ID: "aq", Name: "Aquatic World", Animals: 25, Facilities: []string{"Food", "Restroom", "Gift Shop"}, Habitat: "Island"},
	{ID: "rp", Name: "Reptile House", Animals: 20, Facilities: []string{"Restroom"}, Habitat: "Forest"},
	{ID: "am", Name: "Amazonian Jungle", Animals: 10, Facilities: []string{"Food"}, Habitat: "Rainforest"},
}

var itinerary = []models.ItineraryStop{
	{Time: "10:00 AM", Activity: "Arrival & Welcome", Location: "Main Entrance"},
	{Time: "10:30 AM", Activity: "Elephant Feeding", Location: "African Savanna"},
	{Time: "11:30 AM", Activity: "Reptile Demonstration", Location: "Reptile House"},
	{Time: "12:30 PM", Activity: "Lunch Break", Location: "Central Food Court"},
	{Time: "1:30 PM", Activity: "Penguin Exhibit", Location: "Arctic Tundra"},
	{Time: "2:30 PM", Activity: "Tiger Viewing", Location: "Asian Rainforest"},
	{Time: "3:30 PM", Activity: "Seal Show", Location: "Aquatic World"},
	{Time: "4:30 PM", Activity: "Departure", Location: "Main Exit"},
}
