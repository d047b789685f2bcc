package services

import "roamio/internal/models/response_models"

// tourCatalog is the static tour inventory. It is loaded once at process
// start and never mutated; handlers only ever hand out read-only views.
var tourCatalog = []response_models.TourPackage{
	{
		ID:          1,
		Name:        "Kathmandu Valley Heritage Tour",
		Duration:    "7 days",
		Price:       "$800",
		Description: "Explore the ancient temples, stupas and durbar squares of the Kathmandu Valley with a local guide.",
		Itinerary: []string{
			"Day 1: Arrival and welcome dinner in Thamel",
			"Day 2: Swayambhunath and Kathmandu Durbar Square",
			"Day 3: Pashupatinath and Boudhanath",
			"Day 4: Bhaktapur day trip",
			"Day 5: Patan and traditional crafts workshop",
			"Day 6: Nagarkot sunrise viewpoint",
			"Day 7: Departure",
		},
		Includes: []string{"Accommodation", "Breakfast", "Licensed guide", "Entry fees", "Airport transfers"},
		BestFor:  []string{"Cultural enthusiasts", "History lovers", "First-time visitors"},
	},
	{
		ID:          2,
		Name:        "Annapurna Base Camp Trek",
		Duration:    "10 days",
		Price:       "$1200",
		Description: "A classic teahouse trek through rhododendron forests and Gurung villages to the Annapurna sanctuary.",
		Itinerary: []string{
			"Day 1: Drive to Pokhara",
			"Day 2: Trek to Ghandruk",
			"Day 3: Ghandruk to Chhomrong",
			"Day 4: Chhomrong to Bamboo",
			"Day 5: Bamboo to Deurali",
			"Day 6: Deurali to Annapurna Base Camp",
			"Day 7: Descent to Bamboo",
			"Day 8: Bamboo to Jhinu hot springs",
			"Day 9: Return to Pokhara",
			"Day 10: Drive back to Kathmandu",
		},
		Includes: []string{"Teahouse lodging", "All meals on trek", "Trekking permits", "Guide and porter"},
		BestFor:  []string{"Adventure seekers", "Trekkers", "Nature lovers"},
	},
	{
		ID:          3,
		Name:        "Pokhara Lakeside Retreat",
		Duration:    "4 days",
		Price:       "$450",
		Description: "Relaxed lakeside stay with boating on Phewa Lake, paragliding options and mountain views.",
		Itinerary: []string{
			"Day 1: Tourist bus to Pokhara, lakeside stroll",
			"Day 2: Boating and World Peace Pagoda hike",
			"Day 3: Sarangkot sunrise, optional paragliding",
			"Day 4: Return to Kathmandu",
		},
		Includes: []string{"Hotel with lake view", "Breakfast", "Boat hire", "Transport"},
		BestFor:  []string{"Relaxation", "Couples", "Photography"},
	},
	{
		ID:          4,
		Name:        "Chitwan Jungle Safari",
		Duration:    "3 days",
		Price:       "$350",
		Description: "Wildlife spotting in Chitwan National Park: rhinos, crocodiles and, with luck, a Bengal tiger.",
		Itinerary: []string{
			"Day 1: Drive to Sauraha, Tharu village walk",
			"Day 2: Jeep safari and canoe ride",
			"Day 3: Bird watching and return",
		},
		Includes: []string{"Jungle lodge", "Full board", "Park fees", "Naturalist guide"},
		BestFor:  []string{"Wildlife watchers", "Families", "Nature lovers"},
	},
	{
		ID:          5,
		Name:        "Everest Base Camp Expedition",
		Duration:    "14 days",
		Price:       "$1800",
		Description: "The iconic trek from Lukla to Everest Base Camp with acclimatization days in Namche and Dingboche.",
		Itinerary: []string{
			"Day 1: Fly to Lukla, trek to Phakding",
			"Day 2: Phakding to Namche Bazaar",
			"Day 3: Acclimatization day in Namche",
			"Day 4: Namche to Tengboche",
			"Day 5: Tengboche to Dingboche",
			"Day 6: Acclimatization day in Dingboche",
			"Day 7: Dingboche to Lobuche",
			"Day 8: Lobuche to Gorak Shep, Everest Base Camp",
			"Day 9: Kala Patthar sunrise, descend to Pheriche",
			"Day 10-13: Descent to Lukla",
			"Day 14: Fly back to Kathmandu",
		},
		Includes: []string{"Domestic flights", "Teahouse lodging", "All meals on trek", "Permits", "Guide and porter"},
		BestFor:  []string{"Adventure seekers", "Experienced trekkers", "Bucket-list travelers"},
	},
	{
		ID:          6,
		Name:        "Lumbini Pilgrimage Tour",
		Duration:    "5 days",
		Price:       "$550",
		Description: "Visit the birthplace of the Buddha and the monastic zone built by Buddhist communities worldwide.",
		Itinerary: []string{
			"Day 1: Drive to Lumbini",
			"Day 2: Maya Devi Temple and sacred garden",
			"Day 3: Monastic zone by bicycle",
			"Day 4: Kapilvastu excursion",
			"Day 5: Return to Kathmandu",
		},
		Includes: []string{"Hotel", "Breakfast", "Entry fees", "Transport", "Guide"},
		BestFor:  []string{"Spiritual seekers", "Cultural enthusiasts", "History lovers"},
	},
}
