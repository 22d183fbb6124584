package integration

import "github.com/adfharrison1/go-voyage/pkg/domain"

// Plan is the itinerary shape returned by generative backends.
type Plan struct {
	TotalDistanceKM float64   `json:"total_distance_km"`
	Days            []PlanDay `json:"days"`
}

// PlanDay is one day of a Plan.
type PlanDay struct {
	DayNumber     int                   `json:"day_number"`
	DistanceKM    float64               `json:"distance_km"`
	EstimatedCost float64               `json:"estimated_cost"`
	Places        []domain.Place        `json:"places"`
	Restaurants   []domain.Restaurant   `json:"restaurants"`
	Hotels        []domain.Hotel        `json:"hotels,omitempty"`
	Schedule      []domain.ScheduleSlot `json:"schedule"`
}

// MysorePlan returns the fixed two-day itinerary served by MockInvoker.
func MysorePlan() Plan {
	return Plan{
		TotalDistanceKM: 120,
		Days: []PlanDay{
			{
				DayNumber:     1,
				DistanceKM:    15,
				EstimatedCost: 2500,
				Places: []domain.Place{
					{
						Name:          "Mysore Palace",
						Type:          "palace",
						Description:   "Historical palace and royal residence.",
						EstimatedCost: 100,
						Duration:      "2 hours",
						Rating:        4.8,
						BestTime:      "Morning",
					},
					{
						Name:          "Jaganmohan Palace",
						Type:          "museum",
						Description:   "Art gallery and museum.",
						EstimatedCost: 50,
						Duration:      "1.5 hours",
						Rating:        4.5,
						BestTime:      "Afternoon",
					},
				},
				Restaurants: []domain.Restaurant{
					{
						Name:       "RRR",
						Cuisine:    "Andhra",
						Type:       "Casual",
						CostForTwo: 800,
						Rating:     4.6,
						MustTry:    []string{"Biryani"},
					},
				},
				Hotels: []domain.Hotel{
					{
						Name:          "Royal Orchid Metropole",
						Type:          "Heritage",
						PricePerNight: 5000,
						Rating:        4.7,
						Amenities:     []string{"Pool", "Spa"},
					},
				},
				Schedule: []domain.ScheduleSlot{
					{Time: "10:00 AM", Activity: "Visit Mysore Palace", Duration: "2h"},
					{Time: "01:00 PM", Activity: "Lunch at RRR", Duration: "1h"},
					{Time: "03:00 PM", Activity: "Jaganmohan Palace", Duration: "1.5h"},
				},
			},
			{
				DayNumber:     2,
				DistanceKM:    40,
				EstimatedCost: 1500,
				Places: []domain.Place{
					{
						Name:          "Chamundi Hill",
						Type:          "temple",
						Description:   "Ancient temple on a hill.",
						EstimatedCost: 0,
						Duration:      "2 hours",
						Rating:        4.7,
					},
					{
						Name:          "Mysore Zoo",
						Type:          "zoo",
						Description:   "One of the oldest and largest zoos in India.",
						EstimatedCost: 100,
						Duration:      "3 hours",
						Rating:        4.6,
					},
				},
				Restaurants: []domain.Restaurant{
					{
						Name:       "Mylari",
						Cuisine:    "South Indian",
						Type:       "Simple",
						CostForTwo: 300,
						Rating:     4.8,
						MustTry:    []string{"Dosa"},
					},
				},
				Schedule: []domain.ScheduleSlot{
					{Time: "08:00 AM", Activity: "Chamundi Hill Visit", Duration: "2h"},
					{Time: "11:00 AM", Activity: "Breakfast at Mylari", Duration: "1h"},
					{Time: "01:00 PM", Activity: "Mysore Zoo", Duration: "3h"},
				},
			},
		},
	}
}
