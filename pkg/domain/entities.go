package domain

// Collection names used by the application.
const (
	EntityTrip        = "Trip"
	EntityItinerary   = "Itinerary"
	EntityChatMessage = "ChatMessage"
)

// Trip statuses.
const (
	TripStatusPlanning  = "planning"
	TripStatusOngoing   = "ongoing"
	TripStatusCompleted = "completed"
)

// Trip is a planned journey owned by a user.
type Trip struct {
	ID                 string   `json:"id,omitempty"`
	CreatedDate        string   `json:"created_date,omitempty"`
	CreatedBy          string   `json:"created_by,omitempty"`
	Name               string   `json:"name"`
	StartPlace         string   `json:"start_place,omitempty"`
	Destination        string   `json:"destination"`
	StartDate          string   `json:"start_date,omitempty"`
	EndDate            string   `json:"end_date,omitempty"`
	NumberOfDays       int      `json:"number_of_days,omitempty"`
	NumberOfTravellers int      `json:"number_of_travellers,omitempty"`
	BudgetType         string   `json:"budget_type,omitempty"`
	FoodPreferences    []string `json:"food_preferences,omitempty"`
	RestaurantType     string   `json:"restaurant_type,omitempty"`
	HotelType          string   `json:"hotel_type,omitempty"`
	TravelMode         string   `json:"travel_mode,omitempty"`
	Owner              string   `json:"owner,omitempty"`
	Members            []string `json:"members"`
	Status             string   `json:"status,omitempty"`
	Expenses           Expenses `json:"expenses"`
	TotalDistance      float64  `json:"total_distance,omitempty"`
}

// HasTraveller reports whether email created, owns or is a member of the trip.
func (t Trip) HasTraveller(email string) bool {
	if email == "" {
		return false
	}
	if t.CreatedBy == email || t.Owner == email {
		return true
	}
	for _, m := range t.Members {
		if m == email {
			return true
		}
	}
	return false
}

// Expense categories.
const (
	ExpenseAccommodation = "accommodation"
	ExpenseFood          = "food"
	ExpenseTransport     = "transport"
	ExpenseFuel          = "fuel"
	ExpenseActivities    = "activities"
	ExpenseMisc          = "misc"
)

// ExpenseCategories lists every valid expense category.
var ExpenseCategories = []string{
	ExpenseFood, ExpenseFuel, ExpenseAccommodation, ExpenseActivities, ExpenseTransport, ExpenseMisc,
}

// Expenses holds running totals per category.
type Expenses struct {
	Accommodation float64 `json:"accommodation"`
	Food          float64 `json:"food"`
	Transport     float64 `json:"transport"`
	Fuel          float64 `json:"fuel"`
	Activities    float64 `json:"activities"`
	Misc          float64 `json:"misc"`
}

// Category returns a pointer to the total for category, or nil if unknown.
func (e *Expenses) Category(category string) *float64 {
	switch category {
	case ExpenseAccommodation:
		return &e.Accommodation
	case ExpenseFood:
		return &e.Food
	case ExpenseTransport:
		return &e.Transport
	case ExpenseFuel:
		return &e.Fuel
	case ExpenseActivities:
		return &e.Activities
	case ExpenseMisc:
		return &e.Misc
	}
	return nil
}

// Values returns the category totals in ExpenseCategories order.
func (e Expenses) Values() []float64 {
	out := make([]float64, 0, len(ExpenseCategories))
	for _, c := range ExpenseCategories {
		out = append(out, *e.Category(c))
	}
	return out
}

// Itinerary is one day of a trip plan.
type Itinerary struct {
	ID          string         `json:"id,omitempty"`
	CreatedDate string         `json:"created_date,omitempty"`
	TripID      string         `json:"trip_id"`
	DayNumber   int            `json:"day_number"`
	Date        *string        `json:"date"`
	Places      []Place        `json:"places"`
	Restaurants []Restaurant   `json:"restaurants"`
	Hotels      []Hotel        `json:"hotels"`
	Schedule    []ScheduleSlot `json:"schedule"`
	DistanceKM  float64        `json:"distance_km"`
	DayBudget   float64        `json:"day_budget"`
}

// Place is a sight to visit.
type Place struct {
	ID            string  `json:"id,omitempty"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Description   string  `json:"description"`
	EstimatedCost float64 `json:"estimated_cost"`
	Duration      string  `json:"duration"`
	Rating        float64 `json:"rating"`
	BestTime      string  `json:"best_time,omitempty"`
	Selected      bool    `json:"selected,omitempty"`
}

// Restaurant is a suggested place to eat.
type Restaurant struct {
	ID         string   `json:"id,omitempty"`
	Name       string   `json:"name"`
	Cuisine    string   `json:"cuisine"`
	Type       string   `json:"type"`
	CostForTwo float64  `json:"cost_for_two"`
	Rating     float64  `json:"rating"`
	MustTry    []string `json:"must_try"`
	Selected   bool     `json:"selected,omitempty"`
}

// Hotel is a suggested place to stay.
type Hotel struct {
	ID            string   `json:"id,omitempty"`
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	PricePerNight float64  `json:"price_per_night"`
	Rating        float64  `json:"rating"`
	Amenities     []string `json:"amenities"`
	Selected      bool     `json:"selected,omitempty"`
}

// ScheduleSlot is one timed activity in a day.
type ScheduleSlot struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Duration string `json:"duration"`
}

// ChatMessage is a message posted to a trip's group chat.
type ChatMessage struct {
	ID          string `json:"id,omitempty"`
	CreatedDate string `json:"created_date,omitempty"`
	TripID      string `json:"trip_id"`
	SenderEmail string `json:"sender_email"`
	SenderName  string `json:"sender_name,omitempty"`
	Message     string `json:"message"`
}
