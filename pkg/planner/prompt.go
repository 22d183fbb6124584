package planner

import (
	"fmt"
	"strings"

	"github.com/adfharrison1/go-voyage/pkg/domain"
)

// BuildPrompt renders the itinerary request for trip.
func BuildPrompt(trip domain.Trip) string {
	startPlace := orDefault(trip.StartPlace, "starting point")
	days := trip.NumberOfDays
	if days <= 0 {
		days = DefaultTripDays
	}
	travellers := trip.NumberOfTravellers
	if travellers <= 0 {
		travellers = 1
	}
	food := strings.Join(trip.FoodPreferences, ", ")
	if food == "" {
		food = "All"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create a detailed travel itinerary for a trip to %s from %s.\n", trip.Destination, startPlace)
	fmt.Fprintf(&b, "Duration: %d days\n", days)
	fmt.Fprintf(&b, "Travelers: %d\n", travellers)
	fmt.Fprintf(&b, "Budget: %s\n", orDefault(trip.BudgetType, "moderate"))
	fmt.Fprintf(&b, "Food preference: %s\n", food)
	fmt.Fprintf(&b, "Restaurant type: %s\n", orDefault(trip.RestaurantType, "family"))
	fmt.Fprintf(&b, "Hotel type: %s\n", orDefault(trip.HotelType, "mid_range"))
	b.WriteString(`
For each day provide:
1. 4-5 places to visit with: name, type (viewpoint/garden/lake/museum/temple/beach), description, estimated cost in INR (₹), duration in hours, rating out of 5, best time to visit
2. 2-3 restaurants with: name, cuisine type, type (family/fine_dining/street_food), food type (veg/non_veg), cost for 2 in INR, timing, must try dishes
3. 1 hotel with: name, type, price per night in INR, rating, amenities
4. Daily schedule with time slots

Use realistic Indian place names and prices.`)
	return b.String()
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func str() map[string]interface{} { return map[string]interface{}{"type": "string"} }
func num() map[string]interface{} { return map[string]interface{}{"type": "number"} }

func arrayOf(items map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{"type": "array", "items": items}
}

func object(props map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{"type": "object", "properties": props}
}

// ItinerarySchema is the response schema sent with itinerary requests.
func ItinerarySchema() map[string]interface{} {
	return object(map[string]interface{}{
		"total_distance_km": num(),
		"days": arrayOf(object(map[string]interface{}{
			"day_number": num(),
			"places": arrayOf(object(map[string]interface{}{
				"name":           str(),
				"type":           str(),
				"description":    str(),
				"estimated_cost": num(),
				"duration":       str(),
				"rating":         num(),
				"best_time":      str(),
				"difficulty":     str(),
			})),
			"restaurants": arrayOf(object(map[string]interface{}{
				"name":         str(),
				"cuisine":      str(),
				"type":         str(),
				"food_type":    str(),
				"cost_for_two": num(),
				"timing":       str(),
				"must_try":     arrayOf(str()),
				"rating":       num(),
			})),
			"hotels": arrayOf(object(map[string]interface{}{
				"name":            str(),
				"type":            str(),
				"price_per_night": num(),
				"rating":          num(),
				"amenities":       arrayOf(str()),
				"description":     str(),
			})),
			"schedule": arrayOf(object(map[string]interface{}{
				"time":     str(),
				"activity": str(),
				"duration": str(),
				"cost":     num(),
			})),
			"distance_km":    num(),
			"estimated_cost": num(),
		})),
	})
}
