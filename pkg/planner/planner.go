// Package planner implements the trip workflows built on top of the client:
// trip drafting, itinerary generation, expenses and dashboards.
package planner

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/adfharrison1/go-voyage/pkg/client"
	"github.com/adfharrison1/go-voyage/pkg/domain"
	"github.com/adfharrison1/go-voyage/pkg/entity"
	"github.com/adfharrison1/go-voyage/pkg/integration"
)

// DefaultTripDays is used when a trip has no dates.
const DefaultTripDays = 5

const dateLayout = "2006-01-02"

// DestinationSeparator joins multiple destinations into Trip.Destination.
const DestinationSeparator = " → "

// ErrInvalidDraft is returned when a trip draft cannot become a trip.
var ErrInvalidDraft = errors.New("invalid trip draft")

// Service runs planner workflows against a client.
type Service struct {
	client *client.Client
}

// NewService creates a planner over c.
func NewService(c *client.Client) *Service {
	return &Service{client: c}
}

// TripDraft is the user-entered form a trip is created or edited from.
type TripDraft struct {
	Name                string   `json:"name"`
	StartPlace          string   `json:"start_place"`
	Destinations        []string `json:"destinations"`
	StartDate           string   `json:"start_date"`
	EndDate             string   `json:"end_date"`
	BudgetType          string   `json:"budget_type"`
	FoodPreference      string   `json:"food_preferences"`
	RestaurantType      string   `json:"restaurant_type"`
	HotelType           string   `json:"hotel_type"`
	NumberOfTravellers  int      `json:"number_of_travellers"`
	TransportMode       string   `json:"transport_mode"` // personal or public
	VehicleType         string   `json:"vehicle_type"`
	PublicTransportType string   `json:"public_transport_type"`
}

// ToTrip builds the stored trip for draft, owned by owner.
func (d TripDraft) ToTrip(owner string) (domain.Trip, error) {
	var dests []string
	for _, dest := range d.Destinations {
		if dest = strings.TrimSpace(dest); dest != "" {
			dests = append(dests, dest)
		}
	}
	if d.Name == "" || len(dests) == 0 {
		return domain.Trip{}, fmt.Errorf("%w: trip needs a name and at least one destination", ErrInvalidDraft)
	}

	days := DefaultTripDays
	if d.StartDate != "" && d.EndDate != "" {
		start, err := time.Parse(dateLayout, d.StartDate)
		if err != nil {
			return domain.Trip{}, fmt.Errorf("%w: invalid start date %q: %v", ErrInvalidDraft, d.StartDate, err)
		}
		end, err := time.Parse(dateLayout, d.EndDate)
		if err != nil {
			return domain.Trip{}, fmt.Errorf("%w: invalid end date %q: %v", ErrInvalidDraft, d.EndDate, err)
		}
		days = int(end.Sub(start).Hours()/24) + 1
	}

	travellers := d.NumberOfTravellers
	if travellers <= 0 {
		travellers = 1
	}

	travelMode := orDefault(d.VehicleType, "car")
	if d.TransportMode == "public" {
		travelMode = orDefault(d.PublicTransportType, "any")
	}

	return domain.Trip{
		Name:               d.Name,
		StartPlace:         d.StartPlace,
		Destination:        strings.Join(dests, DestinationSeparator),
		StartDate:          d.StartDate,
		EndDate:            d.EndDate,
		NumberOfDays:       days,
		NumberOfTravellers: travellers,
		BudgetType:         orDefault(d.BudgetType, "moderate"),
		FoodPreferences:    []string{orDefault(d.FoodPreference, "all")},
		RestaurantType:     orDefault(d.RestaurantType, "family"),
		HotelType:          orDefault(d.HotelType, "mid_range"),
		TravelMode:         travelMode,
		Owner:              owner,
		Members:            []string{},
		Status:             domain.TripStatusPlanning,
	}, nil
}

// CreateTrip stores a new trip owned by the current user.
func (s *Service) CreateTrip(ctx context.Context, draft TripDraft) (domain.Trip, error) {
	user, err := s.client.Auth.Me(ctx)
	if err != nil {
		return domain.Trip{}, err
	}
	trip, err := draft.ToTrip(user.Email)
	if err != nil {
		return domain.Trip{}, err
	}
	return s.client.Trips.Create(ctx, trip)
}

// UpdateTrip replaces the user-editable fields of an existing trip. Expenses
// are reset, matching a fresh draft.
func (s *Service) UpdateTrip(ctx context.Context, id string, draft TripDraft) (domain.Trip, error) {
	user, err := s.client.Auth.Me(ctx)
	if err != nil {
		return domain.Trip{}, err
	}
	trip, err := draft.ToTrip(user.Email)
	if err != nil {
		return domain.Trip{}, err
	}
	fields, err := entity.ToRecord(trip)
	if err != nil {
		return domain.Trip{}, err
	}
	delete(fields, domain.FieldID)
	delete(fields, domain.FieldCreatedDate)
	return s.client.Trips.Update(ctx, id, fields)
}

// GenerateItinerary asks the integration for a plan and stores one Itinerary
// per returned day. The trip's total_distance is updated when the plan has one.
func (s *Service) GenerateItinerary(ctx context.Context, tripID string) ([]domain.Itinerary, error) {
	trip, err := s.client.Trips.Get(ctx, tripID)
	if err != nil {
		return nil, err
	}

	log.Infof("Generating itinerary for trip '%s'", tripID)
	resp, err := s.client.Integrations.Core.Invoke(ctx, domain.InvokeRequest{
		Prompt:                 BuildPrompt(trip),
		AddContextFromInternet: true,
		ResponseJSONSchema:     ItinerarySchema(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate suggestions: %w", err)
	}
	if _, ok := resp["days"]; !ok {
		log.Warnf("Integration returned no days for trip '%s'", tripID)
		return []domain.Itinerary{}, nil
	}

	plan, err := entity.FromRecord[integration.Plan](resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read generated plan: %w", err)
	}

	created := make([]domain.Itinerary, 0, len(plan.Days))
	for _, day := range plan.Days {
		it, err := s.client.Itineraries.Create(ctx, itineraryForDay(trip, day))
		if err != nil {
			return created, err
		}
		created = append(created, it)
	}

	if plan.TotalDistanceKM != 0 {
		if _, err := s.client.Trips.Update(ctx, tripID, map[string]interface{}{"total_distance": plan.TotalDistanceKM}); err != nil {
			return created, err
		}
	}
	log.Infof("Stored %d itinerary days for trip '%s'", len(created), tripID)
	return created, nil
}

func itineraryForDay(trip domain.Trip, day integration.PlanDay) domain.Itinerary {
	var date *string
	if start, err := time.Parse(dateLayout, trip.StartDate); err == nil {
		d := start.AddDate(0, 0, day.DayNumber-1).Format(dateLayout)
		date = &d
	}

	places := make([]domain.Place, len(day.Places))
	for i, p := range day.Places {
		p.ID = fmt.Sprintf("place-%d-%d", day.DayNumber, i)
		p.Selected = true
		places[i] = p
	}
	restaurants := make([]domain.Restaurant, len(day.Restaurants))
	for i, r := range day.Restaurants {
		r.ID = fmt.Sprintf("rest-%d-%d", day.DayNumber, i)
		r.Selected = true
		restaurants[i] = r
	}
	hotels := make([]domain.Hotel, len(day.Hotels))
	for i, h := range day.Hotels {
		h.ID = fmt.Sprintf("hotel-%d-%d", day.DayNumber, i)
		h.Selected = i == 0
		hotels[i] = h
	}
	schedule := day.Schedule
	if schedule == nil {
		schedule = []domain.ScheduleSlot{}
	}

	return domain.Itinerary{
		TripID:      trip.ID,
		DayNumber:   day.DayNumber,
		Date:        date,
		Places:      places,
		Restaurants: restaurants,
		Hotels:      hotels,
		Schedule:    schedule,
		DistanceKM:  day.DistanceKM,
		DayBudget:   day.EstimatedCost,
	}
}

// AddExpense adds amount to one expense category of a trip.
func (s *Service) AddExpense(ctx context.Context, tripID, category string, amount float64) (domain.Trip, error) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return domain.Trip{}, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidExpense)
	}
	return s.client.Trips.UpdateFunc(ctx, tripID, func(trip *domain.Trip) error {
		total := trip.Expenses.Category(category)
		if total == nil {
			return fmt.Errorf("%w: unknown category %q", domain.ErrInvalidExpense, category)
		}
		*total += amount
		return nil
	})
}

// ExpenseSummary aggregates a trip's expenses.
type ExpenseSummary struct {
	Total             float64         `json:"total"`
	PerPerson         float64         `json:"per_person"`
	ActiveCategories  int             `json:"active_categories"`
	CategoryBreakdown domain.Expenses `json:"categories"`
}

// SummarizeExpenses totals a trip's expenses and splits them per traveller.
func SummarizeExpenses(trip domain.Trip) ExpenseSummary {
	sum := ExpenseSummary{CategoryBreakdown: trip.Expenses}
	for _, v := range trip.Expenses.Values() {
		sum.Total += v
		if v > 0 {
			sum.ActiveCategories++
		}
	}
	travellers := trip.NumberOfTravellers
	if travellers <= 0 {
		travellers = 1
	}
	sum.PerPerson = math.Round(sum.Total / float64(travellers))
	return sum
}

// Overview is the trip details view.
type Overview struct {
	Trip          domain.Trip        `json:"trip"`
	Itineraries   []domain.Itinerary `json:"itineraries"`
	TotalDistance float64            `json:"total_distance"`
	Expenses      ExpenseSummary     `json:"expenses"`
}

// Overview loads a trip with its itinerary days in day order.
func (s *Service) Overview(ctx context.Context, tripID string) (Overview, error) {
	trip, err := s.client.Trips.Get(ctx, tripID)
	if err != nil {
		return Overview{}, err
	}
	days, err := s.client.Itineraries.Filter(ctx, map[string]interface{}{"trip_id": tripID})
	if err != nil {
		return Overview{}, err
	}
	sort.SliceStable(days, func(i, j int) bool { return days[i].DayNumber < days[j].DayNumber })

	distance := trip.TotalDistance
	if distance == 0 {
		for _, d := range days {
			distance += d.DistanceKM
		}
	}
	return Overview{
		Trip:          trip,
		Itineraries:   days,
		TotalDistance: distance,
		Expenses:      SummarizeExpenses(trip),
	}, nil
}

// UserTrips returns the trips email takes part in, newest first. A non-empty
// status other than "all" restricts the result to that status.
func (s *Service) UserTrips(ctx context.Context, email, status string) ([]domain.Trip, error) {
	trips, err := s.client.Trips.List(ctx, entity.SortNewestFirst)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Trip, 0, len(trips))
	for _, t := range trips {
		if !t.HasTraveller(email) {
			continue
		}
		if status != "" && status != "all" && tripStatus(t) != status {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// Stats counts a user's trips.
type Stats struct {
	Total     int `json:"total"`
	Ongoing   int `json:"ongoing"`
	Completed int `json:"completed"`
}

// Stats summarizes the trips email takes part in.
func (s *Service) Stats(ctx context.Context, email string) (Stats, error) {
	trips, err := s.UserTrips(ctx, email, "")
	if err != nil {
		return Stats{}, err
	}
	st := Stats{Total: len(trips)}
	for _, t := range trips {
		switch tripStatus(t) {
		case domain.TripStatusOngoing:
			st.Ongoing++
		case domain.TripStatusCompleted:
			st.Completed++
		}
	}
	return st, nil
}

func tripStatus(t domain.Trip) string {
	return orDefault(t.Status, domain.TripStatusPlanning)
}
