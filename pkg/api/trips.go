package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/adfharrison1/go-voyage/pkg/planner"
)

// HandleCreateTrip creates a trip from a draft form
func (h *Handler) HandleCreateTrip(w http.ResponseWriter, r *http.Request) {
	var draft planner.TripDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Errorf("Decoding body failed: %v", err)
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if draft.Name == "" || len(draft.Destinations) == 0 {
		WriteJSONError(w, http.StatusBadRequest, "name and destinations are required")
		return
	}

	trip, err := h.planner.CreateTrip(r.Context(), draft)
	if err != nil {
		log.Errorf("Create trip failed: %v", err)
		WriteJSONError(w, statusFor(err), err.Error())
		return
	}

	log.Infof("Created trip '%s'", trip.ID)
	writeJSON(w, http.StatusCreated, trip)
}

// HandleEditTrip replaces a trip's fields from a draft form
func (h *Handler) HandleEditTrip(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var draft planner.TripDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Errorf("Decoding body failed: %v", err)
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	trip, err := h.planner.UpdateTrip(r.Context(), id, draft)
	if err != nil {
		log.Errorf("Edit trip '%s' failed: %v", id, err)
		WriteJSONError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// HandleGenerateItinerary generates and stores the itinerary days of a trip
func (h *Handler) HandleGenerateItinerary(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	log.Infof("handleGenerateItinerary called for trip '%s'", id)

	days, err := h.planner.GenerateItinerary(r.Context(), id)
	if err != nil {
		log.Errorf("Itinerary generation failed for trip '%s': %v", id, err)
		WriteJSONError(w, invokeStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, days)
}

// AddExpenseRequest is the body of an add-expense call
type AddExpenseRequest struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// HandleAddExpense adds an amount to one expense category of a trip
func (h *Handler) HandleAddExpense(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req AddExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("Decoding body failed: %v", err)
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	trip, err := h.planner.AddExpense(r.Context(), id, req.Category, req.Amount)
	if err != nil {
		log.Errorf("Add expense failed for trip '%s': %v", id, err)
		WriteJSONError(w, statusFor(err), err.Error())
		return
	}

	log.Infof("Added %.2f to '%s' for trip '%s'", req.Amount, req.Category, id)
	writeJSON(w, http.StatusOK, planner.SummarizeExpenses(trip))
}

// HandleTripOverview returns a trip with its itinerary and expense summary
func (h *Handler) HandleTripOverview(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ov, err := h.planner.Overview(r.Context(), id)
	if err != nil {
		log.Errorf("Overview failed for trip '%s': %v", id, err)
		WriteJSONError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, ov)
}
