// Command seed_trips creates random trips against a running voyage server
// and reports the request rate.
//
//	go run ./test_scripts/seed_trips <number_of_trips> [server_url]
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

var destinations = []string{"Mysore", "Coorg", "Ooty", "Hampi", "Gokarna", "Wayanad", "Chikmagalur", "Pondicherry"}

var budgets = []string{"budget", "moderate", "luxury"}

// tripDraft mirrors the /trips request body
type tripDraft struct {
	Name               string   `json:"name"`
	StartPlace         string   `json:"start_place"`
	Destinations       []string `json:"destinations"`
	StartDate          string   `json:"start_date"`
	EndDate            string   `json:"end_date"`
	BudgetType         string   `json:"budget_type"`
	NumberOfTravellers int      `json:"number_of_travellers"`
}

func randomDraft(rng *rand.Rand, i int) tripDraft {
	n := rng.Intn(3) + 1
	dests := make([]string, 0, n)
	for _, idx := range rng.Perm(len(destinations))[:n] {
		dests = append(dests, destinations[idx])
	}
	start := time.Now().AddDate(0, 0, rng.Intn(90))
	end := start.AddDate(0, 0, rng.Intn(6))
	return tripDraft{
		Name:               fmt.Sprintf("%s trip %d", dests[0], i+1),
		StartPlace:         "Bangalore",
		Destinations:       dests,
		StartDate:          start.Format("2006-01-02"),
		EndDate:            end.Format("2006-01-02"),
		BudgetType:         budgets[rng.Intn(len(budgets))],
		NumberOfTravellers: rng.Intn(6) + 1,
	}
}

// createTrip sends a POST request to create a trip
func createTrip(baseURL string, draft tripDraft) error {
	body, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal trip: %w", err)
	}

	resp, err := http.Post(baseURL+"/trips", "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run ./test_scripts/seed_trips <number_of_trips> [server_url]")
		os.Exit(1)
	}

	numTrips, err := strconv.Atoi(os.Args[1])
	if err != nil || numTrips <= 0 {
		fmt.Printf("Error: invalid number of trips '%s'\n", os.Args[1])
		os.Exit(1)
	}

	serverURL := "http://localhost:8080"
	if len(os.Args) >= 3 {
		serverURL = strings.TrimSuffix(os.Args[2], "/")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	fmt.Printf("Seeding %d trips to %s\n", numTrips, serverURL)

	startTime := time.Now()
	successCount, errorCount := 0, 0
	reportInterval := max(1, numTrips/10)

	for i := 0; i < numTrips; i++ {
		draft := randomDraft(rng, i)
		if err := createTrip(serverURL, draft); err != nil {
			errorCount++
			fmt.Printf("Error creating trip %d (%s): %v\n", i+1, draft.Name, err)
		} else {
			successCount++
		}

		if (i+1)%reportInterval == 0 || i == numTrips-1 {
			rate := float64(i+1) / time.Since(startTime).Seconds()
			fmt.Printf("Progress: %d/%d trips (%.1f%%) - Rate: %.1f trips/sec - Success: %d, Errors: %d\n",
				i+1, numTrips, float64(i+1)/float64(numTrips)*100, rate, successCount, errorCount)
		}
	}

	totalTime := time.Since(startTime)
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Printf("Trips attempted: %d\n", numTrips)
	fmt.Printf("Created:         %d\n", successCount)
	fmt.Printf("Failed:          %d\n", errorCount)
	fmt.Printf("Total time:      %v\n", totalTime)
	fmt.Printf("Average per trip: %v\n", totalTime/time.Duration(numTrips))

	if errorCount > 0 {
		os.Exit(1)
	}
}
