package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"vehicleagent/internal/model"
	"vehicleagent/internal/utils"
)

// BookingFailureText is the fixed degraded value for a failed booking.
const BookingFailureText = "Failed to book appointment due to server error."

// knownMakes maps query keywords to canonical catalog makes. The order is
// part of the heuristic: the first keyword found in the query wins.
var knownMakes = []struct {
	keyword   string
	canonical string
}{
	{"toyota", "Toyota"},
	{"honda", "Honda"},
	{"tesla", "Tesla"},
	{"ford", "Ford"},
	{"bmw", "BMW"},
	{"mercedes", "Mercedes-Benz"},
	{"hyundai", "Hyundai"},
	{"kia", "Kia"},
}

// Invoker wraps the backend client with degraded-value semantics: every
// operation returns a well-formed placeholder on failure and never
// propagates a backend error to the dispatcher.
type Invoker struct {
	backend *BackendClient
}

// NewInvoker creates a new operation invoker
func NewInvoker(backend *BackendClient) *Invoker {
	return &Invoker{backend: backend}
}

// SearchCars searches the backend for vehicles matching the query and
// returns UI-ready records. A failed backend call yields an empty list.
func (inv *Invoker) SearchCars(ctx context.Context, query string) []model.Vehicle {
	lower := strings.ToLower(query)

	mk := ""
	for _, m := range knownMakes {
		if strings.Contains(lower, m.keyword) {
			mk = m.canonical
			break
		}
	}

	cars, err := inv.backend.Search(ctx, mk, "", "")
	if err != nil {
		log.Printf("Error calling backend search: %v", err)
		return []model.Vehicle{}
	}

	for i := range cars {
		presentCar(&cars[i])
	}
	return cars
}

// CompareCars compares the first two ids against the backend. Fewer than
// two ids is a precondition violation answered locally with an empty
// result; a missing side from the backend yields a shorter list.
func (inv *Invoker) CompareCars(ctx context.Context, ids []string) model.CompareResult {
	if len(ids) < 2 {
		return model.CompareResult{Cars: []model.Vehicle{}}
	}

	envelope, err := inv.backend.Compare(ctx, ids[0], ids[1])
	if err != nil {
		log.Printf("Error calling backend compare: %v", err)
		return model.CompareResult{Cars: []model.Vehicle{}}
	}

	cars := []model.Vehicle{}
	if envelope.Comparison.Vehicle1 != nil {
		cars = append(cars, *envelope.Comparison.Vehicle1)
	}
	if envelope.Comparison.Vehicle2 != nil {
		cars = append(cars, *envelope.Comparison.Vehicle2)
	}
	for i := range cars {
		presentCar(&cars[i])
	}

	return model.CompareResult{Cars: cars, Verdict: envelope.Comparison.Verdict}
}

// BookAppointment books a test drive and returns human-readable
// confirmation text. Failure returns a fixed failure string, never an error.
func (inv *Invoker) BookAppointment(ctx context.Context, carID, date, email string) string {
	log.Printf("Booking appointment for car_id=%s, date=%s, email=%s", carID, date, email)

	// The simple booking form does not capture a customer name.
	booking := BookingRequest{
		VehicleID:    carID,
		CustomerName: "Demo User",
		Date:         date,
	}

	confirmation, err := inv.backend.Book(ctx, booking)
	if err != nil {
		log.Printf("Error calling backend book: %v", err)
		return BookingFailureText
	}

	status := "Confirmed"
	if s, ok := confirmation["status"].(string); ok && s != "" {
		status = s
	}
	return fmt.Sprintf("Appointment confirmed. Status: %s.", status)
}

// NegotiatePrice passes an offer through to the backend and returns its
// decision unchanged; accept/reject policy lives entirely in the backend.
// Failure returns an empty outcome.
func (inv *Invoker) NegotiatePrice(ctx context.Context, carID string, offer float64) map[string]any {
	outcome, err := inv.backend.Negotiate(ctx, NegotiationRequest{VehicleID: carID, OfferPrice: offer})
	if err != nil {
		log.Printf("Error calling backend negotiate: %v", err)
		return map[string]any{}
	}
	return outcome
}

// presentCar applies the uniform presentation transform: mock image path
// plus currency-formatted price.
func presentCar(v *model.Vehicle) {
	v.Image = utils.ImagePath(v.Make, v.Model)
	v.Price = utils.FormatPrice(v.Price)
}
