package catalog

import (
	"errors"
	"math"
)

// Route cost assumptions for the Kedarnath corridor. Rates are indicative
// INR figures shown to the traveller before they talk to an operator.
const (
	taxiRatePerKm   = 18.0
	seatsPerVehicle = 4
	bedsPerRoom     = 2
	roomRatePerNite = 1500.0
)

var ErrBadItinerary = errors.New("itinerary needs at least one stop and one traveller")

type Stop struct {
	Name       string  `json:"name" binding:"required"`
	DistanceKm float64 `json:"distance_km" binding:"min=0"`
	Nights     int     `json:"nights" binding:"min=0"`
}

type EstimateRequest struct {
	PartySize int    `json:"party_size" binding:"required,min=1"`
	Stops     []Stop `json:"stops" binding:"required,min=1,dive"`
}

type Estimate struct {
	TotalDistanceKm float64 `json:"total_distance_km"`
	TotalNights     int     `json:"total_nights"`
	Vehicles        int     `json:"vehicles"`
	Rooms           int     `json:"rooms"`
	TaxiCost        float64 `json:"taxi_cost"`
	StayCost        float64 `json:"stay_cost"`
	TotalCost       float64 `json:"total_cost"`
	PerPersonCost   float64 `json:"per_person_cost"`
}

// EstimateRoute prices an itinerary: one-way taxi distance at a flat per-km
// rate with whole vehicles, plus rooms per night with whole rooms.
func EstimateRoute(req EstimateRequest) (*Estimate, error) {
	if req.PartySize < 1 || len(req.Stops) == 0 {
		return nil, ErrBadItinerary
	}

	var distance float64
	var nights int
	for _, s := range req.Stops {
		distance += s.DistanceKm
		nights += s.Nights
	}

	vehicles := int(math.Ceil(float64(req.PartySize) / seatsPerVehicle))
	rooms := int(math.Ceil(float64(req.PartySize) / bedsPerRoom))

	taxi := distance * taxiRatePerKm * float64(vehicles)
	stay := float64(nights) * float64(rooms) * roomRatePerNite
	total := taxi + stay

	return &Estimate{
		TotalDistanceKm: distance,
		TotalNights:     nights,
		Vehicles:        vehicles,
		Rooms:           rooms,
		TaxiCost:        taxi,
		StayCost:        stay,
		TotalCost:       total,
		PerPersonCost:   total / float64(req.PartySize),
	}, nil
}
