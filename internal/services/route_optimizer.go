package services

import (
	"log"
	"math"

	"binroute-backend/internal/models"
)

// Depot constants - all collection rounds start and end here
const (
	DEPOT_LAT = 45.7485
	DEPOT_LNG = 4.8467
)

// GetDepotLocation returns the default depot location
func GetDepotLocation() Location {
	return Location{
		Latitude:  DEPOT_LAT,
		Longitude: DEPOT_LNG,
	}
}

// Location represents a geographic point
type Location struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// RouteOptimizer sequences the bins a supervisor selected on the map
type RouteOptimizer struct{}

// NewRouteOptimizer creates a new route optimizer
func NewRouteOptimizer() *RouteOptimizer {
	return &RouteOptimizer{}
}

// OrderBins orders the selected bins using nearest neighbor TSP,
// always advancing to the closest remaining bin from the current stop.
// The map client draws the actual polyline; this only decides the
// sequence of stops.
func (ro *RouteOptimizer) OrderBins(bins []models.Bin, start Location) []models.Bin {
	if len(bins) <= 1 {
		return bins
	}

	log.Printf("🎯 Ordering %d bins from (%.6f, %.6f)",
		len(bins), start.Latitude, start.Longitude)

	ordered := make([]models.Bin, 0, len(bins))
	remaining := make([]models.Bin, len(bins))
	copy(remaining, bins)

	current := start
	for len(remaining) > 0 {
		bestIdx := 0
		bestDistance := math.MaxFloat64

		for i, bin := range remaining {
			distance := haversineDistance(
				current.Latitude, current.Longitude,
				bin.Latitude, bin.Longitude,
			)
			if distance < bestDistance {
				bestDistance = distance
				bestIdx = i
			}
		}

		best := remaining[bestIdx]
		ordered = append(ordered, best)
		current = Location{Latitude: best.Latitude, Longitude: best.Longitude}
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return ordered
}

// TotalDistance sums the leg distances of an ordered route in km,
// starting from the given location.
func (ro *RouteOptimizer) TotalDistance(bins []models.Bin, start Location) float64 {
	total := 0.0
	current := start
	for _, bin := range bins {
		total += haversineDistance(
			current.Latitude, current.Longitude,
			bin.Latitude, bin.Longitude,
		)
		current = Location{Latitude: bin.Latitude, Longitude: bin.Longitude}
	}
	return total
}

// haversineDistance calculates the great-circle distance between two
// points in kilometers
func haversineDistance(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKm = 6371.0

	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
