package models

// Tour assigns a vehicle and a worker roster to a collection round.
// Read-only from this service's perspective.
type Tour struct {
	ID        int   `json:"id"`
	VehicleID int   `json:"vehicleId"`
	WorkerIDs []int `json:"workerIds"`
}

type Vehicle struct {
	ID        int    `json:"id"`
	DriverID  int    `json:"driverId"`
	Matricule string `json:"matricule"` // plate number
}

// ActiveTour is the tour auto-detected for a signed-in supervisor
// (supervisor -> vehicle by chauffeur id -> tour by vehicle id).
type ActiveTour struct {
	TourID    int    `json:"tourId"`
	Matricule string `json:"matricule"`
}
