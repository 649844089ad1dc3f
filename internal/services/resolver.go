package services

import (
	"strconv"
	"strings"

	"binroute-backend/internal/models"
)

// ResolveUser maps a human-entered token onto a canonical user record.
// The map client sends whatever it has (a stable id, a login, or a
// display-derived name), so lookup degrades through four tiers:
//
//  1. exact match against the stringified id
//  2. case-insensitive match against login
//  3. case-insensitive match against nom (last name)
//  4. case-insensitive match against prenom (first name)
//
// The first tier with a hit wins. ok=false is "nothing found", not an
// error; callers fall back to displaying the raw token.
func ResolveUser(token string, users []models.User) (models.User, bool) {
	t := strings.TrimSpace(token)
	if t == "" {
		return models.User{}, false
	}

	for _, u := range users {
		if strconv.Itoa(u.ID) == t {
			return u, true
		}
	}
	for _, u := range users {
		if strings.EqualFold(u.Login, t) {
			return u, true
		}
	}
	for _, u := range users {
		if strings.EqualFold(u.Nom, t) {
			return u, true
		}
	}
	for _, u := range users {
		if strings.EqualFold(u.Prenom, t) {
			return u, true
		}
	}
	return models.User{}, false
}

// ResolveActiveTour finds the tour a signed-in supervisor is driving:
// the vehicle whose chauffeur is the supervisor, then the tour that
// references that vehicle. First match in document order wins at each
// step. ok=false when either link is missing.
func ResolveActiveTour(supervisorID int, vehicles []models.Vehicle, tours []models.Tour) (models.ActiveTour, bool) {
	if supervisorID <= 0 {
		return models.ActiveTour{}, false
	}

	var vehicle *models.Vehicle
	for i := range vehicles {
		if vehicles[i].DriverID == supervisorID {
			vehicle = &vehicles[i]
			break
		}
	}
	if vehicle == nil {
		return models.ActiveTour{}, false
	}

	for _, t := range tours {
		if t.VehicleID == vehicle.ID {
			return models.ActiveTour{TourID: t.ID, Matricule: vehicle.Matricule}, true
		}
	}
	return models.ActiveTour{}, false
}
