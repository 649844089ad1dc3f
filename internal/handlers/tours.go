package handlers

import (
	"encoding/json"
	"net/http"

	"binroute-backend/internal/middleware"
	"binroute-backend/internal/models"
	"binroute-backend/internal/services"
	"binroute-backend/internal/xmlstore"
	"binroute-backend/pkg/utils"
)

func GetTours(store *xmlstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tours, err := store.LoadTours()
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to load tours")
			return
		}
		utils.JSON(w, http.StatusOK, tours)
	}
}

func GetVehicles(store *xmlstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vehicles, err := store.LoadVehicles()
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to load vehicles")
			return
		}
		utils.JSON(w, http.StatusOK, vehicles)
	}
}

// GetActiveTour resolves the tour for the signed-in supervisor: the
// vehicle they drive, then the tour that vehicle is assigned to.
func GetActiveTour(store *xmlstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetUserFromContext(r)
		if !ok {
			utils.Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		vehicles, err := store.LoadVehicles()
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to load vehicles")
			return
		}
		tours, err := store.LoadTours()
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to load tours")
			return
		}

		active, found := services.ResolveActiveTour(claims.UserID, vehicles, tours)
		if !found {
			utils.Error(w, http.StatusNotFound, "No active tour for this supervisor")
			return
		}
		utils.JSON(w, http.StatusOK, active)
	}
}

type PlanRouteRequest struct {
	BinIDs []models.FlexInt   `json:"binIds"`
	Start  *services.Location `json:"start"`
}

type PlanRouteResponse struct {
	Bins            []models.BinResponse `json:"bins"`
	TotalDistanceKm float64              `json:"totalDistanceKm"`
}

// PlanRoute orders a set of selected bins into a collection sequence.
// The map page draws the actual route; this only decides stop order.
func PlanRoute(store *xmlstore.Store) http.HandlerFunc {
	optimizer := services.NewRouteOptimizer()

	return func(w http.ResponseWriter, r *http.Request) {
		var req PlanRouteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.Error(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if len(req.BinIDs) == 0 {
			utils.Error(w, http.StatusBadRequest, "No bins selected")
			return
		}

		all, err := store.LoadBins()
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to load trash cans")
			return
		}

		byID := make(map[int]models.Bin, len(all))
		for _, b := range all {
			byID[b.ID] = b
		}

		selected := make([]models.Bin, 0, len(req.BinIDs))
		for _, id := range req.BinIDs {
			if b, ok := byID[id.Int()]; ok {
				selected = append(selected, b)
			}
		}
		if len(selected) == 0 {
			utils.Error(w, http.StatusNotFound, "None of the selected bins exist")
			return
		}

		start := services.GetDepotLocation()
		if req.Start != nil {
			start = *req.Start
		}

		ordered := optimizer.OrderBins(selected, start)
		responses := make([]models.BinResponse, len(ordered))
		for i, b := range ordered {
			responses[i] = b.ToBinResponse()
		}

		utils.JSON(w, http.StatusOK, PlanRouteResponse{
			Bins:            responses,
			TotalDistanceKm: optimizer.TotalDistance(ordered, start),
		})
	}
}
