package handlers

import (
	"encoding/json"
	"net/http"

	"binroute-backend/internal/models"
	"binroute-backend/internal/services"
	"binroute-backend/internal/websocket"
	"binroute-backend/internal/xmlstore"
	"binroute-backend/pkg/utils"
)

// CreateReport records one end-of-day report. The roster is the union
// of the present and absent lists the client sends; the assembler
// re-derives absences so a worker can never be silently dropped.
func CreateReport(store *xmlstore.Store, hub *websocket.Hub) http.HandlerFunc {
	assembler := services.NewReportAssembler(store)

	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateReportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.Error(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		roster := make([]string, 0, len(req.PresentEmployees)+len(req.AbsentEmployees))
		roster = append(roster, req.PresentEmployees...)
		roster = append(roster, req.AbsentEmployees...)

		chefID := 0
		if req.Chef != nil {
			chefID = req.Chef.ID.Int()
		}

		id, err := assembler.Append(services.ReportInput{
			Date:      req.Date,
			TourID:    req.IDTournee.Int(),
			ChefID:    chefID,
			Present:   req.PresentEmployees,
			Roster:    roster,
			Collected: req.SelectedTrashcans,
		})
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to save report")
			return
		}

		hub.BroadcastAll("report_submitted", map[string]interface{}{"id": id, "date": req.Date})

		utils.JSON(w, http.StatusOK, models.CreateReportResponse{
			Message: "Rapport enregistré",
			ID:      id,
		})
	}
}

func GetReports(store *xmlstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reports, err := store.LoadReports()
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to load reports")
			return
		}
		utils.JSON(w, http.StatusOK, reports)
	}
}
