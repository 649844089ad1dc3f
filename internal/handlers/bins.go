package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"binroute-backend/internal/models"
	"binroute-backend/internal/websocket"
	"binroute-backend/internal/xmlstore"
	"binroute-backend/pkg/utils"
)

func GetBins(store *xmlstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bins, err := store.LoadBins()
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to load trash cans")
			return
		}

		responses := make([]models.BinResponse, len(bins))
		for i, bin := range bins {
			responses[i] = bin.ToBinResponse()
		}

		utils.JSON(w, http.StatusOK, responses)
	}
}

// UpdateBinStatus marks one bin empty. The map page flips its marker
// optimistically before calling this and reverts on any non-2xx, so a
// missing bin must come back as a distinguishable 404.
func UpdateBinStatus(store *xmlstore.Store, hub *websocket.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.UpdateBinStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.Error(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		id := req.ID.Int()
		if id <= 0 {
			utils.Error(w, http.StatusBadRequest, "Invalid id")
			return
		}

		if err := store.MarkBinEmpty(id); err != nil {
			switch {
			case errors.Is(err, xmlstore.ErrNotFound):
				utils.Error(w, http.StatusNotFound, "Trashcan not found")
			case errors.Is(err, xmlstore.ErrMalformedInput):
				utils.Error(w, http.StatusBadRequest, "Invalid id")
			default:
				log.Printf("❌ Failed to update bin %d: %v", id, err)
				utils.Error(w, http.StatusInternalServerError, "Failed to update trash can")
			}
			return
		}

		hub.BroadcastAll("bin_status_update", map[string]interface{}{
			"id":     id,
			"status": models.StatusEmpty,
		})

		utils.JSON(w, http.StatusOK, map[string]interface{}{"ok": true, "id": id})
	}
}
