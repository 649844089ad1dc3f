package handlers

import (
	"encoding/json"
	"net/http"

	"binroute-backend/internal/models"
	"binroute-backend/internal/services"
	"binroute-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
)

type CreateSelectionRequest struct {
	BinIDs []models.FlexInt `json:"binIds"`
}

type SelectionResponse struct {
	Token  string `json:"token"`
	BinIDs []int  `json:"binIds"`
}

// CreateSelection stores the bin ids picked on the map page and returns
// a token the report page exchanges for them. The token expires after
// the store's TTL; the report page should clear it once the report is
// submitted.
func CreateSelection(sel *services.SelectionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateSelectionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.Error(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if len(req.BinIDs) == 0 {
			utils.Error(w, http.StatusBadRequest, "No bins selected")
			return
		}

		ids := make([]int, 0, len(req.BinIDs))
		for _, id := range req.BinIDs {
			if id.Int() > 0 {
				ids = append(ids, id.Int())
			}
		}

		token := sel.Put(ids)
		utils.JSON(w, http.StatusCreated, SelectionResponse{Token: token, BinIDs: ids})
	}
}

func GetSelection(sel *services.SelectionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := chi.URLParam(r, "token")
		ids, ok := sel.Get(token)
		if !ok {
			utils.Error(w, http.StatusNotFound, "Selection expired or unknown")
			return
		}
		utils.JSON(w, http.StatusOK, SelectionResponse{Token: token, BinIDs: ids})
	}
}

func ClearSelection(sel *services.SelectionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sel.Clear(chi.URLParam(r, "token"))
		utils.JSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}
