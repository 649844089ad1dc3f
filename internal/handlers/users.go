package handlers

import (
	"net/http"

	"binroute-backend/internal/models"
	"binroute-backend/internal/xmlstore"
	"binroute-backend/pkg/utils"
)

func GetUsers(store *xmlstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := store.LoadUsers()
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to load users")
			return
		}

		responses := make([]models.UserResponse, len(users))
		for i, u := range users {
			responses[i] = u.ToUserResponse()
		}

		utils.JSON(w, http.StatusOK, responses)
	}
}
